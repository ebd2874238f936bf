package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/croberts/resume-builder/internal/config"
	"github.com/croberts/resume-builder/internal/observability"
	"github.com/croberts/resume-builder/internal/rendering"
	"github.com/croberts/resume-builder/internal/types"
)

// Output formats accepted by render
const (
	formatDOCX = "docx"
	formatHTML = "html"
	formatXLSX = "xlsx"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a filtered resume or match export to a file",
	Long:  "Builds the resume for a job description and writes it as a Word document, an HTML page, or (xlsx) the keyword match export.",
	RunE:  runRender,
}

var (
	renderFormat  string
	renderOutput  string
	renderJD      string
	renderText    string
	renderVerbose bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", formatDOCX, "Output format: docx, html or xlsx")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to the output file (required)")
	renderCmd.Flags().StringVar(&renderJD, "jd", "", "Configured job description key")
	renderCmd.Flags().StringVar(&renderText, "text", "", "Free-text job description, overrides --jd")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a summary of what was rendered")

	if err := renderCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	route := config.RouteResumeDOCX
	switch renderFormat {
	case formatDOCX:
	case formatHTML:
		route = config.RouteResume
	case formatXLSX:
		route = config.RouteMatch
	default:
		return fmt.Errorf("unsupported format %q, expected docx, html or xlsx", renderFormat)
	}

	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	p := newPipeline(store)
	jd, err := p.ResolveForRoute(route, renderJD, renderText)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	var data []byte
	if renderFormat == formatXLSX {
		result, err := p.Match(ctx, jd)
		if err != nil {
			return fmt.Errorf("failed to match: %w", err)
		}
		if renderVerbose {
			printer.PrintMatchResult(result)
		}
		if data, err = rendering.RenderMatchXLSX(result); err != nil {
			return fmt.Errorf("failed to render xlsx: %w", err)
		}
	} else {
		resume, err := p.Build(ctx, jd)
		if err != nil {
			return fmt.Errorf("failed to build resume: %w", err)
		}
		if renderVerbose {
			printer.PrintResume(resume)
		}
		if data, err = renderResume(resume); err != nil {
			return err
		}
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(renderOutput), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(renderOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", renderOutput)
	return nil
}

// renderResume serializes resume in the requested docx or html format
func renderResume(resume *types.Resume) ([]byte, error) {
	if renderFormat == formatDOCX {
		data, err := rendering.RenderDOCX(resume)
		if err != nil {
			return nil, fmt.Errorf("failed to render docx: %w", err)
		}
		return data, nil
	}

	html, err := rendering.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	var buf bytes.Buffer
	if err := html.RenderResume(&buf, resume); err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}
	return buf.Bytes(), nil
}
