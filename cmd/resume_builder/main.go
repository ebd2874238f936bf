// Package main provides the resume_builder CLI: the HTTP server plus schema, seed and render tools.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/croberts/resume-builder/internal/config"
	"github.com/croberts/resume-builder/internal/db"
	"github.com/croberts/resume-builder/internal/pipeline"
)

var version = "dev"

var (
	configPath string
	debug      bool

	// appConfig is loaded by the root command before any subcommand runs
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "resume_builder",
	Short:             "Resume builder service",
	Long:              "Resume builder stores work history in a database and serves keyword-filtered resumes as HTML and Word documents.",
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file (set profile contact details and links here)")
	rootCmd.PersistentFlags().BoolVar(&debug, "dbg", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	setupLogs(debug, logWriter(cfg.Log))
	return nil
}

// logWriter returns a rotating file writer when a log file is configured, stdout otherwise
func logWriter(c config.LogConfig) io.Writer {
	if c.File == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
	}
}

func setupLogs(dbg bool, out io.Writer) {
	if dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.Out(out), log.Err(out))
		return
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
}

// openStore connects to the configured database; the caller closes it
func openStore(ctx context.Context) (db.Store, error) {
	driver := appConfig.Database.Driver
	if driver == "" {
		driver = db.DetectDriver(appConfig.Database.URL)
	}
	store, err := db.Open(ctx, driver, appConfig.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	log.Printf("[DEBUG] opened %s database", driver)
	return store, nil
}

// newPipeline wires a pipeline to store, logging progress at debug level
func newPipeline(store db.Store) *pipeline.Pipeline {
	p := pipeline.New(store, appConfig)
	p.OnProgress(func(e pipeline.ProgressEvent) {
		log.Printf("[DEBUG] %s: %s", e.Step, e.Message)
	})
	return p
}

// closeStore closes store, logging instead of failing the command
func closeStore(store db.Store) {
	if err := store.Close(); err != nil {
		log.Printf("[WARN] failed to close database: %v", err)
	}
}
