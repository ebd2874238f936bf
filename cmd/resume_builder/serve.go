package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/spf13/cobra"

	"github.com/croberts/resume-builder/internal/server"
)

var (
	servePort    int
	serveMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start an HTTP server that serves stored experience, keyword matches and filtered resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply the schema before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if serveMigrate {
		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(newPipeline(store), version)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	port := appConfig.Server.Port
	if servePort > 0 {
		port = servePort
	}
	if err := srv.Run(ctx, fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	if ctx.Err() == context.Canceled {
		log.Printf("[INFO] shutdown requested")
	}
	return nil
}
