package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/naveenpatil1/learning/internal/config"
	"github.com/naveenpatil1/learning/internal/site"
)

func serveCmd() *cobra.Command {
	var addr string
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated site for local preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			cfg := config.Load()
			if addr != "" {
				cfg.ServeAddr = addr
			}
			if dir != "" {
				cfg.OutputDir = dir
			}
			if err := site.CheckDir(cfg.OutputDir); err != nil {
				return err
			}

			srv := &http.Server{
				Addr:         cfg.ServeAddr,
				Handler:      site.NewServer(cfg.OutputDir, log),
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				srv.Shutdown(shutdownCtx)
			}()

			log.Info("serving site", "addr", cfg.ServeAddr, "dir", cfg.OutputDir)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: SERVE_ADDR)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "site directory to serve (default: LEARNING_OUTPUT_DIR)")
	return cmd
}
