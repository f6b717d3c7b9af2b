package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/naveenpatil1/learning/internal/config"
	"github.com/naveenpatil1/learning/internal/enrich"
	"github.com/naveenpatil1/learning/internal/extractor"
	"github.com/naveenpatil1/learning/internal/pipeline"
	"github.com/naveenpatil1/learning/internal/render"
)

func processCmd() *cobra.Command {
	var input string
	var output string
	var workers int
	var force bool

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Process every PDF in the input directory into study pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			cfg := config.Load()
			if input != "" {
				cfg.InputDir = input
			}
			if output != "" {
				cfg.OutputDir = output
			}
			if workers > 0 {
				cfg.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client := enrich.NewClient(cfg.AzureEndpoint, cfg.AzureDeployment, cfg.AzureAPIVersion, cfg.AzureAPIKey)
			defer client.Close()

			gateway := enrich.NewGateway(client, enrich.Options{
				MaxRetries:        cfg.MaxRetries,
				BackoffBase:       cfg.BackoffBase,
				RequestsPerSecond: cfg.RequestsPerSecond,
				MinConcepts:       cfg.MinConcepts,
				MinMCQs:           cfg.MinMCQs,
				MinQA:             cfg.MinQA,
			}, log)

			driver := pipeline.NewDriver(pipeline.Options{
				Workers:         cfg.Workers,
				DocumentTimeout: cfg.DocumentTimeout,
				MaxTopicTokens:  cfg.MaxTopicTokens,
				Force:           force,
			}, &extractor.Extractor{FallbackPdftotext: cfg.PDFFallbackPdftotext}, gateway, &render.Renderer{OutDir: cfg.OutputDir}, log)

			log.Info("starting run", "input", cfg.InputDir, "output", cfg.OutputDir, "workers", cfg.Workers)
			sum, err := driver.Run(ctx, cfg.InputDir)
			if err != nil {
				return err
			}

			latency := gateway.LatencySnapshot()
			log.Info("run complete",
				"discovered", sum.Discovered,
				"processed", sum.Processed,
				"skipped", sum.Skipped,
				"failed", sum.Failed,
				"topics", sum.Topics,
				"concepts", sum.Concepts,
				"mcqs", sum.MCQs,
				"subjective", sum.Subjective,
				"llm_calls", latency.Count,
				"llm_avg_ms", latency.AvgMs,
				"llm_p95_ms", latency.P95Ms,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "directory of source PDFs (default: LEARNING_INPUT_DIR)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "directory for generated pages (default: LEARNING_OUTPUT_DIR)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent documents (default: WORKER_COUNT)")
	cmd.Flags().BoolVar(&force, "force", false, "reprocess documents whose output already exists")
	return cmd
}
