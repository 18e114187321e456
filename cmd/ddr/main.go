package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/JaimeStill/ddr/internal/config"
	"github.com/JaimeStill/ddr/internal/documents"
	"github.com/JaimeStill/ddr/internal/oracle"
	"github.com/JaimeStill/ddr/internal/report"
	"github.com/JaimeStill/ddr/internal/workflow"
	"github.com/JaimeStill/ddr/pkg/formatting"
	"github.com/JaimeStill/ddr/pkg/lifecycle"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("Failed:"), err)
		os.Exit(1)
	}
}

func run(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info(
		"ddr starting",
		"version", cfg.Version,
		"env", cfg.Env(),
		"provider", cfg.Agent.Provider.Name,
		"model", cfg.Agent.Model.Name,
		"credential", config.Credential(&cfg.Agent) != "",
	)

	lc := lifecycle.New(parent)
	lc.OnShutdown(func() {
		logger.Info("ddr stopped")
	})
	defer func() {
		if err := lc.Shutdown(shutdownTimeout); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()
	ctx := lc.Context()

	rt := newRuntime(cfg, logger, newProgress(os.Stdout))

	return generate(ctx, rt, cfg.Files, os.Stdout)
}

// generate runs the workflow for files and writes the rendered report.
// Nothing is written to files.Output unless every stage succeeds.
func generate(ctx context.Context, rt *workflow.Runtime, files config.FilesConfig, out io.Writer) error {
	result, err := workflow.Execute(ctx, rt, workflow.Sources{
		General: files.General,
		Thermal: files.Thermal,
	})
	if err != nil {
		return err
	}

	if err := report.WriteFile(files.Output, result.Markdown); err != nil {
		return fmt.Errorf("%w: %w", workflow.ErrIOFailed, err)
	}

	rt.Logger.Info(
		"report written",
		"run_id", result.RunID,
		"path", files.Output,
		"size", formatting.FormatBytes(int64(len(result.Markdown)), 1),
		"areas", len(result.Report.AreaWiseObservations),
	)

	fmt.Fprintf(out, "\n%s Report saved as '%s' in your current directory.\n",
		successStyle.Render("Success!"), files.Output)

	return nil
}

func newRuntime(cfg *config.Config, logger *slog.Logger, progress func(workflow.Step)) *workflow.Runtime {
	return &workflow.Runtime{
		Oracle:    oracle.NewAgent(&cfg.Agent, logger),
		Documents: documents.New(&cfg.Render, logger),
		Settings: workflow.Settings{
			ExtractTemperature:   cfg.Workflow.Extract(),
			SynthesisTemperature: cfg.Workflow.Synthesis(),
		},
		Logger:   logger,
		Progress: progress,
	}
}
