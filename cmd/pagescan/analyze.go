package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/nao1215/pagescan/internal/config"
	"github.com/nao1215/pagescan/internal/database"
	"github.com/nao1215/pagescan/internal/engine"
	"github.com/nao1215/pagescan/internal/log"
	"github.com/nao1215/pagescan/internal/pipeline"
	"github.com/nao1215/pagescan/internal/report"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Analyze HTML documents for structure and quality",
		Long: `Analyze parses HTML documents and scores them across four dimensions.

It validates document structure (mandatory elements, duplicate IDs),
extracts metadata, headings, images, links, scripts, and styles, and
reports:
- SEO issues (missing title, description, alt attributes, H1 problems)
- Accessibility issues (alt text, empty links, language attributes)
- Performance issues (missing image dimensions, blocking scripts)
- Readability based on average sentence length

Examples:
  # Analyze a single document
  pagescan analyze index.html

  # Analyze several documents concurrently
  pagescan analyze pages/*.html

  # Read the document from stdin
  pagescan analyze - < index.html

  # Output JSON report
  pagescan analyze --json index.html

  # Classify links against a host
  pagescan analyze --host example.com index.html

  # Use a named profile from the configuration file
  pagescan analyze --profile blog posts/welcome.html

Configuration file (.pagescan) example:
  defaults:
    host: example.com
  profiles:
    blog:
      host: blog.example.com
      format: markdown
      preserveWhitespace: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Parse behavior flags
	cmd.Flags().StringP("host", "H", "",
		"Host name used to classify links as internal or external")
	cmd.Flags().BoolP("preserve-whitespace", "w", false,
		"Keep whitespace in text nodes instead of collapsing it")
	cmd.Flags().BoolP("xml", "x", false,
		"Parse input as strict XML instead of forgiving HTML")
	cmd.Flags().BoolP("no-validate", "n", false,
		"Skip structural validation of the document")
	cmd.Flags().Int64P("max-input-size", "s", config.DefaultMaxInputSize,
		"Maximum document size in bytes")

	// Batch flags
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of concurrent analyses")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pagescan in current or home directory)")
	cmd.Flags().StringP("profile", "p", "",
		"Named profile from the configuration file")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not save analysis results to the history database")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalyze(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.CurrentHost, err = cmd.Flags().GetString("host")
	if err != nil {
		return nil, err
	}

	cfg.PreserveWhitespace, err = cmd.Flags().GetBool("preserve-whitespace")
	if err != nil {
		return nil, err
	}

	cfg.XMLMode, err = cmd.Flags().GetBool("xml")
	if err != nil {
		return nil, err
	}

	cfg.SkipValidation, err = cmd.Flags().GetBool("no-validate")
	if err != nil {
		return nil, err
	}

	cfg.MaxInputSize, err = cmd.Flags().GetInt64("max-input-size")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load profiles from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Profiles, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.Profiles = &config.File{
			Profiles: make(map[string]config.Profile),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	if !noHistory {
		cfg.SaveToDB = true
		cfg.DBDir = config.XDGDataDir()
	}

	// Apply the selected profile before validation so overrides count
	profileName, err := cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}
	if profileName != "" {
		applyProfile(cfg, cfg.Profiles.GetProfile(profileName))
	}

	// Positional arguments are the documents to analyze
	cfg.Targets = args

	return cfg, nil
}

// applyProfile overlays profile settings onto the config.
// CLI flags that were left at their defaults pick up the profile values.
func applyProfile(cfg *config.Config, p config.Profile) {
	if p.Host != "" && cfg.CurrentHost == "" {
		cfg.CurrentHost = p.Host
	}
	if p.Concurrency > 0 {
		cfg.Concurrency = p.Concurrency
	}
	if p.Output != "" && cfg.ReportFile == "" {
		cfg.ReportFile = p.Output
	}
	if p.PreserveWhitespace {
		cfg.PreserveWhitespace = true
	}
	if p.SkipValidation {
		cfg.SkipValidation = true
	}
	if !cfg.JSONReport && !cfg.MarkdownReport {
		switch p.Format {
		case "json":
			cfg.JSONReport = true
		case "markdown":
			cfg.MarkdownReport = true
		}
	}
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"targets", cfg.Targets,
		"concurrency", cfg.Concurrency,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	// A single shared engine keeps the process-wide statistics coherent
	// across every document in the run.
	eng := engine.New(
		engine.WithLogger(logger),
		engine.WithValidation(!cfg.SkipValidation),
		engine.WithPreserveWhitespace(cfg.PreserveWhitespace),
		engine.WithXMLMode(cfg.XMLMode),
		engine.WithCurrentHost(cfg.CurrentHost),
	)

	if len(cfg.Targets) > 1 && cfg.Concurrency > 1 {
		return runBatchAnalyze(ctx, cfg, eng, db, logger)
	}

	return runSequentialAnalyze(ctx, cfg, eng, db, logger)
}

// runSequentialAnalyze analyzes documents one at a time.
func runSequentialAnalyze(ctx context.Context, cfg *config.Config, eng *engine.Engine, db *database.HistoryDB, logger *slog.Logger) error {
	var lastErr error
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := createPipeline(cfg, eng, db, logger)
		run := pipeline.NewRun(target)

		startTime := time.Now()
		if err := p.Execute(ctx, run); err != nil {
			logger.Error("analysis failed", "source", target, "error", err)
			fmt.Fprintf(os.Stderr, "Analysis error for %s: %v\n", target, err)
			lastErr = err
			continue
		}

		elapsed := time.Since(startTime)
		logger.Debug("analysis finished", "source", target, "elapsed", elapsed)

		if err := outputReport(cfg, run); err != nil {
			logger.Error("report failed", "source", target, "error", err)
			lastErr = err
		}
	}

	return lastErr
}

// runBatchAnalyze analyzes multiple documents concurrently using BatchProcessor.
func runBatchAnalyze(ctx context.Context, cfg *config.Config, eng *engine.Engine, db *database.HistoryDB, logger *slog.Logger) error {
	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return createPipeline(cfg, eng, db, logger)
		},
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output.
	// The mutex keeps interleaved reports from corrupting each other.
	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, cfg.Targets, func(run *pipeline.Run, index int) {
		mu.Lock()
		defer mu.Unlock()

		if run.Err != nil {
			fmt.Fprintf(os.Stderr, "[%d/%d] Analysis failed: %s: %v\n",
				index+1, len(cfg.Targets), run.Source, run.Err)
			return
		}

		if err := outputReport(cfg, run); err != nil {
			logger.Error("report failed", "source", run.Source, "error", err)
		}
	})

	elapsed := time.Since(startTime)
	logger.Info("batch analysis complete",
		"documents", len(cfg.Targets),
		"elapsed", elapsed,
	)

	return err
}

// createPipeline assembles the analysis pipeline for one document.
func createPipeline(cfg *config.Config, eng *engine.Engine, db *database.HistoryDB, logger *slog.Logger) *pipeline.Pipeline {
	p := pipeline.New(
		pipeline.WithLogger(logger),
	)

	p.AddStep(pipeline.NewLoadStep(
		pipeline.WithLoadMaxSize(cfg.MaxInputSize),
		pipeline.WithLoadLogger(logger),
	))
	p.AddStep(pipeline.NewAnalyzeStep(eng))
	if db != nil {
		p.AddStep(pipeline.NewHistoryStep(db, pipeline.WithHistoryLogger(logger)))
	}

	return p
}

// outputReport outputs the analysis report in the requested format.
func outputReport(cfg *config.Config, run *pipeline.Run) error {
	if run.Report == nil {
		return fmt.Errorf("no report for %s", run.Source)
	}

	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output)
	}

	_, err := w.Write(run.Report)
	return err
}
