package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/pagescan/internal/config"
	"github.com/nao1215/pagescan/internal/database"
	"github.com/nao1215/pagescan/internal/engine"
	"github.com/nao1215/pagescan/internal/report"
)

// LoadStep reads the raw document into the run.
// Files are read from disk; the special source "-" reads from the
// configured stdin reader.
//
// Design decision: Loading is a separate step rather than part of the
// analyze step because:
// 1. It isolates filesystem access, which simplifies testing the analyzer
// 2. The size limit is enforced in exactly one place
// 3. Future input kinds (HTTP fetch) slot in as alternative load steps
type LoadStep struct {
	// maxSize limits the document size in bytes.
	maxSize int64

	// stdin is the reader used for the "-" source.
	stdin io.Reader

	// logger for structured logging.
	logger *slog.Logger
}

// LoadStepOption configures a LoadStep.
type LoadStepOption func(*LoadStep)

// WithLoadMaxSize sets the maximum document size in bytes.
func WithLoadMaxSize(size int64) LoadStepOption {
	return func(s *LoadStep) {
		if size > 0 {
			s.maxSize = size
		}
	}
}

// WithStdin sets the reader used for the "-" source.
// Defaults to os.Stdin.
func WithStdin(r io.Reader) LoadStepOption {
	return func(s *LoadStep) {
		s.stdin = r
	}
}

// WithLoadLogger sets a custom logger for the load step.
func WithLoadLogger(logger *slog.Logger) LoadStepOption {
	return func(s *LoadStep) {
		s.logger = logger
	}
}

// NewLoadStep creates a new document loading step.
func NewLoadStep(opts ...LoadStepOption) *LoadStep {
	s := &LoadStep{
		maxSize: config.DefaultMaxInputSize,
		stdin:   os.Stdin,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do reads the document content into the run.
func (s *LoadStep) Do(_ context.Context, run *Run) error {
	var r io.Reader
	if run.Source == "-" {
		r = s.stdin
	} else {
		f, err := os.Open(run.Source) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close() //nolint:errcheck // Read-only file
		r = f
	}

	// Read one byte past the limit to detect oversized input
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return fmt.Errorf("document exceeds size limit of %d bytes", s.maxSize)
	}

	s.logger.Debug("document loaded",
		"source", run.Source,
		"bytes", len(data),
	)

	run.HTML = string(data)
	return nil
}

// AnalyzeStep runs the analysis engine on the loaded document.
type AnalyzeStep struct {
	// engine is the shared analysis engine. Sharing one engine across
	// steps keeps the process-wide statistics in a single place.
	engine *engine.Engine

	// opts overrides the engine's default parse options when set.
	opts *engine.Options
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithParseOptions overrides the engine's default options for this step.
func WithParseOptions(opts engine.Options) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.opts = &opts
	}
}

// NewAnalyzeStep creates a new analysis step backed by the given engine.
func NewAnalyzeStep(eng *engine.Engine, opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{engine: eng}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do runs the engine and stores the report and tree in the run.
func (s *AnalyzeStep) Do(_ context.Context, run *Run) error {
	var (
		result *engine.Result
		err    error
	)

	if s.opts != nil {
		result, err = s.engine.ParseHTMLWithOptions(run.HTML, *s.opts)
	} else {
		result, err = s.engine.ParseHTML(run.HTML)
	}
	if err != nil {
		return err
	}

	result.Report.Source = run.Source
	run.Report = result.Report
	run.Tree = result.Tree
	return nil
}

// HistoryStep persists the analysis report to the history database.
type HistoryStep struct {
	// db is the history database.
	db *database.HistoryDB

	// logger for structured logging.
	logger *slog.Logger
}

// HistoryStepOption configures a HistoryStep.
type HistoryStepOption func(*HistoryStep)

// WithHistoryLogger sets a custom logger for the history step.
func WithHistoryLogger(logger *slog.Logger) HistoryStepOption {
	return func(s *HistoryStep) {
		s.logger = logger
	}
}

// NewHistoryStep creates a step that saves reports to the given database.
func NewHistoryStep(db *database.HistoryDB, opts ...HistoryStepOption) *HistoryStep {
	s := &HistoryStep{
		db:     db,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *HistoryStep) Name() string {
	return "history"
}

// Do saves the report to the database.
func (s *HistoryStep) Do(ctx context.Context, run *Run) error {
	if run.Report == nil {
		return fmt.Errorf("no report to save for %s", run.Source)
	}

	id, err := s.db.SaveReport(ctx, run.Report)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	s.logger.Debug("report saved",
		"source", run.Source,
		"id", id,
	)
	return nil
}

// ReportStep writes the analysis report using the configured writer.
type ReportStep struct {
	// writer formats and outputs the report.
	writer report.Writer
}

// NewReportStep creates a step that writes reports with the given writer.
func NewReportStep(w report.Writer) *ReportStep {
	return &ReportStep{writer: w}
}

// Name returns the step name.
func (s *ReportStep) Name() string {
	return "report"
}

// Do writes the report.
func (s *ReportStep) Do(_ context.Context, run *Run) error {
	if run.Report == nil {
		return fmt.Errorf("no report to write for %s", run.Source)
	}

	if _, err := s.writer.Write(run.Report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
