package engine

import (
	"log/slog"
	"time"

	"github.com/nao1215/pagescan/internal/analyze"
	"github.com/nao1215/pagescan/internal/dom"
	"github.com/nao1215/pagescan/internal/extract"
	"github.com/nao1215/pagescan/internal/model"
)

// Options configures a single analysis call.
type Options struct {
	// PreserveWhitespace keeps text node whitespace exactly as written
	// instead of collapsing runs to single spaces.
	PreserveWhitespace bool

	// XMLMode parses the input as XML instead of permissive HTML.
	XMLMode bool

	// ValidateHTML runs the structural validator before extraction.
	// When false, no validation error can occur for that call.
	ValidateHTML bool

	// CurrentHost is the host the document is considered to live on,
	// used for external-link classification. When empty, every
	// absolute link with a host is classified external.
	CurrentHost string
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() Options {
	return Options{ValidateHTML: true}
}

// Engine analyzes HTML documents and accumulates process-wide counters.
//
// An Engine is cheap to construct and safe for concurrent use; the
// statistics counters are its only mutable state.
type Engine struct {
	// opts holds the default per-call options.
	opts Options

	// stats holds the lifetime counters.
	stats *Stats

	// logger is used for structured logging of each analysis.
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithValidation enables or disables structural validation by default.
func WithValidation(validate bool) Option {
	return func(e *Engine) {
		e.opts.ValidateHTML = validate
	}
}

// WithPreserveWhitespace keeps text node whitespace as written.
func WithPreserveWhitespace(preserve bool) Option {
	return func(e *Engine) {
		e.opts.PreserveWhitespace = preserve
	}
}

// WithXMLMode parses input as XML instead of permissive HTML.
func WithXMLMode(xmlMode bool) Option {
	return func(e *Engine) {
		e.opts.XMLMode = xmlMode
	}
}

// WithCurrentHost sets the host used for external-link classification.
func WithCurrentHost(host string) Option {
	return func(e *Engine) {
		e.opts.CurrentHost = host
	}
}

// New creates an Engine with zeroed statistics.
func New(opts ...Option) *Engine {
	e := &Engine{
		opts:  DefaultOptions(),
		stats: NewStats(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Result is the outcome of one analysis call: the report plus the
// underlying document tree for callers needing further queries.
type Result struct {
	// Report is the full analysis report.
	Report *model.PageReport

	// Tree is the document tree the report was derived from. It must
	// not be shared across calls or mutated.
	Tree *dom.Tree
}

// ParseHTML analyzes one HTML document using the engine's default
// options.
func (e *Engine) ParseHTML(input string) (*Result, error) {
	return e.parse(input, e.opts)
}

// ParseHTMLWithOptions analyzes one HTML document with per-call
// options, leaving the engine defaults untouched.
func (e *Engine) ParseHTMLWithOptions(input string, opts Options) (*Result, error) {
	return e.parse(input, opts)
}

// Stats returns a snapshot of the engine's lifetime counters.
func (e *Engine) Stats() model.ParsingStats {
	return e.stats.Snapshot()
}

// ResetStats zeroes the engine's lifetime counters.
func (e *Engine) ResetStats() {
	e.stats.Reset()
}

// parse runs the full sequential pass for one document.
func (e *Engine) parse(input string, opts Options) (*Result, error) {
	start := time.Now()

	tree, err := dom.Load(input, dom.Options{
		PreserveWhitespace: opts.PreserveWhitespace,
		XMLMode:            opts.XMLMode,
	})
	if err != nil {
		e.stats.addErrors(1)
		e.logger.Error("analysis failed",
			"operation", "load",
			"duration", time.Since(start),
			"error", err,
		)
		// Parse failures join the validation taxonomy so callers
		// handle one error shape.
		return nil, &ValidationError{
			Violations: []string{"HTML parsing failed: " + err.Error()},
		}
	}

	if opts.ValidateHTML {
		if verr := validateTree(tree); verr != nil {
			e.stats.addErrors(1)
			e.logger.Error("analysis failed",
				"operation", "validate",
				"duration", time.Since(start),
				"error", verr,
			)
			return nil, verr
		}
	}

	meta := extract.Metadata(tree)
	if meta.StructuredDataErrors > 0 {
		e.stats.addErrors(meta.StructuredDataErrors)
	}

	headings := extract.Headings(tree)
	images := extract.Images(tree)
	e.stats.addElements(len(images))

	links := extract.Links(tree, opts.CurrentHost)
	scripts := extract.Scripts(tree)
	styles := extract.Styles(tree)

	content, text := extract.Content(tree)
	content.ReadabilityScore = analyze.Readability(text)

	hierarchy := analyze.Hierarchy(headings)

	report := &model.PageReport{
		AnalyzedAt: start,
		Metadata:   meta,
		Structure: model.Structure{
			Headings:   headings,
			Navigation: extract.Navigation(tree),
			Sections:   extract.Sections(tree),
			Footer:     extract.FooterInfo(tree),
			Hierarchy:  hierarchy,
		},
		Images:        images,
		Links:         links,
		Scripts:       scripts,
		Styles:        styles,
		Content:       content,
		Performance:   analyze.Performance(images, scripts, styles),
		SEO:           analyze.SEO(meta, hierarchy, images),
		Accessibility: analyze.Accessibility(meta, images, links),
	}

	e.stats.addDocument()
	report.Duration = time.Since(start).Milliseconds()

	e.logger.Debug("analysis complete",
		"operation", "parse_html",
		"duration", time.Since(start),
		"headings", len(headings),
		"images", len(images),
		"links", len(links),
		"issues", report.IssueCount(),
	)

	return &Result{Report: report, Tree: tree}, nil
}
