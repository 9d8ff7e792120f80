package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen for typical HTML documents found on the web.
const (
	// DefaultConcurrency of 4 concurrent analyses balances throughput with
	// resource usage when processing multiple documents. Parsing is CPU-bound,
	// so very high values provide no benefit on typical machines.
	DefaultConcurrency = 4

	// DefaultMaxInputSize limits the maximum input document size to read.
	// 10MB is generous for HTML pages while preventing memory exhaustion
	// from unexpectedly large inputs. Users can override via --max-input-size.
	DefaultMaxInputSize = 10 * 1024 * 1024 // 10MB

	// AppName is the application name used for XDG directory paths.
	AppName = "pagescan"
)

// Config holds all configuration options for pagescan.
// This struct is designed to be populated from CLI flags and the optional
// configuration file, then passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ParseConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Targets is the list of HTML files to analyze.
	// A single "-" entry means read the document from standard input.
	Targets []string

	// CurrentHost is the host name used to classify links as internal or
	// external. When empty, every absolute URL is treated as external.
	CurrentHost string

	// PreserveWhitespace disables whitespace collapsing in text nodes.
	// Useful when analyzing documents where exact spacing matters
	// (e.g., preformatted content audits).
	PreserveWhitespace bool

	// XMLMode parses the input with a strict XML tokenizer instead of the
	// forgiving HTML parser. Use for XHTML documents that must be well-formed.
	XMLMode bool

	// SkipValidation disables structural validation of the parsed document.
	// When true, missing mandatory elements and duplicate IDs do not fail
	// the analysis.
	SkipValidation bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Concurrency is the number of concurrent analyses when processing
	// multiple documents. Higher values increase throughput but use more CPU.
	Concurrency int

	// MaxInputSize is the maximum document size in bytes to read.
	// Inputs larger than this are rejected to prevent memory exhaustion.
	// Set to 0 to use the default (10MB).
	MaxInputSize int64

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .pagescan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// Profiles holds per-document profiles loaded from the config file.
	// This is populated by LoadConfigFile and used during analysis.
	Profiles *File

	// JSONReport enables JSON report output instead of human-readable format.
	// When true, outputs detailed JSON with all collected data.
	// When false, outputs human-readable simple report (default).
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable format.
	// When true, outputs GitHub Flavored Markdown with tables and pie charts.
	// When false, outputs human-readable simple report (default).
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// DBDir is the directory path for storing the SQLite database.
	// When set, analysis results are saved for historical comparison.
	// When empty, results are not persisted.
	// Defaults to XDG data directory (~/.local/share/pagescan on Linux).
	DBDir string

	// SaveToDB indicates whether to save analysis results to the database.
	// This is automatically set to true when DBDir is configured.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (e.g., concurrency,
// input size limit). This also serves as documentation of the defaults.
func NewConfig() *Config {
	return &Config{
		Concurrency:  DefaultConcurrency,
		MaxInputSize: DefaultMaxInputSize,
	}
}

// XDGDataDir returns the XDG data directory for pagescan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/pagescan
// On macOS: ~/Library/Application Support/pagescan
// On Windows: %LOCALAPPDATA%\pagescan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pagescan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/pagescan
// On macOS: ~/Library/Application Support/pagescan
// On Windows: %APPDATA%\pagescan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any analysis begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one document to analyze
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	// Concurrency must be positive; zero would mean no analysis
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// MaxInputSize must be non-negative; use 0 for the default limit
	if c.MaxInputSize < 0 {
		return ErrInvalidMaxInputSize
	}

	// Stdin can only be combined with file targets if named exactly once
	stdinCount := 0
	for _, target := range c.Targets {
		if target == "-" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return ErrDuplicateStdinTarget
	}

	return nil
}
