package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoTarget is returned when no input document is specified.
	// This error occurs when neither a file argument nor "-" (stdin) is given.
	ErrNoTarget = errors.New("no target specified: provide an HTML file or \"-\" for stdin")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	// A concurrency of zero would mean no concurrent analyses, effectively
	// stopping the processing.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxInputSize is returned when the max input size is negative.
	// A negative input size is invalid; use 0 to use the default limit.
	ErrInvalidMaxInputSize = errors.New("invalid max input size: must be non-negative")

	// ErrDuplicateStdinTarget is returned when "-" appears more than once
	// in the target list. Standard input can only be consumed once.
	ErrDuplicateStdinTarget = errors.New("duplicate stdin target: \"-\" may appear at most once")
)
