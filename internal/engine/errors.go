package engine

import "strings"

// ValidationError reports every structural problem found in a document.
//
// Design decision: We accumulate all violations into one error rather
// than failing on the first because:
//  1. The validator is a linter pass, not a guard: callers fixing a
//     document want the complete list in one run
//  2. A comma-joined message stays readable in logs and CLI output
//  3. Violations remains addressable for programmatic consumers
//
// Parse failures are wrapped into this same shape at the public
// boundary so callers never handle the parser's native error type.
type ValidationError struct {
	// Violations lists each problem in detection order.
	Violations []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "HTML validation failed: " + strings.Join(e.Violations, ", ")
}
