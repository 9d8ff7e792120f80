// Package pipeline provides a framework for executing analysis steps in sequence.
//
// The pipeline pattern is used to process HTML documents through multiple
// stages: loading the raw document, running the analysis engine, persisting
// results, and writing reports. Each stage is implemented as a Step that
// receives the current run state and can modify it.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context for long batch runs
// 4. It enables potential parallelization of independent steps in the future
//
// The pipeline supports both individual analyses and batch processing with
// concurrency control using errgroup.
package pipeline
