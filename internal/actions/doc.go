// Package actions provides the operations behind each stagelist command.
//
// Each action drives the engine through runtime.Context, reports what happened
// through Splog, and records metrics.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Engine, Splog, and Metrics
//   - Out-of-bounds operations are reported, not returned, unless Strict is set,
//     because a failed operation only matters when the batch is committed
//   - Errors returned from actions are harness failures
package actions
