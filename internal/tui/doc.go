// Package tui provides the terminal user interface for stagelist.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Interactive confirmation prompts (using survey)
//   - Terminal detection for interactive modes
//
// The interactive shell lives in the shell subpackage.
package tui
