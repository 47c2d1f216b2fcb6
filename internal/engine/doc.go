// Package engine manages the working and saved sequences of a staged list.
//
// It is the core of stagelist, responsible for:
//   - Applying positional inserts and deletes to the working sequence
//   - Counting attempted and succeeded operations for the open batch
//   - Committing a fully successful batch into the saved sequence
//   - Rolling the working sequence back to the last saved state
//
// The engine is single-threaded. Callers serialize every call; no locks are taken.
package engine
