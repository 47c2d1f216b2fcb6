package engine

// ListReader provides read-only access to both sequences and the batch counters
// Not safe for concurrent use
type ListReader[T any] interface {
	// Render returns an independent copy of the requested sequence
	Render(which Which) []T
	Len(which Which) int
	Counters() Counters
	Dirty() bool
}

// ListWriter applies positional edits to the working sequence
// Not safe for concurrent use
type ListWriter[T any] interface {
	Insert(position int, value T) error
	Delete(position int) error
}

// TxnManager closes the open batch
// Not safe for concurrent use
type TxnManager interface {
	Commit() Outcome
	Rollback()
}

// Engine is the staged ordered list
// It composes ListReader, ListWriter, and TxnManager.
// New code should prefer using the smaller interfaces.
type Engine[T any] interface {
	ListReader[T]
	ListWriter[T]
	TxnManager
}
