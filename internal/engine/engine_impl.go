package engine

import (
	"log/slog"

	"stagelist.dev/stagelist/internal/errors"
)

// stagedList is the Engine implementation. working and saved are sibling
// sequences; neither ever aliases the other's storage.
type stagedList[T any] struct {
	working  *Sequence[T]
	saved    *Sequence[T]
	counters Counters
	logger   *slog.Logger
}

// Option configures a staged list
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes debug records about each operation to logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewEngine creates an empty staged list with both sequences empty and counters zero
func NewEngine[T any](opts ...Option) Engine[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &stagedList[T]{
		working: NewSequence[T](),
		saved:   NewSequence[T](),
		logger:  logger,
	}
}

// Insert splices value into the working sequence at position
func (l *stagedList[T]) Insert(position int, value T) error {
	l.counters.Attempted++

	if !l.working.Insert(position, value) {
		l.logger.Debug("insert rejected", "position", position, "length", l.working.Len())
		return errors.NewOutOfBoundsError("insert", position, l.working.Len())
	}

	l.counters.Succeeded++
	l.logger.Debug("insert applied", "position", position, "length", l.working.Len())
	return nil
}

// Delete removes the element at position from the working sequence
func (l *stagedList[T]) Delete(position int) error {
	l.counters.Attempted++

	if !l.working.Delete(position) {
		l.logger.Debug("delete rejected", "position", position, "length", l.working.Len())
		return errors.NewOutOfBoundsError("delete", position, l.working.Len())
	}

	l.counters.Succeeded++
	l.logger.Debug("delete applied", "position", position, "length", l.working.Len())
	return nil
}

// Commit promotes the working sequence into the saved sequence when every
// operation in the batch succeeded, and rolls back otherwise.
func (l *stagedList[T]) Commit() Outcome {
	// Phase one: any failed operation votes to abort the whole batch
	if !l.counters.Clean() {
		l.logger.Debug("commit aborted",
			"attempted", l.counters.Attempted,
			"succeeded", l.counters.Succeeded)
		l.Rollback()
		return Aborted
	}

	// Phase two: replace saved with an independent copy of working
	l.saved = l.working.Clone()
	l.counters = Counters{}
	l.logger.Debug("commit applied", "length", l.saved.Len())
	return Committed
}

// Rollback discards the working sequence and replaces it with a copy of saved
func (l *stagedList[T]) Rollback() {
	l.working = l.saved.Clone()
	l.counters = Counters{}
	l.logger.Debug("rollback applied", "length", l.working.Len())
}

// Render returns a copy of the requested sequence
func (l *stagedList[T]) Render(which Which) []T {
	return l.sequence(which).Items()
}

// Len returns the tracked length of the requested sequence
func (l *stagedList[T]) Len(which Which) int {
	return l.sequence(which).Len()
}

// Counters returns the counters for the open batch
func (l *stagedList[T]) Counters() Counters {
	return l.counters
}

// Dirty reports whether any operation was attempted since the last commit or rollback
func (l *stagedList[T]) Dirty() bool {
	return l.counters.Attempted > 0
}

func (l *stagedList[T]) sequence(which Which) *Sequence[T] {
	if which == Saved {
		return l.saved
	}
	return l.working
}
