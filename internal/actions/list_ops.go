package actions

import (
	"stagelist.dev/stagelist/internal/engine"
	"stagelist.dev/stagelist/internal/output"
	"stagelist.dev/stagelist/internal/runtime"
)

// InsertOptions contains options for the insert operation
type InsertOptions struct {
	Position int
	Value    string
	Strict   bool
}

// InsertAction inserts a value into the working list
func InsertAction(ctx *runtime.Context, opts InsertOptions) error {
	splog := ctx.Log()

	err := ctx.Engine.Insert(opts.Position, opts.Value)
	ctx.Metrics.Operation("insert", err)
	if err != nil {
		splog.Warn("Insert of %q rejected (%v); the next commit will roll back this batch", opts.Value, err)
		if opts.Strict {
			return err
		}
		return nil
	}

	splog.Info("Inserted %q at position %d", opts.Value, opts.Position)
	return nil
}

// DeleteOptions contains options for the delete operation
type DeleteOptions struct {
	Position int
	Strict   bool
}

// DeleteAction deletes a position from the working list
func DeleteAction(ctx *runtime.Context, opts DeleteOptions) error {
	splog := ctx.Log()

	var value string
	if items := ctx.Engine.Render(engine.Working); opts.Position >= 0 && opts.Position < len(items) {
		value = items[opts.Position]
	}

	err := ctx.Engine.Delete(opts.Position)
	ctx.Metrics.Operation("delete", err)
	if err != nil {
		splog.Warn("Delete rejected (%v); the next commit will roll back this batch", err)
		if opts.Strict {
			return err
		}
		return nil
	}

	splog.Info("Deleted %q at position %d", value, opts.Position)
	return nil
}

// CommitAction commits the open batch and reports the outcome
func CommitAction(ctx *runtime.Context) engine.Outcome {
	splog := ctx.Log()
	counters := ctx.Engine.Counters()

	outcome := ctx.Engine.Commit()
	ctx.Metrics.Commit(outcome.String())

	switch outcome {
	case engine.Committed:
		splog.Info("%s: %d operations saved; saved list has %d elements",
			output.RenderOutcome(outcome), counters.Attempted, ctx.Engine.Len(engine.Saved))
	default:
		splog.Error("%s: %d of %d operations failed; rolled back to the last saved state",
			output.RenderOutcome(outcome), counters.Failed(), counters.Attempted)
	}

	ctx.NextBatch()
	return outcome
}

// RollbackAction discards the open batch
func RollbackAction(ctx *runtime.Context) {
	splog := ctx.Log()
	pending := ctx.Engine.Counters().Attempted

	ctx.Engine.Rollback()
	ctx.Metrics.Rollback()

	splog.Info("Rolled back %d pending operations; working list has %d elements", pending, ctx.Engine.Len(engine.Working))
	ctx.NextBatch()
}

// ShowAction prints the requested lists and the open batch counters
func ShowAction(ctx *runtime.Context, which ...engine.Which) {
	if len(which) == 0 {
		which = []engine.Which{engine.Saved, engine.Working}
	}
	ctx.Splog.Page(output.RenderLists(ctx.Engine, which...))
	ctx.Splog.Page(output.RenderCounters(ctx.Engine.Counters()) + "\n")
}
