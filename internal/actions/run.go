package actions

import (
	"fmt"

	"stagelist.dev/stagelist/internal/engine"
	"stagelist.dev/stagelist/internal/errors"
	"stagelist.dev/stagelist/internal/runtime"
	"stagelist.dev/stagelist/internal/script"
)

// RunOptions contains options for running a batch script
type RunOptions struct {
	// Strict stops the run at the first out-of-bounds operation
	Strict bool
	// Echo prints each command before executing it
	Echo bool
}

// RunSummary counts what a script run did
type RunSummary struct {
	Commands    int
	Commits     int
	Aborts      int
	Rollbacks   int
	OutOfBounds int
}

// ExecuteCommand runs one parsed command against the context and updates summary
func ExecuteCommand(ctx *runtime.Context, cmd script.Command, opts RunOptions, summary *RunSummary) error {
	summary.Commands++
	before := ctx.Engine.Counters()

	var err error
	switch cmd.Op {
	case script.OpInsert:
		err = InsertAction(ctx, InsertOptions{Position: cmd.Position, Value: cmd.Value, Strict: opts.Strict})
	case script.OpDelete:
		err = DeleteAction(ctx, DeleteOptions{Position: cmd.Position, Strict: opts.Strict})
	case script.OpCommit:
		if CommitAction(ctx) == engine.Committed {
			summary.Commits++
		} else {
			summary.Aborts++
		}
	case script.OpRollback:
		RollbackAction(ctx)
		summary.Rollbacks++
	case script.OpShow:
		ShowAction(ctx, cmd.Target.Which()...)
	default:
		return fmt.Errorf("unsupported command %s", cmd.Op)
	}

	if after := ctx.Engine.Counters(); after.Failed() > before.Failed() {
		summary.OutOfBounds++
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", cmd.Line, err)
	}
	return nil
}

// RunScriptAction executes commands in order. Parse errors never reach this
// point; an error is returned only when Strict is set and an operation is out of bounds.
func RunScriptAction(ctx *runtime.Context, commands []script.Command, opts RunOptions) (RunSummary, error) {
	splog := ctx.Splog
	summary := RunSummary{}

	for _, cmd := range commands {
		if opts.Echo {
			splog.Info("› %s", cmd.String())
		}
		if err := ExecuteCommand(ctx, cmd, opts, &summary); err != nil {
			return summary, err
		}
	}

	if ctx.Engine.Dirty() {
		splog.Tip("%d operations are still pending; they were neither committed nor rolled back", ctx.Engine.Counters().Attempted)
	}

	splog.Debug("script finished: %d commands, %d commits, %d aborts, %d rollbacks, %d out of bounds",
		summary.Commands, summary.Commits, summary.Aborts, summary.Rollbacks, summary.OutOfBounds)
	return summary, nil
}

// IsOutOfBounds reports whether err came from a bounds violation
func IsOutOfBounds(err error) bool {
	return errors.Is(err, errors.ErrOutOfBounds)
}
