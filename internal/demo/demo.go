package demo

import (
	"fmt"

	"stagelist.dev/stagelist/internal/actions"
	"stagelist.dev/stagelist/internal/runtime"
	"stagelist.dev/stagelist/internal/script"
)

// Run plays every walkthrough step against ctx and returns the combined summary
func Run(ctx *runtime.Context, opts actions.RunOptions) (actions.RunSummary, error) {
	total := actions.RunSummary{}

	for i, step := range demoSteps {
		commands, err := script.ParseString(step.Script)
		if err != nil {
			return total, fmt.Errorf("demo step %d: %w", i+1, err)
		}

		ctx.Splog.Newline()
		ctx.Splog.Info("%d. %s", i+1, step.Narration)

		summary, err := actions.RunScriptAction(ctx, commands, opts)
		total.Commands += summary.Commands
		total.Commits += summary.Commits
		total.Aborts += summary.Aborts
		total.Rollbacks += summary.Rollbacks
		total.OutOfBounds += summary.OutOfBounds
		if err != nil {
			return total, fmt.Errorf("demo step %d: %w", i+1, err)
		}
	}

	return total, nil
}
