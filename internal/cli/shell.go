package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"stagelist.dev/stagelist/internal/actions"
	"stagelist.dev/stagelist/internal/tui"
	"stagelist.dev/stagelist/internal/tui/shell"
)

// newShellCmd creates the shell command
func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit a list interactively",
		Long: `Starts an interactive shell over an empty list. Type the same commands a
batch script accepts; the saved and working lists are shown after each one.

Leaving the shell with pending operations asks whether to commit them.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := tui.CheckInteractiveAllowed(); err != nil {
				return err
			}

			ctx := a.newContext()
			captured := &bytes.Buffer{}
			restore := a.splog.Redirect(captured)
			_, err := shell.Run(ctx, captured)
			restore()
			if err != nil {
				return err
			}

			if !ctx.Engine.Dirty() {
				return nil
			}

			pending := ctx.Engine.Counters().Attempted
			commit, err := tui.PromptConfirm(fmt.Sprintf("Commit %d pending operations before leaving?", pending), false)
			if err != nil {
				return err
			}
			if commit {
				actions.CommitAction(ctx)
			} else {
				actions.RollbackAction(ctx)
			}
			actions.ShowAction(ctx)
			return nil
		},
	}
}
