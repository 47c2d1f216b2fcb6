package cli

import (
	"github.com/spf13/cobra"

	"stagelist.dev/stagelist/internal/actions"
	"stagelist.dev/stagelist/internal/demo"
)

// newDemoCmd creates the demo command
func newDemoCmd(a *app) *cobra.Command {
	var echo bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through staged edits, commits, an abort and a rollback",
		Long: `Runs a built-in walkthrough against an empty list.

The walkthrough commits two batches, rolls back a third by hand, and finally
commits a batch containing an out-of-bounds insert, which aborts and restores
the working list from the saved list.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := a.newContext()
			_, err := demo.Run(ctx, actions.RunOptions{Echo: echo})
			return err
		},
	}

	cmd.Flags().BoolVar(&echo, "echo", false, "Print each command before running it")

	return cmd
}
