package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"stagelist.dev/stagelist/internal/actions"
	"stagelist.dev/stagelist/internal/script"
)

// newRunCmd creates the run command
func newRunCmd(a *app) *cobra.Command {
	var (
		strict bool
		stats  bool
		echo   bool
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a batch script against an empty list",
		Long: `Runs a batch script against an empty list. Reads standard input when the
file is omitted or is "-".

Script commands, one per line ('#' starts a comment):

  insert <pos> <value...>   add a value to the working list
  delete <pos>              remove a position from the working list
  commit                    save the batch, or roll back if any operation failed
  rollback                  discard the batch
  show [working|saved|all]  print the lists`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
				name = args[0]
			}

			commands, err := script.Parse(in)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			ctx := a.newContext()
			if quiet {
				a.splog.SetQuiet(true)
				defer a.splog.SetQuiet(false)
			}
			summary, err := actions.RunScriptAction(ctx, commands, actions.RunOptions{
				Strict: strict || a.cfg.IsStrict(),
				Echo:   echo,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			a.splog.Debug("%s: %d commits, %d aborts", name, summary.Commits, summary.Aborts)

			if stats {
				return printStats(cmd.OutOrStdout(), ctx.Metrics.Summary)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first out-of-bounds operation")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print operation counters when the script finishes")
	cmd.Flags().BoolVar(&echo, "echo", false, "Print each command before running it")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-command output; errors are still returned")

	return cmd
}

func printStats(w io.Writer, summary func() (string, error)) error {
	text, err := summary()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s", text)
	return err
}
