package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/worlded/editor"
	"github.com/katalvlaran/worlded/internal/ui"
	"github.com/katalvlaran/worlded/logging"
)

func replayCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "replay <file> [script]",
		Short: "Apply a gesture script to a map",
		Long: "Replay reads gestures (add/select/delete x y, clear, save) from a script\n" +
			"file or stdin and applies them to the map in order. Warnings are printed\n" +
			"and skipped; an error stops the replay. The map is saved at the end\n" +
			"unless --dry-run is given.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, in := "<stdin>", cmd.InOrStdin()
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				name, in = args[1], f
			}
			script, err := ParseScript(name, in)
			if err != nil {
				return err
			}

			e, err := openEditor(cmd, args[0])
			if err != nil {
				return err
			}
			if err := replay(e, script, cmd.OutOrStdout(), dryRun); err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Subtle.Sprint("  dry run: map not saved"))
				return nil
			}
			return report(cmd, e.Save())
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Apply the script without saving")

	return cmd
}

// replay applies script to e, printing each status to w. It stops at the
// first Error-level status. Save steps are skipped in a dry run.
func replay(e *editor.Editor, script *Script, w io.Writer, dryRun bool) error {
	for _, step := range script.Steps {
		st, ok := apply(e, step, dryRun)
		if !ok {
			continue
		}
		ui.Status(w, st)
		if st.Level == editor.Error {
			return fmt.Errorf("%s: %w", step.Pos, errReported)
		}
		logging.Debugf("%s: %s", step.Pos, st.Message)
	}
	return nil
}

func apply(e *editor.Editor, step *Step, dryRun bool) (editor.Status, bool) {
	if g := step.Gesture; g != nil {
		switch g.Op {
		case "add":
			return e.PrimaryClick(g.X, g.Y), true
		case "select":
			return e.SecondaryClick(g.X, g.Y), true
		default:
			return e.DoubleClick(g.X, g.Y), true
		}
	}
	switch step.Command {
	case "clear":
		return e.Clear(), true
	case "save":
		if dryRun {
			return editor.Status{}, false
		}
		return e.Save(), true
	}
	return editor.Status{}, false
}
