package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/worlded/editor"
	"github.com/katalvlaran/worlded/internal/ui"
)

func newCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Write an empty map",
		Long:  "New writes an empty map. A file name without an extension gets the configured default_extension.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if filepath.Ext(path) == "" {
				path += cfg.Editor.DefaultExt
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			e := editor.New(cfg.Editor)
			return report(cmd, e.SaveAs(path))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <x> <y>",
		Short: "Add a vertex at the grid point nearest (x, y)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseCoords(args[1:])
			if err != nil {
				return err
			}
			return edit(cmd, args[0], func(e *editor.Editor) []editor.Status {
				return []editor.Status{e.PrimaryClick(xy[0], xy[1])}
			})
		},
	}
}

func connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <file> <x1> <y1> <x2> <y2>",
		Short: "Connect the vertices under two points with a line",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseCoords(args[1:])
			if err != nil {
				return err
			}
			return edit(cmd, args[0], func(e *editor.Editor) []editor.Status {
				first := e.SecondaryClick(xy[0], xy[1])
				if _, ok := e.Pending(); !ok {
					return []editor.Status{{Level: editor.Warn, Message: first.Message}}
				}
				before := len(e.Lines())
				second := e.SecondaryClick(xy[2], xy[3])
				if second.OK() && len(e.Lines()) == before {
					// the second click cleared the selection instead of connecting
					second.Level = editor.Warn
				}
				return []editor.Status{first, second}
			})
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <file> <x> <y>",
		Aliases: []string{"rm"},
		Short:   "Delete the vertex, or else the line, under (x, y)",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseCoords(args[1:])
			if err != nil {
				return err
			}
			return edit(cmd, args[0], func(e *editor.Editor) []editor.Status {
				return []editor.Status{e.DoubleClick(xy[0], xy[1])}
			})
		},
	}
}

// edit opens path, applies fn and saves the map when every status is Info.
func edit(cmd *cobra.Command, path string, fn func(*editor.Editor) []editor.Status) error {
	e, err := openEditor(cmd, path)
	if err != nil {
		return err
	}
	for _, st := range fn(e) {
		if err := report(cmd, st); err != nil {
			return err
		}
	}
	return report(cmd, e.Save())
}

func parseCoords(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("invalid coordinate %q", a)
		}
		out[i] = f
	}
	return out, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and about text",
		Run: func(cmd *cobra.Command, args []string) {
			a := editor.About()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", ui.Brand.Sprint(a.Name), a.Version)
			fmt.Fprintln(w, ui.Subtle.Sprint(a.Description))
		},
	}
}
