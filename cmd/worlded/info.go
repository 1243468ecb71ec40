package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/worlded/editor"
	"github.com/katalvlaran/worlded/internal/ui"
	"github.com/katalvlaran/worlded/mapfile"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fi, err := os.Stat(path)
			if err != nil {
				return err
			}
			// load without invariant checks so broken maps can still be inspected
			e := editor.New(cfg.Editor, editor.WithStrictLoad(false))
			if err := report(cmd, e.Open(path)); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			st := e.Stats()
			fmt.Fprintln(w)
			ui.Field(w, "File", path)
			ui.Field(w, "Size", humanize.Bytes(uint64(fi.Size())))
			ui.Field(w, "Modified", humanize.Time(fi.ModTime()))
			ui.Field(w, "Vertices", humanize.Comma(int64(st.Vertices)))
			ui.Field(w, "Lines", humanize.Comma(int64(st.Lines)))
			ui.Field(w, "Components", st.Components)
			ui.Field(w, "Isolated", st.Isolated)
			ui.Field(w, "Max degree", st.MaxDegree)
			if st.OffCanvas > 0 {
				ui.Field(w, "Off canvas", ui.Warn.Sprintf("%d (canvas %dx%d)", st.OffCanvas, cfg.Editor.CanvasWidth, cfg.Editor.CanvasHeight))
			}
			if st.HasBounds {
				ui.Field(w, "Bounds", fmt.Sprintf("(%d, %d) - (%d, %d)", st.Min.X, st.Min.Y, st.Max.X, st.Max.Y))
			}
			err = e.Validate()
			ui.Field(w, "Valid", ui.StatusIcon(err == nil))
			if err != nil {
				fmt.Fprintln(w, ui.Subtle.Sprint("  "+err.Error()))
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a map file against the format and graph invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mapfile.Load(args[0], mapfile.WithStrict())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s %v\n", ui.StatusIcon(false), err)
				return errReported
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s: %d vertices, %d lines\n",
				ui.StatusIcon(true), args[0], s.VertexCount(), s.EdgeCount())
			return nil
		},
	}
}
