package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/worlded/editor"
)

// Colors
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Status prints st as one coloured line, prefixed by an icon for its level.
func Status(w io.Writer, st editor.Status) {
	switch st.Level {
	case editor.Info:
		fmt.Fprintf(w, "  %s %s\n", Good.Sprint("✓"), st.Message)
	case editor.Warn:
		fmt.Fprintf(w, "  %s %s\n", Warn.Sprint("⚠"), Warn.Sprint(st.Message))
	default:
		fmt.Fprintf(w, "  %s %s\n", Bad.Sprint("✗"), Bad.Sprint(st.Message))
	}
}

// Field prints an aligned "label: value" line.
func Field(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "  %-14s %v\n", label+":", value)
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}
