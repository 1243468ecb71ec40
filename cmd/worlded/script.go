package main

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a replayable list of editor gestures, one per line:
//
//	add 40 60      # primary click
//	select 40 60   # secondary click
//	delete 40 60   # double click
//	clear
//	save
type Script struct {
	Steps []*Step `parser:"EOL* (@@ EOL+)*"`
}

// Step is one gesture or command.
type Step struct {
	Pos lexer.Position

	Gesture *Gesture `parser:"  @@"`
	Command string   `parser:"| @(\"clear\" | \"save\")"`
}

// Gesture is a pointer action at (X, Y).
type Gesture struct {
	Op string  `parser:"@(\"add\" | \"select\" | \"delete\")"`
	X  float64 `parser:"@Number"`
	Y  float64 `parser:"@Number"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

var scriptParser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
)

// ParseScript reads a gesture script; name labels positions in errors.
// Each step must sit on its own line; the last line needs no newline.
func ParseScript(name string, r io.Reader) (*Script, error) {
	return scriptParser.Parse(name, io.MultiReader(r, strings.NewReader("\n")))
}
