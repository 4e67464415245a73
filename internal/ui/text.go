package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter styles one kind of CLI output. With color disabled the text is
// wrapped in plain markers instead.
type Formatter struct {
	color *color.Color
	open  string
	close string
}

func (f Formatter) render(text string) string {
	if plain() {
		return f.open + text + f.close
	}
	return f.color.Sprint(text)
}

// Sprint renders the operands as fmt.Sprint would.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf renders a format string as fmt.Sprintf would.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s
	}
	return s + "\n"
}

// plain reports whether output is uncolored: NO_COLOR is set (any value) or
// fatih/color found no capable terminal.
func plain() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

var (
	// Code is for commands the user can run. Plain: `backticks`.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path is for files and directories on disk.
	Path = Formatter{color: color.New(color.FgYellow)}

	Success = Formatter{color: color.New(color.FgGreen)}
	Error   = Formatter{color: color.New(color.FgRed)}
	Warning = Formatter{color: color.New(color.FgYellow)}
	Info    = Formatter{color: color.New(color.FgCyan)}

	// Highlight is for entry and tag names. Plain: 'quotes'.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted is for secondary detail. Plain: (parentheses).
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}

	// Dir is for namespaces in a listing; callers add the trailing slash.
	Dir = Formatter{color: color.New(color.FgBlue, color.Bold)}
)
