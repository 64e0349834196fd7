package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

// ColorEnabled reports whether styled output should be written to w: w must
// be a terminal and color must not be disabled globally (NO_COLOR).
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isTerminalFn(int(f.Fd()))
}

// ansiHelp styles text with attrs when on is set.
func ansiHelp(text string, on bool, attrs ...color.Attribute) string {
	if !on {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}
