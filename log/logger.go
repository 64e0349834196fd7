package log

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

var osExit = os.Exit // Mockable for testing

// Logger receives every input problem found while parsing. Whether a Fatal
// message ends the process is up to the implementation.
type Logger interface {
	Log(message string, severity Severity)
}

// Func adapts a plain function to the Logger interface.
type Func func(message string, severity Severity)

func (f Func) Log(message string, severity Severity) { f(message, severity) }

// Discard drops every message.
var Discard Logger = Func(func(string, Severity) {})

// Rotation configures the optional log file sink.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Console is the default Logger. It prints "<name>: <severity>: <message>"
// lines and, when ExitOnFatal is set, exits after a Fatal message.
type Console struct {
	Name        string
	NoColor     bool
	ExitOnFatal bool
	ExitCode    int

	writer io.Writer
	file   io.Writer
}

// NewConsole returns a Console writing to w. A nil w means os.Stderr.
func NewConsole(name string, w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{
		Name:        name,
		ExitOnFatal: true,
		ExitCode:    1,
		NoColor:     !isTerminal(w),
		writer:      w,
	}
}

// WithFile additionally appends every message, uncolored, to a rotated log
// file at path.
func (c *Console) WithFile(path string, rot Rotation) *Console {
	c.file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rot.MaxSize,
		MaxBackups: rot.MaxBackups,
		MaxAge:     rot.MaxAge,
		Compress:   rot.Compress,
	}
	return c
}

func (c *Console) Log(message string, severity Severity) {
	label := severity.String()
	plain := c.format(label, message)

	if c.NoColor {
		fmt.Fprintln(c.writer, plain)
	} else {
		col := Color(severity)
		col.EnableColor()
		fmt.Fprintln(c.writer, c.format(col.Sprint(label), message))
	}
	if c.file != nil {
		fmt.Fprintln(c.file, plain)
	}

	if severity >= Fatal && c.ExitOnFatal {
		osExit(c.ExitCode)
	}
}

func (c *Console) format(label, message string) string {
	if c.Name == "" {
		return fmt.Sprintf("%s: %s", label, message)
	}
	return fmt.Sprintf("%s: %s: %s", c.Name, label, message)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
