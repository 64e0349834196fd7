package log

import (
	"strings"

	"github.com/fatih/color"
)

// Severity ranks a message reported by the parser.
type Severity int

const (
	Info Severity = iota
	Warning
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "message"
	case Warning:
		return "warning"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a severity name back to its value. Unrecognised names
// are treated as Info.
func ParseSeverity(name string) Severity {
	switch strings.ToLower(name) {
	case "warning", "warn":
		return Warning
	case "fatal", "error":
		return Fatal
	default:
		return Info
	}
}

// Color returns the label color used for s.
func Color(s Severity) *color.Color {
	switch s {
	case Warning:
		return color.New(color.FgYellow)
	case Fatal:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}
