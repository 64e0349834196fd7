package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// DefaultHeader is the first line of help output unless overridden.
const DefaultHeader = "Usage: <args>"

const (
	helpSwitch = "--help/-h"
	helpDesc   = "Displays this help information (--help/-h <arg(s)>)"
)

// Catalog is the view of a switch registry the help renderer needs.
type Catalog interface {
	// Keys returns every specifier in registration order.
	Keys() []string
	// Describe resolves a long form, short form or full specifier.
	Describe(s string) (desc, key string, ok bool)
}

// Options controls help rendering.
type Options struct {
	Header string
	Color  bool
}

type entry struct{ key, desc string }

// BuildHelp lists every switch in cat in registration order, followed by the
// help switch itself.
func BuildHelp(cat Catalog, opts Options) string {
	var entries []entry
	for _, key := range cat.Keys() {
		desc, _, _ := cat.Describe(key)
		entries = append(entries, entry{key, desc})
	}
	if _, _, ok := cat.Describe(helpSwitch); !ok {
		entries = append(entries, entry{helpSwitch, helpDesc})
	}

	var builder strings.Builder
	builder.WriteString(header(opts) + "\n")
	builder.WriteString(entriesHelp(entries, opts))
	return builder.String()
}

func header(opts Options) string {
	if opts.Header == "" {
		return ansiHelp(DefaultHeader, opts.Color, color.Bold)
	}
	return ansiHelp(opts.Header, opts.Color, color.Bold)
}

// entriesHelp formats entries with their descriptions aligned.
func entriesHelp(entries []entry, opts Options) string {
	maxLen := 0
	for _, e := range entries {
		maxLen = max(maxLen, len(e.key))
	}

	var builder strings.Builder
	for _, e := range entries {
		padding := strings.Repeat(" ", maxLen-len(e.key))
		key := ansiHelp(e.key, opts.Color, color.FgRed)
		builder.WriteString(fmt.Sprintf("  %s%s  %s\n", key, padding, e.desc))
	}
	return builder.String()
}
