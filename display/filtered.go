package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// BuildFilteredHelp lists only the switches named by tokens. A short cluster
// such as -abc is looked up as -a, -b and -c. Tokens without a leading dash
// are ignored. Tokens that match nothing are returned and listed once each,
// after every known switch.
func BuildFilteredHelp(cat Catalog, tokens []string, opts Options) (string, []string) {
	var known []entry
	var unknown []string
	seenKey := map[string]bool{}
	seenUnknown := map[string]bool{}

	try := func(tok string) {
		desc, key, ok := describe(cat, tok)
		if !ok {
			if !seenUnknown[tok] {
				seenUnknown[tok] = true
				unknown = append(unknown, tok)
			}
			return
		}
		if !seenKey[key] {
			seenKey[key] = true
			known = append(known, entry{key, desc})
		}
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "--"):
			try(tok)
		case strings.HasPrefix(tok, "-"):
			for _, r := range tok[1:] {
				try("-" + string(r))
			}
		}
	}

	var builder strings.Builder
	builder.WriteString(header(opts) + "\n")
	builder.WriteString(entriesHelp(known, opts))
	for _, u := range unknown {
		builder.WriteString(fmt.Sprintf("Unknown switch '%s'\n", ansiHelp(u, opts.Color, color.FgRed)))
	}
	return builder.String(), unknown
}

func describe(cat Catalog, tok string) (desc, key string, ok bool) {
	if desc, key, ok := cat.Describe(tok); ok {
		return desc, key, true
	}
	switch tok {
	case "--help", "-h", helpSwitch:
		return helpDesc, helpSwitch, true
	}
	return "", "", false
}
