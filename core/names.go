package core

import (
	"strings"

	"github.com/chriso345/switchboard/errors"
	"github.com/chriso345/switchboard/internal/common"
)

// SplitName parses a switch specifier such as "--verbose/-v" into its long
// and short forms. Either form may be empty, never both. The two parts may
// appear in either order, but exactly one of them must be a long form.
func SplitName(specifier string) (long, short string, err error) {
	if specifier == "" {
		return "", "", errors.NewInvalidSpec(specifier, "switch label must have a value (--long-hand/-s)")
	}

	parts := strings.Split(specifier, "/")
	for _, p := range parts {
		if p == "" {
			return "", "", errors.NewInvalidSpec(specifier, "empty switch name around '/'")
		}
	}
	switch len(parts) {
	case 1:
		if common.IsLong(parts[0]) {
			long = parts[0]
		} else {
			short = parts[0]
		}
	case 2:
		firstLong, secondLong := common.IsLong(parts[0]), common.IsLong(parts[1])
		switch {
		case firstLong && !secondLong:
			long, short = parts[0], parts[1]
		case secondLong && !firstLong:
			long, short = parts[1], parts[0]
		default:
			return "", "", errors.NewInvalidSpec(specifier, "exactly one part must be a long switch")
		}
	default:
		return "", "", errors.NewInvalidSpec(specifier, "only one '/' may separate the long and short switches")
	}

	if long != "" && (len(long) < 3 || long[2] == '-') {
		return "", "", errors.NewInvalidSpec(specifier, "long switch needs a name after '--'")
	}
	if short != "" && (len(short) != 2 || short[0] != '-' || short[1] == '-') {
		return "", "", errors.NewInvalidSpec(specifier, "short switch must be '-' and a single character")
	}
	if long == "" && short == "" {
		return "", "", errors.NewInvalidSpec(specifier, "empty switch name")
	}
	return long, short, nil
}
