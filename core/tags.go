package core

import (
	"strconv"
	"strings"

	"github.com/chriso345/switchboard/errors"
	"github.com/chriso345/switchboard/internal/common"
)

// Struct tags understood by Scan:
//
//	switch   "--long/-s", "--long" or "-s"
//	desc     help text
//	handler  name of a method with signature func(Values) error
//	arity    "flag" (default), "greedy", or a count >= 0
//	type     value kind, e.g. "string", "uint16", "[]int64"

var errNotStructPtr = errors.NewInvalidSpec("", "invalid type: must pass pointer to struct")

func parseArity(tags common.SwitchTags) (int, error) {
	switch strings.ToLower(strings.TrimSpace(tags.Arity)) {
	case "", "flag", "-1":
		return Flag, nil
	case "greedy", "-2":
		return Greedy, nil
	}
	n, err := strconv.Atoi(tags.Arity)
	if err != nil || n < 0 {
		return 0, errors.NewInvalidSpec(tags.Switch, "invalid arity tag "+strconv.Quote(tags.Arity))
	}
	return n, nil
}
