package core

import (
	stderrs "errors"
	"fmt"
	"os"

	"github.com/chriso345/switchboard/display"
	"github.com/chriso345/switchboard/errors"
	"github.com/chriso345/switchboard/internal/common"
	"github.com/chriso345/switchboard/log"
)

var osExit = os.Exit // Mockable for testing

const (
	helpFlagLong  = "--help"
	helpFlagShort = "-h"
	passthrough   = "--"
)

// occurrence is one matched switch waiting to be dispatched.
type occurrence struct {
	spec    Spec
	handler Handler
	token   string
	raw     []string
}

// Process walks args once, resolving every switch against set and queueing
// its handler, then runs the queued handlers in the order the switches
// appeared. It returns the residual arguments: positionals, unknown switches
// and everything from a literal "--" on.
//
// An empty args or a leading -h/--help prints help instead and returns
// errors.ErrHelp. Unknown switches are all reported before anything runs, and
// with cfg.AbortOnUnknown no handler runs at all. Values are coerced for
// every occurrence before the first handler is invoked, so a malformed value
// also prevents every handler from running.
func Process(args []string, set *FieldSet, cfg Config) ([]string, error) {
	cfg = cfg.withDefaults()
	reg := set.Registry()
	specs := set.Specs()

	if len(args) == 0 || args[0] == helpFlagLong || args[0] == helpFlagShort {
		printHelp(reg, args, cfg)
		if cfg.QuitAfterHelp {
			osExit(0)
		}
		return args, errors.ErrHelp
	}

	rest := append([]string(nil), args...)
	var unknown []string
	var queue []occurrence
	seen := map[string]bool{}

	for i := 0; i < len(rest); {
		arg := rest[i]
		if arg == passthrough {
			break
		}
		if !common.IsSwitch(arg) {
			i++
			continue
		}

		spec, ok := resolve(reg, specs, arg)
		if !ok {
			unknown = append(unknown, arg)
			i++
			continue
		}

		n := valueCount(rest, i, spec.Arity)
		if spec.Arity >= 0 && n < spec.Arity {
			cfg.Logger.Log(errors.NewInsufficientArguments(arg, spec.Arity, n).Error(), log.Fatal)
		}
		raw := append([]string(nil), rest[i+1:i+1+n]...)
		// Drop the switch and its values so they are never rescanned.
		rest = append(rest[:i], rest[i+1+n:]...)

		if seen[spec.Specifier] && !cfg.AllowRepeat {
			cfg.Logger.Log(fmt.Sprintf("Switch '%s' given more than once, ignoring", arg), log.Warning)
			continue
		}
		seen[spec.Specifier] = true

		handler, ok := set.Target().Handler(spec.Handler)
		if !ok {
			return rest, errors.NewMissingHandler(spec.Handler, arg)
		}
		queue = append(queue, occurrence{spec: spec, handler: handler, token: arg, raw: raw})
	}

	if len(unknown) > 0 {
		reportUnknown(reg, unknown, cfg.Logger)
		if cfg.QuitOnError {
			osExit(1)
		}
		if cfg.AbortOnUnknown {
			return rest, errors.NewUnknownSwitch(unknown)
		}
	}

	values := make([]Values, len(queue))
	for i, occ := range queue {
		v, err := CoerceAll(occ.token, occ.raw, occ.spec.Kind)
		if err != nil {
			var mv errors.MalformedValueError
			if stderrs.As(err, &mv) {
				cfg.Logger.Log(err.Error(), log.Fatal)
			}
			return rest, err
		}
		values[i] = v
	}

	for i, occ := range queue {
		if err := occ.handler(values[i]); err != nil {
			return rest, fmt.Errorf("switch '%s': %w", occ.token, err)
		}
	}
	return rest, nil
}

// resolve finds the spec token names. The registry decides whether the
// token is a known switch at all; the first spec in the active set that
// declares it wins.
func resolve(reg *Registry, specs []Spec, token string) (Spec, bool) {
	if _, ok := reg.Lookup(token); !ok {
		return Spec{}, false
	}
	for _, s := range specs {
		if s.Matches(token) {
			return s, true
		}
	}
	return Spec{}, false
}

// valueCount returns how many tokens after args[i] belong to a switch of the
// given arity. Values never extend past the passthrough boundary.
func valueCount(args []string, i, arity int) int {
	if arity == Flag {
		return 0
	}
	n := 0
	for j := i + 1; j < len(args) && args[j] != passthrough; j++ {
		if arity == Greedy && common.IsSwitch(args[j]) {
			break
		}
		if arity >= 0 && n == arity {
			break
		}
		n++
	}
	return n
}

func reportUnknown(reg *Registry, unknown []string, logger log.Logger) {
	var longNames []string
	for _, name := range reg.Names() {
		if common.IsLong(name) {
			longNames = append(longNames, name)
		}
	}
	for _, u := range unknown {
		msg := fmt.Sprintf("Unknown switch '%s'", u)
		if common.IsLong(u) {
			if s := closestMatch(u, longNames); s != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
		}
		logger.Log(msg, log.Warning)
	}
}

func printHelp(reg *Registry, args []string, cfg Config) {
	opts := display.Options{
		Header: cfg.HelpHeader,
		Color:  !cfg.NoColor && display.ColorEnabled(cfg.Out),
	}
	if len(args) < 2 {
		fmt.Fprint(cfg.Out, display.BuildHelp(reg, opts))
		return
	}
	help, _ := display.BuildFilteredHelp(reg, args[1:], opts)
	fmt.Fprint(cfg.Out, help)
}
