package errors

import (
	stderrs "errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by Process when help text was rendered instead of
// dispatching any handler.
var ErrHelp = stderrs.New("help requested")

// InvalidSpecError indicates a switch definition that cannot be registered:
// a malformed specifier, an empty description or handler, an invalid arity,
// or a long/short name that is already taken.
type InvalidSpecError struct{ Specifier, Reason string }

func (e InvalidSpecError) Error() string {
	if e.Specifier == "" {
		return fmt.Sprintf("invalid switch: %s", e.Reason)
	}
	return fmt.Sprintf("invalid switch %q: %s", e.Specifier, e.Reason)
}

// MissingHandlerError indicates a handler id that the target cannot resolve.
type MissingHandlerError struct{ Handler, Switch string }

func (e MissingHandlerError) Error() string {
	return fmt.Sprintf("no handler %q found for switch '%s'", e.Handler, e.Switch)
}

// UnknownSwitchError lists every switch-looking token that matched nothing.
type UnknownSwitchError struct{ Switches []string }

func (e UnknownSwitchError) Error() string {
	if len(e.Switches) == 1 {
		return fmt.Sprintf("unknown switch '%s'", e.Switches[0])
	}
	return fmt.Sprintf("unknown switches: %s", strings.Join(e.Switches, ", "))
}

// InsufficientArgumentsError indicates fewer trailing values than the
// switch's arity demands.
type InsufficientArgumentsError struct {
	Switch    string
	Want, Got int
}

func (e InsufficientArgumentsError) Error() string {
	return fmt.Sprintf("insufficient argument count for switch '%s': want %d, got %d", e.Switch, e.Want, e.Got)
}

// MalformedValueError indicates a raw value that does not parse into the
// declared kind.
type MalformedValueError struct {
	Switch string
	Value  string
	Kind   string
	Err    error
}

func (e MalformedValueError) Error() string {
	return fmt.Sprintf("malformed %s input %q for '%s'", e.Kind, e.Value, e.Switch)
}

func (e MalformedValueError) Unwrap() error { return e.Err }

// UnsupportedTypeError indicates a declared value type outside the supported set.
type UnsupportedTypeError struct{ Type string }

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported value type: %s", e.Type)
}

// Helper constructors
func NewInvalidSpec(specifier, reason string) error {
	return InvalidSpecError{Specifier: specifier, Reason: reason}
}
func NewMissingHandler(handler, sw string) error {
	return MissingHandlerError{Handler: handler, Switch: sw}
}
func NewUnknownSwitch(switches []string) error {
	return UnknownSwitchError{Switches: switches}
}
func NewInsufficientArguments(sw string, want, got int) error {
	return InsufficientArgumentsError{Switch: sw, Want: want, Got: got}
}
func NewMalformedValue(sw, value, kind string, err error) error {
	return MalformedValueError{Switch: sw, Value: value, Kind: kind, Err: err}
}
func NewUnsupportedType(typ string) error { return UnsupportedTypeError{Type: typ} }
