package core

import (
	"fmt"

	"github.com/chriso345/switchboard/errors"
)

// Arity values with special meaning. Any arity >= 0 consumes exactly that
// many trailing values.
const (
	// Flag consumes no trailing values.
	Flag = -1
	// Greedy consumes values until the next switch, "--", or the end of input.
	Greedy = -2
)

// Spec is the immutable description of one switch.
type Spec struct {
	Specifier   string
	Long        string
	Short       string
	Description string
	Handler     string
	Arity       int
	Kind        Kind
}

// Matches reports whether token names this switch.
func (s Spec) Matches(token string) bool {
	return token != "" && (token == s.Long || token == s.Short)
}

// DefineSwitch validates a switch definition and registers it in reg.
func DefineSwitch(reg *Registry, specifier, description, handler string, arity int, kind Kind) (Spec, error) {
	long, short, err := SplitName(specifier)
	if err != nil {
		return Spec{}, err
	}
	if description == "" {
		return Spec{}, errors.NewInvalidSpec(specifier, "switch description must have a value")
	}
	if handler == "" {
		return Spec{}, errors.NewInvalidSpec(specifier, "switch argument handler must have a value")
	}
	if !kind.Valid() {
		return Spec{}, errors.NewUnsupportedType(kind.String())
	}
	if err := checkArity(arity, kind); err != nil {
		return Spec{}, errors.NewInvalidSpec(specifier, err.Error())
	}
	if err := reg.Register(specifier, description); err != nil {
		return Spec{}, err
	}

	return Spec{
		Specifier:   specifier,
		Long:        long,
		Short:       short,
		Description: description,
		Handler:     handler,
		Arity:       arity,
		Kind:        kind,
	}, nil
}

func checkArity(arity int, kind Kind) error {
	switch {
	case arity < Greedy:
		return fmt.Errorf("arity %d is out of range", arity)
	case arity == Flag && kind != None:
		return fmt.Errorf("a flag cannot declare a value type (%s)", kind)
	case kind != None && !kind.IsList() && arity != 1:
		return fmt.Errorf("scalar type %s needs exactly one value, use %s for %d", kind, ListOf(kind), arity)
	}
	return nil
}
