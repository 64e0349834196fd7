package core

import (
	"github.com/chriso345/switchboard/errors"
	"github.com/chriso345/switchboard/internal/common"
	"github.com/tidwall/btree"
)

// Registry maps each registered specifier (e.g. "--foo/-f") to its
// description. Keys iterate in registration order. A Registry is owned by
// the caller and is not safe for concurrent use.
type Registry struct {
	keys  []string
	descs map[string]string
	// names indexes every long and short form to the specifier it came from.
	names *btree.Map[string, string]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		descs: map[string]string{},
		names: new(btree.Map[string, string]),
	}
}

// Register adds specifier with its description. It fails when the specifier
// is malformed, the description is empty, or either name is already taken.
func (r *Registry) Register(specifier, description string) error {
	long, short, err := SplitName(specifier)
	if err != nil {
		return err
	}
	if description == "" {
		return errors.NewInvalidSpec(specifier, "switch description must have a value")
	}
	for _, name := range []string{long, short} {
		if name == "" {
			continue
		}
		if _, ok := r.Lookup(name); ok {
			return errors.NewInvalidSpec(specifier, "'"+name+"' is already being used")
		}
	}

	r.keys = append(r.keys, specifier)
	r.descs[specifier] = description
	if long != "" {
		r.names.Set(long, specifier)
	}
	if short != "" {
		r.names.Set(short, specifier)
	}
	return nil
}

// Lookup resolves a bare "--long" or "-s" token to the description of the
// switch that declares it. Long tokens only match long forms and short
// tokens only match short forms.
func (r *Registry) Lookup(token string) (string, bool) {
	if !common.IsSwitch(token) {
		return "", false
	}
	key, ok := r.names.Get(token)
	if !ok {
		return "", false
	}
	return r.descs[key], true
}

// Describe matches s against long forms, short forms and full specifiers,
// returning the description and the specifier it was registered under.
func (r *Registry) Describe(s string) (desc, key string, ok bool) {
	if s == "" {
		return "", "", false
	}
	if key, ok := r.names.Get(s); ok {
		return r.descs[key], key, true
	}
	if desc, ok := r.descs[s]; ok {
		return desc, s, true
	}
	return "", "", false
}

// Keys returns every specifier in registration order.
func (r *Registry) Keys() []string { return append([]string(nil), r.keys...) }

// Names returns every long and short form, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.names.Len())
	r.names.Scan(func(name, _ string) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Len returns the number of registered specifiers.
func (r *Registry) Len() int { return len(r.keys) }

// Reset forgets every registration.
func (r *Registry) Reset() {
	r.keys = nil
	r.descs = map[string]string{}
	r.names = new(btree.Map[string, string])
}
