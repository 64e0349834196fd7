package core

import (
	"reflect"

	"github.com/chriso345/switchboard/internal/common"
)

// Handler is invoked once per occurrence of its switch.
type Handler func(v Values) error

// Target resolves handler ids to handlers.
type Target interface {
	Handler(id string) (Handler, bool)
}

// Handlers is a Target backed by an explicit table.
type Handlers map[string]Handler

func (h Handlers) Handler(id string) (Handler, bool) {
	fn, ok := h[id]
	return fn, ok && fn != nil
}

var handlerType = reflect.TypeOf(Handler(nil))

// Methods returns a Target resolving handler ids to the exported methods of
// ptr that have the signature func(Values) error.
func Methods(ptr any) Target {
	return methodTarget{v: reflect.ValueOf(ptr)}
}

type methodTarget struct{ v reflect.Value }

func (m methodTarget) Handler(id string) (Handler, bool) {
	if !m.v.IsValid() {
		return nil, false
	}
	meth := m.v.MethodByName(id)
	if !meth.IsValid() || !meth.Type().ConvertibleTo(handlerType) {
		return nil, false
	}
	return meth.Convert(handlerType).Interface().(Handler), true
}

// FieldSet is the ordered set of switches bound to one target.
type FieldSet struct {
	reg    *Registry
	target Target
	specs  []Spec
}

// NewFieldSet returns an empty FieldSet registering into reg and resolving
// handlers against target.
func NewFieldSet(reg *Registry, target Target) *FieldSet {
	return &FieldSet{reg: reg, target: target}
}

// Define adds a switch to the set. See DefineSwitch.
func (s *FieldSet) Define(specifier, description, handler string, arity int, kind Kind) error {
	spec, err := DefineSwitch(s.reg, specifier, description, handler, arity, kind)
	if err != nil {
		return err
	}
	s.specs = append(s.specs, spec)
	return nil
}

// Specs returns a snapshot of the set in definition order.
func (s *FieldSet) Specs() []Spec { return append([]Spec(nil), s.specs...) }

// Registry returns the registry the set defines switches in.
func (s *FieldSet) Registry() *Registry { return s.reg }

// Target returns the handler target of the set.
func (s *FieldSet) Target() Target { return s.target }

// Scan builds a FieldSet from the struct pointed to by ptr. Every field with
// a `switch` tag becomes a switch, in declaration order:
//
//	type Args struct {
//		Count []int32 `switch:"--count/-c" desc:"Counts" handler:"OnCount" arity:"2" type:"[]int32"`
//	}
//
// Handlers resolve to methods of ptr (see Methods). A missing arity tag means
// Flag.
func Scan(reg *Registry, ptr any) (*FieldSet, error) {
	if !common.IsStructPtr(ptr) {
		return nil, errNotStructPtr
	}

	set := NewFieldSet(reg, Methods(ptr))
	t := common.GetStructType(ptr)
	for i := 0; i < t.NumField(); i++ {
		tags, ok := common.GetSwitchTags(t.Field(i))
		if !ok {
			continue
		}
		arity, err := parseArity(tags)
		if err != nil {
			return nil, err
		}
		kind, err := ParseKind(tags.Type)
		if err != nil {
			return nil, err
		}
		if err := set.Define(tags.Switch, tags.Desc, tags.Handler, arity, kind); err != nil {
			return nil, err
		}
	}
	return set, nil
}
