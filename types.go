package switchboard

import (
	"github.com/chriso345/switchboard/core"
	"github.com/chriso345/switchboard/log"
)

// Registry holds every declared specifier and its description.
//
// A Registry is owned by the caller and passed to every FieldSet it backs.
// Registering the same long or short name twice fails. Tests typically build
// a fresh Registry per case.
type Registry = core.Registry

// FieldSet is the ordered set of switches bound to one handler target.
//
// Usage:
//
//	reg := switchboard.NewRegistry()
//	set := switchboard.NewFieldSet(reg, switchboard.Handlers{
//	    "verbose": func(switchboard.Values) error { verbose = true; return nil },
//	})
//	err := set.Define("--verbose/-v", "Enable verbose output", "verbose", switchboard.Flag, switchboard.None)
type FieldSet = core.FieldSet

// Spec is the immutable description of one switch.
type Spec = core.Spec

// Kind is the value type a switch declares for its values.
//
// Scalar kinds (String, Int32, ...) require an arity of 1. List kinds
// (StringList, Int32List, ...) accept any arity and hand every value to the
// handler in one call.
type Kind = core.Kind

// Values carries the coerced values for one switch occurrence.
type Values = core.Values

// Handler runs once per occurrence of its switch.
type Handler = core.Handler

// Target resolves handler ids to handlers.
type Target = core.Target

// Handlers is a Target backed by an explicit map of handler id to Handler.
type Handlers = core.Handlers

// Config controls help, exit and logging behaviour of Process.
type Config = core.Config

// Logger receives input problems found while parsing.
type Logger = log.Logger

// Severity ranks a logged message.
type Severity = log.Severity

const (
	Flag   = core.Flag
	Greedy = core.Greedy
)

const (
	None       = core.None
	String     = core.String
	Int64      = core.Int64
	Uint64     = core.Uint64
	Int32      = core.Int32
	Uint32     = core.Uint32
	Int16      = core.Int16
	Uint16     = core.Uint16
	Uint8      = core.Uint8
	StringList = core.StringList
	Int64List  = core.Int64List
	Uint64List = core.Uint64List
	Int32List  = core.Int32List
	Uint32List = core.Uint32List
	Int16List  = core.Int16List
	Uint16List = core.Uint16List
	Uint8List  = core.Uint8List
)

const (
	Info    = log.Info
	Warning = log.Warning
	Fatal   = log.Fatal
)
