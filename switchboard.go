package switchboard

import (
	"os"

	"github.com/chriso345/switchboard/core"
	"github.com/chriso345/switchboard/display"
)

// NewRegistry returns an empty Registry.
var NewRegistry = core.NewRegistry

// NewFieldSet returns an empty FieldSet that registers its switches in reg
// and resolves handlers through target.
var NewFieldSet = core.NewFieldSet

// DefineSwitch validates one switch and registers it in a Registry without
// adding it to any FieldSet.
var DefineSwitch = core.DefineSwitch

// Scan builds a FieldSet from the `switch` tagged fields of a struct pointer.
// Handler names resolve to methods of the same pointer with the signature
// func(switchboard.Values) error.
//
// Usage:
//
//	type Args struct {
//		Name  string  `switch:"--name/-n" desc:"User name" handler:"OnName" arity:"1" type:"string"`
//		Sizes []int32 `switch:"--sizes" desc:"Sizes" handler:"OnSizes" arity:"2" type:"[]int32"`
//	}
//
//	func (a *Args) OnName(v switchboard.Values) error   { a.Name = v.Strings()[0]; return nil }
//	func (a *Args) OnSizes(v switchboard.Values) error  { a.Sizes = v.Int32s(); return nil }
//
//	set, err := switchboard.Scan(switchboard.NewRegistry(), &args)
var Scan = core.Scan

// Methods returns a Target resolving handler ids to methods of ptr.
var Methods = core.Methods

// Process dispatches args against set and returns the residual arguments.
// See core.Process for the full contract.
var Process = core.Process

// DefaultConfig returns the configuration command line programs want: help
// and unknown switches end the process and problems are logged to stderr.
var DefaultConfig = core.DefaultConfig

// SplitName parses a "--long/-s" specifier into its two forms.
var SplitName = core.SplitName

// ParseKind resolves a type name such as "int32" or "[]string".
var ParseKind = core.ParseKind

// BuildHelp renders help for every switch in reg.
func BuildHelp(reg *Registry, header string) string {
	return display.BuildHelp(reg, display.Options{Header: header, Color: display.ColorEnabled(os.Stdout)})
}

// Run processes os.Args[1:] against set with DefaultConfig.
func Run(set *FieldSet) ([]string, error) {
	return core.Process(os.Args[1:], set, core.DefaultConfig())
}
