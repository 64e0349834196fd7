// Package switchboard is a declarative command-line switch binder for Go.
//
// Each switch is declared once, together with its long and/or short name, a
// description, the handler that runs when it appears, how many trailing
// values it consumes (its arity), and the type those values are coerced to.
// Switches are declared with a builder (FieldSet.Define) or with struct tags
// (Scan). Process then walks the command line once, queues one handler call
// per switch occurrence, and runs the queue only if every switch was
// recognised and every value parsed.
//
// The same declarations drive the generated --help output.
package switchboard
