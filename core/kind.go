package core

import (
	"strconv"
	"strings"

	"github.com/chriso345/switchboard/errors"
)

// Kind is the closed set of value types a switch may declare.
type Kind int

const (
	None Kind = iota
	String
	Int64
	Uint64
	Int32
	Uint32
	Int16
	Uint16
	Uint8

	StringList
	Int64List
	Uint64List
	Int32List
	Uint32List
	Int16List
	Uint16List
	Uint8List
)

const listOffset = StringList - String

var kindNames = map[Kind]string{
	None:   "none",
	String: "string",
	Int64:  "int64",
	Uint64: "uint64",
	Int32:  "int32",
	Uint32: "uint32",
	Int16:  "int16",
	Uint16: "uint16",
	Uint8:  "uint8",
}

func (k Kind) String() string {
	if k.IsList() {
		return "[]" + k.Elem().String()
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsList reports whether k is one of the list kinds.
func (k Kind) IsList() bool { return k >= StringList && k <= Uint8List }

// Valid reports whether k belongs to the supported set.
func (k Kind) Valid() bool { return k >= None && k <= Uint8List }

// Elem returns the scalar kind of a list kind, or k itself.
func (k Kind) Elem() Kind {
	if k.IsList() {
		return k - listOffset
	}
	return k
}

// ListOf returns the list kind whose elements are k.
func ListOf(k Kind) Kind {
	if k == None || k.IsList() {
		return k
	}
	return k + listOffset
}

// ParseKind resolves a type name such as "int32", "[]uint8" or "byte".
// The empty name is None.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return None, nil
	}
	list := false
	elem := name
	switch {
	case strings.HasPrefix(name, "[]"):
		list, elem = true, name[2:]
	case strings.HasSuffix(name, "[]"):
		list, elem = true, strings.TrimSuffix(name, "[]")
	}
	if elem == "byte" {
		elem = "uint8"
	}
	for k, n := range kindNames {
		if n != elem || k == None {
			continue
		}
		if list {
			return ListOf(k), nil
		}
		return k, nil
	}
	return None, errors.NewUnsupportedType(name)
}
