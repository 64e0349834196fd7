package core

import (
	"strconv"

	"github.com/chriso345/switchboard/errors"
)

// Coerce converts one raw value into the scalar element type of kind.
// Numbers are parsed as decimal text with the kind's bit size.
func Coerce(raw string, kind Kind) (any, error) {
	switch kind.Elem() {
	case String:
		return raw, nil
	case Int64:
		return strconv.ParseInt(raw, 10, 64)
	case Uint64:
		return strconv.ParseUint(raw, 10, 64)
	case Int32:
		n, err := strconv.ParseInt(raw, 10, 32)
		return int32(n), err
	case Uint32:
		n, err := strconv.ParseUint(raw, 10, 32)
		return uint32(n), err
	case Int16:
		n, err := strconv.ParseInt(raw, 10, 16)
		return int16(n), err
	case Uint16:
		n, err := strconv.ParseUint(raw, 10, 16)
		return uint16(n), err
	case Uint8:
		n, err := strconv.ParseUint(raw, 10, 8)
		return uint8(n), err
	default:
		return nil, errors.NewUnsupportedType(kind.String())
	}
}

// CoerceAll converts every raw value for the switch token sw. The first value
// that fails to parse is reported as a MalformedValueError naming sw.
func CoerceAll(sw string, raw []string, kind Kind) (Values, error) {
	vals := Values{Kind: kind, Switch: sw}
	if kind == None {
		return vals, nil
	}
	if !kind.Valid() {
		return vals, errors.NewUnsupportedType(kind.String())
	}

	vals.Raw = raw
	vals.items = make([]any, 0, len(raw))
	for _, r := range raw {
		v, err := Coerce(r, kind)
		if err != nil {
			return Values{}, errors.NewMalformedValue(sw, r, kind.Elem().String(), err)
		}
		vals.items = append(vals.items, v)
	}
	return vals, nil
}
