package core

// Values carries the coerced values handed to a Handler for one occurrence
// of a switch. A None-kind switch always receives an empty Values.
type Values struct {
	Kind   Kind
	Switch string   // the token as it appeared on the command line
	Raw    []string // raw text of each value

	items []any
}

// Len returns the number of values.
func (v Values) Len() int { return len(v.items) }

// At returns the i-th coerced value.
func (v Values) At(i int) any { return v.items[i] }

// All returns the coerced values as a fresh slice.
func (v Values) All() []any { return append([]any(nil), v.items...) }

func (v Values) Strings() []string { return collect[string](v.items) }
func (v Values) Int64s() []int64   { return collect[int64](v.items) }
func (v Values) Uint64s() []uint64 { return collect[uint64](v.items) }
func (v Values) Int32s() []int32   { return collect[int32](v.items) }
func (v Values) Uint32s() []uint32 { return collect[uint32](v.items) }
func (v Values) Int16s() []int16   { return collect[int16](v.items) }
func (v Values) Uint16s() []uint16 { return collect[uint16](v.items) }
func (v Values) Uint8s() []uint8   { return collect[uint8](v.items) }

// collect returns the items of type T, or nil when any item has another type.
func collect[T any](items []any) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		v, ok := it.(T)
		if !ok {
			return nil
		}
		out = append(out, v)
	}
	return out
}
