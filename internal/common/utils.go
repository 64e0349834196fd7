package common

import (
	"reflect"
	"strings"
)

// SwitchTags holds the switch metadata declared on a struct field.
type SwitchTags struct {
	Switch  string
	Desc    string
	Handler string
	Arity   string
	Type    string
}

// GetSwitchTags reads the switch tags from field. ok is false when the field
// declares no `switch` tag.
func GetSwitchTags(field reflect.StructField) (tags SwitchTags, ok bool) {
	tags.Switch = field.Tag.Get("switch")
	if tags.Switch == "" {
		return tags, false
	}
	tags.Desc = field.Tag.Get("desc")
	tags.Handler = field.Tag.Get("handler")
	tags.Arity = field.Tag.Get("arity")
	tags.Type = field.Tag.Get("type")
	return tags, true
}

// IsLong reports whether s carries the long switch prefix.
func IsLong(s string) bool { return strings.HasPrefix(s, "--") }

// IsSwitch reports whether s looks like a switch: a dash followed by at
// least one character.
func IsSwitch(s string) bool { return len(s) > 1 && s[0] == '-' }

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// GetStructType returns the reflect.Type of the underlying struct pointer.
func GetStructType(v any) reflect.Type {
	return reflect.TypeOf(v).Elem()
}
