package common

import (
	"reflect"
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestGetSwitchTags(t *testing.T) {
	typ := reflect.TypeOf(struct {
		A int `switch:"--a/-a" desc:"A" handler:"OnA" arity:"2" type:"[]int32"`
		B int `desc:"no switch"`
	}{})

	tags, ok := GetSwitchTags(typ.Field(0))
	assert.True(t, ok)
	assert.Equal(t, tags, SwitchTags{Switch: "--a/-a", Desc: "A", Handler: "OnA", Arity: "2", Type: "[]int32"})

	_, ok = GetSwitchTags(typ.Field(1))
	assert.True(t, !ok)
}

func TestIsSwitch(t *testing.T) {
	assert.True(t, IsSwitch("-a"))
	assert.True(t, IsSwitch("--all"))
	assert.True(t, IsSwitch("--"))
	assert.True(t, !IsSwitch("-"))
	assert.True(t, !IsSwitch("file"))
	assert.True(t, !IsSwitch(""))
	assert.True(t, IsLong("--all"))
	assert.True(t, !IsLong("-a"))
}

func TestIsStructPtr(t *testing.T) {
	assert.True(t, IsStructPtr(&struct{}{}))
	assert.True(t, !IsStructPtr(struct{}{}))
	assert.True(t, !IsStructPtr(nil))
}
