package core

import (
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"
	clierr "github.com/chriso345/switchboard/errors"
)

func TestSplitName_Forms(t *testing.T) {
	tests := []struct {
		in          string
		long, short string
	}{
		{"--foo", "--foo", ""},
		{"-f", "", "-f"},
		{"--foo/-f", "--foo", "-f"},
		{"-f/--foo", "--foo", "-f"},
		{"--some-str/-s", "--some-str", "-s"},
	}
	for _, tt := range tests {
		long, short, err := SplitName(tt.in)
		assert.Nil(t, err)
		assert.Equal(t, long, tt.long)
		assert.Equal(t, short, tt.short)
	}
}

func TestSplitName_OrderIndependent(t *testing.T) {
	l1, s1, err1 := SplitName("--a/-b")
	l2, s2, err2 := SplitName("-b/--a")
	assert.Nil(t, err1)
	assert.Nil(t, err2)
	assert.Equal(t, l1, l2)
	assert.Equal(t, s1, s2)
}

func TestSplitName_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"--a/-b/-c",
		"--a/--b",
		"-a/-b",
		"--a/",
		"/-a",
		"--",
		"-",
		"-ab",
		"x",
		"---",
	} {
		_, _, err := SplitName(in)
		assert.NotNil(t, err)
		var ie clierr.InvalidSpecError
		assert.True(t, stderrs.As(err, &ie))
	}
}
