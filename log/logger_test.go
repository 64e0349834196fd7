package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestConsole_Format(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole("tool", &buf)
	assert.True(t, c.NoColor)

	c.Log("hello", Info)
	c.Log("careful", Warning)

	assert.Equal(t, buf.String(), "tool: message: hello\ntool: warning: careful\n")
}

func TestConsole_NoName(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole("", &buf)
	c.Log("hello", Info)
	assert.Equal(t, buf.String(), "message: hello\n")
}

func TestConsole_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole("tool", &buf)

	oldExit := osExit
	defer func() { osExit = oldExit }()
	code := -1
	osExit = func(c int) { code = c }

	c.Log("boom", Fatal)
	assert.Equal(t, code, 1)
	assert.StringContains(t, buf.String(), "tool: fatal: boom")
}

func TestConsole_FatalWithoutExit(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole("tool", &buf)
	c.ExitOnFatal = false

	oldExit := osExit
	defer func() { osExit = oldExit }()
	called := false
	osExit = func(int) { called = true }

	c.Log("boom", Fatal)
	assert.True(t, !called)
}

func TestConsole_FileSink(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "switchboard.log")
	c := NewConsole("tool", &buf).WithFile(path, Rotation{MaxSize: 1})

	c.Log("to file", Warning)

	data, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, string(data), "tool: warning: to file\n")
}

func TestFunc_Adapter(t *testing.T) {
	var got []Severity
	var l Logger = Func(func(_ string, s Severity) { got = append(got, s) })
	l.Log("a", Info)
	l.Log("b", Fatal)
	assert.Equal(t, len(got), 2)
	assert.Equal(t, got[1], Fatal)
}

func TestSeverity_RoundTrip(t *testing.T) {
	for _, s := range []Severity{Info, Warning, Fatal} {
		assert.Equal(t, ParseSeverity(s.String()), s)
	}
	assert.Equal(t, ParseSeverity("bogus"), Info)
}
