package core

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/omerhayat/lsh/core/config"
	"github.com/omerhayat/lsh/core/logger"
	"github.com/stretchr/testify/assert"
)

// newTestShell builds a shell wired to in-memory streams instead of a
// terminal.
func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	s := &Shell{
		Config:   config.Default(),
		Log:      logger.Nop(),
		builtins: builtinTable(),
		stdin:    strings.NewReader(""),
		stdout:   &stdout,
		stderr:   &stderr,
	}
	return s, &stdout, &stderr
}

// scriptedReader feeds a fixed set of lines, then reports EOF.
type scriptedReader struct {
	lines []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func TestExecuteEmpty(t *testing.T) {
	s, stdout, stderr := newTestShell(t)

	assert.True(t, s.Execute(nil))

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecuteExit(t *testing.T) {
	s, _, _ := newTestShell(t)

	assert.False(t, s.Execute([]string{"exit"}))
	assert.False(t, s.Execute([]string{"exit", "0", "now"}))
}

func TestExecutePrefersBuiltins(t *testing.T) {
	// pwd is both a builtin and a real program; the builtin must win.
	s, stdout, stderr := newTestShell(t)

	assert.True(t, s.Execute([]string{"pwd"}))

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, wd+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunStopsOnExit(t *testing.T) {
	s, stdout, _ := newTestShell(t)
	s.reader = &scriptedReader{lines: []string{"", "   \t ", "exit", "pwd"}}

	assert.Nil(t, s.Run())

	// The loop stopped before reaching pwd.
	assert.Empty(t, stdout.String())
}

func TestRunStopsOnEOF(t *testing.T) {
	s, stdout, _ := newTestShell(t)
	s.reader = &scriptedReader{lines: []string{"pwd"}}

	assert.Nil(t, s.Run())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, wd+"\n", stdout.String())
}

func TestRunGreeting(t *testing.T) {
	s, stdout, _ := newTestShell(t)
	s.Config.Greeting = "welcome to lsh"
	s.reader = &scriptedReader{}

	assert.Nil(t, s.Run())
	assert.Equal(t, "welcome to lsh\n", stdout.String())
}

func TestRunRecordsHistory(t *testing.T) {
	s, _, _ := newTestShell(t)
	s.reader = &scriptedReader{lines: []string{"pwd", "", "help", "exit"}}

	assert.Nil(t, s.Run())

	// Blank lines are not recorded.
	assert.Equal(t, []string{"pwd", "help", "exit"}, s.history)
}

func TestRunReportsSplitErrors(t *testing.T) {
	s, _, stderr := newTestShell(t)
	s.Config.PosixQuoting = true
	s.reader = &scriptedReader{lines: []string{`echo "unterminated`}}

	assert.Nil(t, s.Run())

	assert.True(t, strings.HasPrefix(stderr.String(), "lsh: "))
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
}
