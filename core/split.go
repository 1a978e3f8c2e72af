package core

import (
	"strings"

	"github.com/anmitsu/go-shlex"
)

// splitDelimiters are the characters that separate tokens on a command
// line: space, tab, carriage return, newline and bell.
const splitDelimiters = " \t\r\n\a"

// Split breaks a command line into whitespace-delimited tokens. Runs of
// delimiters collapse so no empty tokens are produced; a line holding only
// delimiters yields an empty sequence. Tokens alias the line's storage.
func Split(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(splitDelimiters, r)
	})
}

func (s *Shell) splitLine(line string) ([]string, error) {
	if s.Config.PosixQuoting {
		return shlex.Split(line, true)
	}
	return Split(line), nil
}
