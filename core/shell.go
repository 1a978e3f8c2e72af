// Package core implements the shell's read-parse-dispatch-execute loop.
package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abiosoft/readline"
	"github.com/omerhayat/lsh/core/config"
	"github.com/omerhayat/lsh/core/logger"
)

// lineReader yields one command line per call. It reports io.EOF when the
// input is exhausted.
type lineReader interface {
	Readline() (string, error)
}

var _ lineReader = (*readline.Instance)(nil)

// Shell owns the prompt/read/parse/dispatch cycle.
type Shell struct {
	Config   *config.Configuration
	Readline *readline.Instance
	Log      *logger.Logger

	reader   lineReader
	builtins []Builtin
	history  []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewShell sets up an interactive shell on the process's standard streams.
func NewShell(configuration *config.Configuration, commandLog *logger.Logger) (*Shell, error) {
	cfg := &readline.Config{
		Prompt:          configuration.Prompt,
		HistoryFile:     configuration.HistoryPath(),
		InterruptPrompt: "^C",
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Config:   configuration,
		Readline: rl,
		Log:      commandLog,
		reader:   rl,
		builtins: builtinTable(),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}, nil
}

// Run executes the loop until a builtin asks the shell to stop or the
// input reaches EOF. The error is nil in both cases; the shell's own exit
// status doesn't depend on what the dispatched commands did.
func (s *Shell) Run() error {
	if s.Config.Greeting != "" {
		fmt.Fprintln(s.stdout, s.Config.Greeting)
	}

	for {
		line, err := s.reader.Readline()

		switch {
		case errors.Is(err, io.EOF):
			return nil // Input closed, quit.

		case errors.Is(err, readline.ErrInterrupt):
			continue // Line is abandoned, prompt again.

		case err != nil:
			return err
		}

		tokens, err := s.splitLine(line)
		if err != nil {
			fmt.Fprintf(s.stderr, "lsh: %v\n", err)
			continue
		}

		if len(tokens) > 0 {
			s.history = append(s.history, line)
		}

		if !s.Execute(tokens) {
			return nil
		}
	}
}

// Execute dispatches one token sequence and reports whether the shell
// should keep prompting. An empty sequence is a no-op.
func (s *Shell) Execute(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	for _, builtin := range s.builtins {
		if builtin.Name == tokens[0] {
			start := time.Now()
			keepGoing := builtin.Main(s, tokens)
			s.Log.Builtin(tokens, time.Since(start))
			return keepGoing
		}
	}

	return s.Launch(tokens)
}

func (s *Shell) Close() error {
	if s.Readline != nil {
		return s.Readline.Close()
	}
	return nil
}
