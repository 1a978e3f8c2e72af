package core

import (
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// Launch spawns tokens[0] as an external program with the full token
// sequence as its argument vector, then blocks until the child exits or
// is killed by a signal. A stopped (suspended) child is not terminal; the
// wait resumes until the process is gone. There is no timeout.
//
// Launch always reports "keep prompting": the child's exit status is
// logged and otherwise discarded, and a failure to start is a diagnostic,
// not a shell failure.
func (s *Shell) Launch(tokens []string) bool {
	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	start := time.Now()
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		s.Log.Launch(tokens, 0, time.Since(start))

	case errors.As(err, &exitErr):
		// The child ran to termination.
		s.Log.Launch(tokens, exitErr.ExitCode(), time.Since(start))

	default:
		// Program not found, not executable, or the spawn itself failed.
		fmt.Fprintf(s.stderr, "lsh: %v\n", err)
		s.Log.LaunchFailed(tokens, err)
	}

	return true
}
