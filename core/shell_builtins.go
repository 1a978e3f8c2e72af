package core

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pborman/getopt/v2"
)

// BuiltinMain runs a builtin. args holds the full token sequence, so the
// builtin sees its own name first. The returned bool reports whether the
// shell should keep prompting.
type BuiltinMain func(s *Shell, args []string) bool

// Builtin is a command implemented inside the shell process itself.
type Builtin struct {
	Name string
	Main BuiltinMain
}

// builtinTable returns the shell's builtins. Lookup is case-sensitive
// exact match on Name; help lists the entries in this order.
func builtinTable() []Builtin {
	return []Builtin{
		{"cd", Cd},
		{"help", Help},
		{"exit", Exit},
		{"pwd", Pwd},
		{"history", History},
	}
}

// BuiltinNames returns the name of every registered builtin in table order.
func BuiltinNames() []string {
	var names []string
	for _, builtin := range builtinTable() {
		names = append(names, builtin.Name)
	}
	return names
}

var helpHeading = color.New(color.FgCyan, color.Bold)

// Cd changes the shell's working directory, which every subsequently
// launched child inherits.
func Cd(s *Shell, args []string) bool {
	if len(args) < 2 {
		fmt.Fprintf(s.stderr, "lsh: expected argument to %q\n", args[0])
		return true
	}
	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.stderr, "lsh: %v\n", err)
	}
	return true
}

// Help prints the banner and the registered builtins.
func Help(s *Shell, args []string) bool {
	w := s.stdout
	helpHeading.Fprintln(w, "lsh: a simple shell")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "The following are built in:")
	for _, builtin := range s.builtins {
		fmt.Fprintln(w, " "+builtin.Name)
	}
	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return true
}

// Exit stops the loop. Any extra arguments are ignored.
func Exit(s *Shell, args []string) bool {
	return false
}

// Pwd prints the shell's working directory.
func Pwd(s *Shell, args []string) bool {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.stderr, "lsh: %v\n", err)
		return true
	}
	fmt.Fprintln(s.stdout, wd)
	return true
}

// History displays the lines entered this session, or clears them with -c.
func History(s *Shell, args []string) bool {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.stderr
		if err != nil {
			fmt.Fprintln(w, "lsh:", err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display or clear the history list.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return true
	}

	if *clear {
		if s.Readline != nil {
			s.Readline.Operation.ResetHistory()
		}
		s.history = nil
		return true
	}

	for i, line := range s.history {
		fmt.Fprintf(s.stdout, "% 5d  %s\n", i+1, line)
	}
	return true
}
