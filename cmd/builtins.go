package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omerhayat/lsh/core"
)

// builtinsCmd lists the commands the shell runs in-process.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the shell's builtin commands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range core.BuiltinNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
