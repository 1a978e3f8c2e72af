package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/omerhayat/lsh/core"
	"github.com/omerhayat/lsh/core/config"
	"github.com/omerhayat/lsh/core/logger"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		// No config directory; run on the built-in defaults.
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd starts the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "lsh",
	Short: "A simple interactive command shell.",
	Long: `lsh reads commands one line at a time, runs builtins in-process
and launches everything else as a child program, waiting for it to finish
before prompting again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		logFd, err := configuration.OpenCommandLog()
		if err != nil {
			return err
		}
		commandLog := logger.Nop()
		if logFd != nil {
			commandLog = logger.New(logFd)
		}
		defer commandLog.Close()

		shell, err := core.NewShell(configuration, commandLog)
		if err != nil {
			return err
		}
		defer shell.Close()

		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
