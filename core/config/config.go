package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
)

// Configuration holds the shell's settings, read from config.yaml in the
// configuration directory.
type Configuration struct {
	configFs afero.Fs
	dir      string

	// Prompt is written before each read, without a trailing newline.
	Prompt string `json:"prompt" validate:"required"`

	// Greeting is printed once at startup when non-empty.
	Greeting string `json:"greeting"`

	// HistoryFile names the readline history file inside the configuration
	// directory. Empty disables persistent history.
	HistoryFile string `json:"history_file"`

	// CommandLog names the command log file inside the configuration
	// directory. Empty disables command logging.
	CommandLog string `json:"command_log"`

	// PosixQuoting switches the tokenizer from plain whitespace splitting
	// to quote-aware splitting.
	PosixQuoting bool `json:"posix_quoting"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// OpenCommandLog opens the command log in an append only state. It returns
// a nil file without error when command logging is disabled or the shell
// is running without a configuration directory.
func (c *Configuration) OpenCommandLog() (afero.File, error) {
	if c.configFs == nil || c.CommandLog == "" {
		return nil, nil
	}
	return c.fs().OpenFile(c.CommandLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// HistoryPath returns the path of the readline history file, or empty when
// persistent history is disabled.
func (c *Configuration) HistoryPath() string {
	if c.dir == "" || c.HistoryFile == "" {
		return ""
	}
	return filepath.Join(c.dir, c.HistoryFile)
}

// Default returns the built-in configuration. It carries no configuration
// directory, so history and command logging are off.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
