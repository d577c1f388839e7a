// Package config loads the optional configuration file of lispy.
//
// The file is in YAML:
//
//	prompt: "lispy> "
//	continuation: "   ...> "
//	banner: true
//	brackets: "()"
//	history:
//	  enabled: true
//	  db: ""
//	  limit: 1000
//
// Missing keys take their default values.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/env"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/vals"
	"gopkg.in/yaml.v3"
)

// Config keeps the user-configurable settings.
type Config struct {
	Prompt       string  `yaml:"prompt"`
	Continuation string  `yaml:"continuation"`
	Banner       bool    `yaml:"banner"`
	Brackets     string  `yaml:"brackets"`
	History      History `yaml:"history"`
}

// History keeps the settings of the input history.
type History struct {
	Enabled bool `yaml:"enabled"`
	// Path of the database file. When empty, DefaultDBPath is used.
	DB    string `yaml:"db"`
	Limit int    `yaml:"limit"`
}

// Default returns the configuration used when there is no configuration
// file.
func Default() *Config {
	return &Config{
		Prompt:       "lispy> ",
		Continuation: "   ...> ",
		Banner:       true,
		Brackets:     "()",
		History:      History{Enabled: true, Limit: 1000},
	}
}

// ValidationError lists the problems of a configuration.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Issues, "; ")
}

// Load reads the configuration file at path. If the file doesn't exist, it
// returns the default configuration. If the file can't be parsed or has
// invalid values, it returns the default configuration along with an error.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	defer file.Close()
	return Parse(file, path)
}

// Parse reads configuration from r; name is used in error messages.
func Parse(r io.Reader, name string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs ValidationError
	if utf8.RuneCountInString(c.Brackets) != 2 {
		errs.Issues = append(errs.Issues,
			fmt.Sprintf("brackets must be two characters, got %q", c.Brackets))
	}
	if c.History.Limit < 0 {
		errs.Issues = append(errs.Issues,
			fmt.Sprintf("history.limit must not be negative, got %d", c.History.Limit))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Printer returns a printer that wraps groups in the configured brackets.
func (c *Config) Printer() vals.Printer {
	open, size := utf8.DecodeRuneInString(c.Brackets)
	return vals.Printer{Open: string(open), Close: c.Brackets[size:]}
}

// DefaultPath returns the default path of the configuration file,
// $XDG_CONFIG_HOME/lispy/config.yaml or ~/.config/lispy/config.yaml.
func DefaultPath() (string, error) {
	dir, err := xdgDir(env.XDG_CONFIG_HOME, ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lispy", "config.yaml"), nil
}

// DefaultDBPath returns the default path of the history database,
// $XDG_STATE_HOME/lispy/history.db or ~/.local/state/lispy/history.db.
func DefaultDBPath() (string, error) {
	dir, err := xdgDir(env.XDG_STATE_HOME, filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lispy", "history.db"), nil
}

func xdgDir(envName, homeRel string) (string, error) {
	if dir := os.Getenv(envName); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine %s: %w", envName, err)
	}
	return filepath.Join(home, homeRel), nil
}
