// Package config loads the optional YAML settings file shared by the board
// and the to-do list.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Variant selects which application runs.
type Variant string

const (
	VariantKanban Variant = "kanban"
	VariantTodo   Variant = "todo"
)

// ParseVariant converts a name to a Variant.
func ParseVariant(value string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(value))) {
	case VariantKanban, "board":
		return VariantKanban, nil
	case VariantTodo, "to-do":
		return VariantTodo, nil
	default:
		return "", fmt.Errorf("unknown variant %q (expected kanban or todo)", value)
	}
}

// Window configures the frame an application draws into. Sizes are in
// terminal cells; zero means "use the terminal size".
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Config models config.yaml.
//
//	variant: kanban
//	log_file: /tmp/kanban.log
//	log_level: debug
//	kanban:
//	  title: Kanban
//	  width: 100
//	  height: 30
//	todo:
//	  title: To-Do
type Config struct {
	Variant  Variant `yaml:"variant"` // opened when no subcommand is given
	LogFile  string  `yaml:"log_file"`
	LogLevel string  `yaml:"log_level"`
	Kanban   Window  `yaml:"kanban"`
	Todo     Window  `yaml:"todo"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Variant:  VariantKanban,
		LogLevel: "info",
		Kanban:   Window{Title: "Kanban", Width: 100, Height: 30},
		Todo:     Window{Title: "To-Do"},
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "kanban", "config.yaml"), nil
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Variant, _ = ParseVariant(string(cfg.Variant))
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Variant == "" {
		c.Variant = def.Variant
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Kanban.Title == "" {
		c.Kanban.Title = def.Kanban.Title
	}
	if c.Todo.Title == "" {
		c.Todo.Title = def.Todo.Title
	}
}

// Validate checks the variant, sizes and the log level.
func (c Config) Validate() error {
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for name, w := range map[string]Window{"kanban": c.Kanban, "todo": c.Todo} {
		if w.Width < 0 || w.Height < 0 {
			return fmt.Errorf("config: %s window size must not be negative (got %dx%d)", name, w.Width, w.Height)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Window returns the window settings for a variant.
func (c Config) Window(v Variant) Window {
	if v == VariantTodo {
		return c.Todo
	}
	return c.Kanban
}
