package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/stride/internal/config/loader"
	"github.com/dshills/stride/internal/engine/column"
	"github.com/dshills/stride/internal/engine/cursor"
)

// Config holds every stride setting.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Motion MotionConfig `toml:"motion"`
	View   ViewConfig   `toml:"view"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig holds document and selection settings.
type EditorConfig struct {
	// TabSize is the visual width of a tab stop.
	TabSize int `toml:"tab_size"`

	// SelectionBehavior is "caret" or "character".
	SelectionBehavior string `toml:"selection_behavior"`

	// WideRunes measures East Asian wide runes as two columns.
	WideRunes bool `toml:"wide_runes"`
}

// MotionConfig holds motion defaults.
type MotionConfig struct {
	// AvoidEOL keeps cursors off line ends unless an action overrides it.
	AvoidEOL bool `toml:"avoid_eol"`

	// ScrollOff is the number of lines kept visible around the cursor.
	ScrollOff int `toml:"scroll_off"`
}

// ViewConfig holds viewport settings for non-interactive use.
type ViewConfig struct {
	// Height is the number of visible lines assumed by page motions.
	Height int `toml:"height"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabSize:           column.DefaultTabSize,
			SelectionBehavior: "caret",
		},
		Motion: MotionConfig{ScrollOff: 0},
		View:   ViewConfig{Height: 24},
		Log:    LogConfig{Level: "info"},
	}
}

// Validate checks every setting and returns the first failure.
func (c *Config) Validate() error {
	if c.Editor.TabSize < 1 {
		return &ValidationError{Path: "editor.tab_size", Value: c.Editor.TabSize, Message: "must be at least 1"}
	}
	if _, err := cursor.ParseBehavior(c.Editor.SelectionBehavior); err != nil {
		return &ValidationError{Path: "editor.selection_behavior", Value: c.Editor.SelectionBehavior, Message: err.Error()}
	}
	if c.Motion.ScrollOff < 0 {
		return &ValidationError{Path: "motion.scroll_off", Value: c.Motion.ScrollOff, Message: "must not be negative"}
	}
	if c.View.Height < 1 {
		return &ValidationError{Path: "view.height", Value: c.View.Height, Message: "must be at least 1"}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Path: "log.level", Value: c.Log.Level, Message: err.Error()}
	}
	return nil
}

// Behavior returns the configured selection behavior.
func (c *Config) Behavior() cursor.Behavior {
	b, _ := cursor.ParseBehavior(c.Editor.SelectionBehavior)
	return b
}

// Columns returns the configured column model.
func (c *Config) Columns() column.Model {
	m := column.New(c.Editor.TabSize)
	m.WideRunes = c.Editor.WideRunes
	return m
}

// LogLevel returns the configured log level, or info when unparsable.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// DefaultPath returns $XDG_CONFIG_HOME/stride/config.toml, falling back to
// the user configuration directory of the platform.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			dir = "."
		}
	}
	return filepath.Join(dir, "stride", "config.toml")
}

// Load reads the file at path over the defaults, applies environment
// overrides and validates the result. A missing file is not an error
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	return LoadWith(loader.NewTOMLLoader(path), loader.NewEnvLoader(EnvPrefix), required)
}

// LoadWith is Load with explicit loaders.
func LoadWith(file *loader.TOMLLoader, env *loader.EnvLoader, required bool) (*Config, error) {
	cfg := Default()

	found, err := file.Decode(cfg)
	if err != nil {
		return nil, err
	}
	if !found && required {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, file.Path())
	}

	if env != nil {
		if err := cfg.applyEnv(env); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", file.Path(), err)
	}
	return cfg, nil
}

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "STRIDE_"

// applyEnv copies environment overrides into c.
func (c *Config) applyEnv(env *loader.EnvLoader) error {
	var errs []error

	if v, ok := env.Lookup("TAB_SIZE"); ok {
		n, err := loader.ParseInt(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sTAB_SIZE: %w", EnvPrefix, err))
		} else {
			c.Editor.TabSize = n
		}
	}
	if v, ok := env.Lookup("SELECTION_BEHAVIOR"); ok {
		c.Editor.SelectionBehavior = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := env.Lookup("WIDE_RUNES"); ok {
		b, err := loader.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sWIDE_RUNES: %w", EnvPrefix, err))
		} else {
			c.Editor.WideRunes = b
		}
	}
	if v, ok := env.Lookup("AVOID_EOL"); ok {
		b, err := loader.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sAVOID_EOL: %w", EnvPrefix, err))
		} else {
			c.Motion.AvoidEOL = b
		}
	}
	if v, ok := env.Lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}

	return errors.Join(errs...)
}
