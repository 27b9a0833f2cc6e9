package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/memory/buffer"
)

// Config holds display settings loaded from --config.
type Config struct {
	// Width is the number of bytes per dump row.
	Width int `toml:"width"`

	// Color is "auto", "always" or "never".
	Color string `toml:"color"`

	// PageRows is the number of rows the viewer scrolls per page.
	PageRows int `toml:"page_rows"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Width:    buffer.DefaultHexWidth,
		Color:    "auto",
		PageRows: 16,
	}
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %s", path, undecoded[0])
	}
	return c, c.Validate()
}

// Validate rejects settings the commands cannot honour.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Width > 64 {
		return fmt.Errorf("width %d must be in [1, 64]", c.Width)
	}
	if c.PageRows <= 0 {
		return fmt.Errorf("page_rows %d must be positive", c.PageRows)
	}
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("color %q must be auto, always or never", c.Color)
	}
}
