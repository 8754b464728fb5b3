package config

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Config holds every editor setting.
type Config struct {
	Editor   EditorConfig   `toml:"editor" yaml:"editor"`
	Keys     KeysConfig     `toml:"keys" yaml:"keys"`
	Gutter   GutterConfig   `toml:"gutter" yaml:"gutter"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// EditorConfig configures the document buffer.
type EditorConfig struct {
	// Capacity is the fixed buffer size in bytes.
	Capacity int `toml:"capacity" yaml:"capacity"`

	// Banner is the document the editor starts with.
	Banner string `toml:"banner" yaml:"banner"`
}

// KeysConfig configures key bindings. Keys are written as accepted by
// key.Parse ("Ctrl+C", "<C-c>", "Home", "0x1b").
type KeysConfig struct {
	// Quit ends the session.
	Quit string `toml:"quit" yaml:"quit"`

	// Redraw prints the whole document.
	Redraw string `toml:"redraw" yaml:"redraw"`

	// Bind maps additional keys to action names.
	Bind map[string]string `toml:"bind" yaml:"bind"`
}

// GutterConfig configures the line number column.
type GutterConfig struct {
	// Width is the minimum number of columns for line numbers.
	Width int `toml:"width" yaml:"width"`

	// Style is a renderer style description.
	Style string `toml:"style" yaml:"style"`
}

// TerminalConfig selects the terminal backend.
type TerminalConfig struct {
	// Backend is "auto", "tty" or "stdio".
	Backend string `toml:"backend" yaml:"backend"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`

	// File receives log output. Empty discards logs.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{}
	if err := toml.Unmarshal(defaultsTOML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Overrides holds command-line settings. Empty fields leave the
// configuration unchanged.
type Overrides struct {
	LogLevel string
	LogFile  string
	Backend  string
}

// Apply applies non-empty overrides.
func (c *Config) Apply(o Overrides) {
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	if o.Backend != "" {
		c.Terminal.Backend = o.Backend
	}
}
