package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/input/key"
	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/terminal"
)

// Capacity and gutter bounds.
const (
	MinCapacity    = 1
	MaxCapacity    = 1 << 24
	MaxGutterWidth = 20
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks every setting and returns all failures joined. Each
// failure is a *ValidationError matching ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.Editor.Capacity < MinCapacity || c.Editor.Capacity > MaxCapacity {
		fail("editor.capacity", fmt.Sprintf("must be between %d and %d", MinCapacity, MaxCapacity), c.Editor.Capacity)
	} else if len(c.Editor.Banner) > c.Editor.Capacity {
		fail("editor.banner", "longer than editor.capacity", len(c.Editor.Banner))
	}

	if _, err := c.Keymap(); err != nil {
		errs = append(errs, err)
	}

	if c.Gutter.Width < 1 || c.Gutter.Width > MaxGutterWidth {
		fail("gutter.width", fmt.Sprintf("must be between 1 and %d", MaxGutterWidth), c.Gutter.Width)
	}
	if _, err := renderer.ParseStyle(c.Gutter.Style); err != nil {
		fail("gutter.style", err.Error(), c.Gutter.Style)
	}

	if _, err := terminal.ParseBackend(c.Terminal.Backend); err != nil {
		fail("terminal.backend", "must be auto, tty or stdio", c.Terminal.Backend)
	}

	if !validLogLevel(c.Log.Level) {
		fail("log.level", "must be one of "+strings.Join(logLevels, ", "), c.Log.Level)
	}

	return errors.Join(errs...)
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}

// Keymap builds the key bindings: the defaults, with quit and redraw moved
// to their configured keys, then every extra binding.
func (c *Config) Keymap() (editor.Keymap, error) {
	var errs []error
	km := editor.DefaultKeymap()

	quit, err := key.Parse(c.Keys.Quit)
	if err != nil {
		errs = append(errs, &ValidationError{Path: "keys.quit", Message: err.Error(), Value: c.Keys.Quit})
	}
	redraw, err := key.Parse(c.Keys.Redraw)
	if err != nil {
		errs = append(errs, &ValidationError{Path: "keys.redraw", Message: err.Error(), Value: c.Keys.Redraw})
	}
	if len(errs) == 0 && quit == redraw {
		errs = append(errs, &ValidationError{Path: "keys.redraw", Message: "same key as keys.quit", Value: c.Keys.Redraw})
	}
	if len(errs) == 0 {
		km.Rebind(editor.ActionQuit, quit)
		km.Rebind(editor.ActionRedraw, redraw)
	}

	for spec, name := range c.Keys.Bind {
		path := "keys.bind." + spec
		k, err := key.Parse(spec)
		if err != nil {
			errs = append(errs, &ValidationError{Path: path, Message: err.Error(), Value: spec})
			continue
		}
		a, err := editor.ParseAction(name)
		if err != nil {
			errs = append(errs, &ValidationError{Path: path, Message: err.Error(), Value: name})
			continue
		}
		km.Bind(k, a)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return km, nil
}

// GutterStyle returns the parsed gutter style.
func (c *Config) GutterStyle() (renderer.Style, error) {
	s, err := renderer.ParseStyle(c.Gutter.Style)
	if err != nil {
		return s, &ValidationError{Path: "gutter.style", Message: err.Error(), Value: c.Gutter.Style}
	}
	return s, nil
}
