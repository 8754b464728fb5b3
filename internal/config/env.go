package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every environment variable the editor reads.
const EnvPrefix = "LINEDIT_"

type envSetting struct {
	name string
	set  func(c *Config, value string) error
}

// envSettings maps environment variables to the settings they override.
var envSettings = []envSetting{
	{EnvPrefix + "CAPACITY", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("not an integer")
		}
		c.Editor.Capacity = n
		return nil
	}},
	{EnvPrefix + "GUTTER_STYLE", func(c *Config, v string) error {
		c.Gutter.Style = v
		return nil
	}},
	{EnvPrefix + "BACKEND", func(c *Config, v string) error {
		c.Terminal.Backend = v
		return nil
	}},
	{EnvPrefix + "LOG_LEVEL", func(c *Config, v string) error {
		c.Log.Level = v
		return nil
	}},
	{EnvPrefix + "LOG_FILE", func(c *Config, v string) error {
		c.Log.File = v
		return nil
	}},
}

// MergeEnv overrides settings from environment variables. Empty values
// count as set.
func (c *Config) MergeEnv(lookup LookupFunc) error {
	for _, s := range envSettings {
		v, ok := lookup(s.name)
		if !ok {
			continue
		}
		if err := s.set(c, v); err != nil {
			return &ValidationError{Path: s.name, Message: err.Error(), Value: v}
		}
	}
	return nil
}
