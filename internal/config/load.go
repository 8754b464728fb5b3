package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileSystem reads configuration files.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LookupFunc looks up an environment variable.
type LookupFunc func(name string) (string, bool)

// Load builds the configuration from the defaults, the file at path (when
// path is not empty) and the process environment. The result is not
// validated.
func Load(path string) (*Config, error) {
	return LoadFS(OSFS{}, path, os.LookupEnv)
}

// LoadFS is Load with an explicit file system and environment.
func LoadFS(fsys FileSystem, path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.MergeFile(fsys, path); err != nil {
			return nil, err
		}
	}
	if lookup != nil {
		if err := cfg.MergeEnv(lookup); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// MergeFile overrides settings with those present in the file at path.
// The format is chosen by extension: .toml, .yaml, .yml or .json.
func (c *Config) MergeFile(fsys FileSystem, path string) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return decodeTOML(path, data, c)
	case ".yaml", ".yml":
		return decodeYAML(path, data, c)
	case ".json":
		return decodeJSON(path, data, c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func decodeTOML(path string, data []byte, c *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(c)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: path, Format: "toml", Message: err.Error(), Err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		perr.Line, perr.Column = de.Position()
	}
	var se *toml.StrictMissingError
	if errors.As(err, &se) && len(se.Errors) > 0 {
		perr.Line, perr.Column = se.Errors[0].Position()
		perr.Message = "unknown setting " + strings.Join(se.Errors[0].Key(), ".")
	}
	return perr
}

func decodeYAML(path string, data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(c)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	perr := &ParseError{Path: path, Format: "yaml", Message: err.Error(), Err: err}
	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		perr.Message = te.Errors[0]
	}
	// yaml.v3 reports positions only inside the message text.
	var line int
	if _, scanErr := fmt.Sscanf(perr.Message, "yaml: line %d:", &line); scanErr == nil {
		perr.Line = line
	} else if _, scanErr := fmt.Sscanf(perr.Message, "line %d:", &line); scanErr == nil {
		perr.Line = line
	}
	return perr
}
