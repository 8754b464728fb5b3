package config

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// jsonSetting maps a dotted JSON path to a scalar field.
type jsonSetting struct {
	path string
	kind gjson.Type
	get  func(c *Config) any
	set  func(c *Config, r gjson.Result)
}

var jsonSettings = []jsonSetting{
	{"editor.capacity", gjson.Number,
		func(c *Config) any { return c.Editor.Capacity },
		func(c *Config, r gjson.Result) { c.Editor.Capacity = int(r.Int()) }},
	{"editor.banner", gjson.String,
		func(c *Config) any { return c.Editor.Banner },
		func(c *Config, r gjson.Result) { c.Editor.Banner = r.Str }},
	{"keys.quit", gjson.String,
		func(c *Config) any { return c.Keys.Quit },
		func(c *Config, r gjson.Result) { c.Keys.Quit = r.Str }},
	{"keys.redraw", gjson.String,
		func(c *Config) any { return c.Keys.Redraw },
		func(c *Config, r gjson.Result) { c.Keys.Redraw = r.Str }},
	{"gutter.width", gjson.Number,
		func(c *Config) any { return c.Gutter.Width },
		func(c *Config, r gjson.Result) { c.Gutter.Width = int(r.Int()) }},
	{"gutter.style", gjson.String,
		func(c *Config) any { return c.Gutter.Style },
		func(c *Config, r gjson.Result) { c.Gutter.Style = r.Str }},
	{"terminal.backend", gjson.String,
		func(c *Config) any { return c.Terminal.Backend },
		func(c *Config, r gjson.Result) { c.Terminal.Backend = r.Str }},
	{"log.level", gjson.String,
		func(c *Config) any { return c.Log.Level },
		func(c *Config, r gjson.Result) { c.Log.Level = r.Str }},
	{"log.file", gjson.String,
		func(c *Config) any { return c.Log.File },
		func(c *Config, r gjson.Result) { c.Log.File = r.Str }},
}

const bindPath = "keys.bind"

func knownJSONPath(path string) bool {
	if path == bindPath {
		return true
	}
	return slices.ContainsFunc(jsonSettings, func(s jsonSetting) bool { return s.path == path })
}

func knownJSONSection(name string) bool {
	return slices.ContainsFunc(jsonSettings, func(s jsonSetting) bool {
		return strings.HasPrefix(s.path, name+".")
	})
}

func decodeJSON(path string, data []byte, c *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	fail := func(r gjson.Result, msg string) error {
		perr := &ParseError{Path: path, Format: "json", Message: msg}
		if r.Index > 0 {
			perr.Line = 1 + bytes.Count(data[:r.Index], []byte{'\n'})
		}
		return perr
	}

	if !gjson.ValidBytes(data) {
		return &ParseError{Path: path, Format: "json", Message: "invalid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fail(root, "top level must be an object")
	}

	// Reject unknown settings the way the strict TOML and YAML decoders do.
	var err error
	root.ForEach(func(section, table gjson.Result) bool {
		if !knownJSONSection(section.Str) {
			err = fail(section, "unknown setting "+section.Str)
			return false
		}
		if !table.IsObject() {
			err = fail(table, section.Str+": expected an object")
			return false
		}
		table.ForEach(func(name, _ gjson.Result) bool {
			if p := section.Str + "." + name.Str; !knownJSONPath(p) {
				err = fail(name, "unknown setting "+p)
			}
			return err == nil
		})
		return err == nil
	})
	if err != nil {
		return err
	}

	for _, s := range jsonSettings {
		r := root.Get(s.path)
		if !r.Exists() {
			continue
		}
		if r.Type != s.kind {
			return fail(r, fmt.Sprintf("%s: expected %s, got %s", s.path, kindName(s.kind), kindName(r.Type)))
		}
		if s.kind == gjson.Number && r.Num != float64(r.Int()) {
			return fail(r, s.path+": expected an integer")
		}
		s.set(c, r)
	}

	bind := root.Get(bindPath)
	if !bind.Exists() {
		return nil
	}
	if !bind.IsObject() {
		return fail(bind, bindPath+": expected an object")
	}
	if c.Keys.Bind == nil {
		c.Keys.Bind = make(map[string]string)
	}
	bind.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			err = fail(v, fmt.Sprintf("%s.%s: expected an action name", bindPath, k.Str))
			return false
		}
		c.Keys.Bind[k.Str] = v.Str
		return true
	})
	return err
}

func kindName(t gjson.Type) string {
	switch t {
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	}
	return "object"
}

// JSON returns the configuration as an indented JSON document that
// MergeFile accepts back.
func (c *Config) JSON() ([]byte, error) {
	out := []byte("{}")
	var err error
	for _, s := range jsonSettings {
		if out, err = sjson.SetBytes(out, s.path, s.get(c)); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", s.path, err)
		}
	}

	if out, err = sjson.SetRawBytes(out, bindPath, []byte("{}")); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", bindPath, err)
	}
	for _, k := range slices.Sorted(maps.Keys(c.Keys.Bind)) {
		if out, err = sjson.SetBytes(out, bindPath+"."+escapePathKey(k), c.Keys.Bind[k]); err != nil {
			return nil, fmt.Errorf("encoding %s.%s: %w", bindPath, k, err)
		}
	}

	return pretty.Pretty(out), nil
}

// escapePathKey escapes the characters gjson and sjson give meaning to in a
// path component.
func escapePathKey(k string) string {
	var b strings.Builder
	for i := range len(k) {
		if strings.IndexByte(`.*?|#@!:\`, k[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(k[i])
	}
	return b.String()
}
