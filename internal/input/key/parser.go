package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a Key.
//
// Supported formats:
//   - Single byte: "a", "A", "1", "+"
//   - Hex byte: "0x1b", "0x7F"
//   - Named keys: "Enter", "Escape", "Tab", "Backspace", "Space", "Up", "Delete"
//   - With Ctrl: "Ctrl+C", "ctrl+l", "Ctrl+Right"
//   - Vim-style: "<C-c>", "<CR>", "<Esc>", "<BS>", "<C-Left>"
func Parse(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Unknown, ErrEmptySpec
	}

	if len(spec) == 1 {
		return Byte(spec[0]), nil
	}

	// Check for Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Check for modifier+key format (Ctrl+S)
	if i := strings.IndexByte(spec, '+'); i > 0 {
		return parseModifierStyle(spec[:i], spec[i+1:])
	}

	return parseSingle(spec)
}

// parseVimStyle parses Vim-style notation like "C-c", "CR", "Esc"
func parseVimStyle(inner string) (Key, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Unknown, ErrInvalidSpec
	}

	mod, keyPart, found := strings.Cut(inner, "-")
	if !found || keyPart == "" {
		return parseSingle(inner)
	}
	return applyModifier(mod, keyPart)
}

// parseModifierStyle parses "Ctrl+C" style notation
func parseModifierStyle(mod, keyPart string) (Key, error) {
	if strings.TrimSpace(keyPart) == "" {
		return Unknown, fmt.Errorf("%w: missing key after %q", ErrInvalidSpec, mod)
	}
	return applyModifier(mod, keyPart)
}

// applyModifier resolves keyPart and applies the named modifier to it.
func applyModifier(mod, keyPart string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(mod)) {
	case "c", "ctrl", "control":
	default:
		return Unknown, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, mod)
	}

	k, err := parseSingle(keyPart)
	if err != nil {
		return Unknown, err
	}
	ctrl := withCtrl(k)
	if ctrl == Unknown {
		return Unknown, fmt.Errorf("%w: %q has no Ctrl variant", ErrInvalidSpec, keyPart)
	}
	return ctrl, nil
}

// parseSingle parses a single byte, hex byte or key name
func parseSingle(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if len(spec) == 1 {
		return Byte(spec[0]), nil
	}

	if k := FromName(spec); k != Unknown {
		return k, nil
	}

	lower := strings.ToLower(spec)
	if strings.HasPrefix(lower, "0x") {
		n, err := strconv.ParseUint(lower[2:], 16, 8)
		if err != nil {
			return Unknown, fmt.Errorf("%w: bad hex byte %q", ErrInvalidSpec, spec)
		}
		return Byte(byte(n)), nil
	}

	return Unknown, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Key {
	k, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return k
}
