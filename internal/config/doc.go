// Package config loads editor settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (defaults.toml, embedded in the binary)
//  2. A user file in TOML, YAML or JSON, picked by extension
//  3. Environment variables (LINEDIT_*)
//  4. Command-line flags
//
// Only keys present in a layer override; a user file containing just
//
//	[gutter]
//	style = "#5f87af"
//
// keeps every other default. Validate checks the merged result and reports
// every problem at once.
//
// Config.JSON renders the merged result in the JSON file format, and Watch
// reloads a user file whenever it changes on disk.
//
// Sections:
//
//	[editor]    capacity, banner
//	[keys]      quit, redraw, bind
//	[gutter]    width, style
//	[terminal]  backend
//	[log]       level, file
package config
