// Package config loads stride settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. The TOML file, by default $XDG_CONFIG_HOME/stride/config.toml
//  3. Environment variables (STRIDE_TAB_SIZE, STRIDE_SELECTION_BEHAVIOR, ...)
//
// Example file:
//
//	[editor]
//	tab_size = 4
//	selection_behavior = "character"
//	wide_runes = false
//
//	[motion]
//	avoid_eol = true
//	scroll_off = 3
//
//	[view]
//	height = 24
//
//	[log]
//	level = "info"
//
// # Sub-packages
//
//   - loader: TOML decoding and environment variable lookup
//   - watcher: fsnotify-based live reload
package config
