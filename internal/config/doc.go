// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/jdesc/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/jdesc/config.cue on macOS, %APPDATA%\jdesc\config.cue
// on Windows), falling back to ./config.cue. It selects the report output format,
// UI preferences and batch-mode limits.
//
// Configuration files are validated against an embedded CUE schema (config_schema.cue)
// before being merged over the defaults. JDESC_* environment variables override both.
package config
