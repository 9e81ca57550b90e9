// SPDX-License-Identifier: MPL-2.0

// Package config resolves i3ctl settings using Viper.
//
// Settings are layered, lowest precedence first: built-in defaults, a config
// file in the config directory (~/.config/i3ctl on Linux, or $XDG_CONFIG_HOME),
// I3CTL_* environment variables, and finally command-line arguments. Each
// layer overrides only the keys it sets.
//
// The config file is named "config" with an optional extension selecting its
// format: .toml, .json, .yaml/.yml or .cue. CUE files are validated against
// the embedded config_schema.cue. A bare "config" file is read as TOML.
//
// The filesystem and environment are injected through ResolveOptions so that
// resolution can be tested without touching the host.
package config
