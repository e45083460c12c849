// Package config loads runtime configuration for the label station console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-f string   credential file (SZV.dat)
//	-l string   log file
//	-v          verbose diagnostics (shows skipped credential lines, enables dump)
//
// With -v a logged in operator can print every decoded credential line,
// tokens included, so keep it off on production stations.
//
// # JSON schema
//
// Keys that are absent keep their previous value:
//
//	{
//	  "credential_file": "T:/Prikazy/DataTPV/SZV.dat",
//	  "log_file": "log/app.log",
//	  "log_level": "info",
//	  "verbose": false
//	}
//
// Paths are resolved to absolute paths after all sources are applied. A
// missing credential file location is reported as ErrConfigMissing; the
// console cannot run without it.
package config
