// Package config provides configuration loading, merging, and validation
// facilities for the relay server and the CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags (relay only)
//  2. Environment variables
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the relay and
// [GetCLIConfig] for the command-line front end.
package config
