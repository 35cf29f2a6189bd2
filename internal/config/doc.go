// Package config provides configuration loading, merging, and validation
// for the parcel tracker server and CLI client.
//
// Server configuration is assembled from the following sources (later
// sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, after an optional .env file is loaded
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
