// Package config provides configuration loading, merging, and validation for
// the dbconf command.
//
// Configuration is assembled from the following sources, merged so that the
// first non-zero value wins:
//  1. Command-line flags (and the positional command)
//  2. Environment variables, including their envDefault values
//
// The main entry point is [GetStructuredConfig]. It configures the command
// itself; the database settings are resolved separately by the dbconfig
// package from the file or URL named here.
package config
