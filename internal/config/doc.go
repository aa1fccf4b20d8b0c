// Package config provides configuration loading, merging, and validation
// for the importer CLI and the import HTTP server.
//
// Configuration is assembled from multiple sources. For every field the
// first source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//
// The entry points are [GetImporterConfig] for the command-line importer and
// [GetServerConfig] for the HTTP server.
package config
