// Package app assembles the import engine for the command-line importer and
// the import server: it opens the target vault and builds the services on
// top of it.
package app
