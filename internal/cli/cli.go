// Package cli implements the innstereo command-line interface.
//
// This package provides commands for managing the layers of a stereonet
// project file: creating layers of the four dataset kinds, listing them
// with their preview colors, editing styling properties, and importing
// layer definitions from TOML manifests. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layer: Add, list, and remove layers of a project
//   - prop: Read and write styling properties of a layer
//   - import: Build a project from a TOML layer manifest
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so subcommands share one configured
// instance.
package cli

const (
	// appName is the application name used for display and file names.
	appName = "innstereo"

	// defaultProjectFile is the project path used when --project is not given.
	defaultProjectFile = "project.json"
)
