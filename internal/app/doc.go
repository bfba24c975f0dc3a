// Package app wires application dependencies for the CLI.
//
// It loads Config from the TOML file under the home directory, builds the
// blob store chain and the exchange service, and exposes them via App for
// commands to use.
package app
