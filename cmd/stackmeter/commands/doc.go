// Package commands defines the stackmeter CLI and wires dependencies for subcommands.
//
// Commands
//
//   - domains   List measurement domains, headings and storage keys
//   - calc      Print sampling constraints for a circular or rectangular duct
//   - show      Print the records stored for a domain
//   - put       Replace a domain's records from a CSV file
//   - clear     Reset a domain to its empty state
//   - export    Write every domain into one session document
//   - import    Restore every domain from a session document
//
// # Implementation
//
// The root command loads config.toml from the home directory and builds the
// store chain and services before any subcommand runs. Flags override file
// values; the passphrase can also come from STACKMETER_PASSPHRASE.
package commands
