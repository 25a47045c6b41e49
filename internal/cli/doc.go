// Package cli implements the interactive FlightBook shell: a small REPL
// that prompts for command input, invokes the booking service, and prints
// the resulting messages. All terminal interaction goes through swappable
// helpers so the command handlers stay testable without a TTY.
package cli
