// Package repl provides interactive mode for calculon-cli.
//
// Each input line is sent to the server over one long-lived session,
// so the value seen by SHOW reflects every client connected to it.
// History is persisted between runs; "help" lists commands matching
// an optional prefix.
package repl
