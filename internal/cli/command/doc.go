// Package command provides CLI command definitions for calculon-cli.
//
// It uses urfave/cli/v2 for command parsing. The one-shot commands
// (add, subtract, power, show) open a session, send a single line and
// print the server's answer; repl keeps the session open for
// interactive use.
package command
