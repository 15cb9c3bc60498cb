// Package main provides the entry point for calculon-cli.
//
// Usage:
//
//	calculon-cli [--server host:port] add X
//	calculon-cli subtract X
//	calculon-cli power X
//	calculon-cli show
//	calculon-cli repl
//
// The server address defaults to 127.0.0.1:4673 and can be set with
// CALCULON_SERVER.
package main
