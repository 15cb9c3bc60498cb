// Package calcserver provides the Calculon line protocol server.
//
// Clients connect over TCP, receive a one-line greeting and then send
// newline-terminated commands that operate on one shared value:
//
//	ADD <x>        X += x
//	SUBTRACT <x>   X -= x
//	POWER <x>      X ^= x
//	SHOW           X
//
// Every command line produces one "\r\n"-terminated response line, except
// blank lines and lines with the wrong number of arguments, which are
// skipped. An operand that is not a number ends the session.
//
// Each accepted connection is served by its own goroutine. All sessions
// share a single cell.Cell created by the Server.
package calcserver
