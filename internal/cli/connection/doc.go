// Package connection provides the TCP client used by calculon-cli.
//
// A Client holds one protocol session. Dial consumes the greeting;
// Execute sends one command line and returns the response line with
// the CRLF terminator stripped. Commands the server would silently
// ignore are rejected locally so Execute never waits for a reply that
// will not come.
package connection
