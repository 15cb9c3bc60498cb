package connection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// DefaultAddress is the protocol server address used when none is given.
const DefaultAddress = "127.0.0.1:4673"

var (
	// ErrSessionClosed is returned when the server ends the session,
	// which it does after an operand it cannot parse.
	ErrSessionClosed = errors.New("session closed by server")

	// ErrArgCount is returned for a known command with the wrong number
	// of arguments. The server ignores such lines without replying.
	ErrArgCount = errors.New("wrong number of arguments")

	// ErrEmptyCommand is returned for a blank line.
	ErrEmptyCommand = errors.New("empty command")
)

// arity lists the argument count of each server command.
var arity = map[string]int{
	"ADD":      1,
	"SUBTRACT": 1,
	"POWER":    1,
	"SHOW":     0,
}

// Client is a single protocol session.
type Client struct {
	addr     string
	conn     net.Conn
	r        *bufio.Reader
	w        *bufio.Writer
	greeting string
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each Execute round trip. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// Dial connects to addr and reads the greeting.
func Dial(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	if addr == "" {
		addr = DefaultAddress
	}

	c := &Client{addr: addr}
	for _, opt := range opts {
		opt(c)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	c.conn = conn
	c.r = bufio.NewReader(conn)
	c.w = bufio.NewWriter(conn)

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}
	greeting, err := c.readLine()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("read greeting: %w", err)
	}
	_ = conn.SetReadDeadline(time.Time{})
	c.greeting = greeting

	return c, nil
}

// Addr returns the server address.
func (c *Client) Addr() string {
	return c.addr
}

// Greeting returns the server greeting without its line terminator.
func (c *Client) Greeting() string {
	return c.greeting
}

// Execute sends one command line and returns the server's response.
func (c *Client) Execute(line string) (string, error) {
	line = strings.TrimSpace(line)
	if err := Validate(line); err != nil {
		return "", err
	}

	if c.timeout > 0 {
		_ = c.conn.SetDeadline(time.Now().Add(c.timeout))
		defer c.conn.SetDeadline(time.Time{})
	}

	if _, err := c.w.WriteString(line + "\r\n"); err != nil {
		return "", err
	}
	if err := c.w.Flush(); err != nil {
		return "", err
	}

	return c.readLine()
}

// Close closes the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) readLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrSessionClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Validate reports whether line will get a response from the server.
// Unknown command names are allowed; the server answers those itself.
func Validate(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ErrEmptyCommand
	}

	want, ok := arity[fields[0]]
	if !ok {
		return nil
	}
	if got := len(fields) - 1; got != want {
		return fmt.Errorf("%s takes %d argument(s), got %d: %w", fields[0], want, got, ErrArgCount)
	}
	return nil
}
