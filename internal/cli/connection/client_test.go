package connection

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/yndnr/calculon-go/internal/server/calcserver"
	"github.com/yndnr/calculon-go/internal/telemetry/logger"
)

func startServer(t *testing.T) string {
	t.Helper()

	s := calcserver.New(&calcserver.Config{Address: "127.0.0.1:0"},
		logger.FromSlog(slog.New(slog.NewTextHandler(io.Discard, nil))), nil)
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	go s.Serve(context.Background())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Shutdown(ctx)
	})

	return s.Addr().String()
}

func dial(t *testing.T, addr string) *Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := Dial(ctx, addr, WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestDial_Greeting(t *testing.T) {
	c := dial(t, startServer(t))

	if got := c.Greeting(); got != calcserver.Greeting {
		t.Errorf("Greeting() = %q, want %q", got, calcserver.Greeting)
	}
}

func TestDial_Refused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := Dial(ctx, addr); err == nil {
		t.Error("Dial() to closed port should fail")
	}
}

func TestClient_Execute(t *testing.T) {
	c := dial(t, startServer(t))

	steps := []struct {
		line string
		want string
	}{
		{"SHOW", "X = 0"},
		{"ADD 5", "X += 5 = 5"},
		{"  POWER   2  ", "X ^= 2 = 25"},
		{"SUBTRACT 25", "X -= 25 = 0"},
		{"FOO", "Unknown command: FOO"},
		{"show", "Unknown command: show"},
		{"SHOW", "X = 0"},
	}

	for _, s := range steps {
		got, err := c.Execute(s.line)
		if err != nil {
			t.Fatalf("Execute(%q) error = %v", s.line, err)
		}
		if got != s.want {
			t.Errorf("Execute(%q) = %q, want %q", s.line, got, s.want)
		}
	}
}

func TestClient_ExecuteRejectsLocally(t *testing.T) {
	c := dial(t, startServer(t))

	if _, err := c.Execute("ADD"); !errors.Is(err, ErrArgCount) {
		t.Errorf("Execute(ADD) error = %v, want ErrArgCount", err)
	}
	if _, err := c.Execute("   "); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Execute(blank) error = %v, want ErrEmptyCommand", err)
	}

	// The session is still usable.
	if got, err := c.Execute("ADD 1"); err != nil || got != "X += 1 = 1" {
		t.Errorf("Execute(ADD 1) = %q, %v", got, err)
	}
}

func TestClient_ExecuteInvalidOperand(t *testing.T) {
	c := dial(t, startServer(t))

	if _, err := c.Execute("ADD abc"); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Execute(ADD abc) error = %v, want ErrSessionClosed", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
	}{
		{"ADD 1", nil},
		{"SUBTRACT -2.5", nil},
		{"POWER 2", nil},
		{"SHOW", nil},
		{"ADD abc", nil},
		{"FOO 1 2 3", nil},
		{"", ErrEmptyCommand},
		{"\t ", ErrEmptyCommand},
		{"ADD", ErrArgCount},
		{"ADD 1 2", ErrArgCount},
		{"POWER", ErrArgCount},
		{"SHOW 1", ErrArgCount},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			err := Validate(tt.line)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate(%q) error = %v", tt.line, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}
		})
	}
}

func TestClient_CloseWithoutConn(t *testing.T) {
	var c Client
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
