package command

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/calculon-go/internal/server/calcserver"
	"github.com/yndnr/calculon-go/internal/telemetry/logger"
)

// startServer runs a protocol server on a free port.
func startServer(t *testing.T) *calcserver.Server {
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
	return s
}

// runApp runs the CLI against s with the given arguments and stdin.
func runApp(t *testing.T, s *calcserver.Server, stdin string, args ...string) (string, error) {
	t.Helper()

	app := App()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)

	argv := append([]string{"calculon-cli", "--server", s.Addr().String()}, args...)
	err := app.Run(argv)
	return out.String(), err
}
