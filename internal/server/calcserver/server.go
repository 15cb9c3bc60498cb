package calcserver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/calculon-go/internal/core/cell"
	"github.com/yndnr/calculon-go/internal/telemetry/logger"
	"github.com/yndnr/calculon-go/internal/telemetry/metric"
)

// DefaultAddress is the default listen address of the protocol server.
const DefaultAddress = "127.0.0.1:4673"

const (
	minAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff = time.Second
)

// Config holds the protocol server configuration.
type Config struct {
	// Address is the TCP address to listen on.
	Address string
	// AcceptRate limits accepted connections per second. 0 disables the limit.
	AcceptRate float64
	// AcceptBurst is the burst size for AcceptRate (minimum 1).
	AcceptBurst int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Address: DefaultAddress,
	}
}

// Server accepts connections and runs one command session per connection.
type Server struct {
	cfg     *Config
	cell    *cell.Cell
	handler *CommandHandler
	logger  logger.Logger
	metrics *metric.Registry
	limiter *rate.Limiter

	ln      net.Listener
	running atomic.Bool
	wg      sync.WaitGroup

	connsMu sync.Mutex
	conns   map[*Conn]struct{}
}

// Conn is a single client connection.
type Conn struct {
	id      string
	netConn net.Conn
	br      *bufio.Reader
	bw      *bufio.Writer
	log     logger.Logger

	closed atomic.Bool
}

// newConn wraps c in a session. base carries the server logger; the
// session id is attached to the context and to every log line.
func newConn(base context.Context, c net.Conn) *Conn {
	id := ulid.Make().String()
	ctx := logger.WithSessionID(base, id)
	return &Conn{
		id:      id,
		netConn: c,
		br:      bufio.NewReader(c),
		bw:      bufio.NewWriter(c),
		log:     logger.L(ctx).With("remote", c.RemoteAddr().String()).WithContext(ctx),
	}
}

// ID returns the session identifier used in logs.
func (c *Conn) ID() string {
	return c.id
}

// Close closes the underlying connection. It is safe to call more than once.
func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.netConn.Close()
}

// RemoteAddr returns the peer address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.netConn.RemoteAddr()
}

func (c *Conn) logger() logger.Logger {
	if c.log == nil {
		return logger.Default()
	}
	return c.log
}

// New creates a protocol server together with the shared cell it serves.
// When metrics is non-nil the cell value is registered as a gauge.
func New(cfg *Config, log logger.Logger, metrics *metric.Registry) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.Default()
	}

	c := cell.New(0)

	s := &Server{
		cfg:     cfg,
		cell:    c,
		logger:  log,
		metrics: metrics,
		conns:   make(map[*Conn]struct{}),
	}
	s.handler = NewCommandHandler(c, metrics)

	if cfg.AcceptRate > 0 {
		burst := cfg.AcceptBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.AcceptRate), burst)
	}

	if err := metrics.RegisterValue(c.Show); err != nil {
		log.Warn("register value metric", "error", err)
	}

	return s
}

// Cell returns the shared cell served by this server.
func (s *Server) Cell() *cell.Cell {
	return s.cell
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Address, err)
	}
	s.ln = ln
	s.running.Store(true)
	return nil
}

// Addr returns the bound listener address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// ListenAndServe binds the configured address and serves until the listener
// is closed or ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve runs the accept loop. Failed accepts are logged and retried with
// backoff; Serve only returns once the listener is closed or ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return errors.New("calcserver: Serve called before Listen")
	}

	s.wg.Add(1)
	defer s.wg.Done()

	stop := context.AfterFunc(ctx, func() {
		s.running.Store(false)
		_ = s.ln.Close()
	})
	defer stop()

	s.logger.Info("calc server listening", "address", s.ln.Addr().String())

	// Sessions outlive ctx cancellation until Shutdown closes them.
	sessionCtx := logger.WithLogger(context.WithoutCancel(ctx), s.logger)

	var backoff time.Duration
	for {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil
			}
		}

		c, err := s.ln.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}

			s.metrics.AcceptError()
			if backoff == 0 {
				backoff = minAcceptBackoff
			} else {
				backoff *= 2
			}
			if backoff > maxAcceptBackoff {
				backoff = maxAcceptBackoff
			}
			s.logger.Warn("accept failed", "error", err, "retry_in", backoff)

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			continue
		}
		backoff = 0

		conn := newConn(sessionCtx, c)
		if !s.track(conn) {
			_ = conn.Close()
			return nil
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(conn)
			s.serveConn(conn)
		}()
	}
}

// Shutdown stops accepting, closes open sessions and waits for their
// goroutines to finish or ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.running.Store(false)

	var firstErr error
	if s.ln != nil {
		if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			firstErr = err
		}
	}

	s.connsMu.Lock()
	for c := range s.conns {
		_ = c.Close()
	}
	s.connsMu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return firstErr
}

// Running reports whether the server is bound and accepting connections.
func (s *Server) Running() bool {
	return s.running.Load()
}

// ActiveSessions returns the number of open sessions.
func (s *Server) ActiveSessions() int {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	return len(s.conns)
}

func (s *Server) track(c *Conn) bool {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	if !s.running.Load() {
		return false
	}
	s.conns[c] = struct{}{}
	return true
}

func (s *Server) untrack(c *Conn) {
	s.connsMu.Lock()
	delete(s.conns, c)
	s.connsMu.Unlock()
}

func (s *Server) serveConn(c *Conn) {
	defer c.Close()

	s.metrics.SessionOpened()
	defer s.metrics.SessionClosed()

	c.logger().Debug("session opened")

	err := s.runSession(c)
	switch {
	case err == nil:
		c.logger().Debug("session closed by peer")
	case errors.Is(err, ErrInvalidOperand), errors.Is(err, ErrInvalidEncoding):
		c.logger().Warn("session terminated", "error", err)
	case c.closed.Load():
		c.logger().Debug("session closed by server")
	default:
		c.logger().Debug("session ended", "error", err)
	}
}

// runSession writes the greeting and processes lines until EOF or a fatal error.
// The response to each line is flushed before the next line is read.
func (s *Server) runSession(c *Conn) error {
	if err := WriteLine(c.bw, Greeting); err != nil {
		return err
	}
	if err := c.bw.Flush(); err != nil {
		return err
	}

	for {
		line, readErr := c.br.ReadString('\n')
		if len(line) > 0 {
			if !utf8.ValidString(line) {
				return ErrInvalidEncoding
			}
			if err := s.handler.Handle(c, line); err != nil {
				return err
			}
			if err := c.bw.Flush(); err != nil {
				return err
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}
