package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/calculon-go/internal/cli/connection"
)

// Prompt is printed before each input line.
const Prompt = "calculon> "

// Executor sends one command line and returns the response.
type Executor interface {
	Execute(line string) (string, error)
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	exec      Executor
	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithHistory sets the history store.
func WithHistory(h *History) Option {
	return func(r *REPL) {
		r.history = h
	}
}

// New creates a REPL that sends commands to exec.
func New(exec Executor, opts ...Option) *REPL {
	r := &REPL{
		exec:      exec,
		input:     os.Stdin,
		output:    os.Stdout,
		completer: NewCompleter(),
		history:   NewHistory(DefaultHistoryFile()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the REPL loop. It returns nil on EOF or exit, and an error
// when the server ends the session.
func (r *REPL) Run() (err error) {
	if loadErr := r.history.Load(); loadErr != nil {
		fmt.Fprintf(r.output, "warning: load history: %v\n", loadErr)
	}
	defer func() {
		if saveErr := r.history.Save(); saveErr != nil && err == nil {
			err = fmt.Errorf("save history: %w", saveErr)
		}
	}()

	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, Prompt)

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}

		line = strings.TrimSpace(line)
		if line == "" {
			if readErr != nil {
				fmt.Fprintln(r.output)
				return nil
			}
			continue
		}

		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}

		if err := r.execute(line); err != nil {
			if errors.Is(err, connection.ErrSessionClosed) {
				return err
			}
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}

		if readErr != nil {
			return nil
		}
	}
}

func (r *REPL) execute(line string) error {
	fields := strings.Fields(line)

	switch fields[0] {
	case "help":
		prefix := ""
		if len(fields) > 1 {
			prefix = fields[1]
		}
		for _, cmd := range r.completer.Complete(prefix) {
			fmt.Fprintln(r.output, cmd)
		}
		return nil
	case "history":
		for i, entry := range r.history.Entries() {
			fmt.Fprintf(r.output, "%4d  %s\n", i+1, entry)
		}
		return nil
	}

	resp, err := r.exec.Execute(line)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.output, resp)
	return nil
}
