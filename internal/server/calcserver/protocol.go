package calcserver

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Greeting is sent to every client immediately after accept.
const Greeting = "ADD 1.23/SUBTRACT 1.23/POWER 1.23/SHOW"

// Command names. Matching is case-sensitive.
const (
	CmdAdd      = "ADD"
	CmdSubtract = "SUBTRACT"
	CmdPower    = "POWER"
	CmdShow     = "SHOW"
)

const lineEnding = "\r\n"

var (
	// ErrInvalidOperand is returned when a command operand is not a number.
	// It terminates the session.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrInvalidEncoding is returned when an input line is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input line is not valid UTF-8")
)

// ParseOperand parses a command operand as a float64.
//
// Decimal notation, exponents and the words inf, infinity and nan (any case,
// optionally signed) are accepted. Magnitudes beyond float64 range saturate to ±Inf or 0.
// Hexadecimal floats and digit separators are rejected.
func ParseOperand(tok string) (float64, error) {
	if strings.ContainsAny(tok, "xX_") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, tok)
	}
	// strconv rejects a sign in front of nan.
	if unsigned := strings.TrimLeft(tok, "+-"); len(tok)-len(unsigned) == 1 && strings.EqualFold(unsigned, "nan") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, tok)
	}
	return v, nil
}

// FormatValue renders v the way responses print numbers: the shortest
// decimal that round-trips, never in exponent form, with NaN, inf and -inf
// for the special values.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteLine writes s followed by "\r\n".
func WriteLine(w *bufio.Writer, s string) error {
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	_, err := w.WriteString(lineEnding)
	return err
}

func formatUpdate(op string, operand, result float64) string {
	return "X " + op + " " + FormatValue(operand) + " = " + FormatValue(result)
}

func formatShow(v float64) string {
	return "X = " + FormatValue(v)
}

func formatUnknown(name string) string {
	return "Unknown command: " + name
}
