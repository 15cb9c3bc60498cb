package calcserver

import (
	"bufio"
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"-2.5", -2.5},
		{"+3", 3},
		{"1.23", 1.23},
		{"1.", 1},
		{".5", 0.5},
		{"1e3", 1000},
		{"2E-2", 0.02},
		{"1e400", math.Inf(1)},
		{"-1e400", math.Inf(-1)},
		{"inf", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOperand(tt.in)
			if err != nil {
				t.Fatalf("ParseOperand(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOperand(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOperand_NaN(t *testing.T) {
	for _, in := range []string{"nan", "NaN", "NAN", "-nan", "+NaN", "-NAN"} {
		got, err := ParseOperand(in)
		if err != nil {
			t.Fatalf("ParseOperand(%q) error = %v", in, err)
		}
		if !math.IsNaN(got) {
			t.Errorf("ParseOperand(%q) = %v, want NaN", in, got)
		}
	}
}

func TestParseOperand_Invalid(t *testing.T) {
	for _, in := range []string{"abc", "", "1,5", "0x1p4", "1_000", "--1", "1e", ".", "--nan", "+-nan", "nan1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseOperand(in)
			if err == nil {
				t.Fatalf("ParseOperand(%q) expected error", in)
			}
			if !errors.Is(err, ErrInvalidOperand) {
				t.Errorf("ParseOperand(%q) error = %v, want ErrInvalidOperand", in, err)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	// Non-constant operands so the sum is rounded at float64 precision.
	a, b := 0.1, 0.2

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{5, "5"},
		{25, "25"},
		{-3.5, "-3.5"},
		{1.23, "1.23"},
		{a + b, "0.30000000000000004"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	if err := WriteLine(w, "X = 1"); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := buf.String(); got != "X = 1\r\n" {
		t.Errorf("WriteLine() wrote %q, want %q", got, "X = 1\r\n")
	}
}

func TestResponseFormats(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"add", formatUpdate("+=", 5, 5), "X += 5 = 5"},
		{"subtract", formatUpdate("-=", 25, 0), "X -= 25 = 0"},
		{"power", formatUpdate("^=", 2, 25), "X ^= 2 = 25"},
		{"show", formatShow(0), "X = 0"},
		{"unknown", formatUnknown("FOO"), "Unknown command: FOO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
