package cell

import (
	"math"
	"sync"
	"testing"
)

func TestCell_ZeroValue(t *testing.T) {
	var c Cell
	if got := c.Show(); got != 0 {
		t.Errorf("Show() = %v, want 0", got)
	}
}

func TestNew(t *testing.T) {
	c := New(2.5)
	if got := c.Show(); got != 2.5 {
		t.Errorf("Show() = %v, want 2.5", got)
	}
}

func TestCell_Operations(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		op      func(*Cell) float64
		want    float64
	}{
		{"add", 1, func(c *Cell) float64 { return c.Add(2) }, 3},
		{"add negative", 1, func(c *Cell) float64 { return c.Add(-4) }, -3},
		{"subtract", 10, func(c *Cell) float64 { return c.Subtract(2.5) }, 7.5},
		{"power", 3, func(c *Cell) float64 { return c.Power(2) }, 9},
		{"power fractional", 16, func(c *Cell) float64 { return c.Power(0.5) }, 4},
		{"power zero base", 0, func(c *Cell) float64 { return c.Power(3) }, 0},
		{"power zero exponent", 7, func(c *Cell) float64 { return c.Power(0) }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.initial)
			got := tt.op(c)
			if got != tt.want {
				t.Errorf("result = %v, want %v", got, tt.want)
			}
			if stored := c.Show(); stored != tt.want {
				t.Errorf("Show() = %v, want %v", stored, tt.want)
			}
		})
	}
}

func TestCell_PowerNaN(t *testing.T) {
	c := New(-8)
	if got := c.Power(0.5); !math.IsNaN(got) {
		t.Errorf("Power(0.5) on negative base = %v, want NaN", got)
	}
	// NaN is stored and propagates.
	if got := c.Add(1); !math.IsNaN(got) {
		t.Errorf("Add(1) after NaN = %v, want NaN", got)
	}
}

func TestCell_Infinity(t *testing.T) {
	c := New(10)
	if got := c.Power(400); !math.IsInf(got, 1) {
		t.Errorf("Power(400) = %v, want +Inf", got)
	}
	if got := c.Subtract(math.Inf(1)); !math.IsNaN(got) {
		t.Errorf("Inf - Inf = %v, want NaN", got)
	}
}

func TestCell_Identity(t *testing.T) {
	c := New(42.125)

	if got := c.Add(0); got != 42.125 {
		t.Errorf("Add(0) = %v, want 42.125", got)
	}
	if got := c.Subtract(0); got != 42.125 {
		t.Errorf("Subtract(0) = %v, want 42.125", got)
	}
	if got := c.Power(1); got != 42.125 {
		t.Errorf("Power(1) = %v, want 42.125", got)
	}
}

func TestCell_ShowDoesNotMutate(t *testing.T) {
	c := New(0)
	c.Add(5)
	for i := 0; i < 10; i++ {
		if got := c.Show(); got != 5 {
			t.Fatalf("Show() = %v, want 5", got)
		}
	}
	if got := c.Power(2); got != 25 {
		t.Errorf("Power(2) = %v, want 25", got)
	}
}

func TestCell_SequentialFold(t *testing.T) {
	c := New(0)
	c.Add(5)
	c.Power(2)
	c.Subtract(25)
	if got := c.Show(); got != 0 {
		t.Errorf("Show() = %v, want 0", got)
	}
}

func TestCell_ConcurrentAdd(t *testing.T) {
	c := New(0)

	const (
		workers = 8
		perWork = 1000
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWork; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := c.Show(); got != workers*perWork {
		t.Errorf("Show() = %v, want %d", got, workers*perWork)
	}
}

func TestCell_ConcurrentMixed(t *testing.T) {
	c := New(0)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				c.Add(3)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				c.Subtract(1)
				_ = c.Show()
			}
		}()
	}
	wg.Wait()

	// 4*500*3 - 4*500*1; integer-valued so order does not matter.
	if got := c.Show(); got != 4000 {
		t.Errorf("Show() = %v, want 4000", got)
	}
}
