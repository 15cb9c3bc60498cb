// Package cell provides the shared numeric state for Calculon.
package cell

import (
	"math"
	"sync"
)

// Cell is a mutex-guarded float64 shared by all sessions.
//
// The zero value is ready to use and holds 0.
type Cell struct {
	mu    sync.Mutex
	value float64
}

// New creates a cell holding the given initial value.
func New(initial float64) *Cell {
	return &Cell{value: initial}
}

// Add adds operand to the value and returns the new value.
func (c *Cell) Add(operand float64) float64 {
	return c.apply(func(v float64) float64 { return v + operand })
}

// Subtract subtracts operand from the value and returns the new value.
func (c *Cell) Subtract(operand float64) float64 {
	return c.apply(func(v float64) float64 { return v - operand })
}

// Power raises the value to exponent and returns the new value.
// It follows math.Pow, so a negative base with a non-integer exponent yields NaN.
func (c *Cell) Power(exponent float64) float64 {
	return c.apply(func(v float64) float64 { return math.Pow(v, exponent) })
}

// Show returns the current value.
func (c *Cell) Show() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Cell) apply(fn func(float64) float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = fn(c.value)
	return c.value
}
