// Package cell provides the shared numeric state for Calculon.
//
// A Cell holds a single float64 that every client session reads and
// mutates. Each operation runs as one critical section:
//
//   - Add, Subtract, Power: read-modify-write, returning the new value
//   - Show: read without mutation
//
// The cell performs no validation. NaN and ±Inf produced by an
// operation are stored and returned like any other value.
package cell
