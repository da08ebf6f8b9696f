// Package clock abstracts "now" so every engine run is a pure function of
// its input tables and an injected time. Tests use Fixed for determinism.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real returns the actual system time. Use at entry points only.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (c Fixed) Now() time.Time { return c.T }

// At is shorthand for a Fixed clock at t.
func At(t time.Time) Fixed { return Fixed{T: t} }
