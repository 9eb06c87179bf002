// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harness runs tables of closeness cases and reports
// whether each one produced the expected result.
package harness

import (
	"errors"
	"fmt"
	"math"

	"cogentcore.org/isclose"
	"cogentcore.org/isclose/math32"
)

// ErrInvalidWidth is returned for a case whose width is not 32 or 64.
var ErrInvalidWidth = errors.New("invalid width")

// Case is one closeness comparison with its expected result.
type Case struct {

	// Name is an optional description of the case.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// A is the first operand.
	A float64 `toml:"a" yaml:"a"`

	// B is the second operand.
	B float64 `toml:"b" yaml:"b"`

	// Significand is the number of significant digits requested.
	Significand uint `toml:"significand" yaml:"significand"`

	// Width is the floating-point width to compare in: 32 or 64.
	// Zero means 64.
	Width int `toml:"width,omitempty" yaml:"width,omitempty"`

	// Expected is the expected result of the comparison.
	Expected bool `toml:"expected" yaml:"expected"`
}

// Is32 returns whether the case compares in single precision.
func (c *Case) Is32() bool {
	return c.Width == 32
}

// Validate returns an error if the case width is not supported.
func (c *Case) Validate() error {
	switch c.Width {
	case 0, 32, 64:
		return nil
	}
	return fmt.Errorf("case %q: %w %d", c.Name, ErrInvalidWidth, c.Width)
}

// Eval returns the result of comparing A and B in the case width.
func (c *Case) Eval() bool {
	if c.Is32() {
		return isclose.Float32(float32(c.A), float32(c.B), c.Significand)
	}
	return isclose.Float64(c.A, c.B, c.Significand)
}

// Digits returns the number of significant digits A and B agree to
// in the case width.
func (c *Case) Digits() uint {
	if c.Is32() {
		return isclose.Digits32(float32(c.A), float32(c.B))
	}
	return isclose.Digits64(c.A, c.B)
}

// Rounded returns A and B rounded to the case significand,
// after clamping it for the case width.
func (c *Case) Rounded() (a, b float64) {
	if c.Is32() {
		prec := int(isclose.ClampSignificand32(c.Significand))
		return float64(math32.Truncate(float32(c.A), prec)), float64(math32.Truncate(float32(c.B), prec))
	}
	prec := int(isclose.ClampSignificand64(c.Significand))
	return math32.Truncate64(c.A, prec), math32.Truncate64(c.B, prec)
}

// String returns the comparison as a call expression.
func (c *Case) String() string {
	if c.Is32() {
		return fmt.Sprintf("Float32(%.9g, %.9g, %d)", float32(c.A), float32(c.B), c.Significand)
	}
	return fmt.Sprintf("Float64(%.17g, %.17g, %d)", c.A, c.B, c.Significand)
}

const expected = 0.053803

// DefaultCases returns the standard table of closeness cases.
func DefaultCases() []Case {
	inf, nan := math.Inf(1), math.NaN()
	return []Case{
		{Name: "equal to", A: 0.053803, B: expected, Significand: 6, Expected: true},
		{Name: "less than", A: expected, B: 0.053721, Significand: 6},
		{Name: "greater than", A: expected, B: 0.053951, Significand: 6},
		{Name: "negative equal to", A: -0.053803, B: -expected, Significand: 6, Expected: true},
		{Name: "negative greater than", A: -expected, B: -0.053721, Significand: 6},
		{Name: "negative less than", A: -expected, B: -0.053951, Significand: 6},
		{Name: "infinity is equal to itself", A: inf, B: inf, Significand: 6, Expected: true},
		{Name: "infinities of opposite sign", A: inf, B: -inf, Significand: 6},
		{Name: "NaN is not equal to any value", A: nan, B: 0, Significand: 6},
		{Name: "NaN is not equal to itself", A: nan, B: nan, Significand: 6},
		{Name: "no precision", A: 1e6, B: 1e6 + 1, Significand: 0},
		{Name: "very close but small tolerance", A: 1e-6, B: 1e-6 + 1e-9, Significand: 6, Expected: true},
		{Name: "large significand", A: 123456789.123456, B: 123456789.123456, Significand: 15, Expected: true},
		{Name: "differentiated large significand", A: 123456789.123456, B: 123456789.123457, Significand: 15},
		{Name: "small numbers with large tolerance", A: 1e-15, B: 2e-15, Significand: 15, Expected: true},
		{Name: "single equal to", A: 0.053803, B: expected, Significand: 6, Width: 32, Expected: true},
		{Name: "single less than", A: expected, B: 0.053721, Significand: 6, Width: 32},
		{Name: "single significand is clamped to 7", A: 0, B: 5e-7, Significand: 15, Width: 32},
		{Name: "single NaN", A: nan, B: nan, Significand: 6, Width: 32},
	}
}
