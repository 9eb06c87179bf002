// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isclose determines whether two floating-point numbers are equal
// to within a given number of significant decimal digits.
//
// The allowed difference is the larger of an absolute tolerance of
// 10^-significand and a relative tolerance of epsilon times the larger
// magnitude of the two operands. The significand is clamped to [1, 15] for
// float64 and [1, 7] for float32; it is never rejected. NaN is never close
// to anything, and infinities are only close to themselves.
//
// All functions are pure and safe for concurrent use.
package isclose

import (
	"math"

	"cogentcore.org/isclose/math32"
)

// Float64 returns whether a and b are close to within the given number
// of significant decimal digits, using [Epsilon64] for the relative tolerance.
func Float64(a, b float64, significand uint) bool {
	return Float64Rel(a, b, significand, Epsilon64)
}

// Float32 returns whether a and b are close to within the given number
// of significant decimal digits, using [Epsilon32] for the relative tolerance.
// The comparison is done entirely in float32 arithmetic.
func Float32(a, b float32, significand uint) bool {
	return Float32Rel(a, b, significand, Epsilon32)
}

// Float64Rel is [Float64] with the given epsilon as the relative
// tolerance scale factor instead of [Epsilon64].
func Float64Rel(a, b float64, significand uint, epsilon float64) bool {
	// also handles +0 == -0 and same-signed infinities
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	absolute := Tolerance64(significand)
	relative := epsilon * math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= math.Max(relative, absolute)
}

// Float32Rel is [Float32] with the given epsilon as the relative
// tolerance scale factor instead of [Epsilon32].
func Float32Rel(a, b float32, significand uint, epsilon float32) bool {
	if a == b {
		return true
	}
	if !math32.IsFinite(a) || !math32.IsFinite(b) {
		return false
	}
	absolute := Tolerance32(significand)
	relative := epsilon * math32.Max(math32.Abs(a), math32.Abs(b))
	return math32.Abs(a-b) <= math32.Max(relative, absolute)
}
