// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isclose

import "cogentcore.org/isclose/math32/minmax"

// Relative tolerance scale factors, approximately the smallest meaningful
// difference between two values of each width.
const (
	// Epsilon64 is about 10^-15 for the 53-bit significand of a float64.
	Epsilon64 float64 = 1e-15

	// Epsilon32 is about 10^-7 for the 24-bit significand of a float32.
	Epsilon32 float32 = 1e-7
)

// Significand bounds. A significand outside of the range for its width
// is clamped to the nearest bound.
const (
	MinSignificand   uint = 1
	MaxSignificand64 uint = 15
	MaxSignificand32 uint = 7
)

var (
	significand64 = minmax.Uint{Min: MinSignificand, Max: MaxSignificand64}
	significand32 = minmax.Uint{Min: MinSignificand, Max: MaxSignificand32}
)

// toleranceTable holds 10^-n at index n.
var toleranceTable = [16]float64{
	1,
	1e-1,
	1e-2,
	1e-3,
	1e-4,
	1e-5,
	1e-6,
	1e-7,
	1e-8,
	1e-9,
	1e-10,
	1e-11,
	1e-12,
	1e-13,
	1e-14,
	1e-15,
}

// ClampSignificand64 clamps the given significand into
// [MinSignificand, MaxSignificand64].
func ClampSignificand64(significand uint) uint {
	return significand64.ClipValue(significand)
}

// ClampSignificand32 clamps the given significand into
// [MinSignificand, MaxSignificand32].
func ClampSignificand32(significand uint) uint {
	return significand32.ClipValue(significand)
}

// Tolerance64 returns the absolute tolerance 10^-significand used by
// [Float64], after clamping the significand.
func Tolerance64(significand uint) float64 {
	return toleranceTable[ClampSignificand64(significand)]
}

// Tolerance32 returns the absolute tolerance 10^-significand used by
// [Float32], after clamping the significand.
func Tolerance32(significand uint) float32 {
	return float32(toleranceTable[ClampSignificand32(significand)])
}
