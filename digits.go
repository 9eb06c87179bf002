// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isclose

// Digits64 returns the largest significand up to [MaxSignificand64] for which
// [Float64] reports a and b as close, or 0 if they are not close at any.
func Digits64(a, b float64) uint {
	for s := MaxSignificand64; s >= MinSignificand; s-- {
		if Float64(a, b, s) {
			return s
		}
	}
	return 0
}

// Digits32 returns the largest significand up to [MaxSignificand32] for which
// [Float32] reports a and b as close, or 0 if they are not close at any.
func Digits32(a, b float32) uint {
	for s := MaxSignificand32; s >= MinSignificand; s-- {
		if Float32(a, b, s) {
			return s
		}
	}
	return 0
}
