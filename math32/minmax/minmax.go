// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "cogentcore.org/isclose/math32"

// Uint represents a closed min / max range for uint values,
// such as the valid significand range of a floating-point width.
type Uint struct {
	Min uint
	Max uint
}

// ClipValue clips given value within Min / Max range
func (mr Uint) ClipValue(val uint) uint {
	return math32.Clamp(val, mr.Min, mr.Max)
}
