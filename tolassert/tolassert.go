// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"fmt"
	"math"
	"reflect"

	"cogentcore.org/isclose"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// DefaultSignificand is the significand used by [Equal],
// corresponding to an absolute tolerance of 0.001.
const DefaultSignificand = 3

// Equal asserts that the given two numbers are about equal to each other,
// using [DefaultSignificand].
func Equal[T constraints.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return Close(t, expected, actual, DefaultSignificand, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given absolute tolerance value.
func EqualTol[T constraints.Float](t assert.TestingT, expected T, actual, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if expected == actual {
		return true
	}
	if math.Abs(float64(actual-expected)) > float64(tolerance) || math.IsNaN(float64(actual)) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// Close asserts that the given two numbers are close to within the given
// number of significant digits, as determined by [isclose.Float32] or
// [isclose.Float64] depending on the width of T.
func Close[T constraints.Float](t assert.TestingT, expected T, actual T, significand uint, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if isClose(expected, actual, significand) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not close to %d significant digits: \n"+
		"expected: %v\n"+
		"actual  : %v\n"+
		"agrees  : %d digits", significand, expected, actual, digits(expected, actual)), msgAndArgs...)
}

// NotClose asserts that the given two numbers are not close to within the
// given number of significant digits.
func NotClose[T constraints.Float](t assert.TestingT, expected T, actual T, significand uint, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !isClose(expected, actual, significand) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Should not be close to %d significant digits: \n"+
		"expected: %v\n"+
		"actual  : %v", significand, expected, actual), msgAndArgs...)
}

// is32 returns whether T is single precision,
// including named types whose underlying type is float32.
func is32[T constraints.Float]() bool {
	var zero T
	return reflect.TypeOf(zero).Kind() == reflect.Float32
}

func isClose[T constraints.Float](a, b T, significand uint) bool {
	if is32[T]() {
		return isclose.Float32(float32(a), float32(b), significand)
	}
	return isclose.Float64(float64(a), float64(b), significand)
}

func digits[T constraints.Float](a, b T) uint {
	if is32[T]() {
		return isclose.Digits32(float32(a), float32(b))
	}
	return isclose.Digits64(float64(a), float64(b))
}
