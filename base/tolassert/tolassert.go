// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T constraints.Float](t assert.TestingT, expected, actual, tol T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	if diff > tol || diff != diff {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal[T constraints.Float](t assert.TestingT, expected, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}
