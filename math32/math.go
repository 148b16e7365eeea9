// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, quaternion and matrix
// package for the 3D transforms of an orbital hierarchy.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi = math.Pi

	// TwoPi is a full turn in radians.
	TwoPi = 2 * math.Pi
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	if x > y {
		return x
	}
	return y
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Mod returns the floating-point remainder of x/y.
// The result has the sign of x.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// NaN returns an IEEE 754 “not-a-number” value.
func NaN() float32 {
	return math32.NaN()
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(f float32) bool {
	return math32.IsNaN(f)
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func IsInf(f float32, sign int) bool {
	return math32.IsInf(f, sign)
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float32) bool {
	return !IsNaN(f) && !IsInf(f, 0)
}

// WrapAngle returns the angle a (radians) reduced to [0, 2π).
func WrapAngle(a float32) float32 {
	a = Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// float rounding of a tiny negative value can land exactly on 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}
