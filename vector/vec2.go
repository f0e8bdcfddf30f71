// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector implements the 2D double-precision vector primitive
// used throughout the gravity engine.
package vector

import "math"

// Vec2 is an ordered pair (X, Y) of double-precision components.
// It is a pure value type: every operation returns a new Vec2 rather
// than mutating the receiver, so a Vec2 is trivially copyable and safe
// to share across goroutines without synchronization.
type Vec2 struct {
	X float64
	Y float64
}

// Zero is the additive identity.
var Zero = Vec2{X: 0, Y: 0}

// New returns a Vec2 with the given components.
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by scalar s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSq returns the squared Euclidean norm, v.Dot(v).
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean norm.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Normalize returns v scaled to unit length, or fallback when v's length
// is exactly zero.
func (v Vec2) Normalize(fallback Vec2) Vec2 {
	l := v.Length()
	if l == 0 {
		return fallback
	}
	return v.Div(l)
}
