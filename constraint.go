// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

import "errors"

// Constraint defines how a component's length along a Layout's axis is
// calculated.
type Constraint uint8

const (
	// Flexible components try to keep their preferred length.  If there
	// isn't enough space all flexible components shrink proportionally
	// to the amount their preferred length exceeds their minimum.
	// Flexible is the default constraint.
	Flexible Constraint = iota

	// Fix components always get their preferred length (or their
	// minimum length if it is bigger).
	Fix

	// Vary components ignore their preferred length, they get whatever
	// is left.  Only one vary component is allowed per layout.
	Vary
)

func (c Constraint) String() string {
	switch c {
	case Flexible:
		return "flexible"
	case Fix:
		return "fix"
	case Vary:
		return "vary"
	default:
		return "invalid constraint"
	}
}

// Policy decides what a layout pass does if the available length is
// smaller than the fixed lengths plus the vary component's minimum.
type Policy uint8

const (
	// Strict aborts the layout pass with ErrInsufficientSpace leaving
	// all component bounds untouched.
	Strict Policy = iota

	// Lenient lays out anyway; resulting lengths may be negative and
	// are clamped when placed.
	Lenient
)

// ErrAxis is returned by New for an axis which is none of X, Y, Line or
// Page.
var ErrAxis = errors.New("box: new: invalid axis")

// ErrInsufficientSpace is returned by a strict layout pass if the
// available length can't hold the fixed components and the vary
// component's minimum.  Nothing was laid out; the next pass retries.
var ErrInsufficientSpace = errors.New("box: layout: insufficient space")

// ErrVaryAmbiguity is returned from adding a second vary component to a
// Layout which is not in legacy mode.
var ErrVaryAmbiguity = errors.New("box: add: ambiguous vary component")

// ErrConstraint is returned from adding a component with an unknown
// constraint.
var ErrConstraint = errors.New("box: add: invalid constraint")
