// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

// Axis is the direction along which a Layout distributes its
// components.  X and Y are physical axes while Line and Page are
// logical axes which are resolved against a container's Orientation.
type Axis uint8

const (
	// X lays out components left to right.
	X Axis = iota

	// Y lays out components top to bottom.
	Y

	// Line lays out components in the direction of a line of text as
	// determined by a container's Orientation.
	Line

	// Page lays out components in the direction lines flow across a
	// page as determined by a container's Orientation.
	Page
)

// Valid returns true iff a is one of X, Y, Line or Page.
func (a Axis) Valid() bool { return a <= Page }

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Line:
		return "Line"
	case Page:
		return "Page"
	default:
		return "invalid axis"
	}
}

// Orientation is the flow of a container's content.  Its zero value is
// Horizontal.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Resolve returns the physical axis of given axis a for given
// orientation o.  Line resolves to X for a horizontal orientation and
// to Y otherwise, Page the other way around.  X and Y are returned
// unmodified.
func Resolve(a Axis, o Orientation) Axis {
	switch a {
	case Line:
		if o == Horizontal {
			return X
		}
		return Y
	case Page:
		if o == Horizontal {
			return Y
		}
		return X
	}
	return a
}

// physical resolves logical axes against the default orientation.
func (a Axis) physical() Axis { return Resolve(a, Horizontal) }

// Dim is the width and height of a component or container.
type Dim struct {
	Width, Height int
}

// Insets are the margins of a container's content area.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Rect is the position and dimension of a component inside its
// container.
type Rect struct {
	X, Y, Width, Height int
}

// Primary returns d's width for X and d's height for Y.
func (a Axis) Primary(d Dim) int {
	if a.physical() == X {
		return d.Width
	}
	return d.Height
}

// Secondary returns d's height for X and d's width for Y.
func (a Axis) Secondary(d Dim) int {
	if a.physical() == X {
		return d.Height
	}
	return d.Width
}

// PrimaryInset returns for X the left inset if leading is true
// otherwise the right inset; for Y the top respectively the bottom
// inset.
func (a Axis) PrimaryInset(in Insets, leading bool) int {
	if a.physical() == X {
		if leading {
			return in.Left
		}
		return in.Right
	}
	if leading {
		return in.Top
	}
	return in.Bottom
}

// SecondaryInset returns for X the top inset if leading is true
// otherwise the bottom inset; for Y the left respectively the right
// inset.
func (a Axis) SecondaryInset(in Insets, leading bool) int {
	if a.physical() == X {
		if leading {
			return in.Top
		}
		return in.Bottom
	}
	if leading {
		return in.Left
	}
	return in.Right
}

// Dim creates a dimension from given primary and secondary lengths.
func (a Axis) Dim(primary, secondary int) Dim {
	if a.physical() == X {
		return Dim{Width: primary, Height: secondary}
	}
	return Dim{Width: secondary, Height: primary}
}

// Rect creates a rectangle from given primary/secondary offsets and
// lengths.
func (a Axis) Rect(pOff, sOff, pLen, sLen int) Rect {
	if a.physical() == X {
		return Rect{X: pOff, Y: sOff, Width: pLen, Height: sLen}
	}
	return Rect{X: sOff, Y: pOff, Width: sLen, Height: pLen}
}
