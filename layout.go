// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Component is a laid out element of a Container.  Its dynamic type
// must be comparable since a Layout keeps track of its components'
// constraints by component.
type Component interface {

	// MinSize is the smallest dimension a component wants to have.
	MinSize() Dim

	// PrefSize is the dimension a component would like to have.
	PrefSize() Dim

	// Visible reports if a component takes part in the layout; an
	// invisible component is placed with zero length.
	Visible() bool

	// SetBounds is called by a layout pass with the position and
	// dimension of a component inside its container.
	SetBounds(Rect)
}

// Container provides a Layout with the components it lays out and the
// area they are laid out in.
type Container interface {

	// Len is the number of components of a container.
	Len() int

	// Component returns the i-th component of a container.
	Component(i int) Component

	// Size is the dimension of a container including its insets.
	Size() Dim

	// Insets are the margins around a container's components.
	Insets() Insets

	// Orientation resolves a Layout's logical axis.
	Orientation() Orientation
}

// Layout arranges the components of a container along an axis
// according to the constraints they were added with (see Constraint).
// Calculated lengths are cached until a component is added or removed,
// the number of visible components changes, the container's length
// along the axis changes or the layout is invalidated.  The zero
// Layout is not usable, use New.
type Layout struct {

	// Policy decides what happens if there is not enough space for the
	// fix components and the vary component's minimum.  Defaults to
	// Strict.
	Policy Policy

	// KeepOnInvalidate prevents Invalidate from dropping the cached
	// lengths unless the number of visible components has changed.
	KeepOnInvalidate bool

	// LegacyVary allows to add more than one vary component in which
	// case the last visible one gets the remaining space while the other
	// vary components get their minimum length like fix components.
	LegacyVary bool

	// Trace is called with every assigned bound and skipped layout
	// pass if set.  It is called after a layout pass has released the
	// layout's lock.
	Trace func(format string, args ...interface{})

	mutex    sync.Mutex
	axis     Axis
	gap      int
	cc       map[Component]Constraint
	ss       []int
	fresh    bool
	primary  int
	visible  int
	resolved Axis
	pending  []traceLine
}

type traceLine struct {
	format string
	args   []interface{}
}

// New returns a layout arranging components along given axis separated
// by given gap.  New fails with ErrAxis if axis is not one of X, Y,
// Line or Page.
func New(axis Axis, gap int) (*Layout, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrAxis, axis)
	}
	return &Layout{axis: axis, gap: gap, cc: map[Component]Constraint{}}, nil
}

// Axis returns the (unresolved) axis given layout was created with.
func (l *Layout) Axis() Axis { return l.axis }

// Gap returns the space between two visible components.
func (l *Layout) Gap() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.gap
}

// SetGap sets the space between two visible components and invalidates
// calculated lengths.
func (l *Layout) SetGap(gap int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.gap = gap
	l.fresh = false
}

// Add registers given component with given constraint which defaults
// to Flexible.  Add fails with ErrVaryAmbiguity if c should vary while
// an other component already varies and LegacyVary is not set; it fails
// with ErrConstraint for an unknown constraint.
func (l *Layout) Add(c Component, cc ...Constraint) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	constraint := Flexible
	if len(cc) > 0 {
		constraint = cc[0]
	}
	if constraint > Vary {
		return fmt.Errorf("%w: %d", ErrConstraint, constraint)
	}
	if constraint == Vary && !l.LegacyVary {
		for other, oc := range l.cc {
			if oc == Vary && other != c {
				return ErrVaryAmbiguity
			}
		}
	}
	l.cc[c] = constraint
	l.fresh = false
	return nil
}

// Remove drops given component's constraint.
func (l *Layout) Remove(c Component) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	delete(l.cc, c)
	l.fresh = false
}

// Constraint returns the constraint given component was added with; an
// unknown component is Flexible.
func (l *Layout) Constraint(c Component) Constraint {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.cc[c]
}

// Constraints returns a copy of the components' constraints.
func (l *Layout) Constraints() map[Component]Constraint {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return maps.Clone(l.cc)
}

// Fresh returns true if the lengths calculated by the last layout pass
// are still valid.
func (l *Layout) Fresh() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.fresh
}

// Sizes returns a copy of the lengths calculated by the last
// successful layout pass.
func (l *Layout) Sizes() []int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return slices.Clone(l.ss)
}

// Invalidate drops the calculated lengths unless KeepOnInvalidate is
// set and the number of given container's visible components is the
// same as at the last layout pass.
func (l *Layout) Invalidate(ct Container) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if !l.KeepOnInvalidate || l.ss == nil || visible(ct) != l.visible {
		l.fresh = false
	}
}

// Layout calculates the lengths of given container's components if
// needed and sets their bounds.  Each component is placed at its
// offset along the axis with its calculated length and fills the
// container's content area along the other axis.  A container without
// width, height or available length along the axis is skipped.
// Layout fails with ErrInsufficientSpace for a Strict policy in which
// case no component's bounds are touched.
func (l *Layout) Layout(ct Container) error {
	l.mutex.Lock()
	defer l.unlock()

	size, in := ct.Size(), ct.Insets()
	if size.Width <= 0 || size.Height <= 0 {
		l.trace("box: skip layout: container size %dx%d",
			size.Width, size.Height)
		return nil
	}
	axis := Resolve(l.axis, ct.Orientation())
	primary := axis.Primary(size)
	mm := l.measures(ct, axis)
	vv := 0
	for _, m := range mm {
		if !m.Hidden {
			vv++
		}
	}

	if !l.fresh || axis != l.resolved || primary != l.primary ||
		vv != l.visible || len(l.ss) != len(mm) {

		available := primary - axis.PrimaryInset(in, true) -
			axis.PrimaryInset(in, false) - l.gapSize(vv)
		if available <= 0 {
			l.trace("box: skip layout: available length %d", available)
			return nil
		}
		ss, err := Distribute(mm, available, l.Policy)
		if err != nil {
			l.fresh = false
			l.trace("box: skip layout: %v", err)
			return err
		}
		l.ss, l.fresh, l.primary, l.visible = ss, true, primary, vv
		l.resolved = axis
	}

	l.place(ct, axis, size, in)
	return nil
}

func (l *Layout) measures(ct Container, axis Axis) []Measure {
	mm := make([]Measure, ct.Len())
	for i := range mm {
		c := ct.Component(i)
		if !c.Visible() {
			mm[i].Hidden = true
			continue
		}
		mm[i] = Measure{
			Min:        axis.Primary(c.MinSize()),
			Pref:       axis.Primary(c.PrefSize()),
			Constraint: l.cc[c],
		}
	}
	return mm
}

func (l *Layout) place(ct Container, axis Axis, size Dim, in Insets) {
	oo := Place(l.ss, axis.PrimaryInset(in, true), l.gap)
	sOff := axis.SecondaryInset(in, true)
	sLen := axis.Secondary(size) - sOff - axis.SecondaryInset(in, false)
	for i, s := range l.ss {
		r := axis.Rect(max(oo[i], 0), max(sOff, 0), max(s, 0), max(sLen, 0))
		l.trace("box: bounds %d: %+v", i, r)
		ct.Component(i).SetBounds(r)
	}
}

// MinSize returns the smallest dimension of given container: along the
// axis the sum of its visible components' minimum lengths, whereas a
// fix component contributes its preferred length, plus gaps and
// insets; along the other axis the biggest minimum plus insets.
func (l *Layout) MinSize(ct Container) Dim {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	axis := Resolve(l.axis, ct.Orientation())
	return l.sum(ct, axis, func(c Component) (int, int) {
		md := c.MinSize()
		if l.cc[c] == Fix {
			return axis.Primary(c.PrefSize()), axis.Secondary(md)
		}
		return axis.Primary(md), axis.Secondary(md)
	})
}

// PrefSize returns the preferred dimension of given container: along
// the axis the sum of its visible components' preferred lengths plus
// gaps and insets; along the other axis the biggest preferred length
// plus insets.
func (l *Layout) PrefSize(ct Container) Dim {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	axis := Resolve(l.axis, ct.Orientation())
	return l.sum(ct, axis, func(c Component) (int, int) {
		pref := c.PrefSize()
		return axis.Primary(pref), axis.Secondary(pref)
	})
}

// MaxSize is unbounded.
func (l *Layout) MaxSize() Dim {
	const unbounded = int(^uint(0) >> 1)
	return Dim{Width: unbounded, Height: unbounded}
}

func (l *Layout) sum(
	ct Container, axis Axis, measure func(Component) (int, int),
) Dim {
	primary, secondary, vv := 0, 0, 0
	for i := 0; i < ct.Len(); i++ {
		c := ct.Component(i)
		if !c.Visible() {
			continue
		}
		vv++
		p, s := measure(c)
		primary += p
		secondary = max(secondary, s)
	}
	in := ct.Insets()
	primary += axis.PrimaryInset(in, true) + axis.PrimaryInset(in, false)
	secondary += axis.SecondaryInset(in, true) +
		axis.SecondaryInset(in, false)
	return axis.Dim(primary+l.gapSize(vv), secondary)
}

func (l *Layout) gapSize(visible int) int {
	if l.gap == 0 || visible < 2 {
		return 0
	}
	return (visible - 1) * l.gap
}

func (l *Layout) trace(format string, args ...interface{}) {
	if l.Trace == nil {
		return
	}
	l.pending = append(l.pending, traceLine{format: format, args: args})
}

// unlock releases the layout's lock and reports the trace lines of the
// finished layout pass.
func (l *Layout) unlock() {
	pending, trace := l.pending, l.Trace
	l.pending = nil
	l.mutex.Unlock()
	for _, t := range pending {
		trace(t.format, t.args...)
	}
}

func visible(ct Container) int {
	vv := 0
	for i := 0; i < ct.Len(); i++ {
		if ct.Component(i).Visible() {
			vv++
		}
	}
	return vv
}
