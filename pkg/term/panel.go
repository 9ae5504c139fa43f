// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/slukits/box"
	"github.com/slukits/ints"
	"golang.org/x/exp/slices"
)

// drawer is implemented by components which can paint themselves,
// i.e. Label and Panel.
type drawer interface {
	Dirty() bool
	Draw(scr tcell.Screen, x, y int)
}

// Panel is a box.Container laying out its components with a box.Layout.
// A Panel is also a box.Component and may be nested into an other
// Panel.  Its minimum and preferred dimensions are calculated by its
// layout from its components.
type Panel struct {

	// Style of the panel's background.
	Style tcell.Style

	// Hidden panels are not laid out.
	Hidden bool

	lyt         *box.Layout
	cc          []box.Component
	bounds      box.Rect
	insets      box.Insets
	orientation box.Orientation
	damaged     bool
	repaint     *ints.Set
	last        []int
	err         error
}

// NewPanel returns a panel laying out its components along given axis
// separated by given gap.  It fails with box.ErrAxis for an invalid
// axis.
func NewPanel(axis box.Axis, gap int) (*Panel, error) {
	lyt, err := box.New(axis, gap)
	if err != nil {
		return nil, err
	}
	return &Panel{lyt: lyt, damaged: true, repaint: &ints.Set{}}, nil
}

// Layout returns the panel's layout e.g. to set its policy.
func (p *Panel) Layout() *box.Layout { return p.lyt }

// Add appends given component with given constraint to the panel.
func (p *Panel) Add(c box.Component, cc ...box.Constraint) error {
	if err := p.lyt.Add(c, cc...); err != nil {
		return err
	}
	if !slices.Contains(p.cc, c) {
		p.cc = append(p.cc, c)
	}
	p.damaged = true
	return nil
}

// Remove drops given component from the panel.
func (p *Panel) Remove(c box.Component) {
	idx := slices.IndexFunc(p.cc, func(o box.Component) bool {
		return o == c
	})
	if idx < 0 {
		return
	}
	p.cc = slices.Delete(p.cc, idx, idx+1)
	p.lyt.Remove(c)
	p.damaged = true
}

// Len returns the number of the panel's components.
func (p *Panel) Len() int { return len(p.cc) }

// Component returns the i-th component of the panel.
func (p *Panel) Component(i int) box.Component { return p.cc[i] }

// Size is the dimension of the panel's bounds.
func (p *Panel) Size() box.Dim {
	return box.Dim{Width: p.bounds.Width, Height: p.bounds.Height}
}

// Insets returns the margins around the panel's components.
func (p *Panel) Insets() box.Insets { return p.insets }

// SetInsets sets the margins around the panel's components.
func (p *Panel) SetInsets(in box.Insets) {
	if in == p.insets {
		return
	}
	p.insets = in
	p.lyt.Invalidate(p)
	p.damaged = true
}

// Orientation returns the panel's orientation.
func (p *Panel) Orientation() box.Orientation { return p.orientation }

// SetOrientation sets the orientation resolving the logical axes Line
// and Page.
func (p *Panel) SetOrientation(o box.Orientation) {
	if o == p.orientation {
		return
	}
	p.orientation = o
	p.lyt.Invalidate(p)
	p.damaged = true
}

// MinSize is the minimum dimension of the panel's components.
func (p *Panel) MinSize() box.Dim { return p.lyt.MinSize(p) }

// PrefSize is the preferred dimension of the panel's components.
func (p *Panel) PrefSize() box.Dim { return p.lyt.PrefSize(p) }

// Visible is false for a hidden panel.
func (p *Panel) Visible() bool { return !p.Hidden }

// SetBounds sets the panel's area relative to its parent and lays out
// its components.
func (p *Panel) SetBounds(r box.Rect) {
	if r != p.bounds {
		p.bounds = r
		p.damaged = true
	}
	p.arrange()
}

// Bounds returns the panel's area relative to its parent.
func (p *Panel) Bounds() box.Rect { return p.bounds }

// Invalidate drops the panel's calculated lengths and lays out its
// components again.
func (p *Panel) Invalidate() {
	p.lyt.Invalidate(p)
	p.arrange()
}

// Err returns the error of the last layout pass, e.g.
// box.ErrInsufficientSpace.
func (p *Panel) Err() error { return p.err }

// arrange lays out the panel's components and records the indices of
// the components whose lengths have changed since the last layout
// pass.  Is the panel damaged all components are recorded.
func (p *Panel) arrange() {
	p.err = p.lyt.Layout(p)
	if p.err != nil {
		return
	}
	ss := p.lyt.Sizes()
	if p.damaged || len(ss) != len(p.last) {
		for i := range p.cc {
			p.repaint.Add(i)
		}
		p.last = ss
		return
	}
	for i, s := range ss {
		if s == p.last[i] {
			continue
		}
		for j := i; j < len(ss); j++ {
			p.repaint.Add(j)
		}
		break
	}
	p.last = ss
}

// Changed returns the sorted indices of the components which are
// repainted by the next Draw.
func (p *Panel) Changed() []int {
	ii := p.repaint.ToSlice()
	slices.Sort(ii)
	return ii
}

// Dirty is true if the panel or one of its components needs to be
// repainted.
func (p *Panel) Dirty() bool {
	if p.damaged || p.repaint.Len() > 0 {
		return true
	}
	for _, c := range p.cc {
		if d, ok := c.(drawer); ok && d.Dirty() {
			return true
		}
	}
	return false
}

// Draw paints the panel at its bounds relative to given origin.  A
// damaged panel repaints its background and all its components,
// otherwise only dirty components and components whose lengths have
// changed are painted.
func (p *Panel) Draw(scr tcell.Screen, x, y int) {
	x, y = x+p.bounds.X, y+p.bounds.Y
	cleared := len(p.cc)
	switch {
	case p.damaged:
		fill(scr, x, y, p.bounds.Width, p.bounds.Height, p.Style)
	case p.repaint.Len() > 0:
		cleared = p.Changed()[0]
		p.clearFrom(scr, x, y, cleared)
	}
	for i, c := range p.cc {
		d, ok := c.(drawer)
		if !ok || !c.Visible() {
			continue
		}
		// a nested panel in the cleared area must repaint its background
		if np, ok := c.(*Panel); ok && i >= cleared {
			np.damaged = true
		}
		if p.damaged || p.repaint.Has(i) || d.Dirty() {
			d.Draw(scr, x, y)
		}
	}
	p.damaged = false
	p.repaint = &ints.Set{}
}

// clearFrom fills the panel's background from the i-th component's
// leading edge to the panel's trailing edge.
func (p *Panel) clearFrom(scr tcell.Screen, x, y, i int) {
	b, ok := p.cc[i].(interface{ Bounds() box.Rect })
	if !ok {
		fill(scr, x, y, p.bounds.Width, p.bounds.Height, p.Style)
		return
	}
	r := b.Bounds()
	if box.Resolve(p.lyt.Axis(), p.orientation) == box.X {
		fill(scr, x+r.X, y, p.bounds.Width-r.X, p.bounds.Height, p.Style)
		return
	}
	fill(scr, x, y+r.Y, p.bounds.Width, p.bounds.Height-r.Y, p.Style)
}
