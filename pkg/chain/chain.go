// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chain provides a single line bar for github.com/slukits/lines
// whose chained cells get their widths from package box:
//
//	bar, err := chain.New(80, 1, box.Strict,
//	    &chain.Cell{Label: "tools", Constraint: box.Fix},
//	    &chain.Cell{Label: "side"},
//	    &chain.Cell{Label: "editor", Constraint: box.Vary},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lines.Term(bar).WaitForQuit()
//
// Gaps are added to the width of the cell they follow.
package chain

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/slukits/box"
	"github.com/slukits/lines"
)

// Cell is a chained component printing its label.  Its preferred width
// is the label's display width.
type Cell struct {
	lines.Component

	Label      string
	Min        int
	Constraint box.Constraint
	Hidden     bool

	width int
}

func (c *Cell) OnInit(e *lines.Env) {
	c.Dim().SetWidth(c.width)
	fmt.Fprint(e, c.Label)
}

// Width returns the width calculated for the cell including a
// following gap.
func (c *Cell) Width() int { return c.width }

// Bar chains its visible cells horizontally, i.e. it is a
// lines.Chainer.
type Bar struct {
	lines.Component
	cc []*Cell
}

// New returns a bar distributing given width among given cells which
// are separated by given gap.  New fails if a cell has an invalid
// constraint, if more than one cell varies or if the cells don't fit
// for the Strict policy.
func New(width, gap int, p box.Policy, cc ...*Cell) (*Bar, error) {
	vary := 0
	for _, c := range cc {
		if c.Constraint > box.Vary {
			return nil, fmt.Errorf("%w: %s: %d",
				box.ErrConstraint, c.Label, c.Constraint)
		}
		if c.Constraint == box.Vary {
			vary++
		}
	}
	if vary > 1 {
		return nil, box.ErrVaryAmbiguity
	}
	bar := &Bar{cc: cc}
	if err := bar.distribute(width, gap, p); err != nil {
		return nil, err
	}
	return bar, nil
}

func (b *Bar) distribute(width, gap int, p box.Policy) error {
	mm, visible := make([]box.Measure, len(b.cc)), 0
	for i, c := range b.cc {
		if c.Hidden {
			mm[i].Hidden = true
			continue
		}
		visible++
		mm[i] = box.Measure{Min: c.Min,
			Pref: runewidth.StringWidth(c.Label), Constraint: c.Constraint}
	}
	if visible > 1 {
		width -= (visible - 1) * gap
	}
	ss, err := box.Distribute(mm, width, p)
	if err != nil {
		return err
	}
	oo := box.Place(ss, 0, gap)
	last := -1
	for i, s := range ss {
		if s > 0 {
			last = i
		}
	}
	for i, c := range b.cc {
		c.width = ss[i]
		if i == last || ss[i] <= 0 {
			continue
		}
		for j := i + 1; j < len(ss); j++ {
			if ss[j] > 0 {
				c.width = oo[j] - oo[i]
				break
			}
		}
	}
	return nil
}

func (b *Bar) OnInit(_ *lines.Env) {
	b.Dim().SetHeight(1)
}

// Widths returns the widths of the bar's cells.
func (b *Bar) Widths() []int {
	ww := make([]int, len(b.cc))
	for i, c := range b.cc {
		ww[i] = c.width
	}
	return ww
}

// ForChained calls back for each visible cell with a positive width
// until the callback asks to stop.
func (b *Bar) ForChained(cb func(lines.Componenter) (stop bool)) {
	for _, c := range b.cc {
		if c.Hidden || c.width <= 0 {
			continue
		}
		if cb(c) {
			return
		}
	}
}
