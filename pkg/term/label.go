// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/slukits/box"
)

// Label is a single line of text.  Its preferred width is the text's
// display width plus padding on both sides, its preferred height is
// one line.
type Label struct {

	// Style of the label's area.
	Style tcell.Style

	// Min is the dimension a label may be shrunk to.
	Min box.Dim

	// Pad is the number of blanks before and after the text.
	Pad int

	// Hidden labels are not laid out.
	Hidden bool

	text   string
	bounds box.Rect
	dirty  bool
}

// NewLabel returns a label with given text.
func NewLabel(text string) *Label {
	return &Label{text: text, dirty: true}
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetText changes the label's text.  Invalidate the label's panel if
// the new text should change the layout.
func (l *Label) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
	l.dirty = true
}

// MinSize returns the label's Min dimension.
func (l *Label) MinSize() box.Dim { return l.Min }

// PrefSize is the text's display width plus padding and one line.
func (l *Label) PrefSize() box.Dim {
	h := 1
	if l.Min.Height > h {
		h = l.Min.Height
	}
	return box.Dim{Width: runewidth.StringWidth(l.text) + 2*l.Pad, Height: h}
}

// Visible is false for a hidden label.
func (l *Label) Visible() bool { return !l.Hidden }

// SetBounds sets the label's area relative to its panel.
func (l *Label) SetBounds(r box.Rect) {
	if r == l.bounds {
		return
	}
	l.bounds = r
	l.dirty = true
}

// Bounds returns the area of the label relative to its panel.
func (l *Label) Bounds() box.Rect { return l.bounds }

// Dirty is true if the label changed since it was last drawn.
func (l *Label) Dirty() bool { return l.dirty }

// Draw paints the label at its bounds relative to given origin.  The
// text is printed in the middle line and clipped at the label's width
// minus padding.
func (l *Label) Draw(scr tcell.Screen, x, y int) {
	l.dirty = false
	r := l.bounds
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	x, y = x+r.X, y+r.Y
	fill(scr, x, y, r.Width, r.Height, l.Style)
	row, col, end := y+(r.Height-1)/2, x+l.Pad, x+r.Width-l.Pad
	for _, rn := range l.text {
		w := runewidth.RuneWidth(rn)
		if col+w > end {
			break
		}
		scr.SetContent(col, row, rn, nil, l.Style)
		col += w
	}
}
