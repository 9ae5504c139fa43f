// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term_test

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/slukits/box"
	"github.com/slukits/box/pkg/term"
)

// ui is the split pane fixture:
//
//	+-------+------+--------+
//	| tools | side | editor |
//	+-------+------+--------+
//	| status                |
//	+-----------------------+
type ui struct {
	root, bar                   *term.Panel
	tools, side, editor, status *term.Label
}

func newUI(t *testing.T) *ui {
	t.Helper()
	root, err := term.NewPanel(box.Y, 0)
	if err != nil {
		t.Fatal(err)
	}
	bar, err := term.NewPanel(box.X, 1)
	if err != nil {
		t.Fatal(err)
	}
	u := &ui{root: root, bar: bar,
		tools:  term.NewLabel("tools"),
		side:   term.NewLabel("side"),
		editor: term.NewLabel("editor"),
		status: term.NewLabel("status"),
	}
	for _, add := range []struct {
		p *term.Panel
		c box.Component
		o box.Constraint
	}{
		{bar, u.tools, box.Fix},
		{bar, u.side, box.Flexible},
		{bar, u.editor, box.Vary},
		{root, bar, box.Vary},
		{root, u.status, box.Fix},
	} {
		if err := add.p.Add(add.c, add.o); err != nil {
			t.Fatal(err)
		}
	}
	return u
}

func TestNewPanelFailsForInvalidAxis(t *testing.T) {
	if _, err := term.NewPanel(box.Axis(42), 0); !errors.Is(err, box.ErrAxis) {
		t.Errorf("expected box.ErrAxis; got %v", err)
	}
}

func TestListenLaysOutAndPaintsRootPanel(t *testing.T) {
	u := newUI(t)
	ee, tt := term.Test(t, u.root, 30, 3)
	ee.Listen()
	if !ee.IsListening() {
		t.Fatal("expected events to be listening")
	}
	exp := "tools side editor\n\nstatus"
	if diff := cmp.Diff(exp, tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
	if got := u.editor.Bounds(); got != (box.Rect{X: 11, Width: 19, Height: 2}) {
		t.Errorf("unexpected editor bounds %+v", got)
	}
	if got := u.status.Bounds(); got != (box.Rect{Y: 2, Width: 30, Height: 1}) {
		t.Errorf("unexpected status bounds %+v", got)
	}
}

func TestUpdateRepaintsChangedComponents(t *testing.T) {
	u := newUI(t)
	ee, tt := term.Test(t, u.root, 30, 3)
	err := ee.Update(func(root *term.Panel) {
		u.side.SetText("sidebar")
		u.bar.Invalidate()
		if diff := cmp.Diff([]int{1, 2}, u.bar.Changed()); diff != "" {
			t.Errorf("changed mismatch (-want +got):\n%s", diff)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	exp := "tools sidebar editor\n\nstatus"
	if diff := cmp.Diff(exp, tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
	if u.bar.Dirty() || u.root.Dirty() {
		t.Error("expected panels to be clean after painting")
	}
}

func TestResizeRelaysOutRootPanel(t *testing.T) {
	u := newUI(t)
	ee, tt := term.Test(t, u.root, 30, 3)
	ee.Listen()
	tt.FireResize(20, 4)
	if got := u.editor.Bounds(); got != (box.Rect{X: 11, Width: 9, Height: 3}) {
		t.Errorf("unexpected editor bounds %+v", got)
	}
	// the bar's labels print in their middle line
	exp := "\ntools side editor\n\nstatus"
	if diff := cmp.Diff(exp, tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestTooSmallStrictPanelKeepsBounds(t *testing.T) {
	u := newUI(t)
	ee, tt := term.Test(t, u.root, 30, 3)
	ee.Listen()
	tt.FireResize(5, 3)
	if !errors.Is(u.bar.Err(), box.ErrInsufficientSpace) {
		t.Errorf("expected insufficient space; got %v", u.bar.Err())
	}
	if got := u.side.Bounds(); got != (box.Rect{X: 6, Width: 4, Height: 2}) {
		t.Errorf("unexpected side bounds %+v", got)
	}
	if diff := cmp.Diff("tools\n\nstatu", tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
	tt.FireResize(30, 3)
	if u.bar.Err() != nil {
		t.Errorf("expected no error; got %v", u.bar.Err())
	}
}

func TestRuneListenerIsReported(t *testing.T) {
	u := newUI(t)
	ee, tt := term.Test(t, u.root, 30, 3)
	if err := ee.Rune('x', func(*term.Panel) { u.status.SetText("x") }); err != nil {
		t.Fatal(err)
	}
	err := ee.Rune('x', func(*term.Panel) {})
	if !errors.Is(err, term.ErrRune) {
		t.Errorf("expected ErrRune; got %v", err)
	}
	tt.FireRune('x')
	exp := "tools side editor\n\nx"
	if diff := cmp.Diff(exp, tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestQuitEndsListening(t *testing.T) {
	u := newUI(t)
	ee, tt := term.Test(t, u.root, 30, 3)
	quit := false
	ee.Quit(func(*term.Panel) { quit = true })
	tt.FireRune('q')
	if ee.IsListening() {
		t.Error("expected listening to have stopped")
	}
	if !quit {
		t.Error("expected quit listener to be called")
	}
	if diff := cmp.Diff("tools side editor\n\nstatus", tt.LastScreen); diff != "" {
		t.Errorf("last screen mismatch (-want +got):\n%s", diff)
	}
}

func TestQuitListening(t *testing.T) {
	u := newUI(t)
	ee, _ := term.Test(t, u.root, 30, 3)
	ee.Listen()
	ee.QuitListening()
	if ee.IsListening() {
		t.Error("expected listening to have stopped")
	}
}

func TestHiddenComponentIsNotPainted(t *testing.T) {
	u := newUI(t)
	ee, tt := term.Test(t, u.root, 30, 3)
	ee.Update(func(root *term.Panel) {
		u.side.Hidden = true
		u.bar.Invalidate()
	})
	if got := u.editor.Bounds(); got != (box.Rect{X: 6, Width: 24, Height: 2}) {
		t.Errorf("unexpected editor bounds %+v", got)
	}
	exp := "tools editor\n\nstatus"
	if diff := cmp.Diff(exp, tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveDropsComponent(t *testing.T) {
	u := newUI(t)
	ee, tt := term.Test(t, u.root, 30, 3)
	ee.Update(func(root *term.Panel) {
		u.bar.Remove(u.side)
		u.bar.Remove(u.side)
	})
	if u.bar.Len() != 2 {
		t.Errorf("expected two components; got %d", u.bar.Len())
	}
	if _, ok := u.bar.Layout().Constraints()[u.side]; ok {
		t.Error("expected removed component's constraint to be dropped")
	}
	exp := "tools editor\n\nstatus"
	if diff := cmp.Diff(exp, tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestPanelSizes(t *testing.T) {
	u := newUI(t)
	u.bar.SetInsets(box.Insets{Left: 1, Right: 1})
	// tools 5 + side 4 + editor 6 + 2 gaps + 2 insets
	if got := u.bar.PrefSize(); got != (box.Dim{Width: 19, Height: 1}) {
		t.Errorf("unexpected bar pref size %+v", got)
	}
	// fix tools contributes its preferred width
	if got := u.bar.MinSize(); got != (box.Dim{Width: 9, Height: 0}) {
		t.Errorf("unexpected bar min size %+v", got)
	}
	if got := u.root.PrefSize(); got != (box.Dim{Width: 19, Height: 2}) {
		t.Errorf("unexpected root pref size %+v", got)
	}
}

func TestLineAxisFollowsOrientation(t *testing.T) {
	root, err := term.NewPanel(box.Line, 0)
	if err != nil {
		t.Fatal(err)
	}
	a, b := term.NewLabel("a"), term.NewLabel("b")
	root.Add(a, box.Fix)
	root.Add(b, box.Vary)
	root.SetOrientation(box.Vertical)
	ee, tt := term.Test(t, root, 3, 3)
	ee.Listen()
	if got := b.Bounds(); got != (box.Rect{Y: 1, Width: 3, Height: 2}) {
		t.Errorf("unexpected bounds %+v", got)
	}
	if diff := cmp.Diff("a\nb", tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedPanelIsRepaintedAfterClearing(t *testing.T) {
	root, err := term.NewPanel(box.X, 0)
	if err != nil {
		t.Fatal(err)
	}
	nested, err := term.NewPanel(box.X, 0)
	if err != nil {
		t.Fatal(err)
	}
	a, b, c := term.NewLabel("aaaa"), term.NewLabel("bbbb"), term.NewLabel("cc")
	for _, add := range []struct {
		p *term.Panel
		c box.Component
		o box.Constraint
	}{
		{nested, c, box.Fix},
		{root, a, box.Flexible},
		{root, b, box.Flexible},
		{root, nested, box.Fix},
	} {
		if err := add.p.Add(add.c, add.o); err != nil {
			t.Fatal(err)
		}
	}
	ee, tt := term.Test(t, root, 8, 1)
	ee.Listen()
	if diff := cmp.Diff("aaabbbcc", tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
	before := nested.Bounds()
	err = ee.Update(func(root *term.Panel) {
		a.SetText("aaaaaaaa")
		root.Invalidate()
	})
	if err != nil {
		t.Fatal(err)
	}
	if nested.Bounds() != before {
		t.Fatalf("expected unchanged nested bounds %+v; got %+v",
			before, nested.Bounds())
	}
	if diff := cmp.Diff("aaaabbcc", tt.String()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelClipsWideRunes(t *testing.T) {
	l := term.NewLabel("日本語")
	l.Pad = 1
	if got := l.PrefSize(); got != (box.Dim{Width: 8, Height: 1}) {
		t.Errorf("unexpected pref size %+v", got)
	}
	root, _ := term.NewPanel(box.X, 0)
	root.Add(l, box.Vary)
	ee, tt := term.Test(t, root, 7, 1)
	ee.Listen()
	// '語' doesn't fit between the paddings
	if got := tt.String(); got != " 日本" {
		t.Errorf("expected clipped text; got %q", got)
	}
}

type failingFactory struct{}

func (f *failingFactory) NewScreen() (tcell.Screen, error) {
	return nil, errors.New("no screen")
}

func (f *failingFactory) NewSimulationScreen(s string) tcell.SimulationScreen {
	return &failingSim{SimulationScreen: tcell.NewSimulationScreen(s)}
}

type failingSim struct{ tcell.SimulationScreen }

func (s *failingSim) Init() error { return errors.New("no init") }

func TestNewFailsWithoutScreen(t *testing.T) {
	term.SetScreenFactory(&failingFactory{})
	defer term.SetScreenFactory(term.DefaultScreenFactory())
	if _, err := term.New(nil); !errors.Is(err, term.ErrScreen) {
		t.Errorf("expected ErrScreen; got %v", err)
	}
	if _, _, err := term.Sim(nil); !errors.Is(err, term.ErrInit) {
		t.Errorf("expected ErrInit; got %v", err)
	}
}
