// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package term is a small terminal toolkit whose containers are laid
// out by package box.  It wraps https://github.com/gdamore/tcell which
// does the heavy lifting on the terminal side.
//
// A terminal ui is a tree of panels and labels.  Every Panel lays out
// its components along an axis with the constraints they were added
// with:
//
//	root, _ := term.NewPanel(box.Y, 0)
//	bar, _ := term.NewPanel(box.X, 1)
//	bar.Add(term.NewLabel("tools"), box.Fix)
//	bar.Add(term.NewLabel("side"))
//	bar.Add(term.NewLabel("editor"), box.Vary)
//	root.Add(bar, box.Vary)
//	root.Add(term.NewLabel("status"), box.Fix)
//
//	ee, err := term.New(root)
//	if err != nil {
//	    log.Fatalf("can't acquire terminal: %v", err)
//	}
//	ee.Listen()
//
// Listen blocks and reports events until 'q', ctrl-c or ctrl-d is
// pressed or QuitListening is called.  Every resize of the terminal
// re-lays out the whole tree.  Components must only be changed from
// inside a listener; use Events.Update to do so from an other
// go-routine:
//
//	go func() {
//	    ee.Update(func(root *term.Panel) {
//	        status.SetText("done")
//	        root.Invalidate()
//	    })
//	}()
//
// Is the terminal too small for a Strict panel its components keep
// their previous bounds until the next resize event.
package term

import "errors"

// ErrScreen is returned by New if tcell fails to create a screen.
var ErrScreen = errors.New("term: new: can't create screen")

// ErrInit is returned by New and Sim if tcell fails to initialize a
// screen.
var ErrInit = errors.New("term: new: can't initialize screen")

// ErrUpdate is returned by Events.Update if an update event can't be
// posted.
var ErrUpdate = errors.New("term: update: can't post event")

// ErrRune is returned by Events.Rune if a listener is already
// registered for a rune.
var ErrRune = errors.New("term: rune: listener already registered")
