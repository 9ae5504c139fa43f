// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Testing augments an Events instance created by Test with features for
// testing like firing an event or getting the current screen content as
// string.
// NOTE do not use an Events/Testing-instances concurrently.
// NOTE Events.Listen becomes non-blocking and starts event-loop polling
// in its own go-routine.
// NOTE all event triggering methods start listening if it is not
// already started and return after the event was processed and painted.
type Testing struct {
	ee  *Events
	lib tcell.SimulationScreen
	t   *testing.T

	// LastScreen provides the screen content right before quitting
	// listening.
	LastScreen string

	// Timeout defines how long an event-triggering method waits for the
	// event to be processed.  It defaults to 200ms.
	Timeout time.Duration
}

// Test creates a new Events-test-fixture painting given root panel
// onto a simulation screen of given width and height.  A listening
// fixture is quit at the end of the test.
func Test(t *testing.T, root *Panel, width, height int) (*Events, *Testing) {
	t.Helper()
	ee, lib, err := Sim(root)
	if err != nil {
		t.Fatalf("test: init sim: %v", err)
	}
	lib.SetSize(width, height)
	ee.t = &Testing{ee: ee, lib: lib, t: t, Timeout: 200 * time.Millisecond}
	t.Cleanup(func() {
		if ee.IsListening() {
			ee.QuitListening()
		}
	})
	return ee, ee.t
}

// FireResize posts a resize event and returns after this event has
// been processed.
func (tt *Testing) FireResize(width, height int) *Events {
	tt.t.Helper()
	if !tt.ee.IsListening() {
		tt.listen()
	}
	tt.lib.SetSize(width, height)
	if err := tt.lib.PostEvent(tcell.NewEventResize(width, height)); err != nil {
		tt.t.Fatalf("test: fire resize: %v", err)
	}
	tt.waitForSynced("test: fire resize: sync timed out")
	return tt.ee
}

// FireRune posts given rune-key-press event and returns after this
// event has been processed.
func (tt *Testing) FireRune(r rune) *Events {
	tt.t.Helper()
	if !tt.ee.IsListening() {
		tt.listen()
	}
	tt.lib.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	if r == 'q' {
		tt.waitForQuit()
		return tt.ee
	}
	tt.waitForSynced("test: fire rune: sync timed out")
	return tt.ee
}

// listen posts the initial resize event and starts listening for events
// in a new go-routine.  listen returns after the initial resize has
// completed.
func (tt *Testing) listen() {
	tt.t.Helper()
	if err := tt.lib.PostEvent(tcell.NewEventResize(tt.lib.Size())); err != nil {
		tt.t.Fatalf("test: listen: post resize: %v", err)
	}
	go tt.ee.listen()
	tt.waitForSynced("test: listen: sync timed out")
}

func (tt *Testing) waitForSynced(err string) {
	tt.t.Helper()
	select {
	case <-tt.ee.Synced:
	case <-time.After(tt.Timeout):
		tt.t.Fatal(err)
	}
}

// waitForQuit waits until the event loop closed the Synced channel.
func (tt *Testing) waitForQuit() {
	tt.t.Helper()
	tmr := time.NewTimer(tt.Timeout)
	defer tmr.Stop()
	for {
		select {
		case _, ok := <-tt.ee.Synced:
			if !ok {
				return
			}
		case <-tmr.C:
			tt.t.Fatal("test: quit listening: sync timed out")
		}
	}
}

func (tt *Testing) beforeFinalize() {
	tt.LastScreen = tt.String()
}

// String returns the test-screen's content as string with line breaks
// where a new screen line starts.  Empty lines at the end of the screen
// are not returned and empty cells at the end of a line are trimmed.
// A wide rune is reported once.
func (tt *Testing) String() string {
	b, w, h := tt.lib.GetContents()
	sb := &strings.Builder{}
	for y := 0; y < h; y++ {
		line := ""
		for x := 0; x < w; x++ {
			cell := b[y*w+x]
			if len(cell.Runes) == 0 {
				continue
			}
			line += string(cell.Runes[0])
			// skip the cells covered by a wide rune
			if rw := runewidth.RuneWidth(cell.Runes[0]); rw > 1 {
				x += rw - 1
			}
		}
		sb.WriteString(strings.TrimRight(line, " \t\r") + "\n")
	}
	return strings.TrimRight(sb.String(), " \t\r\n")
}
