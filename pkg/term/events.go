// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/box"
)

// Listener is informed about an event with the root panel of the
// Events instance reporting it.
type Listener func(root *Panel)

// Events reports user input to registered listeners and lays out and
// paints the root panel after each reported event.
type Events struct {
	scr         tcell.Screen
	root        *Panel
	mutex       *sync.Mutex
	rr          map[rune]Listener
	quit        Listener
	resize      Listener
	isListening bool
	t           *Testing

	// Synced sends a message after the screen synchronization
	// following a reported event.
	Synced chan bool
}

// New returns an Events instance reporting events from the terminal
// and painting given root panel.  New fails if tcell can't provide a
// screen or the screen can't be initialized.
func New(root *Panel) (*Events, error) {
	scr, err := screenFactory.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreen, err)
	}
	return newEvents(scr, root)
}

// Sim returns an Events instance reporting events from a simulation
// screen which is also returned for the caller to inject events.
func Sim(root *Panel) (*Events, tcell.SimulationScreen, error) {
	lib := screenFactory.NewSimulationScreen("UTF-8")
	ee, err := newEvents(lib, root)
	if err != nil {
		return nil, nil, err
	}
	return ee, lib, nil
}

func newEvents(scr tcell.Screen, root *Panel) (*Events, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	return &Events{
		scr:    scr,
		root:   root,
		mutex:  &sync.Mutex{},
		rr:     map[rune]Listener{},
		Synced: make(chan bool, 1),
	}, nil
}

// IsListening returns true if given Events is polling from the event
// loop.
func (ee *Events) IsListening() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.isListening
}

// Listen blocks and starts polling from the event loop reporting
// received events to registered listeners.  Listen returns if either a
// quit-event was received ('q', ctrl-c, ctrl-d input) or QuitListening
// was called.  NOTE in testing Listen is non-blocking, i.e. returns
// after the initial resize was processed.
func (ee *Events) Listen() {
	if ee.t != nil {
		ee.t.listen()
		return
	}
	ee.listen()
}

func (ee *Events) listen() {
	if !ee.startPolling() { // ignore subsequent calls of Listen
		return
	}
	for {
		switch ev := ee.scr.PollEvent().(type) {
		case nil: // event-loop ended
			return
		case *quitEvent:
			ee.quitListening()
			return
		case *tcell.EventResize:
			w, h := ev.Size()
			ee.scr.Clear()
			ee.root.damaged = true
			ee.root.SetBounds(box.Rect{Width: w, Height: h})
			if l := ee.resizeListener(); l != nil {
				l(ee.root)
				ee.root.arrange()
			}
			ee.root.Draw(ee.scr, 0, 0)
			ee.scr.Sync()
			ee.synced()
		case *tcell.EventKey:
			if ee.isQuitEvent(ev) {
				ee.quitListening()
				return
			}
			if l := ee.runeListener(ev.Rune()); l != nil &&
				ev.Key() == tcell.KeyRune {

				l(ee.root)
			}
			ee.show()
		case *updateEvent:
			ev.listener(ee.root)
			ee.show()
		}
	}
}

// show lays out the root panel again and paints what has changed.
func (ee *Events) show() {
	ee.root.arrange()
	if ee.root.Dirty() {
		ee.root.Draw(ee.scr, 0, 0)
	}
	ee.scr.Show()
	ee.synced()
}

func (ee *Events) synced() {
	select {
	case ee.Synced <- true:
	default:
	}
}

func (ee *Events) quitListening() {
	ee.mutex.Lock()
	ee.isListening = false
	quit := ee.quit
	ee.mutex.Unlock()
	if quit != nil {
		quit(ee.root)
	}
	if ee.t != nil {
		ee.t.beforeFinalize()
	}
	ee.scr.Fini()
	close(ee.Synced)
}

func (ee *Events) startPolling() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	if ee.isListening {
		return false
	}
	ee.isListening = true
	return true
}

// Rune registers given listener for given rune-event.  It fails if
// already a listener is registered for given rune-event.
func (ee *Events) Rune(r rune, l Listener) error {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	if _, ok := ee.rr[r]; ok {
		return fmt.Errorf("%w: %q", ErrRune, r)
	}
	ee.rr[r] = l
	return nil
}

func (ee *Events) runeListener(r rune) Listener {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.rr[r]
}

// Resize registers given listener for the resize event which is
// reported after the root panel was laid out for the new screen size.
// Note starting the event-loop triggers an initial resize event.
func (ee *Events) Resize(l Listener) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.resize = l
}

func (ee *Events) resizeListener() Listener {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.resize
}

// Quit registers given listener for the quit event which is triggered
// by 'q'-rune, ctrl-c and ctrl-d.
func (ee *Events) Quit(l Listener) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.quit = l
}

// Update posts a new event into the event loop which calls given
// listener once it is its turn.  Update fails if the event-loop is full
// wrapping ErrUpdate.  Update is a no-op if listener is nil.  NOTE in
// testing Update returns after the event was processed.
func (ee *Events) Update(l Listener) error {
	if l == nil {
		return nil
	}
	if ee.t != nil && !ee.IsListening() {
		ee.t.listen()
	}
	evt := &updateEvent{when: time.Now(), listener: l}
	if err := ee.scr.PostEvent(evt); err != nil {
		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}
	if ee.t != nil {
		ee.t.waitForSynced("test: update: sync timed out")
	}
	return nil
}

type updateEvent struct {
	when     time.Time
	listener Listener
}

func (u *updateEvent) When() time.Time { return u.when }

// QuitListening posts a quit event ending the event-loop, i.e.
// IsListening will be false.
func (ee *Events) QuitListening() {
	if !ee.IsListening() {
		return
	}
	ee.scr.PostEvent(&quitEvent{when: time.Now()})
	if ee.t != nil {
		ee.t.waitForQuit()
	}
}

type quitEvent struct {
	when time.Time
}

func (q *quitEvent) When() time.Time { return q.when }

func (ee *Events) isQuitEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	case tcell.KeyCtrlC, tcell.KeyCtrlD:
		return true
	}
	return false
}
