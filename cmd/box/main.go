// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Box shows a split pane laid out by package box in the terminal.

Usage:

	box [flags]

The flags are:

	-axis x|y|line|page
	    axis of the tool bar (default x)
	-gap n
	    space between the tool bar's panes (default 1)
	-lenient
	    overflow instead of keeping the last layout if the terminal is
	    too small
	-trace file
	    log every layout pass to given file
	-ui term|lines
	    print the panes with package term or chained into a
	    github.com/slukits/lines bar (default term)
	-width n
	    width of the lines bar (default 80)

Sample ui with the term ui:

	tools side editor




	status 80x6

Pressing 'h' toggles the side pane, 'q' quits.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/slukits/box"
	"github.com/slukits/box/pkg/chain"
	"github.com/slukits/box/pkg/term"
	"github.com/slukits/lines"
)

type config struct {
	axis    box.Axis
	gap     int
	policy  box.Policy
	ui      string
	width   int
	trace   io.Writer
	closeFn func() error
}

// fatal reports unrecoverable start-up errors.
var fatal = log.Fatalf

func main() {
	cfg, err := parse(os.Args[1:])
	if err != nil {
		fatal("box: %v", err)
		return
	}
	if cfg.closeFn != nil {
		defer cfg.closeFn()
	}
	switch cfg.ui {
	case "lines":
		bar, err := chain.New(cfg.width, cfg.gap, cfg.policy,
			&chain.Cell{Label: "tools", Constraint: box.Fix},
			&chain.Cell{Label: "side"},
			&chain.Cell{Label: "editor", Constraint: box.Vary},
		)
		if err != nil {
			fatal("box: lines: %v", err)
			return
		}
		lines.Term(bar).WaitForQuit()
	default:
		ee, err := runTerm(cfg, term.New)
		if err != nil {
			fatal("box: term: %v", err)
			return
		}
		ee.Listen()
	}
}

func parse(args []string) (*config, error) {
	fs := flag.NewFlagSet("box", flag.ContinueOnError)
	axis := fs.String("axis", "x", "axis of the tool bar")
	gap := fs.Int("gap", 1, "space between the tool bar's panes")
	lenient := fs.Bool("lenient", false, "overflow if too small")
	trace := fs.String("trace", "", "log layout passes to file")
	ui := fs.String("ui", "term", "term or lines")
	width := fs.Int("width", 80, "width of the lines bar")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg := &config{gap: *gap, ui: *ui, width: *width}
	a, err := parseAxis(*axis)
	if err != nil {
		return nil, err
	}
	cfg.axis = a
	if *lenient {
		cfg.policy = box.Lenient
	}
	if cfg.ui != "term" && cfg.ui != "lines" {
		return nil, fmt.Errorf("unknown ui %q", cfg.ui)
	}
	if *trace != "" {
		f, err := os.Create(*trace)
		if err != nil {
			return nil, err
		}
		cfg.trace, cfg.closeFn = f, f.Close
	}
	return cfg, nil
}

func parseAxis(s string) (box.Axis, error) {
	for _, a := range []box.Axis{box.X, box.Y, box.Line, box.Page} {
		if strings.EqualFold(a.String(), s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", box.ErrAxis, s)
}

// runTerm builds the split pane and returns the Events instance
// created by given constructor for it.
func runTerm(
	cfg *config, events func(*term.Panel) (*term.Events, error),
) (*term.Events, error) {
	root, err := term.NewPanel(box.Y, 0)
	if err != nil {
		return nil, err
	}
	bar, err := term.NewPanel(cfg.axis, cfg.gap)
	if err != nil {
		return nil, err
	}
	bar.Layout().Policy = cfg.policy
	if cfg.trace != nil {
		logger := log.New(cfg.trace, "", log.Ltime|log.Lmicroseconds)
		bar.Layout().Trace = logger.Printf
		root.Layout().Trace = logger.Printf
	}
	side, status := term.NewLabel("side"), term.NewLabel("status")
	for _, add := range []struct {
		p *term.Panel
		c box.Component
		o box.Constraint
	}{
		{bar, term.NewLabel("tools"), box.Fix},
		{bar, side, box.Flexible},
		{bar, term.NewLabel("editor"), box.Vary},
		{root, bar, box.Vary},
		{root, status, box.Fix},
	} {
		if err := add.p.Add(add.c, add.o); err != nil {
			return nil, err
		}
	}
	ee, err := events(root)
	if err != nil {
		return nil, err
	}
	err = ee.Rune('h', func(root *term.Panel) {
		side.Hidden = !side.Hidden
		bar.Invalidate()
		setStatus(status, root, bar)
	})
	if err != nil {
		return nil, err
	}
	ee.Resize(func(root *term.Panel) { setStatus(status, root, bar) })
	return ee, nil
}

func setStatus(status *term.Label, root, bar *term.Panel) {
	d := root.Size()
	if err := bar.Err(); err != nil {
		status.SetText(fmt.Sprintf("%v %dx%d", err, d.Width, d.Height))
		return
	}
	status.SetText(fmt.Sprintf("status %dx%d", d.Width, d.Height))
}
