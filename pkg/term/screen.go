// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package term

import "github.com/gdamore/tcell/v2"

// screenFactory is used to create new tcell-screens for production or
// for simulation.  export_test.go makes it possible to replace this
// screen factory with a screen-factory mocking up tcell's screen
// creation errors so they can be tested.
var screenFactory screenFactoryer = &defaultFactory{}

type defaultFactory struct{}

func (f *defaultFactory) NewScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

func (f *defaultFactory) NewSimulationScreen(
	s string,
) tcell.SimulationScreen {
	return tcell.NewSimulationScreen(s)
}

type screenFactoryer interface {
	NewScreen() (tcell.Screen, error)
	NewSimulationScreen(string) tcell.SimulationScreen
}

// fill sets the cells of given area to blanks of given style.
func fill(scr tcell.Screen, x, y, width, height int, sty tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			scr.SetContent(col, row, ' ', nil, sty)
		}
	}
}
