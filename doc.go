// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package box lays out the components of a container one after another
// along an axis, either left to right or top to bottom.  Different from
// a plain box layout each component is added with one of three
// constraints:
//
//   - Fix: a component keeps its preferred length.
//   - Flexible: a component tries to keep its preferred length; if
//     there isn't enough space all flexible components shrink
//     proportionally, if there is no vary component and more than
//     enough space they grow proportionally.
//   - Vary: a component ignores its preferred length and gets whatever
//     length is left.  There is at most one vary component.
//
// E.g. a split pane with a fixed tool bar, a flexible side panel and a
// varying editor:
//
//	+------+-----------+-------------------------+
//	| tool |   side    |        editor           |
//	| fix  | flexible  |        vary             |
//	+------+-----------+-------------------------+
//
// Along the other axis every component fills its container's content
// area.
//
// box knows nothing about a concrete UI toolkit.  A toolkit provides
// its containers and components by implementing the Container and
// Component interfaces and calls in its measure and arrange hooks the
// methods of a Layout instance:
//
//	l, err := box.New(box.Line, 1)
//	if err != nil {
//	    return err
//	}
//	l.Add(toolBar, box.Fix)
//	l.Add(side) // defaults to box.Flexible
//	l.Add(editor, box.Vary)
//
//	min, pref := l.MinSize(ct), l.PrefSize(ct) // measure
//	err = l.Layout(ct)                         // arrange
//
// Calculated lengths are cached between layout passes until a
// component is added or removed, the number of visible components
// changes, the container's length along the axis changes or
// Invalidate is called.  Is the container too small to hold its fix
// components and the vary component's minimum a Strict layout fails
// with ErrInsufficientSpace leaving all components untouched while a
// Lenient layout squeezes them.
//
// The calculation itself is provided by the pure function Distribute
// and the placement by Place; see package term for a terminal toolkit
// built on top of this package.
package box
