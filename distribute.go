// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

// Measure is what Distribute needs to know about a component: its
// minimum and preferred length along the layout axis, its constraint
// and if it is hidden.
type Measure struct {
	Min, Pref  int
	Constraint Constraint
	Hidden     bool
}

// tally accumulates the measures of visible components by constraint.
type tally struct {
	visible int

	// fixed is the length taken by fix components (and by vary
	// components which are not the vary component).
	fixed int

	varyMin, vary int

	flexPref, flexMin, flexSlack, lastFlex int
}

func newTally(mm []Measure) *tally {
	t := &tally{vary: -1, lastFlex: -1}
	for i, m := range mm {
		if !m.Hidden && m.Constraint == Vary {
			t.vary = i
		}
	}
	for i, m := range mm {
		if m.Hidden {
			continue
		}
		t.visible++
		switch m.Constraint {
		case Fix:
			t.fixed += max(m.Pref, m.Min)
		case Vary:
			if i != t.vary {
				t.fixed += m.Min
				continue
			}
			t.varyMin = m.Min
		default:
			if m.Pref > m.Min {
				t.flexSlack += m.Pref - m.Min
			}
			t.flexPref += m.Pref
			t.flexMin += m.Min
			t.lastFlex = i
		}
	}
	return t
}

// Distribute calculates for given measures the lengths of their
// components such that they fill given available length.  A fix
// component gets the maximum of its preferred and minimum length.  If
// there is enough space every flexible component gets its preferred
// length and the vary component, if any, gets the rest.  Otherwise the
// vary component gets its minimum and flexible components are resized
// proportionally: they grow with their preferred length if there is
// no vary component, they shrink with the amount their preferred
// length exceeds their minimum length if space is tight.  The rounding
// residual is added to the vary component or else to the last
// flexible component; hence the returned lengths sum up to the
// available length as long as one of them is visible.  Hidden
// components get length 0.
//
// Distribute fails with ErrInsufficientSpace for the Strict policy if
// the available length minus the fixed lengths is smaller than the
// vary component's minimum.  A negative available length is taken as
// 0.  If several components are constrained to Vary the last visible
// one is the vary component while the others are sized like fix
// components at their minimum.
func Distribute(mm []Measure, available int, p Policy) ([]int, error) {
	ss := make([]int, len(mm))
	if available < 0 {
		available = 0
	}
	t := newTally(mm)
	if t.visible == 0 {
		return ss, nil
	}

	remaining := available - t.fixed
	if p == Strict && remaining < t.varyMin {
		return nil, ErrInsufficientSpace
	}

	hasVary := t.vary != -1
	expand := remaining-t.varyMin >= t.flexPref

	if !hasVary || !expand {
		ratio := 0.0
		switch {
		case expand && t.flexPref != 0:
			ratio = float64(remaining-t.varyMin) /
				float64(t.flexPref)
		case !expand && t.flexSlack != 0:
			ratio = float64(remaining-t.varyMin-t.flexMin) /
				float64(t.flexSlack)
		}
		for i, m := range mm {
			if m.Hidden {
				continue
			}
			switch {
			case m.Constraint == Fix:
				ss[i] = max(m.Pref, m.Min)
			case m.Constraint == Vary && i == t.vary:
				ss[i] = t.varyMin
			case m.Constraint == Vary:
				ss[i] = m.Min
			case expand:
				ss[i] = int(float64(m.Pref) * ratio)
			default:
				ss[i] = m.Min + int(float64(m.Pref-m.Min)*ratio)
			}
		}
	} else {
		for i, m := range mm {
			if m.Hidden {
				continue
			}
			switch {
			case m.Constraint == Vary && i == t.vary:
				ss[i] = remaining - t.flexPref
			case m.Constraint == Vary:
				ss[i] = m.Min
			default:
				ss[i] = max(m.Pref, m.Min)
			}
		}
	}

	reconcile(ss, available, t)
	return ss, nil
}

// reconcile adds the difference between the sum of given lengths and
// the available length to the vary component or else to the last
// flexible component.
func reconcile(ss []int, available int, t *tally) {
	total := 0
	for _, s := range ss {
		total += s
	}
	if total == available {
		return
	}
	switch {
	case t.vary != -1:
		ss[t.vary] += available - total
	case t.lastFlex != -1:
		ss[t.lastFlex] += available - total
	}
}

// Place returns the offsets of components with given lengths starting
// at given start offset.  A component with a non-zero length is
// followed by given gap, zero-length components take no gap.
func Place(ss []int, start, gap int) []int {
	oo := make([]int, len(ss))
	offset := start
	for i, s := range ss {
		oo[i] = offset
		offset += s
		if s != 0 {
			offset += gap
		}
	}
	return oo
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
