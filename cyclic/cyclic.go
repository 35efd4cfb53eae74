// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cyclic projects dates into a window defined by a reference set
// of dates. Dates outside of the window are folded back into it, either
// by wrapping around as if the window repeated indefinitely, or by
// reflecting the distance past the window's border without wrapping.
package cyclic

import (
	"iter"
	"slices"
	"time"

	"cloudeng.io/datemask/calendar"
	"cloudeng.io/datemask/lift"
)

// Window is an inclusive range of days.
type Window struct {
	From, To time.Time
}

// NewWindow returns the window spanned by the earliest and latest of the
// reference dates. It returns false if reference is empty.
func NewWindow(reference ...time.Time) (Window, bool) {
	if len(reference) == 0 {
		return Window{}, false
	}
	return Window{
		From: slices.MinFunc(reference, time.Time.Compare),
		To:   slices.MaxFunc(reference, time.Time.Compare),
	}, true
}

// Days returns the number of days in the window, counting both ends.
func (w Window) Days() int {
	return calendar.DaysBetween(calendar.Midnight(w.From), calendar.Midnight(w.To)) + 1
}

// Move projects date into the window. Dates are compared as calendar
// days. A date within the window is returned unchanged and any date is
// projected onto From for a window of a single day.
//
// A date before the window is counted backwards from To by its distance
// past From, and a date after the window forwards from From by its
// distance past To. If cyclic is true the distance wraps modulo the
// window length, otherwise it does not, and hence a date that is more
// than a window's length away will be projected outside of the window.
//
// Distances are whole calendar days and the time of day of date is
// ignored, eg. 2020-01-09 23:00 is one day before a window starting at
// 2020-01-10 00:00, not less than one.
func (w Window) Move(date time.Time, cyclic bool) time.Time {
	days := w.Days()
	if days < 2 {
		return w.From
	}
	day, from, to := calendar.Midnight(date), calendar.Midnight(w.From), calendar.Midnight(w.To)
	switch {
	case day.Before(from):
		distance := calendar.DaysBetween(day, from) - 1
		if cyclic {
			distance %= days
		}
		return calendar.AddDays(w.To, -distance)
	case day.After(to):
		distance := calendar.DaysBetween(to, day) - 1
		if cyclic {
			distance %= days
		}
		return calendar.AddDays(w.From, distance)
	}
	return date
}

// Move projects date into the window spanned by reference, see
// Window.Move. The date is returned unchanged if reference is empty.
func Move(date time.Time, reference []time.Time, cyclic bool) time.Time {
	w, ok := NewWindow(reference...)
	if !ok {
		return date
	}
	return w.Move(date, cyclic)
}

// MovePtr is like Move for an optional date; nil is returned for nil.
func MovePtr(date *time.Time, reference []time.Time, cyclic bool) *time.Time {
	return lift.Ptr(mover(reference, cyclic))(date)
}

// MoveAll lazily applies Move to each of dates.
func MoveAll(dates iter.Seq[time.Time], reference []time.Time, cyclic bool) iter.Seq[time.Time] {
	return lift.Seq(mover(reference, cyclic))(dates)
}

// MoveSlice applies Move to each of dates.
func MoveSlice(dates []time.Time, reference []time.Time, cyclic bool) []time.Time {
	return lift.Slice(mover(reference, cyclic))(dates)
}

func mover(reference []time.Time, cyclic bool) func(time.Time) time.Time {
	w, ok := NewWindow(reference...)
	if !ok {
		return func(d time.Time) time.Time { return d }
	}
	return func(d time.Time) time.Time { return w.Move(d, cyclic) }
}
