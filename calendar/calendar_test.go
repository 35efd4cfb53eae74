// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"slices"
	"testing"
	"time"

	"cloudeng.io/datemask/calendar"
)

func TestNextPrevious(t *testing.T) {
	// 2020-01-15 is a Wednesday.
	for _, start := range []time.Time{newDate(2020, 1, 15), newDate(2020, 1, 12), newDate(2020, 1, 18)} {
		for day := time.Sunday; day <= time.Saturday; day++ {
			next := calendar.Next(start, day)
			if got, want := next.Weekday(), day; got != want {
				t.Errorf("%v: next %v: got %v, want %v", start, day, got, want)
			}
			if next.Before(start) || calendar.DaysBetween(start, next) > 6 {
				t.Errorf("%v: next %v: out of range %v", start, day, next)
			}
			prev := calendar.Previous(start, day)
			if got, want := prev.Weekday(), day; got != want {
				t.Errorf("%v: previous %v: got %v, want %v", start, day, got, want)
			}
			if prev.After(start) || calendar.DaysBetween(prev, start) > 6 {
				t.Errorf("%v: previous %v: out of range %v", start, day, prev)
			}
		}
	}
	wed := newDate(2020, 1, 15)
	if got, want := calendar.Next(wed, time.Wednesday), wed; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Previous(wed, time.Wednesday), wed; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Next(wed, time.Monday), newDate(2020, 1, 20); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Previous(wed, time.Thursday), newDate(2020, 1, 9); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShift(t *testing.T) {
	givens := newDateList(newDate(2020, 1, 10), newDate(2020, 1, 16))

	backs := slices.Collect(calendar.ShiftAll(slices.Values(givens), -1))
	if got, want := backs, newDateList(newDate(2020, 1, 9), newDate(2020, 1, 15)); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	ons := slices.Collect(calendar.ShiftAll(slices.Values(givens), 1))
	if got, want := ons, newDateList(newDate(2020, 1, 11), newDate(2020, 1, 17)); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := calendar.ShiftPtr(nil, 3); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	d := newDate(2020, 2, 28)
	if got, want := *calendar.ShiftPtr(&d, 2), newDate(2020, 3, 1); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBetween(t *testing.T) {
	now := time.Date(2020, 1, 15, 13, 14, 15, 0, time.UTC)
	from, to := calendar.AddDays(now, -6), calendar.AddDays(now, 7)

	days := slices.Collect(calendar.Between(from, to, calendar.OnDays(time.Friday, time.Tuesday)))
	if got, want := len(days), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, d := range days {
		if wd := d.Weekday(); wd != time.Friday && wd != time.Tuesday {
			t.Errorf("unexpected day: %v", wd)
		}
	}

	all := slices.Collect(calendar.Between(calendar.AddDays(now, -5), calendar.AddDays(now, 5), calendar.Constraints{}))
	if got, want := len(all), 11; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	reversed := slices.Collect(calendar.Between(newDate(2020, 1, 3), newDate(2020, 1, 1), calendar.Constraints{}))
	if got, want := reversed, newDateList(newDate(2020, 1, 1), newDate(2020, 1, 2), newDate(2020, 1, 3)); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	n := 0
	for range calendar.Between(newDate(2020, 1, 1), newDate(2020, 12, 31), calendar.Constraints{}) {
		n++
		if n == 3 {
			break
		}
	}
	if got, want := n, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDays(t *testing.T) {
	at := time.Date(2020, 1, 10, 17, 30, 0, 0, time.UTC)
	if got, want := calendar.Midnight(at), newDate(2020, 1, 10); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.EndOfDay(at), newDate(2020, 1, 11).Add(-time.Nanosecond); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if calendar.IsMidnight(at) || !calendar.IsMidnight(newDate(2020, 1, 10)) {
		t.Errorf("IsMidnight: wrong result")
	}
	for _, tc := range []struct {
		a, b time.Time
		days int
	}{
		{newDate(2020, 1, 10), newDate(2020, 1, 16), 6},
		{newDate(2020, 1, 16), newDate(2020, 1, 10), 6},
		{newDate(2020, 1, 10), at, 0},
		{newDate(2020, 1, 9), at, 1},
		{newDate(2019, 12, 31), newDate(2020, 3, 1), 61},
	} {
		if got, want := calendar.DaysBetween(tc.a, tc.b), tc.days; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}

	if got, want := calendar.DayOf(at), (calendar.Day{Year: 2020, Month: time.January, Day: 10}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.DayOf(at).String(), "2020-01-10"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !calendar.DayOf(newDate(2019, 12, 31)).Before(calendar.DayOf(at)) {
		t.Errorf("Before: wrong result")
	}
}

func TestDaysBetweenDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data not available: %v", err)
	}
	// 2020-03-08 is 23 hours long in New York.
	a := time.Date(2020, 3, 8, 0, 0, 0, 0, loc)
	b := time.Date(2020, 3, 9, 0, 0, 0, 0, loc)
	if got, want := calendar.DaysBetween(a, b), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.AddDays(a, 1), b; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClock(t *testing.T) {
	fixed := calendar.Clock(func() time.Time { return time.Date(2020, 1, 10, 9, 0, 0, 0, time.UTC) })
	if got, want := calendar.Today(fixed), newDate(2020, 1, 10); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	var def calendar.Clock
	if got := calendar.Today(def); !calendar.IsMidnight(got) {
		t.Errorf("got %v, want midnight", got)
	}
}
