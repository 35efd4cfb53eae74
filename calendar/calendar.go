// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the basic calendar primitives used by the
// date mask, date list and cyclic window packages: day arithmetic that
// ignores daylight saving transitions, weekday lookups and enumeration of
// the days in a range.
package calendar

import (
	"fmt"
	"iter"
	"time"

	"cloudeng.io/datemask/lift"
)

// Day is a comparable calendar day, ie. a date without a time of day or
// location. It is suitable for use as a map key.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Before returns true if d is before o.
func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Time returns midnight of d in the specified location.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Clock returns the current time. A nil Clock uses time.Now.
type Clock func() time.Time

// Now returns the clock's current time.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Today returns midnight of the clock's current day.
func Today(c Clock) time.Time {
	return Midnight(c.Now())
}

// Midnight returns the start of t's day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day, ie.
// one nanosecond before the following midnight.
func EndOfDay(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsMidnight returns true if t's time of day is exactly 00:00:00.
func IsMidnight(t time.Time) bool {
	return t.Equal(Midnight(t))
}

// AddDays adds n calendar days to t keeping its wall clock time of day.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func wallClock(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// Elapsed returns the absolute wall clock duration between a and b. Daylight
// saving transitions are ignored, so consecutive midnights are always 24
// hours apart.
func Elapsed(a, b time.Time) time.Duration {
	d := wallClock(b).Sub(wallClock(a))
	if d < 0 {
		return -d
	}
	return d
}

// DaysBetween returns the number of whole days in the absolute wall clock
// duration between a and b. Partial days are truncated.
func DaysBetween(a, b time.Time) int {
	return int(Elapsed(a, b) / (24 * time.Hour))
}

// Next returns the first date on or after t that falls on the specified day
// of the week.
func Next(t time.Time, day time.Weekday) time.Time {
	return AddDays(t, (int(day)-int(t.Weekday())+7)%7)
}

// Previous returns the last date on or before t that falls on the
// specified day of the week.
func Previous(t time.Time, day time.Weekday) time.Time {
	return AddDays(t, (int(day)-int(t.Weekday())-7)%7)
}

// Shift moves t by the specified number of days, which may be negative.
func Shift(t time.Time, days int) time.Time {
	return AddDays(t, days)
}

// ShiftPtr is like Shift but for an optional date.
func ShiftPtr(t *time.Time, days int) *time.Time {
	return lift.Ptr(func(t time.Time) time.Time { return Shift(t, days) })(t)
}

// ShiftAll lazily shifts every date in dates.
func ShiftAll(dates iter.Seq[time.Time], days int) iter.Seq[time.Time] {
	return lift.Seq(func(t time.Time) time.Time { return Shift(t, days) })(dates)
}

// Between returns an iterator over every day from from to to inclusive
// that satisfies the supplied constraints. If from is after to the two are
// swapped. The time of day of the earlier value is retained.
func Between(from, to time.Time, dc Constraints) iter.Seq[time.Time] {
	if to.Before(from) {
		from, to = to, from
	}
	return func(yield func(time.Time) bool) {
		for d := from; !d.After(to); d = AddDays(d, 1) {
			if !dc.Include(d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}
