// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist_test

import (
	"time"

	"cloudeng.io/datemask/datelist"
)

func newDate(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newDateTime(y, m, d, h, mi int) time.Time {
	return time.Date(y, time.Month(m), d, h, mi, 0, 0, time.UTC)
}

func newDateList(d ...time.Time) []time.Time {
	r := make([]time.Time, len(d))
	copy(r, d)
	return r
}

func endOfDay(y, m, d int) time.Time {
	return newDate(y, m, d).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func newPeriod(from, to time.Time) datelist.Period {
	return datelist.Period{From: from, To: to}
}

func equalDates(a, b []time.Time) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalPeriods(a, b []datelist.Period) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].From.Equal(b[i].From) || !a[i].To.Equal(b[i].To) {
			return false
		}
	}
	return true
}
