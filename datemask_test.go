// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemask_test

import (
	"slices"
	"testing"
	"time"

	"cloudeng.io/datemask"
)

func newDate(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newDateList(d ...time.Time) []time.Time {
	r := make([]time.Time, len(d))
	copy(r, d)
	return r
}

func TestDatesSingleBit(t *testing.T) {
	now := time.Date(2020, 1, 10, 14, 30, 0, 0, time.UTC)
	today := newDate(2020, 1, 10)

	for _, end := range []time.Time{{}, now} {
		if got := slices.Collect(datemask.Dates("0", now, end)); len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
		got := slices.Collect(datemask.Dates("1", now, end))
		if want := newDateList(today); !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	tf := datemask.NewEncoding('T', 'F')
	if got := slices.Collect(tf.Dates("F", now, time.Time{})); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
	if got, want := slices.Collect(tf.Dates("T", now, time.Time{})), newDateList(today); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDatesWithEnd(t *testing.T) {
	now := time.Date(2020, 1, 10, 14, 30, 0, 0, time.UTC)
	dates := slices.Collect(datemask.Dates("1000000", now, now.AddDate(0, 0, 13)))
	if got, want := dates, newDateList(newDate(2020, 1, 10), newDate(2020, 1, 17)); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	start := newDate(2020, 1, 6) // monday
	for i, tc := range []struct {
		mask  string
		end   time.Time
		dates []time.Time
	}{
		{"1000000", newDate(2020, 1, 27), newDateList(newDate(2020, 1, 6), newDate(2020, 1, 13), newDate(2020, 1, 20), newDate(2020, 1, 27))},
		{"1000000", newDate(2020, 1, 26), newDateList(newDate(2020, 1, 6), newDate(2020, 1, 13), newDate(2020, 1, 20))},
		// The end date stops a repetition part way through.
		{"1010", newDate(2020, 1, 12), newDateList(newDate(2020, 1, 6), newDate(2020, 1, 8), newDate(2020, 1, 10), newDate(2020, 1, 12))},
		{"1010", newDate(2020, 1, 11), newDateList(newDate(2020, 1, 6), newDate(2020, 1, 8), newDate(2020, 1, 10))},
		{"0110", newDate(2020, 1, 13), newDateList(newDate(2020, 1, 7), newDate(2020, 1, 8), newDate(2020, 1, 11), newDate(2020, 1, 12))},
		// An end before the start yields nothing.
		{"1111", newDate(2020, 1, 5), nil},
		{"", newDate(2020, 1, 31), nil},
		{"0000", newDate(2020, 1, 31), nil},
	} {
		if got, want := slices.Collect(datemask.Dates(tc.mask, start, tc.end)), tc.dates; !slices.Equal(got, want) {
			t.Errorf("%v: %q: got %v, want %v", i, tc.mask, got, want)
		}
	}
}

func TestDatesWithoutEnd(t *testing.T) {
	now := time.Date(2020, 1, 10, 14, 30, 0, 0, time.UTC)
	if got, want := len(slices.Collect(datemask.Dates("1111111", now, time.Time{}))), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := slices.Collect(datemask.Dates("0001000", now, time.Time{})), newDateList(newDate(2020, 1, 13)); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// A zero start and end yields a single, unbounded, repetition.
	zero := time.Time{}
	got := slices.Collect(datemask.Dates("0101", zero, zero))
	if want := newDateList(zero.AddDate(0, 0, 1), zero.AddDate(0, 0, 3)); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDatesIterator(t *testing.T) {
	start := newDate(2020, 1, 1)
	seq := datemask.Dates("11", start, newDate(2020, 12, 31))
	n := 0
	for range seq {
		n++
		if n == 10 {
			break
		}
	}
	if got, want := n, 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Every range over the sequence starts from the beginning.
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if got, want := len(first), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !slices.Equal(first, second) {
		t.Errorf("sequences differ")
	}
}

func TestMask(t *testing.T) {
	today := newDate(2020, 1, 10)
	dates := newDateList(today, today.AddDate(0, 0, 2))

	if got, want := datemask.Mask(dates), "101"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	yn := datemask.NewEncoding('Y', 'N')
	if got, want := yn.Mask(dates), "YNY"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Order, duplicates and time of day are irrelevant.
	unordered := newDateList(today.AddDate(0, 0, 2).Add(5*time.Hour), today, today)
	if got, want := datemask.Mask(unordered), "101"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	for i, tc := range []struct {
		begin, end time.Time
		mask       string
	}{
		{newDate(2020, 1, 8), newDate(2020, 1, 14), "0010100"},
		{newDate(2020, 1, 11), newDate(2020, 1, 12), "01"},
		{newDate(2020, 1, 13), newDate(2020, 1, 15), "000"},
		{newDate(2020, 1, 10).Add(23 * time.Hour), newDate(2020, 1, 12), "101"},
	} {
		mask, ok := datemask.MaskRangeOK(dates, tc.begin, tc.end)
		if !ok {
			t.Errorf("%v: expected a value", i)
		}
		if got, want := mask, tc.mask; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
	}
}

func TestMaskEmpty(t *testing.T) {
	var none []time.Time
	if got := datemask.Mask(none); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if _, ok := datemask.MaskOK(none); ok {
		t.Errorf("expected no value")
	}
	if _, ok := datemask.MaskRangeOK(none, newDate(2020, 1, 1), newDate(2020, 1, 7)); ok {
		t.Errorf("expected no value")
	}
	dates := newDateList(newDate(2020, 1, 1))
	if m, ok := datemask.MaskRangeOK(dates, newDate(2020, 1, 7), newDate(2020, 1, 1)); ok || m != "" {
		t.Errorf("got %q %v, want no value", m, ok)
	}
	if got := datemask.MaskRange(dates, newDate(2020, 1, 7), newDate(2020, 1, 1)); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRoundTrip(t *testing.T) {
	nd := newDate
	for i, tc := range []struct {
		dates      []time.Time
		begin, end time.Time
	}{
		{newDateList(nd(2020, 1, 10), nd(2020, 1, 12), nd(2020, 1, 16)), nd(2020, 1, 10), nd(2020, 1, 16)},
		{newDateList(nd(2020, 1, 10), nd(2020, 1, 12), nd(2020, 1, 16)), nd(2020, 1, 11), nd(2020, 1, 13)},
		{newDateList(nd(2020, 1, 10), nd(2020, 1, 12), nd(2020, 1, 16)), nd(2020, 1, 1), nd(2020, 1, 31)},
		{newDateList(nd(2020, 2, 28), nd(2020, 2, 29), nd(2020, 3, 1)), nd(2020, 2, 27), nd(2020, 3, 2)},
		{newDateList(nd(2019, 12, 31), nd(2020, 1, 1)), nd(2019, 12, 1), nd(2020, 1, 1)},
	} {
		mask := datemask.MaskRange(tc.dates, tc.begin, tc.end)
		got := slices.Collect(datemask.Dates(mask, tc.begin, time.Time{}))
		var want []time.Time
		for _, d := range tc.dates {
			if !d.Before(tc.begin) && !d.After(tc.end) {
				want = append(want, d)
			}
		}
		if !slices.Equal(got, want) {
			t.Errorf("%v: %q: got %v, want %v", i, mask, got, want)
		}
	}
}
