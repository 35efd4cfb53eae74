// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datemask converts between sets of calendar dates and compact
// bitmask strings anchored to a start date. Position i of a mask refers to
// the anchor date plus i days, so "1000001" anchored on a Monday selects
// that Monday and the following Sunday.
//
// Masks may be decoded repeatedly, ie. a seven character mask describes a
// weekly pattern that is repeated until an end date is reached:
//
//	for d := range datemask.Dates("1000000", monday, monday.AddDate(0, 0, 27)) {
//	    // the four mondays
//	}
//
// The companion packages provide the bit position codec (bits), a parser
// for date list strings such as "2020-01-10,2020-01-12>2020-01-14"
// (datelist), projection of dates into a cyclic window (cyclic) and a
// lenient time of day parser (timeofday).
package datemask

import (
	"iter"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"cloudeng.io/datemask/bits"
	"cloudeng.io/datemask/calendar"
)

// Encoding determines the symbols used for masks.
type Encoding struct {
	bits.Encoding
}

// Default uses '1' and '0' for set and clear days.
var Default = Encoding{bits.Default}

// NewEncoding returns an Encoding that uses the specified symbols.
func NewEncoding(positive, negative rune) Encoding {
	return Encoding{bits.Encoding{Positive: positive, Negative: negative}}
}

// Dates returns an iterator over the dates selected by mask when anchored
// at start. The mask is repeated every len(mask) days until end is
// reached; end is an inclusive, hard upper bound that may terminate a
// repetition part way through. Each date is yielded as midnight of its day.
//
// A zero end is treated as omitted, in which case the mask is decoded
// exactly once, ie. end defaults to start plus the last set position. If
// start is zero as well there is no upper bound, but still only a single
// repetition. A mask with no set positions yields nothing.
func (e Encoding) Dates(mask string, start, end time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		positions := slices.Collect(e.Positions(mask))
		if len(positions) == 0 {
			return
		}
		step := utf8.RuneCountInString(mask)
		bounded := !end.IsZero()
		if !bounded && !start.IsZero() {
			end = calendar.AddDays(start, positions[len(positions)-1])
			bounded = true
		}
		for anchor := start; ; anchor = calendar.AddDays(anchor, step) {
			for _, p := range positions {
				d := calendar.AddDays(anchor, p)
				if bounded && d.After(end) {
					return
				}
				if !yield(calendar.Midnight(d)) {
					return
				}
			}
			if !bounded || calendar.AddDays(anchor, step).After(end) {
				return
			}
		}
	}
}

// MaskRangeOK returns a mask with one position for every day from begin
// to end inclusive, with a position set iff that day appears in dates.
// Dates, begin and end are compared as calendar days. It returns false,
// meaning there is no value, if dates is empty or begin is after end.
// A non-empty set of dates outside of the range yields a mask with no
// positions set.
func (e Encoding) MaskRangeOK(dates []time.Time, begin, end time.Time) (string, bool) {
	if len(dates) == 0 {
		return "", false
	}
	days := make(map[calendar.Day]struct{}, len(dates))
	for _, d := range dates {
		days[calendar.DayOf(d)] = struct{}{}
	}
	pos, neg := e.Symbols()
	var out strings.Builder
	for d := calendar.Midnight(begin); !d.After(calendar.Midnight(end)); d = calendar.AddDays(d, 1) {
		if _, ok := days[calendar.DayOf(d)]; ok {
			out.WriteRune(pos)
			continue
		}
		out.WriteRune(neg)
	}
	if out.Len() == 0 {
		return "", false
	}
	return out.String(), true
}

// MaskRange is like MaskRangeOK but returns an empty string when there is
// no value.
func (e Encoding) MaskRange(dates []time.Time, begin, end time.Time) string {
	m, _ := e.MaskRangeOK(dates, begin, end)
	return m
}

// MaskOK is like MaskRangeOK with the range being that spanned by the
// earliest and latest of dates.
func (e Encoding) MaskOK(dates []time.Time) (string, bool) {
	if len(dates) == 0 {
		return "", false
	}
	begin := slices.MinFunc(dates, time.Time.Compare)
	end := slices.MaxFunc(dates, time.Time.Compare)
	return e.MaskRangeOK(dates, begin, end)
}

// Mask is like MaskOK but returns an empty string when there is no value.
func (e Encoding) Mask(dates []time.Time) string {
	m, _ := e.MaskOK(dates)
	return m
}

// Dates is like Encoding.Dates using the default encoding.
func Dates(mask string, start, end time.Time) iter.Seq[time.Time] {
	return Default.Dates(mask, start, end)
}

// Mask is like Encoding.Mask using the default encoding.
func Mask(dates []time.Time) string {
	return Default.Mask(dates)
}

// MaskOK is like Encoding.MaskOK using the default encoding.
func MaskOK(dates []time.Time) (string, bool) {
	return Default.MaskOK(dates)
}

// MaskRange is like Encoding.MaskRange using the default encoding.
func MaskRange(dates []time.Time, begin, end time.Time) string {
	return Default.MaskRange(dates, begin, end)
}

// MaskRangeOK is like Encoding.MaskRangeOK using the default encoding.
func MaskRangeOK(dates []time.Time, begin, end time.Time) (string, bool) {
	return Default.MaskRangeOK(dates, begin, end)
}
