// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bits converts between fixed width bitmask strings, such as
// "1000101", and the set of positions within them that are marked as set.
//
// The symbols used for set and clear positions are configurable via
// Encoding; the defaults are '1' and '0'. Positions are indices of
// characters (runes), not bytes.
package bits

import (
	"iter"
	"slices"
	"strings"

	"cloudeng.io/algo/container/bitmap"
)

const (
	// Positive is the default symbol for a set position.
	Positive = '1'
	// Negative is the default symbol for a clear position.
	Negative = '0'
)

// Encoding specifies the symbols used to represent set and clear
// positions. A zero value for either field selects the default symbol.
type Encoding struct {
	Positive rune
	Negative rune
}

// Default is the '1'/'0' encoding.
var Default = Encoding{Positive: Positive, Negative: Negative}

// Symbols returns the positive and negative symbols, applying defaults for
// zero values.
func (e Encoding) Symbols() (pos, neg rune) {
	pos, neg = e.Positive, e.Negative
	if pos == 0 {
		pos = Positive
	}
	if neg == 0 {
		neg = Negative
	}
	return
}

// Positions returns an iterator over the indices of mask that hold the
// positive symbol, in ascending order. An empty mask yields nothing.
// Characters other than the positive symbol are treated as clear.
func (e Encoding) Positions(mask string) iter.Seq[int] {
	pos, _ := e.Symbols()
	return func(yield func(int) bool) {
		i := 0
		for _, r := range mask {
			if r == pos {
				if !yield(i) {
					return
				}
			}
			i++
		}
	}
}

// Length returns the mask length needed to hold all of the supplied
// positions, ie. max(positions)+1, or 0 if there are no positions.
func Length(positions []int) int {
	if len(positions) == 0 {
		return 0
	}
	return max(slices.Max(positions)+1, 0)
}

// Format returns a mask of exactly length characters where position i
// holds the positive symbol iff i appears in positions. A negative length
// is treated as omitted and Length(positions) is used instead. Positions
// outside of [0, length) are ignored. An empty set of positions results
// in an empty string; use FormatOK to distinguish that from a mask with
// no positions set.
func (e Encoding) Format(positions []int, length int) string {
	s, _ := e.FormatOK(positions, length)
	return s
}

// FormatOK is like Format but returns false when there is no value to
// encode, ie. when positions is empty or the resulting mask would be.
func (e Encoding) FormatOK(positions []int, length int) (string, bool) {
	if len(positions) == 0 {
		return "", false
	}
	if length < 0 {
		length = Length(positions)
	}
	if length == 0 {
		return "", false
	}
	set := bitmap.New(length)
	for _, p := range positions {
		set.Set(p)
	}
	pos, neg := e.Symbols()
	var out strings.Builder
	out.Grow(length)
	for i := range length {
		if set.IsSet(i) {
			out.WriteRune(pos)
			continue
		}
		out.WriteRune(neg)
	}
	return out.String(), true
}

// Count returns the number of positions in mask that are set.
func (e Encoding) Count(mask string) int {
	n := 0
	for range e.Positions(mask) {
		n++
	}
	return n
}

// Positions is like Encoding.Positions using the default encoding.
func Positions(mask string) iter.Seq[int] {
	return Default.Positions(mask)
}

// Format is like Encoding.Format using the default encoding.
func Format(positions []int, length int) string {
	return Default.Format(positions, length)
}

// FormatOK is like Encoding.FormatOK using the default encoding.
func FormatOK(positions []int, length int) (string, bool) {
	return Default.FormatOK(positions, length)
}
