// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timeofday

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
)

// ErrInvalidISO8601Duration is returned by ParseISO8601Duration.
var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

const (
	isoDay   = 24 * time.Hour
	isoWeek  = 7 * isoDay
	isoYear  = 365 * isoDay
	isoMonth = isoYear / 12
)

// designators in the order they may appear, before and after the 'T'.
var (
	dateDesignators = []struct {
		c    byte
		unit time.Duration
	}{{'Y', isoYear}, {'M', isoMonth}, {'W', isoWeek}, {'D', isoDay}}
	timeDesignators = []struct {
		c    byte
		unit time.Duration
	}{{'H', time.Hour}, {'M', time.Minute}, {'S', time.Second}}
)

// nextElement consumes a number and its designator from the front of dur.
func nextElement(dur string) (float64, byte, string, error) {
	for i := range len(dur) {
		c := dur[i]
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		if i == 0 {
			break
		}
		n, err := strconv.ParseFloat(dur[:i], 64)
		if err != nil {
			return 0, 0, "", fmt.Errorf("invalid number: %q: %w", dur[:i], ErrInvalidISO8601Duration)
		}
		return n, c, dur[i+1:], nil
	}
	return 0, 0, "", fmt.Errorf("missing number or designator: %q: %w", dur, ErrInvalidISO8601Duration)
}

// ParseISO8601Duration parses a duration of the form [-]PnYnMnWnDTnHnMnS.
// Years are 365 days and months a twelfth of a year. Designators must
// appear in order and at most once.
func ParseISO8601Duration(text string) (time.Duration, error) {
	dur, negative := strings.CutPrefix(text, "-")
	dur, ok := strings.CutPrefix(dur, "P")
	if !ok {
		return 0, fmt.Errorf("%q: must start with P or -P: %w", text, ErrInvalidISO8601Duration)
	}
	if len(dur) == 0 {
		return 0, fmt.Errorf("%q: missing elements: %w", text, ErrInvalidISO8601Duration)
	}
	var result time.Duration
	designators, inTime := dateDesignators, false
	for len(dur) > 0 {
		if dur[0] == 'T' {
			if inTime || len(dur) == 1 {
				return 0, fmt.Errorf("%q: misplaced T: %w", text, ErrInvalidISO8601Duration)
			}
			designators, inTime = timeDesignators, true
			dur = dur[1:]
			continue
		}
		n, c, rest, err := nextElement(dur)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", text, err)
		}
		found := false
		for i, d := range designators {
			if d.c == c {
				v := float64(d.unit) * n
				if v >= float64(math.MaxInt64-result) {
					return 0, fmt.Errorf("%q: too large: %w", text, ErrInvalidISO8601Duration)
				}
				result += time.Duration(v)
				designators = designators[i+1:]
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%q: unexpected designator %c: %w", text, c, ErrInvalidISO8601Duration)
		}
		dur = rest
	}
	if negative {
		result = -result
	}
	return result, nil
}

// FormatISO8601Duration is the inverse of ParseISO8601Duration, it uses
// the largest units possible and omits zero valued elements. Fractions of
// a second are truncated.
func FormatISO8601Duration(d time.Duration) string {
	var out strings.Builder
	if d < 0 {
		out.WriteByte('-')
		d = -d
	}
	out.WriteByte('P')
	d = d.Truncate(time.Second)
	if d == 0 {
		out.WriteString("T0S")
		return out.String()
	}
	for _, el := range dateDesignators {
		if n := d / el.unit; n > 0 {
			fmt.Fprintf(&out, "%d%c", n, el.c)
			d -= n * el.unit
		}
	}
	if d > 0 {
		out.WriteByte('T')
	}
	for _, el := range timeDesignators {
		if n := d / el.unit; n > 0 {
			fmt.Fprintf(&out, "%d%c", n, el.c)
			d -= n * el.unit
		}
	}
	return out.String()
}
