// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package format renders dates and durations using patterns such as
// "yyyy-MM-dd" and "hh\:mm\:ss" rather than Go reference layouts.
//
// Date patterns support yyyy, yy, MMMM, MMM, MM, M, dddd, ddd, dd, d, HH,
// H, hh, h, mm, m, ss, s, fff, ff, f, tt and zzz. Duration patterns
// support dd, d, hh, h, mm, m, ss, s and f through fffffff. In both,
// any other character is copied to the output, a backslash escapes the
// following character and text within single quotes is copied verbatim.
package format

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datemask/lift"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultDatePattern is used by Format.Date when no pattern is set.
	DefaultDatePattern = "yyyy-MM-dd"
	// DefaultDurationPattern is used by Format.Duration when no pattern
	// is set.
	DefaultDurationPattern = `hh\:mm\:ss`
)

// Format specifies a pattern and the locale used for numbers. Month and
// day names are always in English. The zero value uses the default
// pattern for the value being formatted and language.Und.
type Format struct {
	Pattern string
	Locale  language.Tag
}

type dateToken struct {
	layout string
	format func(time.Time) string
}

func fraction(digits int) func(time.Time) string {
	return func(t time.Time) string {
		return fmt.Sprintf("%09d", t.Nanosecond())[:digits]
	}
}

func layout(l string) func(time.Time) string {
	return func(t time.Time) string { return t.Format(l) }
}

var dateTokens = map[string]dateToken{
	"yyyy": {"2006", layout("2006")},
	"yy":   {"06", layout("06")},
	"MMMM": {"January", layout("January")},
	"MMM":  {"Jan", layout("Jan")},
	"MM":   {"01", layout("01")},
	"M":    {"1", layout("1")},
	"dddd": {"Monday", layout("Monday")},
	"ddd":  {"Mon", layout("Mon")},
	"dd":   {"02", layout("02")},
	"d":    {"2", layout("2")},
	"HH":   {"15", layout("15")},
	"H":    {"15", func(t time.Time) string { return strconv.Itoa(t.Hour()) }},
	"hh":   {"03", layout("03")},
	"h":    {"3", layout("3")},
	"mm":   {"04", layout("04")},
	"m":    {"4", layout("4")},
	"ss":   {"05", layout("05")},
	"s":    {"5", layout("5")},
	"fff":  {"000", fraction(3)},
	"ff":   {"00", fraction(2)},
	"f":    {"0", fraction(1)},
	"tt":   {"PM", layout("PM")},
	"zzz":  {"-07:00", layout("-07:00")},
}

var durationTokens = []string{
	"fffffff", "ffffff", "fffff", "ffff", "fff", "ff", "f",
	"dd", "d", "hh", "h", "mm", "m", "ss", "s",
}

// segment is either a literal or a pattern token.
type segment struct {
	literal string
	token   string
}

// tokenize splits pattern into literals and the longest tokens that match
// at each position. Runs of the same letter longer than any token are
// split into multiple tokens, as in "yyyyyy" -> "yyyy", "yy".
func tokenize(pattern string, isToken func(string) bool) []segment {
	var segs []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		switch r := runes[i]; r {
		case '\\':
			if i+1 < len(runes) {
				lit.WriteRune(runes[i+1])
			}
			i += 2
			continue
		case '\'':
			end := i + 1
			for end < len(runes) && runes[end] != '\'' {
				end++
			}
			lit.WriteString(string(runes[i+1 : end]))
			i = end + 1
			continue
		}
		n := 0
		for j := i; j < len(runes) && runes[j] == runes[i]; j++ {
			n++
		}
		for ; n > 0; n-- {
			if isToken(string(runes[i : i+n])) {
				break
			}
		}
		if n == 0 {
			lit.WriteRune(runes[i])
			i++
			continue
		}
		flush()
		segs = append(segs, segment{token: string(runes[i : i+n])})
		i += n
	}
	flush()
	return segs
}

func isDateToken(s string) bool {
	_, ok := dateTokens[s]
	return ok
}

func isDurationToken(s string) bool {
	return slices.Contains(durationTokens, s)
}

// Layout returns the Go reference layout equivalent to the date pattern,
// for use with time.Parse. Literal text that happens to contain Go layout
// elements is not escaped since Go layouts cannot express that.
func Layout(pattern string) string {
	var out strings.Builder
	for _, seg := range tokenize(pattern, isDateToken) {
		if len(seg.token) == 0 {
			out.WriteString(seg.literal)
			continue
		}
		out.WriteString(dateTokens[seg.token].layout)
	}
	return out.String()
}

// Date formats t using f's pattern, or DefaultDatePattern if none is set.
func (f Format) Date(t time.Time) string {
	pattern := f.Pattern
	if len(pattern) == 0 {
		pattern = DefaultDatePattern
	}
	var out strings.Builder
	for _, seg := range tokenize(pattern, isDateToken) {
		if len(seg.token) == 0 {
			out.WriteString(seg.literal)
			continue
		}
		out.WriteString(dateTokens[seg.token].format(t))
	}
	return out.String()
}

// DatePtr is like Date for an optional time; nil is returned for nil.
func (f Format) DatePtr(t *time.Time) *string {
	return lift.Ptr(f.Date)(t)
}

// Duration formats d using f's pattern, or DefaultDurationPattern if none
// is set. Hours, minutes and seconds are the components of d within its
// day, ie. 26 hours formats as 02 with the hh token and the number of
// whole days is available via d and dd. Negative durations are prefixed
// with a '-'.
func (f Format) Duration(d time.Duration) string {
	pattern := f.Pattern
	if len(pattern) == 0 {
		pattern = DefaultDurationPattern
	}
	var out strings.Builder
	if d < 0 {
		out.WriteByte('-')
		d = -d
	}
	days := int64(d / (24 * time.Hour))
	hours := int64(d/time.Hour) % 24
	minutes := int64(d/time.Minute) % 60
	seconds := int64(d/time.Second) % 60
	nanos := int64(d % time.Second)
	for _, seg := range tokenize(pattern, isDurationToken) {
		switch seg.token {
		case "":
			out.WriteString(seg.literal)
		case "d":
			out.WriteString(strconv.FormatInt(days, 10))
		case "dd":
			fmt.Fprintf(&out, "%02d", days)
		case "h":
			out.WriteString(strconv.FormatInt(hours, 10))
		case "hh":
			fmt.Fprintf(&out, "%02d", hours)
		case "m":
			out.WriteString(strconv.FormatInt(minutes, 10))
		case "mm":
			fmt.Fprintf(&out, "%02d", minutes)
		case "s":
			out.WriteString(strconv.FormatInt(seconds, 10))
		case "ss":
			fmt.Fprintf(&out, "%02d", seconds)
		default:
			out.WriteString(fmt.Sprintf("%09d", nanos)[:len(seg.token)])
		}
	}
	return out.String()
}

// DurationPtr is like Duration for an optional duration; nil is returned
// for nil.
func (f Format) DurationPtr(d *time.Duration) *string {
	return lift.Ptr(f.Duration)(d)
}

// DayFraction formats d as a number of days, eg. 36h is 1.5, using the
// locale's decimal separator and at most five fractional digits.
func DayFraction(d time.Duration, tag language.Tag) string {
	days := float64(d) / float64(24*time.Hour)
	days = math.Round(days*1e5) / 1e5
	return message.NewPrinter(tag).Sprint(number.Decimal(days, number.MaxFractionDigits(5), number.NoSeparator()))
}

// DayFraction is like the package level DayFraction using f's locale.
func (f Format) DayFraction(d time.Duration) string {
	return DayFraction(d, f.Locale)
}

// DecimalSeparator returns the decimal separator used by the locale.
func DecimalSeparator(tag language.Tag) rune {
	s := []rune(message.NewPrinter(tag).Sprint(number.Decimal(1.5)))
	if len(s) != 3 {
		return '.'
	}
	return s[1]
}
