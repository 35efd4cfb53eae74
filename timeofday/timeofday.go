// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timeofday parses loosely formatted times of day, such as
// "10:05", "1.10:05:18", "10:05[+1]", "100518" or "0.25", into the
// duration since midnight. Text that cannot be interpreted is reported
// as the absence of a value rather than as an error.
package timeofday

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datemask/format"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Parser parses times of day.
type Parser struct {
	// Delimiters, if set, are the separators allowed between hours,
	// minutes and seconds, eg. "." for "10.05.18". They take precedence
	// over the default "h:m[:s]" grammar.
	Delimiters []string
	// Locale determines the decimal separator accepted for fractional
	// days in addition to '.'. language.Und accepts both '.' and ','.
	Locale language.Tag
	Logger *slog.Logger
}

const (
	millisPerDay = 24 * 60 * 60 * 1000
	// maxMillis is the largest number of milliseconds a time.Duration holds.
	maxMillis = float64(math.MaxInt64 / int64(time.Millisecond))
)

var (
	// [d.]h:m[:s][[+d]], the leading day takes precedence over the trailing one.
	defaultGrammar = regexp.MustCompile(`((?P<d1>\d{1,2})\.)?(?P<h>\d{1,2}):(?P<m>\d{1,2})(:(?P<s>\d{1,2}))?(\[\+(?P<d2>\d)\])?`)
	numberPattern  = regexp.MustCompile(`^(\d+([.,]\d*)?|[.,]\d+)$`)
	compactPattern = regexp.MustCompile(`^\d{3,6}$`)
)

func (p Parser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// Parse returns the duration represented by text. The following forms
// are tried in order:
//
//   - a number of days, eg. "0.25399" or "0,25399" for 06:05:44.736, where
//     the value is less than one or has a fractional part. The result is
//     rounded to the millisecond.
//   - hours, minutes and optional seconds separated by one of the
//     configured Delimiters.
//   - the default grammar of an optional day prefix "d.", "h:m[:s]" and an
//     optional day suffix "[+d]".
//   - three to six digits as "hmm", "hhmm", "hmmss" or "hhmmss".
//   - an ISO 8601 duration such as "PT10H5M".
//
// Hours and minutes in the delimited and default forms are not limited
// to a single day, ie. "25:00" is 25 hours.
func (p Parser) Parse(text string) (time.Duration, bool) {
	text = strings.TrimSpace(norm.NFKC.String(text))
	if len(text) == 0 {
		return 0, false
	}
	if !p.containsDelimiter(text) {
		if d, ok := p.dayFraction(text); ok {
			return d, true
		}
	}
	if len(p.Delimiters) > 0 {
		if d, ok := p.delimited(text); ok {
			return d, true
		}
	}
	if d, ok := matchGrammar(defaultGrammar, text); ok {
		return d, true
	}
	if d, ok := compact(text); ok {
		return d, true
	}
	if d, err := ParseISO8601Duration(text); err == nil {
		return d, true
	}
	p.logger().Debug("not a time of day", "text", text)
	return 0, false
}

func (p Parser) containsDelimiter(text string) bool {
	for _, d := range p.Delimiters {
		if len(d) > 0 && strings.Contains(text, d) {
			return true
		}
	}
	return false
}

// decimalSeparators returns the decimal separators accepted for the
// parser's locale, '.' is always accepted.
func (p Parser) decimalSeparators() []rune {
	if p.Locale == language.Und {
		return []rune{'.', ','}
	}
	if sep := format.DecimalSeparator(p.Locale); sep != '.' {
		return []rune{'.', sep}
	}
	return []rune{'.'}
}

func (p Parser) dayFraction(text string) (time.Duration, bool) {
	for _, sep := range p.decimalSeparators() {
		candidate := text
		if sep != '.' {
			if strings.ContainsRune(text, '.') {
				continue
			}
			candidate = strings.ReplaceAll(text, string(sep), ".")
		}
		if !numberPattern.MatchString(candidate) || strings.ContainsRune(candidate, ',') {
			continue
		}
		v, err := strconv.ParseFloat(candidate, 64)
		if err != nil {
			continue
		}
		if v >= 1 && v == math.Trunc(v) {
			return 0, false
		}
		millis := math.Round(v * millisPerDay)
		if millis > maxMillis {
			return 0, false
		}
		return time.Duration(millis) * time.Millisecond, true
	}
	return 0, false
}

func (p Parser) delimited(text string) (time.Duration, bool) {
	alts := make([]string, 0, len(p.Delimiters))
	for _, d := range p.Delimiters {
		if len(d) > 0 {
			alts = append(alts, regexp.QuoteMeta(d))
		}
	}
	if len(alts) == 0 {
		return 0, false
	}
	sep := "(?:" + strings.Join(alts, "|") + ")"
	re, err := regexp.Compile(`(?P<h>\d{1,2})` + sep + `(?P<m>\d{1,2})(` + sep + `(?P<s>\d{1,2}))?`)
	if err != nil {
		return 0, false
	}
	return matchGrammar(re, text)
}

// matchGrammar returns the duration described by the named groups d1, d2,
// h, m and s of the first match of re in text. Both h and m must match.
func matchGrammar(re *regexp.Regexp, text string) (time.Duration, bool) {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	groups := map[string]string{}
	for i, name := range re.SubexpNames() {
		if len(name) > 0 && len(match[i]) > 0 {
			groups[name] = match[i]
		}
	}
	if len(groups["h"]) == 0 || len(groups["m"]) == 0 {
		return 0, false
	}
	days := groups["d1"]
	if len(days) == 0 {
		days = groups["d2"]
	}
	return duration(days, groups["h"], groups["m"], groups["s"]), true
}

func atoi(s string) time.Duration {
	n, _ := strconv.Atoi(s)
	return time.Duration(n)
}

// duration assumes that its arguments are empty or all digits.
func duration(d, h, m, s string) time.Duration {
	return atoi(d)*24*time.Hour + atoi(h)*time.Hour + atoi(m)*time.Minute + atoi(s)*time.Second
}

func compact(text string) (time.Duration, bool) {
	if !compactPattern.MatchString(text) {
		return 0, false
	}
	var h, m, s string
	switch len(text) {
	case 3, 4:
		h, m = text[:len(text)-2], text[len(text)-2:]
	case 5, 6:
		h, m, s = text[:len(text)-4], text[len(text)-4:len(text)-2], text[len(text)-2:]
	}
	if atoi(h) > 23 || atoi(m) > 59 || atoi(s) > 59 {
		return 0, false
	}
	return duration("", h, m, s), true
}

// Parse is like Parser.Parse using the default settings.
func Parse(text string) (time.Duration, bool) {
	return Parser{}.Parse(text)
}

// ParseWithDelimiters is like Parser.Parse using the specified delimiters.
func ParseWithDelimiters(text string, delimiters ...string) (time.Duration, bool) {
	return Parser{Delimiters: delimiters}.Parse(text)
}

// WithinDay returns the time of day component of d, ie. d with whole days
// removed, truncated to the second.
func WithinDay(d time.Duration) time.Duration {
	return (d % (24 * time.Hour)).Truncate(time.Second)
}
