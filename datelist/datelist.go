// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datelist parses delimited lists of dates and date ranges such as
// "2020-01-10,2020-01-12>2020-01-14,2020-01-16". Each section of the list
// is either a single date (or date and time) or a range of the form
// "from>to". Tokens that cannot be parsed are ignored; a range whose first
// date is later than its last is an error.
package datelist

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"cloudeng.io/datemask/calendar"
	"cloudeng.io/errors"
	"golang.org/x/text/unicode/norm"
)

const (
	// RangeMarker separates the first and last dates of a range. It
	// cannot be used as, or within, a section separator.
	RangeMarker = ">"
	// DefaultSeparator is used when no separator is specified.
	DefaultSeparator = ","
)

var (
	// ErrInvalidSeparator is returned when the section separator contains
	// the range marker.
	ErrInvalidSeparator = errors.New("separator cannot contain the range marker " + RangeMarker)
	// ErrDateOrder is returned when the first date of a range is later than
	// the last.
	ErrDateOrder = errors.New("dates order is wrong")
	// ErrInvalidDate is reported by Validate for tokens that cannot be
	// parsed as a date.
	ErrInvalidDate = errors.New("invalid date")
)

// DefaultLayouts are the layouts tried, in order, when a Parser has no
// Layouts configured.
var DefaultLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
}

// Parser parses date lists. The zero value is ready to use: it splits
// sections on DefaultSeparator, tries DefaultLayouts and interprets
// dates without an explicit offset as UTC.
type Parser struct {
	Separator string
	Layouts   []string
	Location  *time.Location
	// Constraints, if not empty, restricts the dates returned by Dates,
	// eg. to weekdays only. Periods are not affected.
	Constraints calendar.Constraints
	// Logger, if set, receives a debug record for every token that is
	// ignored because it cannot be parsed.
	Logger *slog.Logger
}

func (p Parser) separator() string {
	if len(p.Separator) == 0 {
		return DefaultSeparator
	}
	return norm.NFKC.String(p.Separator)
}

func (p Parser) layouts() []string {
	if len(p.Layouts) == 0 {
		return DefaultLayouts
	}
	return p.Layouts
}

func (p Parser) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p Parser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// ParseToken parses a single date or date and time using the parser's
// layouts, returning false if none of them match.
func (p Parser) ParseToken(tok string) (time.Time, bool) {
	tok = strings.TrimSpace(norm.NFKC.String(tok))
	if len(tok) == 0 {
		return time.Time{}, false
	}
	loc := p.location()
	for _, layout := range p.layouts() {
		if t, err := time.ParseInLocation(layout, tok, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sections validates the separator and splits text into its non-empty
// sections.
func (p Parser) sections(text string) ([]string, error) {
	sep := p.separator()
	if strings.Contains(sep, RangeMarker) {
		return nil, fmt.Errorf("%q: %w", sep, ErrInvalidSeparator)
	}
	text = norm.NFKC.String(text)
	if len(strings.TrimSpace(text)) == 0 {
		return nil, nil
	}
	var sections []string
	for _, s := range strings.Split(text, sep) {
		if len(strings.TrimSpace(s)) > 0 {
			sections = append(sections, s)
		}
	}
	return sections, nil
}

// bounds returns the first and last dates that can be parsed from the
// tokens of section along with the number of tokens parsed. Tokens that
// cannot be parsed are passed to invalid.
func (p Parser) bounds(section string, invalid func(tok string)) (first, last time.Time, n int, err error) {
	for _, tok := range strings.Split(section, RangeMarker) {
		tok = strings.TrimSpace(tok)
		if len(tok) == 0 {
			continue
		}
		t, ok := p.ParseToken(tok)
		if !ok {
			invalid(tok)
			continue
		}
		if n == 0 {
			first = t
		}
		last = t
		n++
	}
	if n > 1 && first.After(last) {
		err = fmt.Errorf("%q: the first date is later than the last: %w", strings.TrimSpace(section), ErrDateOrder)
	}
	return
}

func (p Parser) ignore(logger *slog.Logger) func(string) {
	return func(tok string) {
		logger.Debug("ignoring invalid date", "token", tok)
	}
}

// Dates returns the dates described by text in ascending order. A range
// contributes its first date and each following day that is not after its
// last date, comparing times of day too. All
// dates are returned as midnight of their day and duplicates are retained.
// Empty text, or text that contains no valid dates, results in an empty
// slice.
func (p Parser) Dates(text string) ([]time.Time, error) {
	sections, err := p.sections(text)
	if err != nil {
		return nil, err
	}
	logger := p.logger()
	if !p.Constraints.Empty() {
		logger.Debug("filtering dates", "constraints", p.Constraints.String())
	}
	ignore := p.ignore(logger)
	var dates []time.Time
	for _, section := range sections {
		first, last, n, err := p.bounds(section, ignore)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue
		}
		for d := range calendar.Between(first, last, p.Constraints) {
			dates = append(dates, calendar.Midnight(d))
		}
	}
	slices.SortStableFunc(dates, time.Time.Compare)
	return dates, nil
}

// Periods returns the periods described by text ordered by their start
// and then end times. A single date yields a period that ends at the end
// of that date's day. A range whose last date is exactly midnight is
// extended to the end of that day. Overlapping periods are not merged.
func (p Parser) Periods(text string) ([]Period, error) {
	sections, err := p.sections(text)
	if err != nil {
		return nil, err
	}
	ignore := p.ignore(p.logger())
	var periods []Period
	for _, section := range sections {
		first, last, n, err := p.bounds(section, ignore)
		if err != nil {
			return nil, err
		}
		switch {
		case n == 0:
			continue
		case n == 1:
			periods = append(periods, Period{From: first, To: calendar.EndOfDay(first)})
		case calendar.IsMidnight(last):
			periods = append(periods, Period{From: first, To: calendar.EndOfDay(last)})
		default:
			periods = append(periods, Period{From: first, To: last})
		}
	}
	slices.SortStableFunc(periods, Period.Compare)
	return periods, nil
}

// Validate reports every token in text that cannot be parsed and every
// range whose dates are in the wrong order. Unlike Dates and Periods it
// does not stop at the first error.
func (p Parser) Validate(text string) error {
	sections, err := p.sections(text)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	for _, section := range sections {
		_, _, _, err := p.bounds(section, func(tok string) {
			errs.Append(fmt.Errorf("%q: %w", tok, ErrInvalidDate))
		})
		errs.Append(err)
	}
	return errs.Err()
}

// Dates is like Parser.Dates using the specified separator and default
// settings otherwise.
func Dates(text, separator string) ([]time.Time, error) {
	return Parser{Separator: separator}.Dates(text)
}

// Periods is like Parser.Periods using the specified separator and
// default settings otherwise.
func Periods(text, separator string) ([]Period, error) {
	return Parser{Separator: separator}.Periods(text)
}
