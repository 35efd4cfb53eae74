// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"cloudeng.io/datemask/calendar"
	"cloudeng.io/datemask/cyclic"
	"cloudeng.io/datemask/datelist"
	"cloudeng.io/datemask/timeofday"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type commands struct {
	out     io.Writer
	globals GlobalFlags
	cfg     Config
}

// setup loads the config file and adds the logger to the context. The
// returned function closes the log file.
func (c *commands) setup(ctx context.Context) (context.Context, func(), error) {
	logger, err := c.globals.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	done := func() { logger.Close() }
	ctx = ctxlog.Context(ctx, logger.Logger)
	cfg, err := LoadConfig(c.globals.Config)
	if err != nil {
		return ctx, done, err
	}
	c.cfg = cfg
	ctxlog.Logger(ctx).Debug("config", "file", c.globals.Config, "exclude", len(cfg.Exclude))
	return ctx, done, nil
}

func (c *commands) dateParser(ctx context.Context, separator string) (datelist.Parser, error) {
	p, err := c.cfg.DateParser(separator)
	p.Logger = ctxlog.Logger(ctx)
	return p, err
}

// constrainedParser is like dateParser but restricts dates to the days
// selected by cf.
func (c *commands) constrainedParser(ctx context.Context, separator string, cf ConstraintFlags) (datelist.Parser, error) {
	p, err := c.dateParser(ctx, separator)
	if err != nil {
		return p, err
	}
	days, err := calendar.ParseWeekdays(cf.Days)
	if err != nil {
		return p, err
	}
	p.Constraints = calendar.Constraints{
		Weekdays: cf.Weekdays,
		Weekends: cf.Weekends,
		Days:     days,
	}
	return p, nil
}

func (c *commands) parseDate(p datelist.Parser, text string) (time.Time, error) {
	d, ok := p.ParseToken(text)
	if !ok {
		return time.Time{}, fmt.Errorf("%q: %w", text, datelist.ErrInvalidDate)
	}
	return d, nil
}

func (c *commands) included(dates []time.Time) []time.Time {
	return slices.DeleteFunc(dates, c.cfg.Excluded)
}

func (c *commands) decode(ctx context.Context, values any, args []string) error {
	fv := values.(*decodeFlags)
	ctx, done, err := c.setup(ctx)
	defer done()
	if err != nil {
		return err
	}
	if len(args) > 3 {
		return fmt.Errorf("decode: expected <mask> <start> [<end>], got %v arguments", len(args))
	}
	enc, err := c.cfg.Encoding(fv.Positive, fv.Negative)
	if err != nil {
		return err
	}
	p, err := c.dateParser(ctx, "")
	if err != nil {
		return err
	}
	start, err := c.parseDate(p, args[1])
	if err != nil {
		return err
	}
	var end time.Time
	if len(args) == 3 {
		if end, err = c.parseDate(p, args[2]); err != nil {
			return err
		}
	}
	f := c.cfg.DateFormat()
	for d := range enc.Dates(args[0], start, end) {
		if c.cfg.Excluded(d) {
			continue
		}
		fmt.Fprintln(c.out, f.Date(d))
	}
	return nil
}

func (c *commands) encode(ctx context.Context, values any, args []string) error {
	fv := values.(*encodeFlags)
	ctx, done, err := c.setup(ctx)
	defer done()
	if err != nil {
		return err
	}
	enc, err := c.cfg.Encoding(fv.Positive, fv.Negative)
	if err != nil {
		return err
	}
	p, err := c.constrainedParser(ctx, fv.Separator, fv.ConstraintFlags)
	if err != nil {
		return err
	}
	dates, err := p.Dates(args[0])
	if err != nil {
		return err
	}
	dates = c.included(dates)
	var mask string
	var ok bool
	if len(fv.Begin) == 0 && len(fv.End) == 0 {
		mask, ok = enc.MaskOK(dates)
	} else {
		begin, end, err := c.bounds(p, dates, fv.Begin, fv.End)
		if err != nil {
			return err
		}
		mask, ok = enc.MaskRangeOK(dates, begin, end)
	}
	if !ok {
		mask = fv.NoValue
	}
	fmt.Fprintln(c.out, mask)
	return nil
}

// bounds returns the begin and end dates, defaulting to the earliest
// and latest of dates respectively.
func (c *commands) bounds(p datelist.Parser, dates []time.Time, begin, end string) (b, e time.Time, err error) {
	if len(dates) > 0 {
		b, e = dates[0], dates[len(dates)-1]
	}
	if len(begin) > 0 {
		if b, err = c.parseDate(p, begin); err != nil {
			return
		}
	}
	if len(end) > 0 {
		e, err = c.parseDate(p, end)
	}
	return
}

func (c *commands) dates(ctx context.Context, values any, args []string) error {
	fv := values.(*datesFlags)
	ctx, done, err := c.setup(ctx)
	defer done()
	if err != nil {
		return err
	}
	p, err := c.constrainedParser(ctx, fv.Separator, fv.ConstraintFlags)
	if err != nil {
		return err
	}
	dates, err := p.Dates(args[0])
	if err != nil {
		return err
	}
	f := c.cfg.DateFormat()
	for _, d := range c.included(dates) {
		fmt.Fprintln(c.out, f.Date(d))
	}
	return nil
}

func (c *commands) periods(ctx context.Context, values any, args []string) error {
	fv := values.(*periodsFlags)
	ctx, done, err := c.setup(ctx)
	defer done()
	if err != nil {
		return err
	}
	p, err := c.dateParser(ctx, fv.Separator)
	if err != nil {
		return err
	}
	periods, err := p.Periods(args[0])
	if err != nil {
		return err
	}
	f := c.cfg.PeriodFormat()
	for _, period := range periods {
		fmt.Fprintf(c.out, "%s%s%s\n", f.Date(period.From), datelist.RangeMarker, f.Date(period.To))
	}
	return nil
}

func (c *commands) validate(ctx context.Context, values any, args []string) error {
	fv := values.(*validateFlags)
	ctx, done, err := c.setup(ctx)
	defer done()
	if err != nil {
		return err
	}
	p, err := c.dateParser(ctx, fv.Separator)
	if err != nil {
		return err
	}
	return p.Validate(args[0])
}

func (c *commands) cycle(ctx context.Context, values any, args []string) error {
	fv := values.(*cycleFlags)
	ctx, done, err := c.setup(ctx)
	defer done()
	if err != nil {
		return err
	}
	p, err := c.dateParser(ctx, fv.Separator)
	if err != nil {
		return err
	}
	reference, err := p.Dates(args[0])
	if err != nil {
		return err
	}
	dates, err := p.Dates(args[1])
	if err != nil {
		return err
	}
	f := c.cfg.DateFormat()
	for d := range cyclic.MoveAll(slices.Values(dates), reference, !fv.Clamp) {
		fmt.Fprintln(c.out, f.Date(d))
	}
	return nil
}

func (c *commands) time(ctx context.Context, values any, args []string) error {
	fv := values.(*timeFlags)
	ctx, done, err := c.setup(ctx)
	defer done()
	if err != nil {
		return err
	}
	p, err := c.cfg.TimeParser(fv.Delimiters, fv.Locale)
	if err != nil {
		return err
	}
	p.Logger = ctxlog.Logger(ctx)
	f, err := c.cfg.DurationFormat(fv.Locale)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	for _, arg := range args {
		d, ok := p.Parse(arg)
		if !ok {
			errs.Append(fmt.Errorf("%q: not a time of day", arg))
			continue
		}
		switch {
		case fv.ISO:
			fmt.Fprintln(c.out, timeofday.FormatISO8601Duration(d))
		case fv.Fraction:
			fmt.Fprintln(c.out, f.DayFraction(d))
		default:
			fmt.Fprintln(c.out, f.Duration(d))
		}
	}
	return errs.Err()
}
