// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datemask converts between date lists and date masks, projects
// dates into cyclic windows and parses times of day.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: datemask
summary: convert between date lists and date masks
commands:
  - name: decode
    summary: print the dates selected by a mask anchored at a start date, the
      mask is repeated until the optional end date
    arguments:
      - <mask>
      - <start>
      - "..."
  - name: encode
    summary: print the mask for a date list, eg. 2020-01-10,2020-01-12>2020-01-14
    arguments:
      - <date-list>
  - name: dates
    summary: print the dates in a date list
    arguments:
      - <date-list>
  - name: periods
    summary: print the periods in a date list
    arguments:
      - <date-list>
  - name: validate
    summary: report every invalid date and range in a date list
    arguments:
      - <date-list>
  - name: cycle
    summary: project the dates in a date list into the window spanned by
      the reference dates
    arguments:
      - <reference-list>
      - <date-list>
  - name: time
    summary: parse times of day such as 10:05, 1.10:05:18, 100518 or 0.25
    arguments:
      - <text>
      - "..."
`

// GlobalFlags are accepted by all commands.
type GlobalFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml, toml or json config file'"`
}

type EncodingFlags struct {
	Positive string `subcmd:"positive,,'symbol for a selected day, defaults to 1'"`
	Negative string `subcmd:"negative,,'symbol for an unselected day, defaults to 0'"`
}

type SeparatorFlags struct {
	Separator string `subcmd:"separator,,'separator between the sections of a date list, defaults to ,'"`
}

type ConstraintFlags struct {
	Days     string `subcmd:"days,,'comma separated days of the week to include, eg. mon,fri'"`
	Weekdays bool   `subcmd:"weekdays,false,'include only Monday to Friday'"`
	Weekends bool   `subcmd:"weekends,false,'include only Saturday and Sunday'"`
}

type decodeFlags struct {
	EncodingFlags
}

type encodeFlags struct {
	EncodingFlags
	SeparatorFlags
	ConstraintFlags
	Begin   string `subcmd:"begin,,'first day of the mask, defaults to the earliest date'"`
	End     string `subcmd:"end,,'last day of the mask, defaults to the latest date'"`
	NoValue string `subcmd:"no-value,,'printed when there are no dates to encode'"`
}

type datesFlags struct {
	SeparatorFlags
	ConstraintFlags
}

type periodsFlags struct {
	SeparatorFlags
}

type validateFlags struct {
	SeparatorFlags
}

type cycleFlags struct {
	SeparatorFlags
	Clamp bool `subcmd:"clamp,false,'count dates outside of the window from its border without wrapping'"`
}

type timeFlags struct {
	Delimiters string `subcmd:"delimiters,,'comma separated delimiters between hours, minutes and seconds'"`
	Locale     string `subcmd:"locale,,'locale used for fractional days, eg. de'"`
	ISO        bool   `subcmd:"iso8601,false,'print ISO 8601 durations'"`
	Fraction   bool   `subcmd:"fraction,false,'print fractions of a day'"`
}

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	c := &commands{out: out}
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("decode").MustRunnerAndFlags(c.decode,
		subcmd.MustRegisteredFlagSet(&decodeFlags{}))
	cmdSet.Set("encode").MustRunnerAndFlags(c.encode,
		subcmd.MustRegisteredFlagSet(&encodeFlags{}))
	cmdSet.Set("dates").MustRunnerAndFlags(c.dates,
		subcmd.MustRegisteredFlagSet(&datesFlags{}))
	cmdSet.Set("periods").MustRunnerAndFlags(c.periods,
		subcmd.MustRegisteredFlagSet(&periodsFlags{}))
	cmdSet.Set("validate").MustRunnerAndFlags(c.validate,
		subcmd.MustRegisteredFlagSet(&validateFlags{}))
	cmdSet.Set("cycle").MustRunnerAndFlags(c.cycle,
		subcmd.MustRegisteredFlagSet(&cycleFlags{}))
	cmdSet.Set("time").MustRunnerAndFlags(c.time,
		subcmd.MustRegisteredFlagSet(&timeFlags{}))
	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&c.globals, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
