// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Constraints represents constraints on date values such as weekends,
// specific days of the week or custom dates to exclude. Excluded dates take
// precedence over days of the week, which in turn take precedence over
// weekdays and weekends.
type Constraints struct {
	Weekdays bool           // If true, include Monday to Friday.
	Weekends bool           // If true, include Saturday and Sunday.
	Days     []time.Weekday // If non-empty, include only these days of the week.
	Exclude  []time.Time    // If non-empty, exclude these calendar days.
}

// OnDays returns Constraints that include only the specified days of the
// week.
func OnDays(days ...time.Weekday) Constraints {
	return Constraints{Days: days}
}

// ParseWeekdays parses a comma separated list of days of the week, eg.
// "mon,Friday". Full English names and their three letter abbreviations
// are accepted in any case.
func ParseWeekdays(text string) ([]time.Weekday, error) {
	var days []time.Weekday
	for name := range strings.SplitSeq(text, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if len(name) == 0 {
			continue
		}
		idx := slices.IndexFunc(weekdays, func(d time.Weekday) bool {
			full := strings.ToLower(d.String())
			return name == full || name == full[:3]
		})
		if idx < 0 {
			return nil, fmt.Errorf("%q: not a day of the week", name)
		}
		days = append(days, weekdays[idx])
	}
	return days, nil
}

var weekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Exclude) > 0 {
		out.WriteString("excluding custom dates: ")
		for i, d := range dc.Exclude {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(DayOf(d).String())
		}
		out.WriteString(": ")
	}
	if len(dc.Days) > 0 {
		out.WriteString("on ")
		for i, d := range dc.Days {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(d.String())
		}
		return out.String()
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case !dc.Weekdays && !dc.Weekends:
		break
	case dc.Weekdays && !dc.Weekends:
		out.WriteString("weekdays only")
	case !dc.Weekdays && dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// Include returns true if the given date satisfies the constraints.
// An empty set of Constraints will return true, ie. include all dates.
func (dc Constraints) Include(when time.Time) bool {
	if len(dc.Exclude) > 0 {
		day := DayOf(when)
		if slices.ContainsFunc(dc.Exclude, func(t time.Time) bool { return DayOf(t) == day }) {
			return false
		}
	}
	if len(dc.Days) > 0 {
		return slices.Contains(dc.Days, when.Weekday())
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return when.Weekday() >= time.Monday && when.Weekday() <= time.Friday
	case dc.Weekends:
		return when.Weekday() == time.Sunday || when.Weekday() == time.Saturday
	}
	return true
}

// Empty returns true if dc includes every date.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Days) == 0 && len(dc.Exclude) == 0
}
