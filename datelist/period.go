// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Period represents an inclusive range of time.
type Period struct {
	From, To time.Time
}

// String returns the period in the form accepted by Parser.Periods,
// ie. "<from>><to>" using RFC3339 with nanoseconds.
func (p Period) String() string {
	return p.From.Format(time.RFC3339Nano) + RangeMarker + p.To.Format(time.RFC3339Nano)
}

// Contains returns true if t lies within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

// Duration returns the length of the period.
func (p Period) Duration() time.Duration {
	return p.To.Sub(p.From)
}

// Before returns true if p starts before o. If the start times are
// identical then the end times determine the order, ie. which period ends
// first.
func (p Period) Before(o Period) bool {
	return p.Compare(o) < 0
}

// Compare orders periods by their start and then end times.
func (p Period) Compare(o Period) int {
	if c := p.From.Compare(o.From); c != 0 {
		return c
	}
	return p.To.Compare(o.To)
}

// Parse parses a single period in the form "<from>><to>" or "<date>"
// using the default Parser.
func (p *Period) Parse(val string) error {
	if strings.Count(val, RangeMarker) > 1 {
		return fmt.Errorf("invalid format, %q expected '<from>%s<to>'", val, RangeMarker)
	}
	periods, err := Parser{}.Periods(val)
	if err != nil {
		return err
	}
	if len(periods) != 1 {
		return fmt.Errorf("invalid period: %q", val)
	}
	*p = periods[0]
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	return p.Parse(string(text))
}

// MarshalYAML implements yaml.Marshaler.
func (p Period) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Period) UnmarshalYAML(node *yaml.Node) error {
	return p.Parse(node.Value)
}
