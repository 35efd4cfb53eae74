// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datemask"
	"cloudeng.io/datemask/datelist"
	"cloudeng.io/datemask/format"
	"cloudeng.io/datemask/timeofday"
	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"golang.org/x/text/language"
)

// Config represents the settings that may be provided in a yaml, toml or
// json (with comments) file. Command line flags take precedence.
type Config struct {
	Positive        string            `yaml:"positive" toml:"positive" json:"positive"`
	Negative        string            `yaml:"negative" toml:"negative" json:"negative"`
	Separator       string            `yaml:"separator" toml:"separator" json:"separator"`
	Layouts         []string          `yaml:"layouts" toml:"layouts" json:"layouts"`
	Location        string            `yaml:"location" toml:"location" json:"location"`
	Delimiters      []string          `yaml:"delimiters" toml:"delimiters" json:"delimiters"`
	Locale          string            `yaml:"locale" toml:"locale" json:"locale"`
	DatePattern     string            `yaml:"date_pattern" toml:"date_pattern" json:"date_pattern"`
	PeriodPattern   string            `yaml:"period_pattern" toml:"period_pattern" json:"period_pattern"`
	DurationPattern string            `yaml:"duration_pattern" toml:"duration_pattern" json:"duration_pattern"`
	Exclude         []datelist.Period `yaml:"exclude" toml:"exclude" json:"exclude"`
}

// LoadConfig reads the config file at path, choosing the decoder from
// the file's extension. An empty path yields the default configuration.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if len(path) == 0 {
		return cfg, nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := cmdutil.ParseYAMLConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json", ".jsonc":
		buf, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := json.Unmarshal(jsonc.ToJSON(buf), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config file format %q: %s", ext, path)
	}
	return cfg, nil
}

func symbol(s string) (rune, error) {
	if len(s) == 0 {
		return 0, nil
	}
	r, n := utf8.DecodeRuneInString(s)
	if n != len(s) {
		return 0, fmt.Errorf("%q: must be a single character", s)
	}
	return r, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}

// Encoding returns the mask encoding, flag values override the config.
func (c Config) Encoding(positive, negative string) (datemask.Encoding, error) {
	pos, err := symbol(firstOf(positive, c.Positive))
	if err != nil {
		return datemask.Encoding{}, err
	}
	neg, err := symbol(firstOf(negative, c.Negative))
	if err != nil {
		return datemask.Encoding{}, err
	}
	return datemask.NewEncoding(pos, neg), nil
}

// DateParser returns the date list parser, a non-empty separator
// overrides the config.
func (c Config) DateParser(separator string) (datelist.Parser, error) {
	p := datelist.Parser{
		Separator: firstOf(separator, c.Separator),
		Layouts:   c.Layouts,
	}
	if len(c.Location) > 0 {
		loc, err := time.LoadLocation(c.Location)
		if err != nil {
			return p, err
		}
		p.Location = loc
	}
	return p, nil
}

// TimeParser returns the time of day parser, non-empty flag values
// override the config.
func (c Config) TimeParser(delimiters, locale string) (timeofday.Parser, error) {
	p := timeofday.Parser{Delimiters: c.Delimiters}
	if len(delimiters) > 0 {
		p.Delimiters = strings.Split(delimiters, ",")
	}
	tag, err := c.language(locale)
	if err != nil {
		return p, err
	}
	p.Locale = tag
	return p, nil
}

func (c Config) language(locale string) (language.Tag, error) {
	locale = firstOf(locale, c.Locale)
	if len(locale) == 0 {
		return language.Und, nil
	}
	return language.Parse(locale)
}

// DateFormat returns the format used for dates.
func (c Config) DateFormat() format.Format {
	return format.Format{Pattern: c.DatePattern}
}

// PeriodFormat returns the format used for the start and end of periods.
func (c Config) PeriodFormat() format.Format {
	return format.Format{Pattern: firstOf(c.PeriodPattern, "yyyy-MM-dd HH:mm:ss")}
}

// DurationFormat returns the format used for times of day.
func (c Config) DurationFormat(locale string) (format.Format, error) {
	tag, err := c.language(locale)
	return format.Format{Pattern: c.DurationPattern, Locale: tag}, err
}

// Excluded returns true if t lies within any of the excluded periods.
func (c Config) Excluded(t time.Time) bool {
	for _, p := range c.Exclude {
		if p.Contains(t) {
			return true
		}
	}
	return false
}
