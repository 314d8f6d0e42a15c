// Package timeperiod parses SDMX time periods and rewrites them as ISO 8601
// intervals of the form start/duration.
//
// Accepted inputs:
//
//	2020                 Gregorian year
//	2020-03              Gregorian month
//	2020-03-15           Gregorian day
//	2020-03-15T10:00:00  date-time (optionally with a zone)
//	2020-A1              reporting year
//	2020-S2, 2020-T3     reporting semester, trimester
//	2020-Q4, 2020-M11    reporting quarter, month
//	2020-W53, 2020-D366  reporting week, day
//	2020-01-01/P3M       time range
package timeperiod

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/i18n"
)

// Kind classifies a parsed period.
type Kind int

const (
	KindYear Kind = iota + 1
	KindMonth
	KindDay
	KindDateTime
	KindReporting
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindYear:
		return "year"
	case KindMonth:
		return "month"
	case KindDay:
		return "day"
	case KindDateTime:
		return "datetime"
	case KindReporting:
		return "reporting"
	case KindRange:
		return "range"
	}
	return "unknown"
}

// Duration is a calendar duration. Months and years are not converted to
// days.
type Duration struct {
	Years, Months, Days     int
	Hours, Minutes, Seconds int
}

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool { return d == Duration{} }

// String renders d in ISO 8601 form, for example P1Y, P3M or PT12H.
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	b := &strings.Builder{}
	b.WriteByte('P')
	writePart(b, d.Years, 'Y')
	writePart(b, d.Months, 'M')
	writePart(b, d.Days, 'D')
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		b.WriteByte('T')
		writePart(b, d.Hours, 'H')
		writePart(b, d.Minutes, 'M')
		writePart(b, d.Seconds, 'S')
	}
	return b.String()
}

func writePart(b *strings.Builder, n int, unit byte) {
	if n != 0 {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(unit)
	}
}

// ParseDuration parses an ISO 8601 duration without fractional parts.
func ParseDuration(s string) (Duration, error) {
	var d Duration
	if len(s) < 2 || s[0] != 'P' {
		return d, fmt.Errorf("duration %q must start with P", s)
	}
	inTime := false
	num := ""
	parts := 0
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
			continue
		case r == 'T':
			if inTime || num != "" {
				return d, fmt.Errorf("duration %q: misplaced T", s)
			}
			inTime = true
			continue
		}
		if num == "" {
			return d, fmt.Errorf("duration %q: missing number before %c", s, r)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return d, err
		}
		num = ""
		parts++
		switch {
		case r == 'Y' && !inTime:
			d.Years = n
		case r == 'M' && !inTime:
			d.Months = n
		case r == 'W' && !inTime:
			d.Days += 7 * n
		case r == 'D' && !inTime:
			d.Days += n
		case r == 'H' && inTime:
			d.Hours = n
		case r == 'M' && inTime:
			d.Minutes = n
		case r == 'S' && inTime:
			d.Seconds = n
		default:
			return d, fmt.Errorf("duration %q: unexpected %c", s, r)
		}
	}
	if num != "" {
		return d, fmt.Errorf("duration %q: trailing number", s)
	}
	if parts == 0 {
		return d, fmt.Errorf("duration %q has no components", s)
	}
	return d, nil
}

// AddTo returns t shifted by d.
func (d Duration) AddTo(t time.Time) time.Time {
	t = t.AddDate(d.Years, d.Months, d.Days)
	return t.Add(time.Duration(d.Hours)*time.Hour + time.Duration(d.Minutes)*time.Minute + time.Duration(d.Seconds)*time.Second)
}

// Period is a parsed time period: the instant it starts at and how long it
// lasts. A date-time has a zero duration.
type Period struct {
	Kind     Kind
	Start    time.Time
	Duration Duration
	// Zoned is set when the input carried an explicit offset.
	Zoned bool
}

// End returns the first instant after the period.
func (p Period) End() time.Time { return p.Duration.AddTo(p.Start) }

const localLayout = "2006-01-02T15:04:05"

// String renders p as an ISO 8601 interval. A date-time is rendered as a
// single instant.
func (p Period) String() string {
	start := FormatInstant(p.Start, p.Zoned)
	if p.Kind == KindDateTime {
		return start
	}
	return start + "/" + p.Duration.String()
}

// FormatInstant writes t as a local date-time, or in RFC 3339 form in UTC
// when zoned is set.
func FormatInstant(t time.Time, zoned bool) string {
	if zoned {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return t.Format(localLayout)
}

var instantLayouts = []string{time.RFC3339Nano, time.RFC3339, localLayout, "2006-01-02T15:04"}

// ParseInstant parses a date-time with or without an offset. The second
// result reports whether an offset was present.
func ParseInstant(s string) (time.Time, bool, error) {
	for i, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, i < 2, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%q is not a date-time", s)
}

// ParseDate parses a calendar date, a date-time, or an offset date-time.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	t, _, err := ParseInstant(s)
	return t, err == nil
}

var errSyntax = errors.New("unrecognised time period")

// Parse reads one SDMX time period.
func Parse(s string) (Period, error) {
	p, err := parse(s)
	if err != nil {
		return Period{}, gosdmx.Issues{{
			Path:    "/",
			Code:    gosdmx.CodeInvalidFormat,
			Message: i18n.T(gosdmx.CodeInvalidFormat, nil),
			Hint:    "expected an SDMX time period",
			Cause:   err,
			Params:  map[string]any{"got": s},
		}}
	}
	return p, nil
}

func parse(s string) (Period, error) {
	if start, dur, ok := strings.Cut(s, "/"); ok {
		t, zoned, err := parseStart(start)
		if err != nil {
			return Period{}, err
		}
		d, err := ParseDuration(dur)
		if err != nil {
			return Period{}, err
		}
		return Period{Kind: KindRange, Start: t, Duration: d, Zoned: zoned}, nil
	}
	if len(s) > 10 && s[10] == 'T' {
		t, zoned, err := ParseInstant(s)
		if err != nil {
			return Period{}, err
		}
		return Period{Kind: KindDateTime, Start: t, Zoned: zoned}, nil
	}
	if len(s) < 4 || !allDigits(s[:4]) {
		return Period{}, errSyntax
	}
	year, _ := strconv.Atoi(s[:4])
	rest := s[4:]
	switch {
	case rest == "":
		return Period{Kind: KindYear, Start: date(year, 1, 1), Duration: Duration{Years: 1}}, nil
	case len(rest) < 2 || rest[0] != '-':
		return Period{}, errSyntax
	}
	rest = rest[1:]
	if rest[0] >= 'A' && rest[0] <= 'Z' {
		return reporting(year, rest[0], rest[1:])
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return Period{Kind: KindDay, Start: t, Duration: Duration{Days: 1}}, nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return Period{Kind: KindMonth, Start: t, Duration: Duration{Months: 1}}, nil
	}
	return Period{}, errSyntax
}

func parseStart(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, false, nil
	}
	return ParseInstant(s)
}

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

type reportingUnit struct {
	max    int
	digits int
	months int
}

var reportingUnits = map[byte]reportingUnit{
	'A': {max: 1, digits: 1, months: 12},
	'S': {max: 2, digits: 1, months: 6},
	'T': {max: 3, digits: 1, months: 4},
	'Q': {max: 4, digits: 1, months: 3},
	'M': {max: 12, digits: 2, months: 1},
	'W': {max: 53, digits: 2},
	'D': {max: 366, digits: 3},
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func reporting(year int, unit byte, num string) (Period, error) {
	u, ok := reportingUnits[unit]
	if !ok || len(num) != u.digits || !allDigits(num) {
		return Period{}, errSyntax
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || n > u.max {
		return Period{}, errSyntax
	}
	p := Period{Kind: KindReporting}
	switch unit {
	case 'W':
		p.Start = isoWeekStart(year, n)
		p.Duration = Duration{Days: 7}
		if n == 53 && p.Start.AddDate(0, 0, 3).Year() != year {
			return Period{}, fmt.Errorf("%d has no week 53", year)
		}
	case 'D':
		p.Start = date(year, 1, 1).AddDate(0, 0, n-1)
		p.Duration = Duration{Days: 1}
		if p.Start.Year() != year {
			return Period{}, fmt.Errorf("%d has no day %d", year, n)
		}
	default:
		p.Start = date(year, time.Month(1+(n-1)*u.months), 1)
		if u.months == 12 {
			p.Duration = Duration{Years: 1}
		} else {
			p.Duration = Duration{Months: u.months}
		}
	}
	return p, nil
}

// isoWeekStart returns the Monday of ISO week w of year.
func isoWeekStart(year, w int) time.Time {
	jan4 := date(year, 1, 4)
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset+7*(w-1))
}

// Normalize rewrites an SDMX time period as an ISO 8601 interval.
func Normalize(s string) (string, error) {
	p, err := Parse(s)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
