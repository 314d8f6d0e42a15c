package timeperiod

import (
	"errors"
	"testing"
	"time"

	gosdmx "github.com/reoring/gosdmx"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2020", "2020-01-01T00:00:00/P1Y"},
		{"2020-03", "2020-03-01T00:00:00/P1M"},
		{"2020-03-15", "2020-03-15T00:00:00/P1D"},
		{"2020-A1", "2020-01-01T00:00:00/P1Y"},
		{"2020-S2", "2020-07-01T00:00:00/P6M"},
		{"2020-T2", "2020-05-01T00:00:00/P4M"},
		{"2020-Q4", "2020-10-01T00:00:00/P3M"},
		{"2020-M11", "2020-11-01T00:00:00/P1M"},
		{"2020-W01", "2019-12-30T00:00:00/P7D"},
		{"2020-W53", "2020-12-28T00:00:00/P7D"},
		{"2020-D366", "2020-12-31T00:00:00/P1D"},
		{"2020-01-01/P3M", "2020-01-01T00:00:00/P3M"},
		{"2020-01-01T06:00:00/PT12H", "2020-01-01T06:00:00/PT12H"},
		{"2020-03-15T10:00:00", "2020-03-15T10:00:00"},
		{"2020-03-15T10:00:00+02:00", "2020-03-15T08:00:00Z"},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "20", "2020-Q5", "2020-Q0", "2020-X1", "2021-W53", "2021-D366", "2020-13", "2020-1", "2020/P", "2020-01-01/3M", "abcd",
		"+202", "-001", "+202-01", "-001-Q1", " 202", "2020-M+1", "2020-Q+"} {
		_, err := Parse(in)
		var iss gosdmx.Issues
		if !errors.As(err, &iss) || iss[0].Code != gosdmx.CodeInvalidFormat {
			t.Fatalf("%q: expected invalid_format, got %v", in, err)
		}
	}
}

func TestPeriod_End(t *testing.T) {
	p, err := Parse("2020-Q1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Kind != KindReporting {
		t.Fatalf("kind %v", p.Kind)
	}
	if !p.End().Equal(time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end %v", p.End())
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("P1Y2M3W4DT5H6M7S")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := Duration{Years: 1, Months: 2, Days: 25, Hours: 5, Minutes: 6, Seconds: 7}
	if d != want {
		t.Fatalf("got %+v", d)
	}
	if d.String() != "P1Y2M25DT5H6M7S" {
		t.Fatalf("string %s", d)
	}
	for _, bad := range []string{"", "P", "1Y", "PT", "P1H", "PT1Y", "P1"} {
		if _, err := ParseDuration(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestParseDate(t *testing.T) {
	a, ok1 := ParseDate("2024-01-01")
	b, ok2 := ParseDate("2024-01-01T12:00:00Z")
	if !ok1 || !ok2 || !b.After(a) {
		t.Fatalf("dates %v %v", a, b)
	}
	if _, ok := ParseDate("next week"); ok {
		t.Fatalf("free text must not parse")
	}
}
