package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/wire"
)

// UnboundedToken is the wire spelling of an unbounded maximum.
const UnboundedToken = "unbounded"

// Occurs is a maximum occurrence: a non-negative bound or unbounded. The zero
// value is a bound of 0. A bound read from a JSON string is written back as a
// string.
type Occurs struct {
	unbounded bool
	quoted    bool
	n         int
}

// Bounded returns a fixed maximum. It panics on a negative bound.
func Bounded(n int) Occurs {
	if n < 0 {
		panic("common: negative occurrence bound")
	}
	return Occurs{n: n}
}

// Unbounded returns the unbounded maximum.
func Unbounded() Occurs { return Occurs{unbounded: true} }

func (o Occurs) IsUnbounded() bool { return o.unbounded }

// Bound returns the fixed maximum, if any.
func (o Occurs) Bound() (int, bool) { return o.n, !o.unbounded }

func (o Occurs) String() string {
	if o.unbounded {
		return UnboundedToken
	}
	return strconv.Itoa(o.n)
}

var (
	errNegativeOccurs = errors.New("occurrence bound must be non-negative")
	errBadOccurs      = errors.New(`expected non-negative integer or "unbounded"`)
)

// ParseOccurs reads a textual occurrence: "unbounded" or a non-negative
// decimal integer.
func ParseOccurs(s string) (Occurs, error) {
	if s == UnboundedToken {
		return Unbounded(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Occurs{}, fmt.Errorf("%w: %q", errBadOccurs, s)
	}
	if n < 0 {
		return Occurs{}, fmt.Errorf("%w: %d", errNegativeOccurs, n)
	}
	return Bounded(n), nil
}

// OccursFromTree accepts a JSON integer or a string token.
func OccursFromTree(raw any, path string, issues *gosdmx.Issues) (Occurs, bool) {
	switch t := raw.(type) {
	case json.Number:
		n, hint := wire.IntFromTree(t)
		if hint != "" {
			wire.Report(issues, path, gosdmx.CodeInvalidType, hint)
			return Occurs{}, false
		}
		if n < 0 {
			wire.Report(issues, path, gosdmx.CodeTooSmall, errNegativeOccurs.Error())
			return Occurs{}, false
		}
		return Bounded(n), true
	case string:
		o, err := ParseOccurs(t)
		switch {
		case errors.Is(err, errNegativeOccurs):
			wire.Report(issues, path, gosdmx.CodeTooSmall, errNegativeOccurs.Error())
			return Occurs{}, false
		case err != nil:
			wire.Report(issues, path, gosdmx.CodeInvalidEnum, errBadOccurs.Error())
			return Occurs{}, false
		}
		o.quoted = !o.unbounded
		return o, true
	}
	wire.Report(issues, path, gosdmx.CodeInvalidType, errBadOccurs.Error())
	return Occurs{}, false
}

// Tree returns "unbounded", or the bound in the shape it was read in: a JSON
// number by default.
func (o Occurs) Tree() any {
	switch {
	case o.unbounded:
		return UnboundedToken
	case o.quoted:
		return strconv.Itoa(o.n)
	}
	return json.Number(strconv.Itoa(o.n))
}

func (o Occurs) MarshalJSON() ([]byte, error) { return gojson.Marshal(o.Tree()) }

func (o *Occurs) UnmarshalJSON(b []byte) error {
	var raw any
	if err := gojson.Unmarshal(b, &raw); err != nil {
		return err
	}
	if f, ok := raw.(float64); ok {
		raw = json.Number(strconv.FormatFloat(f, 'f', -1, 64))
	}
	var issues gosdmx.Issues
	v, ok := OccursFromTree(raw, "", &issues)
	if !ok {
		return issues
	}
	*o = v
	return nil
}
