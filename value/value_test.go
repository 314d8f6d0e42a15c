package value_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/reoring/gosdmx/value"
)

func TestFromTree_ShapeOrder(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want value.Kind
	}{
		{"null", nil, value.KindNull},
		{"string", "A", value.KindString},
		{"integer", json.Number("42"), value.KindInteger},
		{"negative integer", json.Number("-7"), value.KindInteger},
		{"float", json.Number("1.5"), value.KindFloat},
		{"exponent is float", json.Number("1e3"), value.KindFloat},
		{"bool", true, value.KindBool},
		{"localized text", map[string]any{"en": "Hello", "fr": "Bonjour"}, value.KindLocalizedText},
		{"array", []any{"a", json.Number("1")}, value.KindArray},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := value.FromTree(tc.raw)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if v.Kind() != tc.want {
				t.Fatalf("kind=%v want %v", v.Kind(), tc.want)
			}
		})
	}
}

func TestFromTree_Overflow(t *testing.T) {
	for _, s := range []string{"99999999999999999999", "-9223372036854775809", "1e400"} {
		if _, err := value.FromTree(json.Number(s)); !errors.Is(err, value.ErrOverflow) {
			t.Fatalf("%s: expected ErrOverflow, got %v", s, err)
		}
	}
	if _, err := value.NumberOrStringFromTree(json.Number("9223372036854775808")); !errors.Is(err, value.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	v, err := value.FromTree(json.Number("9223372036854775807"))
	if i, ok := v.AsInteger(); err != nil || !ok || i != 9223372036854775807 {
		t.Fatalf("max int64: %v %v", v, err)
	}
}

func TestFromTree_RejectsNonTextObject(t *testing.T) {
	if _, err := value.FromTree(map[string]any{"en": json.Number("1")}); err == nil {
		t.Fatalf("expected error for object with non-text member")
	}
	if _, err := value.FromTree([]any{map[string]any{"x": true}}); err == nil {
		t.Fatalf("expected error for nested invalid element")
	}
}

func TestValue_JSONRoundTrip(t *testing.T) {
	vals := []value.Value{
		value.Null(),
		value.String("x"),
		value.Integer(12),
		value.Float(2),
		value.Float(0.25),
		value.Bool(false),
		value.Text(value.LocalizedText{"en": "Total"}),
		value.Array(value.Integer(1), value.String("b"), value.Array()),
	}
	for _, v := range vals {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %v: %v", v, err)
		}
		var back value.Value
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip mismatch: %s -> %v (kind %v)", b, back, back.Kind())
		}
	}
}

func TestValue_FloatKeepsFraction(t *testing.T) {
	b, err := json.Marshal(value.Float(3))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(b) != "3.0" {
		t.Fatalf("got %s", b)
	}
}

func TestNumberOrString(t *testing.T) {
	n, err := value.NumberOrStringFromTree(json.Number("5"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if i, ok := n.Int(); !ok || i != 5 {
		t.Fatalf("expected integer 5, got %v", n)
	}
	s, err := value.NumberOrStringFromTree("NaN")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if txt, ok := s.Text(); !ok || txt != "NaN" {
		t.Fatalf("expected text, got %v", s)
	}
	if _, err := value.NumberOrStringFromTree(json.Number("1.5")); err == nil {
		t.Fatalf("expected error for fractional number")
	}
	if _, err := value.NumberOrStringFromTree(true); err == nil {
		t.Fatalf("expected error for bool")
	}
	b, _ := json.Marshal(value.Num(-3))
	if string(b) != "-3" {
		t.Fatalf("got %s", b)
	}
}

func TestObjectFromTree(t *testing.T) {
	o, err := value.ObjectFromTree(map[string]any{"0:0": []any{json.Number("1.5"), nil}, "0:1": "x"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := o.Keys(); len(got) != 2 || got[0] != "0:0" {
		t.Fatalf("unexpected keys: %v", got)
	}
	if _, err := value.ObjectFromTree([]any{}); err == nil {
		t.Fatalf("expected error for array")
	}
}

func TestLocalizedText_Langs(t *testing.T) {
	lt := value.LocalizedText{"fr": "b", "en": "a"}
	langs := lt.Langs()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "fr" {
		t.Fatalf("unexpected langs: %v", langs)
	}
	if s, ok := lt.Get("fr"); !ok || s != "b" {
		t.Fatalf("unexpected get: %q %v", s, ok)
	}
}
