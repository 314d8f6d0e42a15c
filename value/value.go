// Package value holds the primitive SDMX values: localized text, the
// integer-or-text scalar and the untyped value union used for observations and
// attribute values.
package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// LocalizedText maps a language tag to text in that language.
type LocalizedText map[string]string

// Get returns the text for lang.
func (t LocalizedText) Get(lang string) (string, bool) {
	s, ok := t[lang]
	return s, ok
}

// Langs returns the language tags in sorted order.
func (t LocalizedText) Langs() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Tree returns the JSON tree form of the text.
func (t LocalizedText) Tree() map[string]any {
	out := make(map[string]any, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// TextFromTree accepts an object whose members are all strings.
func TextFromTree(raw any) (LocalizedText, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("expected object of language tag to text")
	}
	out := make(LocalizedText, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected text for language %q", k)
		}
		out[k] = s
	}
	return out, nil
}

// ---- NumberOrString ----

// NumberOrString is an integer or a text token. The zero value is the empty
// string.
type NumberOrString struct {
	isNum bool
	num   int64
	str   string
}

// Num returns an integer NumberOrString.
func Num(n int64) NumberOrString { return NumberOrString{isNum: true, num: n} }

// Str returns a text NumberOrString.
func Str(s string) NumberOrString { return NumberOrString{str: s} }

// IsNumber reports whether the value is the integer variant.
func (n NumberOrString) IsNumber() bool { return n.isNum }

// Int returns the integer variant.
func (n NumberOrString) Int() (int64, bool) { return n.num, n.isNum }

// Text returns the text variant.
func (n NumberOrString) Text() (string, bool) { return n.str, !n.isNum }

func (n NumberOrString) String() string {
	if n.isNum {
		return strconv.FormatInt(n.num, 10)
	}
	return n.str
}

// Tree returns json.Number or string.
func (n NumberOrString) Tree() any {
	if n.isNum {
		return json.Number(strconv.FormatInt(n.num, 10))
	}
	return n.str
}

// NumberOrStringFromTree tries the integer shape first, then text.
func NumberOrStringFromTree(raw any) (NumberOrString, error) {
	switch t := raw.(type) {
	case json.Number:
		i, err := strconv.ParseInt(string(t), 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return NumberOrString{}, fmt.Errorf("%w: integer %s", ErrOverflow, t)
		}
		if err != nil {
			return NumberOrString{}, fmt.Errorf("expected integer, got %s", t)
		}
		return Num(i), nil
	case string:
		return Str(t), nil
	}
	return NumberOrString{}, errors.New("expected integer or string")
}

func (n NumberOrString) MarshalJSON() ([]byte, error) { return gojson.Marshal(n.Tree()) }

func (n *NumberOrString) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	v, err := NumberOrStringFromTree(raw)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// ---- Value ----

// Kind identifies the active variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBool
	KindLocalizedText
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindLocalizedText:
		return "localizedText"
	case KindArray:
		return "array"
	default:
		return "null"
	}
}

// Value is an untyped SDMX value. The zero value is null.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	text LocalizedText
	arr  []Value
}

func Null() Value                { return Value{} }
func String(s string) Value      { return Value{kind: KindString, s: s} }
func Integer(i int64) Value      { return Value{kind: KindInteger, i: i} }
func Float(f float64) Value      { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func Text(t LocalizedText) Value { return Value{kind: KindLocalizedText, text: t} }
func Array(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindArray, arr: vs}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }
func (v Value) AsInteger() (int64, bool) { return v.i, v.kind == KindInteger }
func (v Value) AsBool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) AsText() (LocalizedText, bool) {
	return v.text, v.kind == KindLocalizedText
}
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsFloat returns floating values, widening integers.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInteger:
		return float64(v.i), true
	}
	return 0, false
}

// Equal compares two values structurally.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInteger:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindLocalizedText:
		if len(v.text) != len(o.text) {
			return false
		}
		for k, s := range v.text {
			if os, ok := o.text[k]; !ok || os != s {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	}
	return true
}

// FromTree resolves an untyped tree node to a Value. Shapes are tried in a
// fixed order: null, string, integer, float, bool, localized text, array.
func FromTree(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(t), nil
	case json.Number:
		return numberValue(string(t))
	case bool:
		return Bool(t), nil
	case map[string]any:
		text, err := TextFromTree(t)
		if err != nil {
			return Value{}, errors.New("objects must map language tags to text")
		}
		return Text(text), nil
	case []any:
		out := make([]Value, len(t))
		for i, e := range t {
			v, err := FromTree(e)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = v
		}
		return Array(out...), nil
	}
	return Value{}, fmt.Errorf("unsupported value %T", raw)
}

// ErrOverflow reports a JSON number that does not fit its variant: an
// integer outside int64 or a float outside float64.
var ErrOverflow = errors.New("number out of range")

func numberValue(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("%w: integer %s", ErrOverflow, s)
		}
		if err == nil {
			return Integer(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return Value{}, fmt.Errorf("%w: %s", ErrOverflow, s)
	}
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q", s)
	}
	return Float(f), nil
}

// Tree converts the value back to its JSON tree form.
func (v Value) Tree() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInteger:
		return json.Number(strconv.FormatInt(v.i, 10))
	case KindFloat:
		return json.Number(formatFloat(v.f))
	case KindBool:
		return v.b
	case KindLocalizedText:
		return v.text.Tree()
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Tree()
		}
		return out
	}
	return nil
}

// formatFloat keeps a fraction marker so the value reads back as a float.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindFloat && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
		return nil, errors.New("value: NaN and infinities are not representable")
	}
	return gojson.Marshal(v.Tree())
}

func (v *Value) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	out, err := FromTree(raw)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindNull:
		return "null"
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return v.kind.String()
	}
	return string(b)
}

// ---- Object ----

// Object maps keys to values (observations, dimension group attributes).
type Object map[string]Value

// ObjectFromTree requires a JSON object and resolves every member.
func ObjectFromTree(raw any) (Object, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("expected object")
	}
	out := make(Object, len(m))
	for k, e := range m {
		v, err := FromTree(e)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// Keys returns the member names in sorted order.
func (o Object) Keys() []string {
	out := make([]string, 0, len(o))
	for k := range o {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Tree converts the object back to its JSON tree form.
func (o Object) Tree() map[string]any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		out[k] = v.Tree()
	}
	return out
}

func decodeRaw(b []byte) (any, error) {
	dec := gojson.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
