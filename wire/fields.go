// Package wire implements open-world record decoding and encoding: typed
// getters consume the keys a record knows, every remaining key is kept as an
// extension and written back verbatim.
package wire

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/i18n"
	"github.com/reoring/gosdmx/value"
)

// Extensions holds the raw JSON trees of keys a record does not recognise.
type Extensions map[string]any

// Keys returns the extension keys in sorted order.
func (e Extensions) Keys() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fields reads one JSON object. Getters mark keys as consumed and record
// failures in the shared issue list; they never panic on bad input.
//
// A key that is absent or null counts as absent.
type Fields struct {
	path   string
	m      map[string]any
	used   map[string]struct{}
	issues *gosdmx.Issues
}

// NewFields wraps m, located at path (a JSON Pointer, "" for the root).
func NewFields(m map[string]any, path string, issues *gosdmx.Issues) *Fields {
	return &Fields{path: path, m: m, used: make(map[string]struct{}, len(m)), issues: issues}
}

// Path returns the JSON Pointer of the object.
func (f *Fields) Path() string { return f.path }

// At returns the JSON Pointer of key inside the object.
func (f *Fields) At(key string) string { return JoinPointer(f.path, key) }

// Issues returns the shared issue list.
func (f *Fields) Issues() *gosdmx.Issues { return f.issues }

// Has reports whether key is present with a non-null value. It does not
// consume the key.
func (f *Fields) Has(key string) bool {
	v, ok := f.m[key]
	return ok && v != nil
}

// Peek returns the tree at key without consuming it. Null counts as absent.
func (f *Fields) Peek(key string) (any, bool) {
	v, ok := f.m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Consume marks key as known without reading it.
func (f *Fields) Consume(key string) { f.used[key] = struct{}{} }

// Raw consumes key and returns its tree when present and non-null.
func (f *Fields) Raw(key string) (any, bool) {
	f.used[key] = struct{}{}
	v, ok := f.m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Fail records an issue at key.
func (f *Fields) Fail(key, code, hint string) {
	Report(f.issues, f.At(key), code, hint)
}

// Required records a missing required key.
func (f *Fields) Required(key string) {
	f.Fail(key, gosdmx.CodeRequired, "")
}

// Report appends an issue with the localized message for code.
func Report(issues *gosdmx.Issues, path, code, hint string) {
	if path == "" {
		path = "/"
	}
	*issues = gosdmx.AppendIssues(*issues, gosdmx.Issue{Path: path, Code: code, Message: messageFor(code), Hint: hint})
}

func messageFor(code string) string { return i18n.T(code, nil) }

// Rest returns every key no getter consumed, or nil when there is none.
func (f *Fields) Rest() Extensions {
	var out Extensions
	for k, v := range f.m {
		if _, ok := f.used[k]; ok {
			continue
		}
		if out == nil {
			out = make(Extensions)
		}
		out[k] = v
	}
	return out
}

// ---- scalars ----

func (f *Fields) str(key string, required bool) (string, bool) {
	raw, ok := f.Raw(key)
	if !ok {
		if required {
			f.Required(key)
		}
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		f.Fail(key, gosdmx.CodeInvalidType, "expected string")
		return "", false
	}
	return s, true
}

// String reads a required string.
func (f *Fields) String(key string) string {
	s, _ := f.str(key, true)
	return s
}

// OptString reads an optional string.
func (f *Fields) OptString(key string) *string {
	if s, ok := f.str(key, false); ok {
		return &s
	}
	return nil
}

func (f *Fields) boolean(key string, required bool) (bool, bool) {
	raw, ok := f.Raw(key)
	if !ok {
		if required {
			f.Required(key)
		}
		return false, false
	}
	b, ok := raw.(bool)
	if !ok {
		f.Fail(key, gosdmx.CodeInvalidType, "expected boolean")
		return false, false
	}
	return b, true
}

// Bool reads a required boolean.
func (f *Fields) Bool(key string) bool {
	b, _ := f.boolean(key, true)
	return b
}

// OptBool reads an optional boolean.
func (f *Fields) OptBool(key string) *bool {
	if b, ok := f.boolean(key, false); ok {
		return &b
	}
	return nil
}

// IntFromTree accepts a JSON integer that fits in int.
func IntFromTree(raw any) (int, string) {
	n, ok := raw.(json.Number)
	if !ok {
		return 0, "expected integer"
	}
	i, err := strconv.ParseInt(string(n), 10, 0)
	if err != nil {
		if strings.ContainsAny(string(n), ".eE") {
			return 0, "expected integer"
		}
		return 0, "integer out of range"
	}
	return int(i), ""
}

func (f *Fields) integer(key string, required, nonNeg bool) (int, bool) {
	raw, ok := f.Raw(key)
	if !ok {
		if required {
			f.Required(key)
		}
		return 0, false
	}
	i, hint := IntFromTree(raw)
	if hint != "" {
		f.Fail(key, gosdmx.CodeInvalidType, hint)
		return 0, false
	}
	if nonNeg && i < 0 {
		f.Fail(key, gosdmx.CodeTooSmall, "expected non-negative integer")
		return 0, false
	}
	return i, true
}

// Int reads a required integer.
func (f *Fields) Int(key string) int {
	i, _ := f.integer(key, true, false)
	return i
}

// OptInt reads an optional integer.
func (f *Fields) OptInt(key string) *int {
	if i, ok := f.integer(key, false, false); ok {
		return &i
	}
	return nil
}

// Count reads a required non-negative integer.
func (f *Fields) Count(key string) int {
	i, _ := f.integer(key, true, true)
	return i
}

// OptCount reads an optional non-negative integer.
func (f *Fields) OptCount(key string) *int {
	if i, ok := f.integer(key, false, true); ok {
		return &i
	}
	return nil
}

// ---- collections ----

// Array consumes key and returns its elements. The second result is false
// when the key is absent or has the wrong shape.
func (f *Fields) Array(key string) ([]any, bool) {
	raw, ok := f.Raw(key)
	if !ok {
		return nil, false
	}
	arr, ok := raw.([]any)
	if !ok {
		f.Fail(key, gosdmx.CodeInvalidType, "expected array")
		return nil, false
	}
	return arr, true
}

// OptStrings reads an optional array of strings. Absent is nil, [] is an
// empty non-nil slice.
func (f *Fields) OptStrings(key string) []string {
	arr, ok := f.Array(key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			Report(f.issues, JoinIndex(f.At(key), i), gosdmx.CodeInvalidType, "expected string")
			continue
		}
		out = append(out, s)
	}
	return out
}

// Strings reads a required array of strings.
func (f *Fields) Strings(key string) []string {
	if !f.Has(key) {
		f.Consume(key)
		f.Required(key)
		return nil
	}
	return f.OptStrings(key)
}

// OptBools reads an optional array of booleans.
func (f *Fields) OptBools(key string) []bool {
	arr, ok := f.Array(key)
	if !ok {
		return nil
	}
	out := make([]bool, 0, len(arr))
	for i, e := range arr {
		b, ok := e.(bool)
		if !ok {
			Report(f.issues, JoinIndex(f.At(key), i), gosdmx.CodeInvalidType, "expected boolean")
			continue
		}
		out = append(out, b)
	}
	return out
}

// OptCounts reads an optional array of non-negative integers.
func (f *Fields) OptCounts(key string) []int {
	arr, ok := f.Array(key)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(arr))
	for i, e := range arr {
		n, hint := IntFromTree(e)
		if hint != "" {
			Report(f.issues, JoinIndex(f.At(key), i), gosdmx.CodeInvalidType, hint)
			continue
		}
		if n < 0 {
			Report(f.issues, JoinIndex(f.At(key), i), gosdmx.CodeTooSmall, "expected non-negative integer")
			continue
		}
		out = append(out, n)
	}
	return out
}

// OptObject consumes key and returns its members.
func (f *Fields) OptObject(key string) (map[string]any, bool) {
	raw, ok := f.Raw(key)
	if !ok {
		return nil, false
	}
	m, ok := raw.(map[string]any)
	if !ok {
		f.Fail(key, gosdmx.CodeInvalidType, "expected object")
		return nil, false
	}
	return m, true
}

// OptChild returns a reader over the nested object at key, or nil.
func (f *Fields) OptChild(key string) *Fields {
	m, ok := f.OptObject(key)
	if !ok {
		return nil
	}
	return NewFields(m, f.At(key), f.issues)
}

// ---- primitive values ----

// OptText reads optional localized text.
func (f *Fields) OptText(key string) value.LocalizedText {
	raw, ok := f.Raw(key)
	if !ok {
		return nil
	}
	t, err := value.TextFromTree(raw)
	if err != nil {
		f.Fail(key, gosdmx.CodeInvalidType, err.Error())
		return nil
	}
	return t
}

// OptValue reads an optional untyped value.
func (f *Fields) OptValue(key string) *value.Value {
	raw, ok := f.Raw(key)
	if !ok {
		return nil
	}
	v, err := value.FromTree(raw)
	if err != nil {
		f.Fail(key, valueErrCode(err), err.Error())
		return nil
	}
	return &v
}

// OptValues reads an optional array of untyped values; null elements are
// kept as null values.
func (f *Fields) OptValues(key string) []value.Value {
	arr, ok := f.Array(key)
	if !ok {
		return nil
	}
	out := make([]value.Value, 0, len(arr))
	for i, e := range arr {
		v, err := value.FromTree(e)
		if err != nil {
			Report(f.issues, JoinIndex(f.At(key), i), valueErrCode(err), err.Error())
			continue
		}
		out = append(out, v)
	}
	return out
}

// OptValueObject reads an optional object of untyped values.
func (f *Fields) OptValueObject(key string) value.Object {
	m, ok := f.OptObject(key)
	if !ok {
		return nil
	}
	out := make(value.Object, len(m))
	for _, k := range sortedKeys(m) {
		v, err := value.FromTree(m[k])
		if err != nil {
			Report(f.issues, f.At(key)+"/"+escapePointer(k), valueErrCode(err), err.Error())
			continue
		}
		out[k] = v
	}
	return out
}

// OptNumberOrString reads an optional integer-or-text scalar.
func (f *Fields) OptNumberOrString(key string) *value.NumberOrString {
	raw, ok := f.Raw(key)
	if !ok {
		return nil
	}
	n, err := value.NumberOrStringFromTree(raw)
	if err != nil {
		f.Fail(key, valueErrCode(err), err.Error())
		return nil
	}
	return &n
}

// ---- pointers ----

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(s string) string { return pointerEscaper.Replace(s) }

// JoinPointer appends an object key to a JSON Pointer.
func JoinPointer(base, key string) string { return base + "/" + escapePointer(key) }

// JoinIndex appends an array index to a JSON Pointer.
func JoinIndex(base string, i int) string { return base + "/" + strconv.Itoa(i) }

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// valueErrCode maps a value conversion error to its issue code.
func valueErrCode(err error) string {
	if errors.Is(err, value.ErrOverflow) {
		return gosdmx.CodeOverflow
	}
	return gosdmx.CodeUnionNoMatch
}
