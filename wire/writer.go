package wire

import (
	"bytes"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/gosdmx/value"
)

// Writer emits one JSON object. Known fields are written in call order,
// absent ones are skipped, and Extensions comes last.
type Writer struct {
	buf   bytes.Buffer
	seen  map[string]struct{}
	known map[string]struct{}
	err   error
}

// NewWriter returns an empty object writer.
func NewWriter() *Writer {
	w := &Writer{seen: map[string]struct{}{}, known: map[string]struct{}{}}
	w.buf.WriteByte('{')
	return w
}

// Err returns the first encoding error.
func (w *Writer) Err() error { return w.err }

// Bytes closes the object and returns its encoding.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.buf.Len()+1)
	out = append(out, w.buf.Bytes()...)
	return append(out, '}'), nil
}

func (w *Writer) key(k string) {
	if len(w.seen) > 0 {
		w.buf.WriteByte(',')
	}
	w.seen[k] = struct{}{}
	kb, _ := gojson.Marshal(k)
	w.buf.Write(kb)
	w.buf.WriteByte(':')
}

// Declare marks keys as named fields of the record even when they are not
// written, so Extensions never emits them.
func (w *Writer) Declare(keys ...string) {
	for _, k := range keys {
		w.known[k] = struct{}{}
	}
}

// Raw writes a pre-encoded JSON value under key.
func (w *Writer) Raw(k string, b []byte) {
	if w.err != nil {
		return
	}
	w.key(k)
	w.buf.Write(b)
}

// Field encodes any value under key. Tree values and types with a
// MarshalJSON method are both accepted.
func (w *Writer) Field(k string, v any) {
	if w.err != nil {
		return
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		w.err = err
		return
	}
	w.Raw(k, b)
}

// String writes a string unconditionally.
func (w *Writer) String(k, s string) { w.Field(k, s) }

// OptString writes s when non-nil.
func (w *Writer) OptString(k string, s *string) {
	w.Declare(k)
	if s != nil {
		w.Field(k, *s)
	}
}

// Bool writes a boolean unconditionally.
func (w *Writer) Bool(k string, b bool) { w.Field(k, b) }

// OptBool writes b when non-nil.
func (w *Writer) OptBool(k string, b *bool) {
	w.Declare(k)
	if b != nil {
		w.Field(k, *b)
	}
}

// Int writes an integer unconditionally.
func (w *Writer) Int(k string, i int) { w.Raw(k, []byte(strconv.Itoa(i))) }

// OptInt writes i when non-nil.
func (w *Writer) OptInt(k string, i *int) {
	w.Declare(k)
	if i != nil {
		w.Int(k, *i)
	}
}

// OptStrings writes the slice when non-nil; an empty slice is written as [].
func (w *Writer) OptStrings(k string, s []string) {
	w.Declare(k)
	if s != nil {
		w.Field(k, s)
	}
}

// OptBools writes the slice when non-nil.
func (w *Writer) OptBools(k string, b []bool) {
	w.Declare(k)
	if b != nil {
		w.Field(k, b)
	}
}

// OptInts writes the slice when non-nil.
func (w *Writer) OptInts(k string, n []int) {
	w.Declare(k)
	if n != nil {
		w.Field(k, n)
	}
}

// OptText writes localized text when non-nil.
func (w *Writer) OptText(k string, t value.LocalizedText) {
	w.Declare(k)
	if t != nil {
		w.Field(k, t.Tree())
	}
}

// OptValue writes v when non-nil.
func (w *Writer) OptValue(k string, v *value.Value) {
	w.Declare(k)
	if v != nil {
		w.Field(k, *v)
	}
}

// OptValues writes the slice when non-nil.
func (w *Writer) OptValues(k string, vs []value.Value) {
	w.Declare(k)
	if vs != nil {
		w.Field(k, vs)
	}
}

// OptValueObject writes the object when non-nil.
func (w *Writer) OptValueObject(k string, o value.Object) {
	w.Declare(k)
	if o != nil {
		w.Field(k, o)
	}
}

// OptNumberOrString writes n when non-nil.
func (w *Writer) OptNumberOrString(k string, n *value.NumberOrString) {
	w.Declare(k)
	if n != nil {
		w.Field(k, *n)
	}
}

// Object writes a nested object built by fn.
func (w *Writer) Object(k string, fn func(*Writer)) {
	if w.err != nil {
		return
	}
	nw := NewWriter()
	fn(nw)
	b, err := nw.Bytes()
	if err != nil {
		w.err = err
		return
	}
	w.Raw(k, b)
}

// Extensions writes ext in sorted key order. Keys of named fields are
// skipped whether or not the field was written.
func (w *Writer) Extensions(ext Extensions) {
	for _, k := range ext.Keys() {
		if _, dup := w.seen[k]; dup {
			continue
		}
		if _, named := w.known[k]; named {
			continue
		}
		w.Field(k, ext[k])
	}
}
