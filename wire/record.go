package wire

import (
	"context"
	"sort"

	gosdmx "github.com/reoring/gosdmx"
)

// Record is implemented by every wire record.
type Record interface {
	DecodeFields(f *Fields)
	EncodeFields(w *Writer)
}

// PtrRecord constrains *T to implement Record so helpers can allocate T.
type PtrRecord[T any] interface {
	*T
	Record
}

// TreeDecoder decodes a non-object or union value from its tree at path.
type TreeDecoder[T any] func(raw any, path string, issues *gosdmx.Issues) (T, bool)

// DecodeObject decodes raw (which must be a JSON object) into a new T.
func DecodeObject[T any, P PtrRecord[T]](raw any, path string, issues *gosdmx.Issues) (T, bool) {
	var out T
	m, ok := raw.(map[string]any)
	if !ok {
		Report(issues, path, gosdmx.CodeInvalidType, "expected object")
		return out, false
	}
	before := len(*issues)
	P(&out).DecodeFields(NewFields(m, path, issues))
	return out, len(*issues) == before
}

// OptRecord decodes an optional nested record.
func OptRecord[T any, P PtrRecord[T]](f *Fields, key string) *T {
	raw, ok := f.Raw(key)
	if !ok {
		return nil
	}
	v, _ := DecodeObject[T, P](raw, f.At(key), f.issues)
	return &v
}

// ReqRecord decodes a required nested record.
func ReqRecord[T any, P PtrRecord[T]](f *Fields, key string) T {
	raw, ok := f.Raw(key)
	if !ok {
		f.Required(key)
		var zero T
		return zero
	}
	v, _ := DecodeObject[T, P](raw, f.At(key), f.issues)
	return v
}

// RecordList decodes an optional array of records. Absent is nil, [] is an
// empty non-nil slice.
func RecordList[T any, P PtrRecord[T]](f *Fields, key string) []T {
	return ListWith(f, key, DecodeObject[T, P])
}

// ReqRecordList decodes a required array of records.
func ReqRecordList[T any, P PtrRecord[T]](f *Fields, key string) []T {
	if !f.Has(key) {
		f.Consume(key)
		f.Required(key)
		return nil
	}
	return RecordList[T, P](f, key)
}

// RecordMap decodes an optional object whose members are records.
func RecordMap[T any, P PtrRecord[T]](f *Fields, key string) map[string]T {
	m, ok := f.OptObject(key)
	if !ok {
		return nil
	}
	out := make(map[string]T, len(m))
	for _, k := range sortedKeys(m) {
		v, _ := DecodeObject[T, P](m[k], JoinPointer(f.At(key), k), f.issues)
		out[k] = v
	}
	return out
}

// OptWith decodes an optional value with dec.
func OptWith[T any](f *Fields, key string, dec TreeDecoder[T]) *T {
	raw, ok := f.Raw(key)
	if !ok {
		return nil
	}
	v, ok := dec(raw, f.At(key), f.issues)
	if !ok {
		return nil
	}
	return &v
}

// ListWith decodes an optional array whose elements are decoded by dec.
func ListWith[T any](f *Fields, key string, dec TreeDecoder[T]) []T {
	arr, ok := f.Array(key)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(arr))
	base := f.At(key)
	for i, e := range arr {
		if v, ok := dec(e, JoinIndex(base, i), f.issues); ok {
			out = append(out, v)
		}
	}
	return out
}

// Encode returns the JSON object encoding of r.
func Encode(r Record) ([]byte, error) {
	w := NewWriter()
	r.EncodeFields(w)
	return w.Bytes()
}

// WriteRecord writes r as a nested object.
func WriteRecord(w *Writer, key string, r Record) {
	w.Object(key, r.EncodeFields)
}

// WriteOptRecord writes *T when non-nil.
func WriteOptRecord[T any, P PtrRecord[T]](w *Writer, key string, v *T) {
	w.Declare(key)
	if v != nil {
		WriteRecord(w, key, P(v))
	}
}

// WriteRecordList writes the slice when non-nil.
func WriteRecordList[T any, P PtrRecord[T]](w *Writer, key string, list []T) {
	w.Declare(key)
	if list == nil || w.err != nil {
		return
	}
	buf := []byte{'['}
	for i := range list {
		if i > 0 {
			buf = append(buf, ',')
		}
		b, err := Encode(P(&list[i]))
		if err != nil {
			w.err = err
			return
		}
		buf = append(buf, b...)
	}
	w.Raw(key, append(buf, ']'))
}

// WriteRecordMap writes the map when non-nil, members in sorted key order.
func WriteRecordMap[T any, P PtrRecord[T]](w *Writer, key string, m map[string]T) {
	w.Declare(key)
	if m == nil {
		return
	}
	w.Object(key, func(nw *Writer) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := m[k]
			WriteRecord(nw, k, P(&v))
		}
	})
}

// Decode converts an already decoded tree into T. All issues of the document
// are returned together as gosdmx.Issues, or only the first with FailFast.
func Decode[T any, P PtrRecord[T]](raw any, opts ...gosdmx.ParseOpt) (T, error) {
	var issues gosdmx.Issues
	v, _ := DecodeObject[T, P](raw, "", &issues)
	if len(issues) > 0 {
		if gosdmx.LastOpt(opts).FailFast {
			issues = issues[:1]
		}
		var zero T
		return zero, issues
	}
	return v, nil
}

// Unmarshal reads one document from src and decodes it into T.
func Unmarshal[T any, P PtrRecord[T]](ctx context.Context, src gosdmx.Source, opts ...gosdmx.ParseOpt) (T, error) {
	raw, err := gosdmx.DecodeTree(ctx, src, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T, P](raw, opts...)
}

// UnmarshalBytes is Unmarshal over a JSON byte slice.
func UnmarshalBytes[T any, P PtrRecord[T]](ctx context.Context, b []byte, opts ...gosdmx.ParseOpt) (T, error) {
	raw, err := gosdmx.DecodeBytes(ctx, b, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T, P](raw, opts...)
}

// Marshal encodes r.
func Marshal(r Record) ([]byte, error) { return Encode(r) }
