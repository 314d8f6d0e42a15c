package data

import (
	"errors"

	gojson "github.com/goccy/go-json"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

// Component is a dimension, measure or attribute as used by a data message.
// Values lists the values referenced by index from series keys,
// observation keys and attribute arrays.
type Component struct {
	ID           string
	Name         *string
	Names        value.LocalizedText
	Description  *string
	Descriptions value.LocalizedText
	KeyPosition  *int
	Roles        []string
	IsMandatory  *bool
	Relationship *common.DataAttributeRelationship
	Format       *Format
	DefaultValue *value.NumberOrString
	Links        []common.Link
	Annotations  []int
	Values       []ComponentValueEntry
	Extensions   wire.Extensions
}

func (c *Component) DecodeFields(f *wire.Fields) {
	c.ID = f.String("id")
	c.Name = f.OptString("name")
	c.Names = f.OptText("names")
	c.Description = f.OptString("description")
	c.Descriptions = f.OptText("descriptions")
	c.KeyPosition = f.OptCount("keyPosition")
	c.Roles = f.OptStrings("roles")
	c.IsMandatory = f.OptBool("isMandatory")
	c.Relationship = wire.OptRecord[common.DataAttributeRelationship](f, "relationship")
	c.Format = wire.OptRecord[Format](f, "format")
	c.DefaultValue = f.OptNumberOrString("defaultValue")
	c.Links = wire.RecordList[common.Link](f, "links")
	c.Annotations = f.OptCounts("annotations")
	c.Values = wire.ListWith(f, "values", ComponentValueEntryFromTree)
	c.Extensions = f.Rest()
}

func (c *Component) EncodeFields(w *wire.Writer) {
	w.String("id", c.ID)
	w.OptString("name", c.Name)
	w.OptText("names", c.Names)
	w.OptString("description", c.Description)
	w.OptText("descriptions", c.Descriptions)
	w.OptInt("keyPosition", c.KeyPosition)
	w.OptStrings("roles", c.Roles)
	w.OptBool("isMandatory", c.IsMandatory)
	wire.WriteOptRecord(w, "relationship", c.Relationship)
	wire.WriteOptRecord(w, "format", c.Format)
	w.OptNumberOrString("defaultValue", c.DefaultValue)
	wire.WriteRecordList(w, "links", c.Links)
	w.OptInts("annotations", c.Annotations)
	w.Declare("values")
	if c.Values != nil {
		w.Field("values", c.Values)
	}
	w.Extensions(c.Extensions)
}

// Value returns the entry at index i of the component's values, as
// referenced from a key or attribute array.
func (c *Component) Value(i int) (ComponentValueEntry, bool) {
	if i < 0 || i >= len(c.Values) {
		return ComponentValueEntry{}, false
	}
	return c.Values[i], true
}

// Format is the representation of a component in a data message.
type Format struct {
	MinOccurs      *int
	MaxOccurs      *common.Occurs
	DataType       *common.DataType
	IsSequence     *bool
	Interval       *string
	StartTime      *string
	EndTime        *string
	MinLength      *int
	MaxLength      *int
	MinValue       *int
	MaxValue       *int
	Decimals       *int
	IsMultilingual *bool
	SentinelValues []value.NumberOrString
	Extensions     wire.Extensions
}

func numberOrString(raw any, path string, issues *gosdmx.Issues) (value.NumberOrString, bool) {
	n, err := value.NumberOrStringFromTree(raw)
	if err != nil {
		code := gosdmx.CodeUnionNoMatch
		if errors.Is(err, value.ErrOverflow) {
			code = gosdmx.CodeOverflow
		}
		wire.Report(issues, path, code, err.Error())
		return n, false
	}
	return n, true
}

func (x *Format) DecodeFields(f *wire.Fields) {
	x.MinOccurs = f.OptCount("minOccurs")
	x.MaxOccurs = wire.OptWith(f, "maxOccurs", common.OccursFromTree)
	x.DataType = wire.OptEnum(f, "dataType", common.ParseDataType, common.DataTypeTokens)
	x.IsSequence = f.OptBool("isSequence")
	x.Interval = f.OptString("interval")
	x.StartTime = f.OptString("startTime")
	x.EndTime = f.OptString("endTime")
	x.MinLength = f.OptCount("minLength")
	x.MaxLength = f.OptCount("maxLength")
	x.MinValue = f.OptInt("minValue")
	x.MaxValue = f.OptInt("maxValue")
	x.Decimals = f.OptCount("decimals")
	x.IsMultilingual = f.OptBool("isMultilingual")
	x.SentinelValues = wire.ListWith(f, "sentinelValues", numberOrString)
	x.Extensions = f.Rest()
}

func (x *Format) EncodeFields(w *wire.Writer) {
	w.OptInt("minOccurs", x.MinOccurs)
	w.Declare("maxOccurs")
	if x.MaxOccurs != nil {
		w.Field("maxOccurs", x.MaxOccurs.Tree())
	}
	w.Declare("dataType")
	if x.DataType != nil {
		w.String("dataType", string(*x.DataType))
	}
	w.OptBool("isSequence", x.IsSequence)
	w.OptString("interval", x.Interval)
	w.OptString("startTime", x.StartTime)
	w.OptString("endTime", x.EndTime)
	w.OptInt("minLength", x.MinLength)
	w.OptInt("maxLength", x.MaxLength)
	w.OptInt("minValue", x.MinValue)
	w.OptInt("maxValue", x.MaxValue)
	w.OptInt("decimals", x.Decimals)
	w.OptBool("isMultilingual", x.IsMultilingual)
	w.Declare("sentinelValues")
	if x.SentinelValues != nil {
		w.Field("sentinelValues", x.SentinelValues)
	}
	w.Extensions(x.Extensions)
}

// ComponentValue is a coded value of a component.
type ComponentValue struct {
	ID           string
	Name         *string
	Names        value.LocalizedText
	Values       []value.Value
	Description  *string
	Descriptions value.LocalizedText
	Start        *string
	End          *string
	Parent       *string
	Order        *int
	Links        []common.Link
	Annotations  []int
	Extensions   wire.Extensions
}

func (v *ComponentValue) DecodeFields(f *wire.Fields) {
	v.ID = f.String("id")
	v.Name = f.OptString("name")
	v.Names = f.OptText("names")
	v.Values = f.OptValues("values")
	v.Description = f.OptString("description")
	v.Descriptions = f.OptText("descriptions")
	v.Start = f.OptString("start")
	v.End = f.OptString("end")
	v.Parent = f.OptString("parent")
	v.Order = f.OptInt("order")
	v.Links = wire.RecordList[common.Link](f, "links")
	v.Annotations = f.OptCounts("annotations")
	v.Extensions = f.Rest()
}

func (v *ComponentValue) EncodeFields(w *wire.Writer) {
	w.String("id", v.ID)
	w.OptString("name", v.Name)
	w.OptText("names", v.Names)
	w.OptValues("values", v.Values)
	w.OptString("description", v.Description)
	w.OptText("descriptions", v.Descriptions)
	w.OptString("start", v.Start)
	w.OptString("end", v.End)
	w.OptString("parent", v.Parent)
	w.OptInt("order", v.Order)
	wire.WriteRecordList(w, "links", v.Links)
	w.OptInts("annotations", v.Annotations)
	w.Extensions(v.Extensions)
}

// EntryKind is the shape of a ComponentValueEntry.
type EntryKind int

const (
	EntryNull EntryKind = iota
	EntryObject
	EntryScalar
)

func (k EntryKind) String() string {
	switch k {
	case EntryObject:
		return "object"
	case EntryScalar:
		return "scalar"
	}
	return "null"
}

// ComponentValueEntry is one element of a component's values: null, a
// ComponentValue object, or a bare scalar. Shapes are tried in that order;
// an object is a ComponentValue when it has a string id and localized text
// otherwise. Localized text with an "id" language tag therefore always reads
// as a ComponentValue, and a scalar entry holding such text fails to encode
// with ErrAmbiguousText.
type ComponentValueEntry struct {
	Object *ComponentValue
	Scalar value.Value
}

// ObjectEntry wraps a ComponentValue.
func ObjectEntry(v ComponentValue) ComponentValueEntry { return ComponentValueEntry{Object: &v} }

// ScalarEntry wraps a scalar value.
func ScalarEntry(v value.Value) ComponentValueEntry { return ComponentValueEntry{Scalar: v} }

func (e ComponentValueEntry) Kind() EntryKind {
	switch {
	case e.Object != nil:
		return EntryObject
	case e.Scalar.IsNull():
		return EntryNull
	}
	return EntryScalar
}

// ID returns the id of an object entry, or the text of a string scalar.
func (e ComponentValueEntry) ID() string {
	if e.Object != nil {
		return e.Object.ID
	}
	if s, ok := e.Scalar.AsString(); ok {
		return s
	}
	return e.Scalar.String()
}

// ComponentValueEntryFromTree resolves the shape of raw.
func ComponentValueEntryFromTree(raw any, path string, issues *gosdmx.Issues) (ComponentValueEntry, bool) {
	switch t := raw.(type) {
	case nil:
		return ComponentValueEntry{}, true
	case map[string]any:
		if _, ok := t["id"].(string); ok {
			v, ok := wire.DecodeObject[ComponentValue](t, path, issues)
			return ComponentValueEntry{Object: &v}, ok
		}
	case []any:
		wire.Report(issues, path, gosdmx.CodeUnionNoMatch, "expected null, object or scalar")
		return ComponentValueEntry{}, false
	}
	v, err := value.FromTree(raw)
	if err != nil {
		if errors.Is(err, value.ErrOverflow) {
			wire.Report(issues, path, gosdmx.CodeOverflow, err.Error())
			return ComponentValueEntry{}, false
		}
		wire.Report(issues, path, gosdmx.CodeUnionNoMatch, "expected null, object with id or scalar")
		return ComponentValueEntry{}, false
	}
	return ComponentValueEntry{Scalar: v}, true
}

// ErrAmbiguousText is returned when encoding a scalar entry whose localized
// text has an "id" member.
var ErrAmbiguousText = errors.New(`data: localized text with an "id" member reads back as a component value`)

func (e ComponentValueEntry) MarshalJSON() ([]byte, error) {
	if e.Object != nil {
		return wire.Encode(e.Object)
	}
	if t, ok := e.Scalar.AsText(); ok {
		if _, clash := t["id"]; clash {
			return nil, ErrAmbiguousText
		}
	}
	return gojson.Marshal(e.Scalar)
}
