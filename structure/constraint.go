package structure

import (
	"strconv"

	gojson "github.com/goccy/go-json"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/wire"
)

// DataConstraint restricts the keys and values of data.
type DataConstraint struct {
	CommonArtefact
	Role                 string
	ConstraintAttachment *ConstraintAttachment
	CubeRegions          []CubeRegion
	DataKeySets          []DataKeySet
	ReleaseCalendar      *ReleaseCalendar
}

func (*DataConstraint) Kind() ArtefactKind { return KindDataConstraints }
func (*DataConstraint) sealed() {}

func (c *DataConstraint) DecodeFields(f *wire.Fields) {
	c.decodeIdentity(f)
	c.Role = f.String("role")
	c.ConstraintAttachment = wire.OptRecord[ConstraintAttachment](f, "constraintAttachment")
	c.CubeRegions = wire.RecordList[CubeRegion](f, "cubeRegions")
	c.DataKeySets = wire.RecordList[DataKeySet](f, "dataKeySets")
	c.ReleaseCalendar = wire.OptRecord[ReleaseCalendar](f, "releaseCalendar")
	c.Extensions = f.Rest()
}

func (c *DataConstraint) EncodeFields(w *wire.Writer) {
	c.encodeIdentity(w)
	w.String("role", c.Role)
	wire.WriteOptRecord(w, "constraintAttachment", c.ConstraintAttachment)
	wire.WriteRecordList(w, "cubeRegions", c.CubeRegions)
	wire.WriteRecordList(w, "dataKeySets", c.DataKeySets)
	wire.WriteOptRecord(w, "releaseCalendar", c.ReleaseCalendar)
	w.Extensions(c.Extensions)
}

// MetadataConstraint restricts the targets of reference metadata.
type MetadataConstraint struct {
	CommonArtefact
	Role                  string
	ConstraintAttachment  *MetadataConstraintAttachment
	MetadataTargetRegions []MetadataTargetRegion
	ReleaseCalendar       *ReleaseCalendar
}

func (*MetadataConstraint) Kind() ArtefactKind { return KindMetadataConstraints }
func (*MetadataConstraint) sealed() {}

func (c *MetadataConstraint) DecodeFields(f *wire.Fields) {
	c.decodeIdentity(f)
	c.Role = f.String("role")
	c.ConstraintAttachment = wire.OptRecord[MetadataConstraintAttachment](f, "constraintAttachment")
	c.MetadataTargetRegions = wire.RecordList[MetadataTargetRegion](f, "metadataTargetRegions")
	c.ReleaseCalendar = wire.OptRecord[ReleaseCalendar](f, "releaseCalendar")
	c.Extensions = f.Rest()
}

func (c *MetadataConstraint) EncodeFields(w *wire.Writer) {
	c.encodeIdentity(w)
	w.String("role", c.Role)
	wire.WriteOptRecord(w, "constraintAttachment", c.ConstraintAttachment)
	wire.WriteRecordList(w, "metadataTargetRegions", c.MetadataTargetRegions)
	wire.WriteOptRecord(w, "releaseCalendar", c.ReleaseCalendar)
	w.Extensions(c.Extensions)
}

// ConstraintAttachment names what a data constraint applies to.
type ConstraintAttachment struct {
	DataProvider         *string
	DataStructures       []string
	Dataflows            []string
	ProvisionAgreements  []string
	SimpleDataSources    []string
	QueryableDataSources []QueryableDataSource
	Extensions           wire.Extensions
}

func (a *ConstraintAttachment) DecodeFields(f *wire.Fields) {
	a.DataProvider = f.OptString("dataProvider")
	a.DataStructures = f.OptStrings("dataStructures")
	a.Dataflows = f.OptStrings("dataflows")
	a.ProvisionAgreements = f.OptStrings("provisionAgreements")
	a.SimpleDataSources = f.OptStrings("simpleDataSources")
	a.QueryableDataSources = wire.RecordList[QueryableDataSource](f, "queryableDataSources")
	a.Extensions = f.Rest()
}

func (a *ConstraintAttachment) EncodeFields(w *wire.Writer) {
	w.OptString("dataProvider", a.DataProvider)
	w.OptStrings("dataStructures", a.DataStructures)
	w.OptStrings("dataflows", a.Dataflows)
	w.OptStrings("provisionAgreements", a.ProvisionAgreements)
	w.OptStrings("simpleDataSources", a.SimpleDataSources)
	wire.WriteRecordList(w, "queryableDataSources", a.QueryableDataSources)
	w.Extensions(a.Extensions)
}

// MetadataConstraintAttachment names what a metadata constraint applies to.
type MetadataConstraintAttachment struct {
	MetadataProvider            *string
	MetadataSets                []string
	MetadataStructures          []string
	Metadataflows               []string
	MetadataProvisionAgreements []string
	SimpleDataSources           []string
	QueryableDataSources        []QueryableDataSource
	Extensions                  wire.Extensions
}

func (a *MetadataConstraintAttachment) DecodeFields(f *wire.Fields) {
	a.MetadataProvider = f.OptString("metadataProvider")
	a.MetadataSets = f.OptStrings("metadataSets")
	a.MetadataStructures = f.OptStrings("metadataStructures")
	a.Metadataflows = f.OptStrings("metadataflows")
	a.MetadataProvisionAgreements = f.OptStrings("metadataProvisionAgreements")
	a.SimpleDataSources = f.OptStrings("simpleDataSources")
	a.QueryableDataSources = wire.RecordList[QueryableDataSource](f, "queryableDataSources")
	a.Extensions = f.Rest()
}

func (a *MetadataConstraintAttachment) EncodeFields(w *wire.Writer) {
	w.OptString("metadataProvider", a.MetadataProvider)
	w.OptStrings("metadataSets", a.MetadataSets)
	w.OptStrings("metadataStructures", a.MetadataStructures)
	w.OptStrings("metadataflows", a.Metadataflows)
	w.OptStrings("metadataProvisionAgreements", a.MetadataProvisionAgreements)
	w.OptStrings("simpleDataSources", a.SimpleDataSources)
	wire.WriteRecordList(w, "queryableDataSources", a.QueryableDataSources)
	w.Extensions(a.Extensions)
}

// QueryableDataSource is a web service that can be queried for data.
type QueryableDataSource struct {
	IsRESTDatasource       bool
	IsWebServiceDatasource bool
	DataURL                *string
	WADLURL                *string
	WSDLURL                *string
	Extensions             wire.Extensions
}

func (q *QueryableDataSource) DecodeFields(f *wire.Fields) {
	q.IsRESTDatasource = f.Bool("isRESTDatasource")
	q.IsWebServiceDatasource = f.Bool("isWebServiceDatasource")
	q.DataURL = f.OptString("dataURL")
	q.WADLURL = f.OptString("WADLURL")
	q.WSDLURL = f.OptString("WSDLURL")
	q.Extensions = f.Rest()
}

func (q *QueryableDataSource) EncodeFields(w *wire.Writer) {
	w.Bool("isRESTDatasource", q.IsRESTDatasource)
	w.Bool("isWebServiceDatasource", q.IsWebServiceDatasource)
	w.OptString("dataURL", q.DataURL)
	w.OptString("WADLURL", q.WADLURL)
	w.OptString("WSDLURL", q.WSDLURL)
	w.Extensions(q.Extensions)
}

// CubeRegion includes or excludes a region of the data cube.
type CubeRegion struct {
	Annotations []common.Annotation
	Links       []common.Link
	Include     *bool
	Components  []ComponentValueSet
	KeyValues   []CubeRegionKey
	Extensions  wire.Extensions
}

func (r *CubeRegion) DecodeFields(f *wire.Fields) {
	r.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	r.Links = wire.RecordList[common.Link](f, "links")
	r.Include = f.OptBool("include")
	r.Components = wire.RecordList[ComponentValueSet](f, "components")
	r.KeyValues = wire.RecordList[CubeRegionKey](f, "keyValues")
	r.Extensions = f.Rest()
}

func (r *CubeRegion) EncodeFields(w *wire.Writer) {
	wire.WriteRecordList(w, "annotations", r.Annotations)
	wire.WriteRecordList(w, "links", r.Links)
	w.OptBool("include", r.Include)
	wire.WriteRecordList(w, "components", r.Components)
	wire.WriteRecordList(w, "keyValues", r.KeyValues)
	w.Extensions(r.Extensions)
}

// ComponentValueSet lists the allowed values of one component.
type ComponentValueSet struct {
	ID           string
	Include      *bool
	RemovePrefix *bool
	TimeRange    *TimeRangeValue
	Values       []StringOrValue
	Extensions   wire.Extensions
}

func (s *ComponentValueSet) DecodeFields(f *wire.Fields) {
	s.ID = f.String("id")
	s.Include = f.OptBool("include")
	s.RemovePrefix = f.OptBool("removePrefix")
	s.TimeRange = wire.OptRecord[TimeRangeValue](f, "timeRange")
	s.Values = wire.ListWith(f, "values", StringOrValueFromTree)
	s.Extensions = f.Rest()
}

func (s *ComponentValueSet) EncodeFields(w *wire.Writer) {
	w.String("id", s.ID)
	w.OptBool("include", s.Include)
	w.OptBool("removePrefix", s.RemovePrefix)
	wire.WriteOptRecord(w, "timeRange", s.TimeRange)
	w.Declare("values")
	if s.Values != nil {
		w.Field("values", s.Values)
	}
	w.Extensions(s.Extensions)
}

// CubeRegionKey lists the allowed values of one dimension.
type CubeRegionKey struct {
	ID           string
	Include      *bool
	RemovePrefix *bool
	ValidFrom    *string
	ValidTo      *string
	TimeRange    *TimeRangeValue
	Values       []StringOrValue
	Extensions   wire.Extensions
}

func (k *CubeRegionKey) DecodeFields(f *wire.Fields) {
	k.ID = f.String("id")
	k.Include = f.OptBool("include")
	k.RemovePrefix = f.OptBool("removePrefix")
	k.ValidFrom = f.OptString("validFrom")
	k.ValidTo = f.OptString("validTo")
	k.TimeRange = wire.OptRecord[TimeRangeValue](f, "timeRange")
	k.Values = wire.ListWith(f, "values", StringOrValueFromTree)
	k.Extensions = f.Rest()
}

func (k *CubeRegionKey) EncodeFields(w *wire.Writer) {
	w.String("id", k.ID)
	w.OptBool("include", k.Include)
	w.OptBool("removePrefix", k.RemovePrefix)
	w.OptString("validFrom", k.ValidFrom)
	w.OptString("validTo", k.ValidTo)
	wire.WriteOptRecord(w, "timeRange", k.TimeRange)
	w.Declare("values")
	if k.Values != nil {
		w.Field("values", k.Values)
	}
	w.Extensions(k.Extensions)
}

// TimeRangeValue bounds a time component.
type TimeRangeValue struct {
	AfterPeriod  *TimePeriodRange
	BeforePeriod *TimePeriodRange
	StartPeriod  *TimePeriodRange
	EndPeriod    *TimePeriodRange
	Extensions   wire.Extensions
}

func (t *TimeRangeValue) DecodeFields(f *wire.Fields) {
	t.AfterPeriod = wire.OptRecord[TimePeriodRange](f, "afterPeriod")
	t.BeforePeriod = wire.OptRecord[TimePeriodRange](f, "beforePeriod")
	t.StartPeriod = wire.OptRecord[TimePeriodRange](f, "startPeriod")
	t.EndPeriod = wire.OptRecord[TimePeriodRange](f, "endPeriod")
	t.Extensions = f.Rest()
}

func (t *TimeRangeValue) EncodeFields(w *wire.Writer) {
	wire.WriteOptRecord(w, "afterPeriod", t.AfterPeriod)
	wire.WriteOptRecord(w, "beforePeriod", t.BeforePeriod)
	wire.WriteOptRecord(w, "startPeriod", t.StartPeriod)
	wire.WriteOptRecord(w, "endPeriod", t.EndPeriod)
	w.Extensions(t.Extensions)
}

type TimePeriodRange struct {
	Period      *string
	IsInclusive *bool
	Extensions  wire.Extensions
}

func (t *TimePeriodRange) DecodeFields(f *wire.Fields) {
	t.Period = f.OptString("period")
	t.IsInclusive = f.OptBool("isInclusive")
	t.Extensions = f.Rest()
}

func (t *TimePeriodRange) EncodeFields(w *wire.Writer) {
	w.OptString("period", t.Period)
	w.OptBool("isInclusive", t.IsInclusive)
	w.Extensions(t.Extensions)
}

// SimpleComponentValue is a constrained value with its cascade and validity.
type SimpleComponentValue struct {
	Value         string
	Lang          *string
	CascadeValues *CascadeValues
	ValidFrom     *string
	ValidTo       *string
	Extensions    wire.Extensions
}

func (v *SimpleComponentValue) DecodeFields(f *wire.Fields) {
	v.Value = f.String("value")
	v.Lang = f.OptString("lang")
	v.CascadeValues = wire.OptWith(f, "cascadeValues", CascadeValuesFromTree)
	v.ValidFrom = f.OptString("validFrom")
	v.ValidTo = f.OptString("validTo")
	v.Extensions = f.Rest()
}

func (v *SimpleComponentValue) EncodeFields(w *wire.Writer) {
	w.String("value", v.Value)
	w.OptString("lang", v.Lang)
	w.Declare("cascadeValues")
	if v.CascadeValues != nil {
		w.Field("cascadeValues", v.CascadeValues.Tree())
	}
	w.OptString("validFrom", v.ValidFrom)
	w.OptString("validTo", v.ValidTo)
	w.Extensions(v.Extensions)
}

// StringOrValue is a cube-region value: a bare string or a
// SimpleComponentValue object. Shapes are tried in that order.
type StringOrValue struct {
	Text   string
	Object *SimpleComponentValue
}

// IsObject reports whether the object shape was chosen.
func (v StringOrValue) IsObject() bool { return v.Object != nil }

// StringOrValueFromTree resolves the shape of raw.
func StringOrValueFromTree(raw any, path string, issues *gosdmx.Issues) (StringOrValue, bool) {
	switch t := raw.(type) {
	case string:
		return StringOrValue{Text: t}, true
	case map[string]any:
		if _, ok := t["value"].(string); ok {
			v, ok := wire.DecodeObject[SimpleComponentValue](t, path, issues)
			return StringOrValue{Object: &v}, ok
		}
	}
	wire.Report(issues, path, gosdmx.CodeUnionNoMatch, "expected string or object with value")
	return StringOrValue{}, false
}

func (v StringOrValue) MarshalJSON() ([]byte, error) {
	if v.Object != nil {
		return wire.Encode(v.Object)
	}
	return gojson.Marshal(v.Text)
}

// CascadeKind is the meaning of a cascadeValues flag.
type CascadeKind int

const (
	CascadeFalse CascadeKind = iota
	CascadeTrue
	CascadeExcludeRoot
)

// CascadeValues says whether a value applies to its descendants. It accepts
// a boolean, the strings "true" and "false", or "excluderoot", and re-emits
// the shape it was read from.
type CascadeValues struct {
	Kind   CascadeKind
	quoted bool
}

// Cascade returns a boolean flag.
func Cascade(on bool) CascadeValues {
	if on {
		return CascadeValues{Kind: CascadeTrue}
	}
	return CascadeValues{Kind: CascadeFalse}
}

// ExcludeRoot returns the "excluderoot" flag.
func ExcludeRoot() CascadeValues { return CascadeValues{Kind: CascadeExcludeRoot} }

const excludeRootToken = "excluderoot"

// CascadeValuesFromTree decodes a cascadeValues flag.
func CascadeValuesFromTree(raw any, path string, issues *gosdmx.Issues) (CascadeValues, bool) {
	switch t := raw.(type) {
	case bool:
		return Cascade(t), true
	case string:
		switch t {
		case "true":
			return CascadeValues{Kind: CascadeTrue, quoted: true}, true
		case "false":
			return CascadeValues{Kind: CascadeFalse, quoted: true}, true
		case excludeRootToken:
			return ExcludeRoot(), true
		}
		*issues = gosdmx.AppendIssues(*issues, wire.EnumIssue(path, t, "true, false, "+excludeRootToken))
		return CascadeValues{}, false
	}
	wire.Report(issues, path, gosdmx.CodeInvalidType, "expected boolean or string")
	return CascadeValues{}, false
}

// Tree returns the wire form.
func (c CascadeValues) Tree() any {
	switch {
	case c.Kind == CascadeExcludeRoot:
		return excludeRootToken
	case c.quoted:
		return strconv.FormatBool(c.Kind == CascadeTrue)
	}
	return c.Kind == CascadeTrue
}

// DataKeySet is a set of full keys included in or excluded from data.
type DataKeySet struct {
	IsIncluded bool
	Keys       []DataKey
	Extensions wire.Extensions
}

func (s *DataKeySet) DecodeFields(f *wire.Fields) {
	s.IsIncluded = f.Bool("isIncluded")
	s.Keys = wire.ReqRecordList[DataKey](f, "keys")
	s.Extensions = f.Rest()
}

func (s *DataKeySet) EncodeFields(w *wire.Writer) {
	w.Bool("isIncluded", s.IsIncluded)
	if s.Keys == nil {
		w.Raw("keys", []byte("[]"))
	} else {
		wire.WriteRecordList(w, "keys", s.Keys)
	}
	w.Extensions(s.Extensions)
}

// DataKey is one key of a data key set.
type DataKey struct {
	Annotations []common.Annotation
	Links       []common.Link
	Include     *bool
	ValidFrom   *string
	ValidTo     *string
	KeyValues   []DataKeyValue
	Components  []DataComponentValueSet
	Extensions  wire.Extensions
}

func (k *DataKey) DecodeFields(f *wire.Fields) {
	k.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	k.Links = wire.RecordList[common.Link](f, "links")
	k.Include = f.OptBool("include")
	k.ValidFrom = f.OptString("validFrom")
	k.ValidTo = f.OptString("validTo")
	k.KeyValues = wire.ReqRecordList[DataKeyValue](f, "keyValues")
	k.Components = wire.RecordList[DataComponentValueSet](f, "components")
	k.Extensions = f.Rest()
}

func (k *DataKey) EncodeFields(w *wire.Writer) {
	wire.WriteRecordList(w, "annotations", k.Annotations)
	wire.WriteRecordList(w, "links", k.Links)
	w.OptBool("include", k.Include)
	w.OptString("validFrom", k.ValidFrom)
	w.OptString("validTo", k.ValidTo)
	if k.KeyValues == nil {
		w.Raw("keyValues", []byte("[]"))
	} else {
		wire.WriteRecordList(w, "keyValues", k.KeyValues)
	}
	wire.WriteRecordList(w, "components", k.Components)
	w.Extensions(k.Extensions)
}

type DataKeyValue struct {
	ID           string
	Include      *bool
	RemovePrefix *bool
	Value        string
	Extensions   wire.Extensions
}

func (v *DataKeyValue) DecodeFields(f *wire.Fields) {
	v.ID = f.String("id")
	v.Include = f.OptBool("include")
	v.RemovePrefix = f.OptBool("removePrefix")
	v.Value = f.String("value")
	v.Extensions = f.Rest()
}

func (v *DataKeyValue) EncodeFields(w *wire.Writer) {
	w.String("id", v.ID)
	w.OptBool("include", v.Include)
	w.OptBool("removePrefix", v.RemovePrefix)
	w.String("value", v.Value)
	w.Extensions(v.Extensions)
}

// DataComponentValueSet lists values of a non-key component within a key.
type DataComponentValueSet struct {
	ID           string
	Include      *bool
	RemovePrefix *bool
	TimeRange    *TimeRangeValue
	Values       []StringOrDataValue
	Extensions   wire.Extensions
}

func (s *DataComponentValueSet) DecodeFields(f *wire.Fields) {
	s.ID = f.String("id")
	s.Include = f.OptBool("include")
	s.RemovePrefix = f.OptBool("removePrefix")
	s.TimeRange = wire.OptRecord[TimeRangeValue](f, "timeRange")
	s.Values = wire.ListWith(f, "values", StringOrDataValueFromTree)
	s.Extensions = f.Rest()
}

func (s *DataComponentValueSet) EncodeFields(w *wire.Writer) {
	w.String("id", s.ID)
	w.OptBool("include", s.Include)
	w.OptBool("removePrefix", s.RemovePrefix)
	wire.WriteOptRecord(w, "timeRange", s.TimeRange)
	w.Declare("values")
	if s.Values != nil {
		w.Field("values", s.Values)
	}
	w.Extensions(s.Extensions)
}

type DataComponentValue struct {
	CascadeValues *CascadeValues
	Lang          *string
	Value         string
	Extensions    wire.Extensions
}

func (v *DataComponentValue) DecodeFields(f *wire.Fields) {
	v.CascadeValues = wire.OptWith(f, "cascadeValues", CascadeValuesFromTree)
	v.Lang = f.OptString("lang")
	v.Value = f.String("value")
	v.Extensions = f.Rest()
}

func (v *DataComponentValue) EncodeFields(w *wire.Writer) {
	w.Declare("cascadeValues")
	if v.CascadeValues != nil {
		w.Field("cascadeValues", v.CascadeValues.Tree())
	}
	w.OptString("lang", v.Lang)
	w.String("value", v.Value)
	w.Extensions(v.Extensions)
}

// StringOrDataValue is a data-key-set value: a bare string or a
// DataComponentValue object, tried in that order.
type StringOrDataValue struct {
	Text   string
	Object *DataComponentValue
}

func (v StringOrDataValue) IsObject() bool { return v.Object != nil }

func StringOrDataValueFromTree(raw any, path string, issues *gosdmx.Issues) (StringOrDataValue, bool) {
	switch t := raw.(type) {
	case string:
		return StringOrDataValue{Text: t}, true
	case map[string]any:
		if _, ok := t["value"].(string); ok {
			v, ok := wire.DecodeObject[DataComponentValue](t, path, issues)
			return StringOrDataValue{Object: &v}, ok
		}
	}
	wire.Report(issues, path, gosdmx.CodeUnionNoMatch, "expected string or object with value")
	return StringOrDataValue{}, false
}

func (v StringOrDataValue) MarshalJSON() ([]byte, error) {
	if v.Object != nil {
		return wire.Encode(v.Object)
	}
	return gojson.Marshal(v.Text)
}

// MetadataTargetRegion includes or excludes metadata targets.
type MetadataTargetRegion struct {
	Annotations []common.Annotation
	Links       []common.Link
	Include     *bool
	Components  []MetadataAttributeValueSet
	ValidFrom   *string
	ValidTo     *string
	Extensions  wire.Extensions
}

func (r *MetadataTargetRegion) DecodeFields(f *wire.Fields) {
	r.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	r.Links = wire.RecordList[common.Link](f, "links")
	r.Include = f.OptBool("include")
	r.Components = wire.RecordList[MetadataAttributeValueSet](f, "components")
	r.ValidFrom = f.OptString("validFrom")
	r.ValidTo = f.OptString("validTo")
	r.Extensions = f.Rest()
}

func (r *MetadataTargetRegion) EncodeFields(w *wire.Writer) {
	wire.WriteRecordList(w, "annotations", r.Annotations)
	wire.WriteRecordList(w, "links", r.Links)
	w.OptBool("include", r.Include)
	wire.WriteRecordList(w, "components", r.Components)
	w.OptString("validFrom", r.ValidFrom)
	w.OptString("validTo", r.ValidTo)
	w.Extensions(r.Extensions)
}

type MetadataAttributeValueSet struct {
	ID           string
	Include      *bool
	RemovePrefix *bool
	TimeRange    *TimeRangeValue
	Values       []StringOrValue
	Extensions   wire.Extensions
}

func (s *MetadataAttributeValueSet) DecodeFields(f *wire.Fields) {
	s.ID = f.String("id")
	s.Include = f.OptBool("include")
	s.RemovePrefix = f.OptBool("removePrefix")
	s.TimeRange = wire.OptRecord[TimeRangeValue](f, "timeRange")
	s.Values = wire.ListWith(f, "values", StringOrValueFromTree)
	s.Extensions = f.Rest()
}

func (s *MetadataAttributeValueSet) EncodeFields(w *wire.Writer) {
	w.String("id", s.ID)
	w.OptBool("include", s.Include)
	w.OptBool("removePrefix", s.RemovePrefix)
	wire.WriteOptRecord(w, "timeRange", s.TimeRange)
	w.Declare("values")
	if s.Values != nil {
		w.Field("values", s.Values)
	}
	w.Extensions(s.Extensions)
}

// ReleaseCalendar describes when constrained data is released.
type ReleaseCalendar struct {
	Offset      string
	Periodicity string
	Tolerance   string
	Extensions  wire.Extensions
}

func (c *ReleaseCalendar) DecodeFields(f *wire.Fields) {
	c.Offset = f.String("offset")
	c.Periodicity = f.String("periodicity")
	c.Tolerance = f.String("tolerance")
	c.Extensions = f.Rest()
}

func (c *ReleaseCalendar) EncodeFields(w *wire.Writer) {
	w.String("offset", c.Offset)
	w.String("periodicity", c.Periodicity)
	w.String("tolerance", c.Tolerance)
	w.Extensions(c.Extensions)
}
