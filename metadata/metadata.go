// Package metadata models SDMX-JSON reference metadata messages.
package metadata

import (
	"context"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

// MetadataMessage is an SDMX-JSON metadata message.
type MetadataMessage struct {
	Meta       *common.Meta
	Data       *Data
	Errors     []common.StatusMessage
	Extensions wire.Extensions
}

func (m *MetadataMessage) DecodeFields(f *wire.Fields) {
	m.Meta = wire.OptRecord[common.Meta](f, "meta")
	m.Data = wire.OptRecord[Data](f, "data")
	m.Errors = wire.RecordList[common.StatusMessage](f, "errors")
	m.Extensions = f.Rest()
}

func (m *MetadataMessage) EncodeFields(w *wire.Writer) {
	wire.WriteOptRecord(w, "meta", m.Meta)
	wire.WriteOptRecord(w, "data", m.Data)
	wire.WriteRecordList(w, "errors", m.Errors)
	w.Extensions(m.Extensions)
}

// Parse reads one metadata message from src.
func Parse(ctx context.Context, src gosdmx.Source, opts ...gosdmx.ParseOpt) (MetadataMessage, error) {
	return wire.Unmarshal[MetadataMessage](ctx, src, opts...)
}

// ParseBytes reads one metadata message from JSON bytes.
func ParseBytes(ctx context.Context, b []byte, opts ...gosdmx.ParseOpt) (MetadataMessage, error) {
	return wire.UnmarshalBytes[MetadataMessage](ctx, b, opts...)
}

// Marshal encodes m.
func Marshal(m *MetadataMessage) ([]byte, error) { return wire.Encode(m) }

func (m *MetadataMessage) UnmarshalJSON(b []byte) error {
	v, err := ParseBytes(context.Background(), b)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m MetadataMessage) MarshalJSON() ([]byte, error) { return wire.Encode(&m) }

type Data struct {
	MetadataSets []MetadataSet
	Extensions   wire.Extensions
}

func (d *Data) DecodeFields(f *wire.Fields) {
	d.MetadataSets = wire.RecordList[MetadataSet](f, "metadataSets")
	d.Extensions = f.Rest()
}

func (d *Data) EncodeFields(w *wire.Writer) {
	wire.WriteRecordList(w, "metadataSets", d.MetadataSets)
	w.Extensions(d.Extensions)
}

// MetadataSet is metadata reported against a set of targets.
type MetadataSet struct {
	Action                     *common.Action
	PublicationPeriod          *string
	PublicationYear            *string
	ReportingBegin             *string
	ReportingEnd               *string
	ID                         string
	AgencyID                   string
	Version                    *string
	IsExternalReference        *bool
	Metadataflow               *string
	MetadataProvisionAgreement *string
	ValidFrom                  *string
	ValidTo                    *string
	Annotations                []common.Annotation
	Links                      []common.Link
	Name                       string
	Names                      value.LocalizedText
	Description                *string
	Descriptions               value.LocalizedText
	Targets                    []string
	Attributes                 []Attribute
	Extensions                 wire.Extensions
}

func (s *MetadataSet) DecodeFields(f *wire.Fields) {
	s.Action = wire.OptEnum(f, "action", common.ParseAction, common.ActionTokens)
	s.PublicationPeriod = f.OptString("publicationPeriod")
	s.PublicationYear = f.OptString("publicationYear")
	s.ReportingBegin = f.OptString("reportingBegin")
	s.ReportingEnd = f.OptString("reportingEnd")
	s.ID = f.String("id")
	s.AgencyID = f.String("agencyID")
	s.Version = f.OptString("version")
	s.IsExternalReference = f.OptBool("isExternalReference")
	s.Metadataflow = f.OptString("metadataflow")
	s.MetadataProvisionAgreement = f.OptString("metadataProvisionAgreement")
	s.ValidFrom = f.OptString("validFrom")
	s.ValidTo = f.OptString("validTo")
	s.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	s.Links = wire.RecordList[common.Link](f, "links")
	s.Name = f.String("name")
	s.Names = f.OptText("names")
	s.Description = f.OptString("description")
	s.Descriptions = f.OptText("descriptions")
	s.Targets = f.Strings("targets")
	s.Attributes = wire.ReqRecordList[Attribute](f, "attributes")
	s.Extensions = f.Rest()
}

func (s *MetadataSet) EncodeFields(w *wire.Writer) {
	w.Declare("action")
	if s.Action != nil {
		w.String("action", string(*s.Action))
	}
	w.OptString("publicationPeriod", s.PublicationPeriod)
	w.OptString("publicationYear", s.PublicationYear)
	w.OptString("reportingBegin", s.ReportingBegin)
	w.OptString("reportingEnd", s.ReportingEnd)
	w.String("id", s.ID)
	w.String("agencyID", s.AgencyID)
	w.OptString("version", s.Version)
	w.OptBool("isExternalReference", s.IsExternalReference)
	w.OptString("metadataflow", s.Metadataflow)
	w.OptString("metadataProvisionAgreement", s.MetadataProvisionAgreement)
	w.OptString("validFrom", s.ValidFrom)
	w.OptString("validTo", s.ValidTo)
	wire.WriteRecordList(w, "annotations", s.Annotations)
	wire.WriteRecordList(w, "links", s.Links)
	w.String("name", s.Name)
	w.OptText("names", s.Names)
	w.OptString("description", s.Description)
	w.OptText("descriptions", s.Descriptions)
	w.OptStrings("targets", nonNil(s.Targets))
	if s.Attributes == nil {
		w.Raw("attributes", []byte("[]"))
	} else {
		wire.WriteRecordList(w, "attributes", s.Attributes)
	}
	w.Extensions(s.Extensions)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Walk calls fn for every attribute of the set, parents before children,
// with the slash-separated id path of the attribute.
func (s *MetadataSet) Walk(fn func(path string, a *Attribute)) {
	walk("", s.Attributes, fn)
}

func walk(prefix string, list []Attribute, fn func(string, *Attribute)) {
	for i := range list {
		a := &list[i]
		p := a.ID
		if prefix != "" {
			p = prefix + "/" + a.ID
		}
		fn(p, a)
		walk(p, a.Attributes, fn)
	}
}

// Attribute is a reported metadata attribute. Attributes nest.
type Attribute struct {
	ID          string
	Annotations []common.Annotation
	Format      *Format
	Value       *value.Value
	Attributes  []Attribute
	Extensions  wire.Extensions
}

func (a *Attribute) DecodeFields(f *wire.Fields) {
	a.ID = f.String("id")
	a.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	a.Format = wire.OptRecord[Format](f, "format")
	a.Value = f.OptValue("value")
	a.Attributes = wire.RecordList[Attribute](f, "attributes")
	a.Extensions = f.Rest()
}

func (a *Attribute) EncodeFields(w *wire.Writer) {
	w.String("id", a.ID)
	wire.WriteRecordList(w, "annotations", a.Annotations)
	wire.WriteOptRecord(w, "format", a.Format)
	w.OptValue("value", a.Value)
	wire.WriteRecordList(w, "attributes", a.Attributes)
	w.Extensions(a.Extensions)
}

// Format is the representation of a reported attribute.
type Format struct {
	DataType       *common.DataType
	IsSequence     *bool
	Interval       *int
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

func sentinel(raw any, path string, issues *gosdmx.Issues) (value.NumberOrString, bool) {
	n, err := value.NumberOrStringFromTree(raw)
	if err != nil {
		wire.Report(issues, path, gosdmx.CodeUnionNoMatch, err.Error())
		return n, false
	}
	return n, true
}

func (x *Format) DecodeFields(f *wire.Fields) {
	x.DataType = wire.OptEnum(f, "dataType", common.ParseDataType, common.DataTypeTokens)
	x.IsSequence = f.OptBool("isSequence")
	x.Interval = f.OptInt("interval")
	x.StartTime = f.OptString("startTime")
	x.EndTime = f.OptString("endTime")
	x.MinLength = f.OptCount("minLength")
	x.MaxLength = f.OptCount("maxLength")
	x.MinValue = f.OptInt("minValue")
	x.MaxValue = f.OptInt("maxValue")
	x.Decimals = f.OptCount("decimals")
	x.IsMultilingual = f.OptBool("isMultilingual")
	x.SentinelValues = wire.ListWith(f, "sentinelValues", sentinel)
	x.Extensions = f.Rest()
}

func (x *Format) EncodeFields(w *wire.Writer) {
	w.Declare("dataType")
	if x.DataType != nil {
		w.String("dataType", string(*x.DataType))
	}
	w.OptBool("isSequence", x.IsSequence)
	w.OptInt("interval", x.Interval)
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
