// Package data models SDMX-JSON data messages: the structures that describe
// the data sets of a message and the data sets themselves.
package data

import (
	"context"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/wire"
)

// DataMessage is an SDMX-JSON data message.
type DataMessage struct {
	Meta       *common.Meta
	Data       *Data
	Errors     []common.StatusMessage
	Extensions wire.Extensions
}

func (m *DataMessage) DecodeFields(f *wire.Fields) {
	m.Meta = wire.OptRecord[common.Meta](f, "meta")
	m.Data = wire.OptRecord[Data](f, "data")
	m.Errors = wire.RecordList[common.StatusMessage](f, "errors")
	m.Extensions = f.Rest()
}

func (m *DataMessage) EncodeFields(w *wire.Writer) {
	wire.WriteOptRecord(w, "meta", m.Meta)
	wire.WriteOptRecord(w, "data", m.Data)
	wire.WriteRecordList(w, "errors", m.Errors)
	w.Extensions(m.Extensions)
}

// Parse reads one data message from src.
func Parse(ctx context.Context, src gosdmx.Source, opts ...gosdmx.ParseOpt) (DataMessage, error) {
	return wire.Unmarshal[DataMessage](ctx, src, opts...)
}

// ParseBytes reads one data message from JSON bytes.
func ParseBytes(ctx context.Context, b []byte, opts ...gosdmx.ParseOpt) (DataMessage, error) {
	return wire.UnmarshalBytes[DataMessage](ctx, b, opts...)
}

// Marshal encodes m.
func Marshal(m *DataMessage) ([]byte, error) { return wire.Encode(m) }

func (m *DataMessage) UnmarshalJSON(b []byte) error {
	v, err := ParseBytes(context.Background(), b)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m DataMessage) MarshalJSON() ([]byte, error) { return wire.Encode(&m) }

// Data is the payload of a data message.
type Data struct {
	Structures []Structure
	DataSets   []DataSet
	Extensions wire.Extensions
}

func (d *Data) DecodeFields(f *wire.Fields) {
	d.Structures = wire.RecordList[Structure](f, "structures")
	d.DataSets = wire.RecordList[DataSet](f, "dataSets")
	d.Extensions = f.Rest()
}

func (d *Data) EncodeFields(w *wire.Writer) {
	wire.WriteRecordList(w, "structures", d.Structures)
	wire.WriteRecordList(w, "dataSets", d.DataSets)
	w.Extensions(d.Extensions)
}

// Structure describes the components used by one or more data sets.
// DataSets holds the indexes of those data sets.
type Structure struct {
	Links       []common.Link
	Dimensions  Components
	Measures    *Components
	Attributes  Components
	Annotations []common.Annotation
	DataSets    []int
	Extensions  wire.Extensions
}

func (s *Structure) DecodeFields(f *wire.Fields) {
	s.Links = wire.RecordList[common.Link](f, "links")
	s.Dimensions = wire.ReqRecord[Components](f, "dimensions")
	s.Measures = wire.OptRecord[Components](f, "measures")
	s.Attributes = wire.ReqRecord[Components](f, "attributes")
	s.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	s.DataSets = f.OptCounts("dataSets")
	s.Extensions = f.Rest()
}

func (s *Structure) EncodeFields(w *wire.Writer) {
	wire.WriteRecordList(w, "links", s.Links)
	wire.WriteRecord(w, "dimensions", &s.Dimensions)
	wire.WriteOptRecord(w, "measures", s.Measures)
	wire.WriteRecord(w, "attributes", &s.Attributes)
	wire.WriteRecordList(w, "annotations", s.Annotations)
	w.OptInts("dataSets", s.DataSets)
	w.Extensions(s.Extensions)
}

// Components groups components by the level they attach to.
type Components struct {
	DataSet        []Component
	DimensionGroup []Component
	Series         []Component
	Observation    []Component
	Extensions     wire.Extensions
}

func (c *Components) DecodeFields(f *wire.Fields) {
	c.DataSet = wire.RecordList[Component](f, "dataSet")
	c.DimensionGroup = wire.RecordList[Component](f, "dimensionGroup")
	c.Series = wire.RecordList[Component](f, "series")
	c.Observation = wire.RecordList[Component](f, "observation")
	c.Extensions = f.Rest()
}

func (c *Components) EncodeFields(w *wire.Writer) {
	wire.WriteRecordList(w, "dataSet", c.DataSet)
	wire.WriteRecordList(w, "dimensionGroup", c.DimensionGroup)
	wire.WriteRecordList(w, "series", c.Series)
	wire.WriteRecordList(w, "observation", c.Observation)
	w.Extensions(c.Extensions)
}

// All returns the components of every level, data set level first.
func (c *Components) All() []*Component {
	var out []*Component
	for _, level := range [][]Component{c.DataSet, c.DimensionGroup, c.Series, c.Observation} {
		for i := range level {
			out = append(out, &level[i])
		}
	}
	return out
}
