package data

import (
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

// DataSet holds observations, either flat or grouped by series key.
// Structure is the index of the structure describing it.
type DataSet struct {
	Structure                *int
	Action                   *common.Action
	ReportingBegin           *string
	ReportingEnd             *string
	ValidFrom                *string
	ValidTo                  *string
	PublicationYear          *string
	PublicationPeriod        *string
	Links                    []common.Link
	Annotations              []int
	Attributes               []value.Value
	DimensionGroupAttributes value.Object
	Series                   map[string]Series
	Observations             value.Object
	Extensions               wire.Extensions
}

func (d *DataSet) DecodeFields(f *wire.Fields) {
	d.Structure = f.OptCount("structure")
	d.Action = wire.OptEnum(f, "action", common.ParseAction, common.ActionTokens)
	d.ReportingBegin = f.OptString("reportingBegin")
	d.ReportingEnd = f.OptString("reportingEnd")
	d.ValidFrom = f.OptString("validFrom")
	d.ValidTo = f.OptString("validTo")
	d.PublicationYear = f.OptString("publicationYear")
	d.PublicationPeriod = f.OptString("publicationPeriod")
	d.Links = wire.RecordList[common.Link](f, "links")
	d.Annotations = f.OptCounts("annotations")
	d.Attributes = f.OptValues("attributes")
	d.DimensionGroupAttributes = f.OptValueObject("dimensionGroupAttributes")
	d.Series = wire.RecordMap[Series](f, "series")
	d.Observations = f.OptValueObject("observations")
	d.Extensions = f.Rest()
}

func (d *DataSet) EncodeFields(w *wire.Writer) {
	w.OptInt("structure", d.Structure)
	w.Declare("action")
	if d.Action != nil {
		w.String("action", string(*d.Action))
	}
	w.OptString("reportingBegin", d.ReportingBegin)
	w.OptString("reportingEnd", d.ReportingEnd)
	w.OptString("validFrom", d.ValidFrom)
	w.OptString("validTo", d.ValidTo)
	w.OptString("publicationYear", d.PublicationYear)
	w.OptString("publicationPeriod", d.PublicationPeriod)
	wire.WriteRecordList(w, "links", d.Links)
	w.OptInts("annotations", d.Annotations)
	w.OptValues("attributes", d.Attributes)
	w.OptValueObject("dimensionGroupAttributes", d.DimensionGroupAttributes)
	wire.WriteRecordMap(w, "series", d.Series)
	w.OptValueObject("observations", d.Observations)
	w.Extensions(d.Extensions)
}

// EffectiveAction returns the action of the data set; absent means
// Information.
func (d *DataSet) EffectiveAction() common.Action {
	if d.Action == nil {
		return common.ActionInformation
	}
	return *d.Action
}

// Series is the data of one series key.
type Series struct {
	Annotations  []int
	Attributes   []value.Value
	Observations value.Object
	Extensions   wire.Extensions
}

func (s *Series) DecodeFields(f *wire.Fields) {
	s.Annotations = f.OptCounts("annotations")
	s.Attributes = f.OptValues("attributes")
	s.Observations = f.OptValueObject("observations")
	s.Extensions = f.Rest()
}

func (s *Series) EncodeFields(w *wire.Writer) {
	w.OptInts("annotations", s.Annotations)
	w.OptValues("attributes", s.Attributes)
	w.OptValueObject("observations", s.Observations)
	w.Extensions(s.Extensions)
}
