package structure

import (
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/wire"
)

// MetadataStructure defines the attributes of reference metadata.
type MetadataStructure struct {
	CommonArtefact
	Components *MetadataStructureComponents
}

func (*MetadataStructure) Kind() ArtefactKind { return KindMetadataStructures }
func (*MetadataStructure) sealed() {}

func (m *MetadataStructure) DecodeFields(f *wire.Fields) {
	m.decodeIdentity(f)
	m.Components = wire.OptRecord[MetadataStructureComponents](f, "metadataStructureComponents")
	m.Extensions = f.Rest()
}

func (m *MetadataStructure) EncodeFields(w *wire.Writer) {
	m.encodeIdentity(w)
	wire.WriteOptRecord(w, "metadataStructureComponents", m.Components)
	w.Extensions(m.Extensions)
}

type MetadataStructureComponents struct {
	MetadataAttributeList *MetadataAttributeList
	Extensions            wire.Extensions
}

func (c *MetadataStructureComponents) DecodeFields(f *wire.Fields) {
	c.MetadataAttributeList = wire.OptRecord[MetadataAttributeList](f, "metadataAttributeList")
	c.Extensions = f.Rest()
}

func (c *MetadataStructureComponents) EncodeFields(w *wire.Writer) {
	wire.WriteOptRecord(w, "metadataAttributeList", c.MetadataAttributeList)
	w.Extensions(c.Extensions)
}

type MetadataAttributeList struct {
	ID                 string
	Annotations        []common.Annotation
	Links              []common.Link
	MetadataAttributes []MetadataAttribute
	Extensions         wire.Extensions
}

func (l *MetadataAttributeList) DecodeFields(f *wire.Fields) {
	l.ID = f.String("id")
	l.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	l.Links = wire.RecordList[common.Link](f, "links")
	l.MetadataAttributes = wire.RecordList[MetadataAttribute](f, "metadataAttributes")
	l.Extensions = f.Rest()
}

func (l *MetadataAttributeList) EncodeFields(w *wire.Writer) {
	w.String("id", l.ID)
	wire.WriteRecordList(w, "annotations", l.Annotations)
	wire.WriteRecordList(w, "links", l.Links)
	wire.WriteRecordList(w, "metadataAttributes", l.MetadataAttributes)
	w.Extensions(l.Extensions)
}

// MetadataAttribute is a reportable metadata attribute. Attributes nest to
// any depth.
type MetadataAttribute struct {
	ID                  string
	Annotations         []common.Annotation
	Links               []common.Link
	ConceptIdentity     string
	LocalRepresentation *Representation
	MinOccurs           int
	MaxOccurs           *common.Occurs
	IsPresentational    *bool
	MetadataAttributes  []MetadataAttribute
	Extensions          wire.Extensions
}

func (a *MetadataAttribute) DecodeFields(f *wire.Fields) {
	a.ID = f.String("id")
	a.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	a.Links = wire.RecordList[common.Link](f, "links")
	a.ConceptIdentity = f.String("conceptIdentity")
	a.LocalRepresentation = wire.OptRecord[Representation](f, "localRepresentation")
	a.MinOccurs = f.Count("minOccurs")
	a.MaxOccurs = wire.OptWith(f, "maxOccurs", common.OccursFromTree)
	a.IsPresentational = f.OptBool("isPresentational")
	a.MetadataAttributes = wire.RecordList[MetadataAttribute](f, "metadataAttributes")
	a.Extensions = f.Rest()
}

func (a *MetadataAttribute) EncodeFields(w *wire.Writer) {
	w.String("id", a.ID)
	wire.WriteRecordList(w, "annotations", a.Annotations)
	wire.WriteRecordList(w, "links", a.Links)
	w.String("conceptIdentity", a.ConceptIdentity)
	wire.WriteOptRecord(w, "localRepresentation", a.LocalRepresentation)
	w.Int("minOccurs", a.MinOccurs)
	w.Declare("maxOccurs")
	if a.MaxOccurs != nil {
		w.Field("maxOccurs", a.MaxOccurs.Tree())
	}
	w.OptBool("isPresentational", a.IsPresentational)
	wire.WriteRecordList(w, "metadataAttributes", a.MetadataAttributes)
	w.Extensions(a.Extensions)
}
