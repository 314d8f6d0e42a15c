package structure

import (
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/wire"
)

// Format restricts the values of a representation. It serves as both the
// enumeration format and the text format.
type Format struct {
	DataType       *common.DataType
	IsSequence     *bool
	Interval       *int
	StartValue     *int
	EndValue       *int
	TimeInterval   *string
	StartTime      *string
	EndTime        *string
	MinLength      *int
	MaxLength      *int
	MinValue       *int
	MaxValue       *int
	Decimals       *int
	Pattern        *string
	IsMultilingual *bool
	SentinelValues []common.SentinelValue
	Extensions     wire.Extensions
}

func (x *Format) DecodeFields(f *wire.Fields) {
	x.DataType = wire.OptEnum(f, "dataType", common.ParseDataType, common.DataTypeTokens)
	x.IsSequence = f.OptBool("isSequence")
	x.Interval = f.OptInt("interval")
	x.StartValue = f.OptInt("startValue")
	x.EndValue = f.OptInt("endValue")
	x.TimeInterval = f.OptString("timeInterval")
	x.StartTime = f.OptString("startTime")
	x.EndTime = f.OptString("endTime")
	x.MinLength = f.OptCount("minLength")
	x.MaxLength = f.OptCount("maxLength")
	x.MinValue = f.OptInt("minValue")
	x.MaxValue = f.OptInt("maxValue")
	x.Decimals = f.OptCount("decimals")
	x.Pattern = f.OptString("pattern")
	x.IsMultilingual = f.OptBool("isMultilingual")
	x.SentinelValues = wire.RecordList[common.SentinelValue](f, "sentinelValues")
	x.Extensions = f.Rest()
}

func (x *Format) EncodeFields(w *wire.Writer) {
	w.Declare("dataType")
	if x.DataType != nil {
		w.String("dataType", string(*x.DataType))
	}
	w.OptBool("isSequence", x.IsSequence)
	w.OptInt("interval", x.Interval)
	w.OptInt("startValue", x.StartValue)
	w.OptInt("endValue", x.EndValue)
	w.OptString("timeInterval", x.TimeInterval)
	w.OptString("startTime", x.StartTime)
	w.OptString("endTime", x.EndTime)
	w.OptInt("minLength", x.MinLength)
	w.OptInt("maxLength", x.MaxLength)
	w.OptInt("minValue", x.MinValue)
	w.OptInt("maxValue", x.MaxValue)
	w.OptInt("decimals", x.Decimals)
	w.OptString("pattern", x.Pattern)
	w.OptBool("isMultilingual", x.IsMultilingual)
	wire.WriteRecordList(w, "sentinelValues", x.SentinelValues)
	w.Extensions(x.Extensions)
}

// Representation is the local or core representation of a component: an
// enumeration reference or a text format, with occurrence bounds.
type Representation struct {
	Enumeration       *string
	EnumerationFormat *Format
	Format            *Format
	MinOccurs         *int
	MaxOccurs         *common.Occurs
	Extensions        wire.Extensions
}

func (r *Representation) DecodeFields(f *wire.Fields) {
	r.Enumeration = f.OptString("enumeration")
	r.EnumerationFormat = wire.OptRecord[Format](f, "enumerationFormat")
	r.Format = wire.OptRecord[Format](f, "format")
	r.MinOccurs = f.OptCount("minOccurs")
	r.MaxOccurs = wire.OptWith(f, "maxOccurs", common.OccursFromTree)
	r.Extensions = f.Rest()
}

func (r *Representation) EncodeFields(w *wire.Writer) {
	w.OptString("enumeration", r.Enumeration)
	wire.WriteOptRecord(w, "enumerationFormat", r.EnumerationFormat)
	wire.WriteOptRecord(w, "format", r.Format)
	w.OptInt("minOccurs", r.MinOccurs)
	w.Declare("maxOccurs")
	if r.MaxOccurs != nil {
		w.Field("maxOccurs", r.MaxOccurs.Tree())
	}
	w.Extensions(r.Extensions)
}

// DataStructure defines the dimensions, attributes and measures of data.
type DataStructure struct {
	CommonArtefact
	Components *DataStructureComponents
	Metadata   *string
}

func (*DataStructure) Kind() ArtefactKind { return KindDataStructures }
func (*DataStructure) sealed() {}

func (d *DataStructure) DecodeFields(f *wire.Fields) {
	d.decodeIdentity(f)
	d.Components = wire.OptRecord[DataStructureComponents](f, "dataStructureComponents")
	d.Metadata = f.OptString("metadata")
	d.Extensions = f.Rest()
}

func (d *DataStructure) EncodeFields(w *wire.Writer) {
	d.encodeIdentity(w)
	wire.WriteOptRecord(w, "dataStructureComponents", d.Components)
	w.OptString("metadata", d.Metadata)
	w.Extensions(d.Extensions)
}

// DataStructureComponents groups the component lists of a data structure.
type DataStructureComponents struct {
	AttributeList *AttributeList
	DimensionList DimensionList
	Groups        []Group
	MeasureList   *MeasureList
	Extensions    wire.Extensions
}

func (c *DataStructureComponents) DecodeFields(f *wire.Fields) {
	c.AttributeList = wire.OptRecord[AttributeList](f, "attributeList")
	c.DimensionList = wire.ReqRecord[DimensionList](f, "dimensionList")
	c.Groups = wire.RecordList[Group](f, "groups")
	c.MeasureList = wire.OptRecord[MeasureList](f, "measureList")
	c.Extensions = f.Rest()
}

func (c *DataStructureComponents) EncodeFields(w *wire.Writer) {
	wire.WriteOptRecord(w, "attributeList", c.AttributeList)
	wire.WriteRecord(w, "dimensionList", &c.DimensionList)
	wire.WriteRecordList(w, "groups", c.Groups)
	wire.WriteOptRecord(w, "measureList", c.MeasureList)
	w.Extensions(c.Extensions)
}

// AttributeList holds the attributes of a data structure.
type AttributeList struct {
	ID                      string
	Annotations             []common.Annotation
	Links                   []common.Link
	Attributes              []Attribute
	MetadataAttributeUsages []MetadataAttributeUsage
	Extensions              wire.Extensions
}

func (l *AttributeList) DecodeFields(f *wire.Fields) {
	l.ID = f.String("id")
	l.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	l.Links = wire.RecordList[common.Link](f, "links")
	l.Attributes = wire.RecordList[Attribute](f, "attributes")
	l.MetadataAttributeUsages = wire.RecordList[MetadataAttributeUsage](f, "metadataAttributeUsages")
	l.Extensions = f.Rest()
}

func (l *AttributeList) EncodeFields(w *wire.Writer) {
	w.String("id", l.ID)
	wire.WriteRecordList(w, "annotations", l.Annotations)
	wire.WriteRecordList(w, "links", l.Links)
	wire.WriteRecordList(w, "attributes", l.Attributes)
	wire.WriteRecordList(w, "metadataAttributeUsages", l.MetadataAttributeUsages)
	w.Extensions(l.Extensions)
}

// Attribute is a data attribute and where its values attach.
type Attribute struct {
	ID                    string
	Annotations           []common.Annotation
	Links                 []common.Link
	Usage                 common.Usage
	AttributeRelationship common.AttributeRelationship
	MeasureRelationship   []string
	ConceptIdentity       string
	ConceptRoles          []string
	LocalRepresentation   *Representation
	Extensions            wire.Extensions
}

func (a *Attribute) DecodeFields(f *wire.Fields) {
	a.ID = f.String("id")
	a.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	a.Links = wire.RecordList[common.Link](f, "links")
	a.Usage = wire.Enum(f, "usage", common.ParseUsage, common.UsageTokens)
	a.AttributeRelationship = wire.ReqRecord[common.AttributeRelationship](f, "attributeRelationship")
	a.MeasureRelationship = f.OptStrings("measureRelationship")
	a.ConceptIdentity = f.String("conceptIdentity")
	a.ConceptRoles = f.OptStrings("conceptRoles")
	a.LocalRepresentation = wire.OptRecord[Representation](f, "localRepresentation")
	a.Extensions = f.Rest()
}

func (a *Attribute) EncodeFields(w *wire.Writer) {
	w.String("id", a.ID)
	wire.WriteRecordList(w, "annotations", a.Annotations)
	wire.WriteRecordList(w, "links", a.Links)
	w.String("usage", string(a.Usage))
	wire.WriteRecord(w, "attributeRelationship", &a.AttributeRelationship)
	w.OptStrings("measureRelationship", a.MeasureRelationship)
	w.String("conceptIdentity", a.ConceptIdentity)
	w.OptStrings("conceptRoles", a.ConceptRoles)
	wire.WriteOptRecord(w, "localRepresentation", a.LocalRepresentation)
	w.Extensions(a.Extensions)
}

// MetadataAttributeUsage attaches a metadata attribute to data.
type MetadataAttributeUsage struct {
	Annotations                []common.Annotation
	Links                      []common.Link
	MetadataAttributeReference string
	AttributeRelationship      common.AttributeRelationship
	Extensions                 wire.Extensions
}

func (u *MetadataAttributeUsage) DecodeFields(f *wire.Fields) {
	u.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	u.Links = wire.RecordList[common.Link](f, "links")
	u.MetadataAttributeReference = f.String("metadataAttributeReference")
	u.AttributeRelationship = wire.ReqRecord[common.AttributeRelationship](f, "attributeRelationship")
	u.Extensions = f.Rest()
}

func (u *MetadataAttributeUsage) EncodeFields(w *wire.Writer) {
	wire.WriteRecordList(w, "annotations", u.Annotations)
	wire.WriteRecordList(w, "links", u.Links)
	w.String("metadataAttributeReference", u.MetadataAttributeReference)
	wire.WriteRecord(w, "attributeRelationship", &u.AttributeRelationship)
	w.Extensions(u.Extensions)
}

// DimensionList holds the dimensions and the time dimension.
type DimensionList struct {
	ID            *string
	Annotations   []common.Annotation
	Links         []common.Link
	Dimensions    []Dimension
	TimeDimension *TimeDimension
	Extensions    wire.Extensions
}

func (l *DimensionList) DecodeFields(f *wire.Fields) {
	l.ID = f.OptString("id")
	l.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	l.Links = wire.RecordList[common.Link](f, "links")
	l.Dimensions = wire.RecordList[Dimension](f, "dimensions")
	l.TimeDimension = wire.OptRecord[TimeDimension](f, "timeDimension")
	l.Extensions = f.Rest()
}

func (l *DimensionList) EncodeFields(w *wire.Writer) {
	w.OptString("id", l.ID)
	wire.WriteRecordList(w, "annotations", l.Annotations)
	wire.WriteRecordList(w, "links", l.Links)
	wire.WriteRecordList(w, "dimensions", l.Dimensions)
	wire.WriteOptRecord(w, "timeDimension", l.TimeDimension)
	w.Extensions(l.Extensions)
}

// Dimension is a key dimension.
type Dimension struct {
	ID                  *string
	Annotations         []common.Annotation
	Links               []common.Link
	Position            *int
	ConceptIdentity     string
	ConceptRoles        []string
	LocalRepresentation *Representation
	Extensions          wire.Extensions
}

func (d *Dimension) DecodeFields(f *wire.Fields) {
	d.ID = f.OptString("id")
	d.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	d.Links = wire.RecordList[common.Link](f, "links")
	d.Position = f.OptCount("position")
	d.ConceptIdentity = f.String("conceptIdentity")
	d.ConceptRoles = f.OptStrings("conceptRoles")
	d.LocalRepresentation = wire.OptRecord[Representation](f, "localRepresentation")
	d.Extensions = f.Rest()
}

func (d *Dimension) EncodeFields(w *wire.Writer) {
	w.OptString("id", d.ID)
	wire.WriteRecordList(w, "annotations", d.Annotations)
	wire.WriteRecordList(w, "links", d.Links)
	w.OptInt("position", d.Position)
	w.String("conceptIdentity", d.ConceptIdentity)
	w.OptStrings("conceptRoles", d.ConceptRoles)
	wire.WriteOptRecord(w, "localRepresentation", d.LocalRepresentation)
	w.Extensions(d.Extensions)
}

// TimeDimension is the dimension holding the time period.
type TimeDimension struct {
	ID                  *string
	Annotations         []common.Annotation
	Links               []common.Link
	ConceptIdentity     string
	LocalRepresentation *Representation
	Extensions          wire.Extensions
}

func (d *TimeDimension) DecodeFields(f *wire.Fields) {
	d.ID = f.OptString("id")
	d.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	d.Links = wire.RecordList[common.Link](f, "links")
	d.ConceptIdentity = f.String("conceptIdentity")
	d.LocalRepresentation = wire.OptRecord[Representation](f, "localRepresentation")
	d.Extensions = f.Rest()
}

func (d *TimeDimension) EncodeFields(w *wire.Writer) {
	w.OptString("id", d.ID)
	wire.WriteRecordList(w, "annotations", d.Annotations)
	wire.WriteRecordList(w, "links", d.Links)
	w.String("conceptIdentity", d.ConceptIdentity)
	wire.WriteOptRecord(w, "localRepresentation", d.LocalRepresentation)
	w.Extensions(d.Extensions)
}

// Group names a subset of dimensions.
type Group struct {
	ID              string
	Annotations     []common.Annotation
	Links           []common.Link
	GroupDimensions []string
	Extensions      wire.Extensions
}

func (g *Group) DecodeFields(f *wire.Fields) {
	g.ID = f.String("id")
	g.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	g.Links = wire.RecordList[common.Link](f, "links")
	g.GroupDimensions = f.OptStrings("groupDimensions")
	g.Extensions = f.Rest()
}

func (g *Group) EncodeFields(w *wire.Writer) {
	w.String("id", g.ID)
	wire.WriteRecordList(w, "annotations", g.Annotations)
	wire.WriteRecordList(w, "links", g.Links)
	w.OptStrings("groupDimensions", g.GroupDimensions)
	w.Extensions(g.Extensions)
}

// MeasureList holds the measures of a data structure.
type MeasureList struct {
	ID          string
	Annotations []common.Annotation
	Links       []common.Link
	Measures    []Measure
	Extensions  wire.Extensions
}

func (l *MeasureList) DecodeFields(f *wire.Fields) {
	l.ID = f.String("id")
	l.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	l.Links = wire.RecordList[common.Link](f, "links")
	l.Measures = wire.RecordList[Measure](f, "measures")
	l.Extensions = f.Rest()
}

func (l *MeasureList) EncodeFields(w *wire.Writer) {
	w.String("id", l.ID)
	wire.WriteRecordList(w, "annotations", l.Annotations)
	wire.WriteRecordList(w, "links", l.Links)
	wire.WriteRecordList(w, "measures", l.Measures)
	w.Extensions(l.Extensions)
}

// Measure is an observed quantity.
type Measure struct {
	ID                  string
	Annotations         []common.Annotation
	Links               []common.Link
	ConceptIdentity     string
	ConceptRoles        []string
	LocalRepresentation *Representation
	Usage               *common.Usage
	Extensions          wire.Extensions
}

func (m *Measure) DecodeFields(f *wire.Fields) {
	m.ID = f.String("id")
	m.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	m.Links = wire.RecordList[common.Link](f, "links")
	m.ConceptIdentity = f.String("conceptIdentity")
	m.ConceptRoles = f.OptStrings("conceptRoles")
	m.LocalRepresentation = wire.OptRecord[Representation](f, "localRepresentation")
	m.Usage = wire.OptEnum(f, "usage", common.ParseUsage, common.UsageTokens)
	m.Extensions = f.Rest()
}

func (m *Measure) EncodeFields(w *wire.Writer) {
	w.String("id", m.ID)
	wire.WriteRecordList(w, "annotations", m.Annotations)
	wire.WriteRecordList(w, "links", m.Links)
	w.String("conceptIdentity", m.ConceptIdentity)
	w.OptStrings("conceptRoles", m.ConceptRoles)
	wire.WriteOptRecord(w, "localRepresentation", m.LocalRepresentation)
	w.Declare("usage")
	if m.Usage != nil {
		w.String("usage", string(*m.Usage))
	}
	w.Extensions(m.Extensions)
}
