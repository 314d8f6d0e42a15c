package structure

import (
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

// Item is the plain item shape shared by every scheme. Specialised items
// embed it; Extensions holds whatever the outermost item did not recognise.
type Item struct {
	ID           string
	Name         *string
	Names        value.LocalizedText
	Description  *string
	Descriptions value.LocalizedText
	Annotations  []common.Annotation
	Links        []common.Link
	Extensions   wire.Extensions
}

// ItemView exposes the plain item fields of any item kind.
type ItemView interface {
	ItemBase() *Item
}

// ItemBase returns the plain item fields.
func (it *Item) ItemBase() *Item { return it }

// DisplayName returns the name in lang, falling back to the default name and
// then to the identifier.
func (it *Item) DisplayName(lang string) string {
	if s, ok := it.Names.Get(lang); ok {
		return s
	}
	if it.Name != nil {
		return *it.Name
	}
	return it.ID
}

func (it *Item) decodeItem(f *wire.Fields) {
	it.ID = f.String("id")
	it.Name = f.OptString("name")
	it.Names = f.OptText("names")
	it.Description = f.OptString("description")
	it.Descriptions = f.OptText("descriptions")
	it.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	it.Links = wire.RecordList[common.Link](f, "links")
}

func (it *Item) encodeItem(w *wire.Writer) {
	w.String("id", it.ID)
	w.OptString("name", it.Name)
	w.OptText("names", it.Names)
	w.OptString("description", it.Description)
	w.OptText("descriptions", it.Descriptions)
	wire.WriteRecordList(w, "annotations", it.Annotations)
	wire.WriteRecordList(w, "links", it.Links)
}

func (it *Item) DecodeFields(f *wire.Fields) {
	it.decodeItem(f)
	it.Extensions = f.Rest()
}

func (it *Item) EncodeFields(w *wire.Writer) {
	it.encodeItem(w)
	w.Extensions(it.Extensions)
}

// Code is an item of a codelist.
type Code struct {
	Item
	Parent *string
}

func (c *Code) decodeCode(f *wire.Fields) {
	c.decodeItem(f)
	c.Parent = f.OptString("parent")
}

func (c *Code) encodeCode(w *wire.Writer) {
	c.encodeItem(w)
	w.OptString("parent", c.Parent)
}

func (c *Code) DecodeFields(f *wire.Fields) {
	c.decodeCode(f)
	c.Extensions = f.Rest()
}

func (c *Code) EncodeFields(w *wire.Writer) {
	c.encodeCode(w)
	w.Extensions(c.Extensions)
}

// GeoFeatureSetCode is a code of a geographic codelist.
type GeoFeatureSetCode struct {
	Code
	Value *string
}

func (c *GeoFeatureSetCode) DecodeFields(f *wire.Fields) {
	c.decodeCode(f)
	c.Value = f.OptString("value")
	c.Extensions = f.Rest()
}

func (c *GeoFeatureSetCode) EncodeFields(w *wire.Writer) {
	c.encodeCode(w)
	w.OptString("value", c.Value)
	w.Extensions(c.Extensions)
}

// GeoGridCode is a cell of a geographic grid codelist.
type GeoGridCode struct {
	Code
	GeoCell *string
}

func (c *GeoGridCode) DecodeFields(f *wire.Fields) {
	c.decodeCode(f)
	c.GeoCell = f.OptString("geoCell")
	c.Extensions = f.Rest()
}

func (c *GeoGridCode) EncodeFields(w *wire.Writer) {
	c.encodeCode(w)
	w.OptString("geoCell", c.GeoCell)
	w.Extensions(c.Extensions)
}

// ISOConceptReference links a concept to an ISO 11179 concept.
type ISOConceptReference struct {
	ConceptAgency   string
	ConceptID       string
	ConceptSchemeID string
	Extensions      wire.Extensions
}

func (r *ISOConceptReference) DecodeFields(f *wire.Fields) {
	r.ConceptAgency = f.String("conceptAgency")
	r.ConceptID = f.String("conceptID")
	r.ConceptSchemeID = f.String("conceptSchemeID")
	r.Extensions = f.Rest()
}

func (r *ISOConceptReference) EncodeFields(w *wire.Writer) {
	w.String("conceptAgency", r.ConceptAgency)
	w.String("conceptID", r.ConceptID)
	w.String("conceptSchemeID", r.ConceptSchemeID)
	w.Extensions(r.Extensions)
}

// Concept is an item of a concept scheme.
type Concept struct {
	Item
	CoreRepresentation  *Representation
	ISOConceptReference *ISOConceptReference
	Parent              *string
}

func (c *Concept) DecodeFields(f *wire.Fields) {
	c.decodeItem(f)
	c.CoreRepresentation = wire.OptRecord[Representation](f, "coreRepresentation")
	c.ISOConceptReference = wire.OptRecord[ISOConceptReference](f, "isoConceptReference")
	c.Parent = f.OptString("parent")
	c.Extensions = f.Rest()
}

func (c *Concept) EncodeFields(w *wire.Writer) {
	c.encodeItem(w)
	wire.WriteOptRecord(w, "coreRepresentation", c.CoreRepresentation)
	wire.WriteOptRecord(w, "isoConceptReference", c.ISOConceptReference)
	w.OptString("parent", c.Parent)
	w.Extensions(c.Extensions)
}

// Organisation is an agency, data provider, data consumer or metadata
// provider.
type Organisation struct {
	Item
	Contacts []common.Contact
}

func (o *Organisation) decodeOrganisation(f *wire.Fields) {
	o.decodeItem(f)
	o.Contacts = wire.RecordList[common.Contact](f, "contacts")
}

func (o *Organisation) encodeOrganisation(w *wire.Writer) {
	o.encodeItem(w)
	wire.WriteRecordList(w, "contacts", o.Contacts)
}

func (o *Organisation) DecodeFields(f *wire.Fields) {
	o.decodeOrganisation(f)
	o.Extensions = f.Rest()
}

func (o *Organisation) EncodeFields(w *wire.Writer) {
	o.encodeOrganisation(w)
	w.Extensions(o.Extensions)
}

// OrganisationUnit is an item of an organisation unit scheme.
type OrganisationUnit struct {
	Organisation
	Parent *string
}

func (o *OrganisationUnit) DecodeFields(f *wire.Fields) {
	o.decodeOrganisation(f)
	o.Parent = f.OptString("parent")
	o.Extensions = f.Rest()
}

func (o *OrganisationUnit) EncodeFields(w *wire.Writer) {
	o.encodeOrganisation(w)
	w.OptString("parent", o.Parent)
	w.Extensions(o.Extensions)
}
