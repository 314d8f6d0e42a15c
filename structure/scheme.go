package structure

import (
	"github.com/reoring/gosdmx/wire"
)

// ItemScheme is an artefact that enumerates items, fully or partially.
// Items is nil when the backing collection is absent and empty when it is
// present but empty.
type ItemScheme interface {
	ArtefactType
	IsPartial() *bool
	Items() []ItemView
	// ItemsKey is the wire key of the item collection.
	ItemsKey() string
}

// ItemRecord constrains the item type of a scheme.
type ItemRecord[I any] interface {
	*I
	wire.Record
	ItemView
}

// SchemeOf is the body shared by every item scheme: identity, the partial
// flag and the items in wire order.
type SchemeOf[I any, P ItemRecord[I]] struct {
	CommonArtefact
	Partial  *bool
	ItemList []I
}

func (s *SchemeOf[I, P]) IsPartial() *bool { return s.Partial }

func (s *SchemeOf[I, P]) Items() []ItemView {
	if s.ItemList == nil {
		return nil
	}
	out := make([]ItemView, len(s.ItemList))
	for i := range s.ItemList {
		out[i] = P(&s.ItemList[i])
	}
	return out
}

// decodeScheme reads identity, isPartial and the item collection from key,
// or from alias when key is absent.
func (s *SchemeOf[I, P]) decodeScheme(f *wire.Fields, key, alias string) {
	s.decodeIdentity(f)
	s.Partial = f.OptBool("isPartial")
	if alias != "" && !f.Has(key) && f.Has(alias) {
		f.Consume(key)
		key = alias
	}
	s.ItemList = wire.RecordList[I, P](f, key)
}

func (s *SchemeOf[I, P]) encodeScheme(w *wire.Writer, key string) {
	s.encodeIdentity(w)
	w.OptBool("isPartial", s.Partial)
	wire.WriteRecordList[I, P](w, key, s.ItemList)
}

// CategoryScheme holds categories.
type CategoryScheme struct{ SchemeOf[Item, *Item] }

func (*CategoryScheme) Kind() ArtefactKind { return KindCategorySchemes }
func (*CategoryScheme) sealed() {}

func (*CategoryScheme) ItemsKey() string { return "categories" }

func (s *CategoryScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *CategoryScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// ConceptScheme holds concepts.
type ConceptScheme struct{ SchemeOf[Concept, *Concept] }

func (*ConceptScheme) Kind() ArtefactKind { return KindConceptSchemes }
func (*ConceptScheme) sealed() {}

func (*ConceptScheme) ItemsKey() string { return "concepts" }

func (s *ConceptScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *ConceptScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// Codelist holds codes. Parent references the codelist it extends.
type Codelist struct {
	SchemeOf[Code, *Code]
	Parent *string
}

func (*Codelist) Kind() ArtefactKind { return KindCodelists }
func (*Codelist) sealed() {}

func (*Codelist) ItemsKey() string { return "codes" }

func (s *Codelist) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Parent = f.OptString("parent")
	s.Extensions = f.Rest()
}

func (s *Codelist) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.OptString("parent", s.Parent)
	w.Extensions(s.Extensions)
}

// GeographicCodelist holds geographic feature set codes.
type GeographicCodelist struct {
	SchemeOf[GeoFeatureSetCode, *GeoFeatureSetCode]
}

func (*GeographicCodelist) Kind() ArtefactKind { return KindGeographicCodelists }
func (*GeographicCodelist) sealed() {}

func (*GeographicCodelist) ItemsKey() string { return "geoFeatureSetCodes" }

func (s *GeographicCodelist) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *GeographicCodelist) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// GeoGridCodelist holds the cells of a geographic grid.
type GeoGridCodelist struct {
	SchemeOf[GeoGridCode, *GeoGridCode]
	GridDefinition *string
}

func (*GeoGridCodelist) Kind() ArtefactKind { return KindGeoGridCodelists }
func (*GeoGridCodelist) sealed() {}

func (*GeoGridCodelist) ItemsKey() string { return "geoGridCodes" }

func (s *GeoGridCodelist) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.GridDefinition = f.OptString("gridDefinition")
	s.Extensions = f.Rest()
}

func (s *GeoGridCodelist) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.OptString("gridDefinition", s.GridDefinition)
	w.Extensions(s.Extensions)
}

// AgencyScheme holds agencies.
type AgencyScheme struct {
	SchemeOf[Organisation, *Organisation]
}

func (*AgencyScheme) Kind() ArtefactKind { return KindAgencySchemes }
func (*AgencyScheme) sealed() {}

func (*AgencyScheme) ItemsKey() string { return "agencies" }

func (s *AgencyScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *AgencyScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// DataProviderScheme holds data providers.
type DataProviderScheme struct {
	SchemeOf[Organisation, *Organisation]
}

func (*DataProviderScheme) Kind() ArtefactKind { return KindDataProviderSchemes }
func (*DataProviderScheme) sealed() {}

func (*DataProviderScheme) ItemsKey() string { return "dataProviders" }

func (s *DataProviderScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *DataProviderScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// DataConsumerScheme holds data consumers.
type DataConsumerScheme struct {
	SchemeOf[Organisation, *Organisation]
}

func (*DataConsumerScheme) Kind() ArtefactKind { return KindDataConsumerSchemes }
func (*DataConsumerScheme) sealed() {}

func (*DataConsumerScheme) ItemsKey() string { return "dataConsumers" }

func (s *DataConsumerScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *DataConsumerScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// MetadataProviderScheme holds metadata providers.
type MetadataProviderScheme struct {
	SchemeOf[Organisation, *Organisation]
}

func (*MetadataProviderScheme) Kind() ArtefactKind { return KindMetadataProviderSchemes }
func (*MetadataProviderScheme) sealed() {}

func (*MetadataProviderScheme) ItemsKey() string { return "metadataProviders" }

func (s *MetadataProviderScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *MetadataProviderScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// OrganisationUnitScheme holds organisation units. The American spelling
// organizationUnits is accepted on input.
type OrganisationUnitScheme struct {
	SchemeOf[OrganisationUnit, *OrganisationUnit]
}

func (*OrganisationUnitScheme) Kind() ArtefactKind { return KindOrganisationUnitSchemes }
func (*OrganisationUnitScheme) sealed() {}

func (*OrganisationUnitScheme) ItemsKey() string { return "organisationUnits" }

func (s *OrganisationUnitScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "organizationUnits")
	s.Extensions = f.Rest()
}

func (s *OrganisationUnitScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// NamePersonalisationScheme holds name personalisations. The American
// spelling namePersonalizations is accepted on input.
type NamePersonalisationScheme struct{ SchemeOf[Item, *Item] }

func (*NamePersonalisationScheme) Kind() ArtefactKind { return KindNamePersonalisationSchemes }
func (*NamePersonalisationScheme) sealed() {}

func (*NamePersonalisationScheme) ItemsKey() string { return "namePersonalisations" }

func (s *NamePersonalisationScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "namePersonalizations")
	s.Extensions = f.Rest()
}

func (s *NamePersonalisationScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// ReportingTaxonomy holds reporting categories.
type ReportingTaxonomy struct{ SchemeOf[Item, *Item] }

func (*ReportingTaxonomy) Kind() ArtefactKind { return KindReportingTaxonomies }
func (*ReportingTaxonomy) sealed() {}

func (*ReportingTaxonomy) ItemsKey() string { return "reportingCategories" }

func (s *ReportingTaxonomy) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *ReportingTaxonomy) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// CustomTypeScheme holds VTL custom types.
type CustomTypeScheme struct{ SchemeOf[Item, *Item] }

func (*CustomTypeScheme) Kind() ArtefactKind { return KindCustomTypeSchemes }
func (*CustomTypeScheme) sealed() {}

func (*CustomTypeScheme) ItemsKey() string { return "customTypes" }

func (s *CustomTypeScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *CustomTypeScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// VtlMappingScheme holds VTL mappings.
type VtlMappingScheme struct{ SchemeOf[Item, *Item] }

func (*VtlMappingScheme) Kind() ArtefactKind { return KindVtlMappingSchemes }
func (*VtlMappingScheme) sealed() {}

func (*VtlMappingScheme) ItemsKey() string { return "vtlMappings" }

func (s *VtlMappingScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *VtlMappingScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// RulesetScheme holds VTL rulesets.
type RulesetScheme struct{ SchemeOf[Item, *Item] }

func (*RulesetScheme) Kind() ArtefactKind { return KindRulesetSchemes }
func (*RulesetScheme) sealed() {}

func (*RulesetScheme) ItemsKey() string { return "rulesets" }

func (s *RulesetScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *RulesetScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// TransformationScheme holds VTL transformations.
type TransformationScheme struct{ SchemeOf[Item, *Item] }

func (*TransformationScheme) Kind() ArtefactKind { return KindTransformationSchemes }
func (*TransformationScheme) sealed() {}

func (*TransformationScheme) ItemsKey() string { return "transformations" }

func (s *TransformationScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *TransformationScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}

// UserDefinedOperatorScheme holds VTL user defined operators.
type UserDefinedOperatorScheme struct{ SchemeOf[Item, *Item] }

func (*UserDefinedOperatorScheme) Kind() ArtefactKind { return KindUserDefinedOperatorSchemes }
func (*UserDefinedOperatorScheme) sealed() {}

func (*UserDefinedOperatorScheme) ItemsKey() string { return "userDefinedOperators" }

func (s *UserDefinedOperatorScheme) DecodeFields(f *wire.Fields) {
	s.decodeScheme(f, s.ItemsKey(), "")
	s.Extensions = f.Rest()
}

func (s *UserDefinedOperatorScheme) EncodeFields(w *wire.Writer) {
	s.encodeScheme(w, s.ItemsKey())
	w.Extensions(s.Extensions)
}
