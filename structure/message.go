package structure

import (
	"context"
	"fmt"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/wire"
)

// StructureMessage is an SDMX-JSON structure message. The header is
// required.
type StructureMessage struct {
	Meta       common.Meta
	Data       *StructureData
	Errors     []common.StatusMessage
	Extensions wire.Extensions
}

func (m *StructureMessage) DecodeFields(f *wire.Fields) {
	m.Meta = wire.ReqRecord[common.Meta](f, "meta")
	m.Data = wire.OptRecord[StructureData](f, "data")
	m.Errors = wire.RecordList[common.StatusMessage](f, "errors")
	m.Extensions = f.Rest()
}

func (m *StructureMessage) EncodeFields(w *wire.Writer) {
	wire.WriteRecord(w, "meta", &m.Meta)
	wire.WriteOptRecord(w, "data", m.Data)
	wire.WriteRecordList(w, "errors", m.Errors)
	w.Extensions(m.Extensions)
}

// Parse reads one structure message from src.
func Parse(ctx context.Context, src gosdmx.Source, opts ...gosdmx.ParseOpt) (StructureMessage, error) {
	return wire.Unmarshal[StructureMessage](ctx, src, opts...)
}

// ParseBytes reads one structure message from JSON bytes.
func ParseBytes(ctx context.Context, b []byte, opts ...gosdmx.ParseOpt) (StructureMessage, error) {
	return wire.UnmarshalBytes[StructureMessage](ctx, b, opts...)
}

// Marshal encodes m.
func Marshal(m *StructureMessage) ([]byte, error) { return wire.Encode(m) }

func (m *StructureMessage) UnmarshalJSON(b []byte) error {
	v, err := ParseBytes(context.Background(), b)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m StructureMessage) MarshalJSON() ([]byte, error) { return wire.Encode(&m) }

// StructureData holds one collection per artefact kind. Kinds without a
// dedicated model are held as GenericArtefact.
type StructureData struct {
	DataStructures              []DataStructure
	MetadataStructures          []MetadataStructure
	CategorySchemes             []CategoryScheme
	ConceptSchemes              []ConceptScheme
	Codelists                   []Codelist
	GeographicCodelists         []GeographicCodelist
	GeoGridCodelists            []GeoGridCodelist
	ValueLists                  []GenericArtefact
	Hierarchies                 []GenericArtefact
	HierarchyAssociations       []GenericArtefact
	AgencySchemes               []AgencyScheme
	DataProviderSchemes         []DataProviderScheme
	DataConsumerSchemes         []DataConsumerScheme
	MetadataProviderSchemes     []MetadataProviderScheme
	OrganisationUnitSchemes     []OrganisationUnitScheme
	Dataflows                   []Dataflow
	Metadataflows               []GenericArtefact
	ReportingTaxonomies         []ReportingTaxonomy
	ProvisionAgreements         []GenericArtefact
	MetadataProvisionAgreements []GenericArtefact
	StructureMaps               []GenericArtefact
	RepresentationMaps          []GenericArtefact
	ConceptSchemeMaps           []GenericArtefact
	CategorySchemeMaps          []GenericArtefact
	OrganisationSchemeMaps      []GenericArtefact
	ReportingTaxonomyMaps       []GenericArtefact
	Processes                   []GenericArtefact
	Categorisations             []Categorisation
	DataConstraints             []DataConstraint
	MetadataConstraints         []MetadataConstraint
	CustomTypeSchemes           []CustomTypeScheme
	VtlMappingSchemes           []VtlMappingScheme
	NamePersonalisationSchemes  []NamePersonalisationScheme
	RulesetSchemes              []RulesetScheme
	TransformationSchemes       []TransformationScheme
	UserDefinedOperatorSchemes  []UserDefinedOperatorScheme
	Extensions                  wire.Extensions
}

// generic returns the collection of a kind modelled by GenericArtefact.
func (d *StructureData) generic(kind ArtefactKind) *[]GenericArtefact {
	switch kind {
	case KindValueLists:
		return &d.ValueLists
	case KindHierarchies:
		return &d.Hierarchies
	case KindHierarchyAssociations:
		return &d.HierarchyAssociations
	case KindMetadataflows:
		return &d.Metadataflows
	case KindProvisionAgreements:
		return &d.ProvisionAgreements
	case KindMetadataProvisionAgreements:
		return &d.MetadataProvisionAgreements
	case KindStructureMaps:
		return &d.StructureMaps
	case KindRepresentationMaps:
		return &d.RepresentationMaps
	case KindConceptSchemeMaps:
		return &d.ConceptSchemeMaps
	case KindCategorySchemeMaps:
		return &d.CategorySchemeMaps
	case KindOrganisationSchemeMaps:
		return &d.OrganisationSchemeMaps
	case KindReportingTaxonomyMaps:
		return &d.ReportingTaxonomyMaps
	case KindProcesses:
		return &d.Processes
	}
	return nil
}

func genericDecoder(kind ArtefactKind) wire.TreeDecoder[GenericArtefact] {
	return func(raw any, path string, issues *gosdmx.Issues) (GenericArtefact, bool) {
		g, ok := wire.DecodeObject[GenericArtefact](raw, path, issues)
		g.kind = kind
		return g, ok
	}
}

func (d *StructureData) DecodeFields(f *wire.Fields) {
	for _, k := range Kinds() {
		key := k.String()
		switch k {
		case KindDataStructures:
			d.DataStructures = wire.RecordList[DataStructure](f, key)
		case KindMetadataStructures:
			d.MetadataStructures = wire.RecordList[MetadataStructure](f, key)
		case KindCategorySchemes:
			d.CategorySchemes = wire.RecordList[CategoryScheme](f, key)
		case KindConceptSchemes:
			d.ConceptSchemes = wire.RecordList[ConceptScheme](f, key)
		case KindCodelists:
			d.Codelists = wire.RecordList[Codelist](f, key)
		case KindGeographicCodelists:
			d.GeographicCodelists = wire.RecordList[GeographicCodelist](f, key)
		case KindGeoGridCodelists:
			d.GeoGridCodelists = wire.RecordList[GeoGridCodelist](f, key)
		case KindAgencySchemes:
			d.AgencySchemes = wire.RecordList[AgencyScheme](f, key)
		case KindDataProviderSchemes:
			d.DataProviderSchemes = wire.RecordList[DataProviderScheme](f, key)
		case KindDataConsumerSchemes:
			d.DataConsumerSchemes = wire.RecordList[DataConsumerScheme](f, key)
		case KindMetadataProviderSchemes:
			d.MetadataProviderSchemes = wire.RecordList[MetadataProviderScheme](f, key)
		case KindOrganisationUnitSchemes:
			d.OrganisationUnitSchemes = wire.RecordList[OrganisationUnitScheme](f, key)
		case KindDataflows:
			d.Dataflows = wire.RecordList[Dataflow](f, key)
		case KindReportingTaxonomies:
			d.ReportingTaxonomies = wire.RecordList[ReportingTaxonomy](f, key)
		case KindCategorisations:
			d.Categorisations = wire.RecordList[Categorisation](f, key)
		case KindDataConstraints:
			d.DataConstraints = wire.RecordList[DataConstraint](f, key)
		case KindMetadataConstraints:
			d.MetadataConstraints = wire.RecordList[MetadataConstraint](f, key)
		case KindCustomTypeSchemes:
			d.CustomTypeSchemes = wire.RecordList[CustomTypeScheme](f, key)
		case KindVtlMappingSchemes:
			d.VtlMappingSchemes = wire.RecordList[VtlMappingScheme](f, key)
		case KindNamePersonalisationSchemes:
			d.NamePersonalisationSchemes = wire.RecordList[NamePersonalisationScheme](f, key)
		case KindRulesetSchemes:
			d.RulesetSchemes = wire.RecordList[RulesetScheme](f, key)
		case KindTransformationSchemes:
			d.TransformationSchemes = wire.RecordList[TransformationScheme](f, key)
		case KindUserDefinedOperatorSchemes:
			d.UserDefinedOperatorSchemes = wire.RecordList[UserDefinedOperatorScheme](f, key)
		default:
			*d.generic(k) = wire.ListWith(f, key, genericDecoder(k))
		}
	}
	d.Extensions = f.Rest()
}

func (d *StructureData) EncodeFields(w *wire.Writer) {
	for _, k := range Kinds() {
		key := k.String()
		switch k {
		case KindDataStructures:
			wire.WriteRecordList(w, key, d.DataStructures)
		case KindMetadataStructures:
			wire.WriteRecordList(w, key, d.MetadataStructures)
		case KindCategorySchemes:
			wire.WriteRecordList(w, key, d.CategorySchemes)
		case KindConceptSchemes:
			wire.WriteRecordList(w, key, d.ConceptSchemes)
		case KindCodelists:
			wire.WriteRecordList(w, key, d.Codelists)
		case KindGeographicCodelists:
			wire.WriteRecordList(w, key, d.GeographicCodelists)
		case KindGeoGridCodelists:
			wire.WriteRecordList(w, key, d.GeoGridCodelists)
		case KindAgencySchemes:
			wire.WriteRecordList(w, key, d.AgencySchemes)
		case KindDataProviderSchemes:
			wire.WriteRecordList(w, key, d.DataProviderSchemes)
		case KindDataConsumerSchemes:
			wire.WriteRecordList(w, key, d.DataConsumerSchemes)
		case KindMetadataProviderSchemes:
			wire.WriteRecordList(w, key, d.MetadataProviderSchemes)
		case KindOrganisationUnitSchemes:
			wire.WriteRecordList(w, key, d.OrganisationUnitSchemes)
		case KindDataflows:
			wire.WriteRecordList(w, key, d.Dataflows)
		case KindReportingTaxonomies:
			wire.WriteRecordList(w, key, d.ReportingTaxonomies)
		case KindCategorisations:
			wire.WriteRecordList(w, key, d.Categorisations)
		case KindDataConstraints:
			wire.WriteRecordList(w, key, d.DataConstraints)
		case KindMetadataConstraints:
			wire.WriteRecordList(w, key, d.MetadataConstraints)
		case KindCustomTypeSchemes:
			wire.WriteRecordList(w, key, d.CustomTypeSchemes)
		case KindVtlMappingSchemes:
			wire.WriteRecordList(w, key, d.VtlMappingSchemes)
		case KindNamePersonalisationSchemes:
			wire.WriteRecordList(w, key, d.NamePersonalisationSchemes)
		case KindRulesetSchemes:
			wire.WriteRecordList(w, key, d.RulesetSchemes)
		case KindTransformationSchemes:
			wire.WriteRecordList(w, key, d.TransformationSchemes)
		case KindUserDefinedOperatorSchemes:
			wire.WriteRecordList(w, key, d.UserDefinedOperatorSchemes)
		default:
			wire.WriteRecordList(w, key, *d.generic(k))
		}
	}
	w.Extensions(d.Extensions)
}

func boxed[T any, P interface {
	*T
	ArtefactType
}](out []ArtefactType, list []T) []ArtefactType {
	for i := range list {
		out = append(out, P(&list[i]))
	}
	return out
}

// Artefacts returns every artefact of every collection, in collection order
// and then wire order. The returned values point into d.
func (d *StructureData) Artefacts() []ArtefactType {
	var out []ArtefactType
	for _, k := range Kinds() {
		switch k {
		case KindDataStructures:
			out = boxed(out, d.DataStructures)
		case KindMetadataStructures:
			out = boxed(out, d.MetadataStructures)
		case KindCategorySchemes:
			out = boxed(out, d.CategorySchemes)
		case KindConceptSchemes:
			out = boxed(out, d.ConceptSchemes)
		case KindCodelists:
			out = boxed(out, d.Codelists)
		case KindGeographicCodelists:
			out = boxed(out, d.GeographicCodelists)
		case KindGeoGridCodelists:
			out = boxed(out, d.GeoGridCodelists)
		case KindAgencySchemes:
			out = boxed(out, d.AgencySchemes)
		case KindDataProviderSchemes:
			out = boxed(out, d.DataProviderSchemes)
		case KindDataConsumerSchemes:
			out = boxed(out, d.DataConsumerSchemes)
		case KindMetadataProviderSchemes:
			out = boxed(out, d.MetadataProviderSchemes)
		case KindOrganisationUnitSchemes:
			out = boxed(out, d.OrganisationUnitSchemes)
		case KindDataflows:
			out = boxed(out, d.Dataflows)
		case KindReportingTaxonomies:
			out = boxed(out, d.ReportingTaxonomies)
		case KindCategorisations:
			out = boxed(out, d.Categorisations)
		case KindDataConstraints:
			out = boxed(out, d.DataConstraints)
		case KindMetadataConstraints:
			out = boxed(out, d.MetadataConstraints)
		case KindCustomTypeSchemes:
			out = boxed(out, d.CustomTypeSchemes)
		case KindVtlMappingSchemes:
			out = boxed(out, d.VtlMappingSchemes)
		case KindNamePersonalisationSchemes:
			out = boxed(out, d.NamePersonalisationSchemes)
		case KindRulesetSchemes:
			out = boxed(out, d.RulesetSchemes)
		case KindTransformationSchemes:
			out = boxed(out, d.TransformationSchemes)
		case KindUserDefinedOperatorSchemes:
			out = boxed(out, d.UserDefinedOperatorSchemes)
		default:
			out = boxed(out, *d.generic(k))
		}
	}
	return out
}

// Add appends a copy of a to the collection of its kind. It fails for a
// GenericArtefact whose kind has no generic collection.
func (d *StructureData) Add(a ArtefactType) error {
	switch v := a.(type) {
	case *DataStructure:
		d.DataStructures = append(d.DataStructures, *v)
	case *MetadataStructure:
		d.MetadataStructures = append(d.MetadataStructures, *v)
	case *CategoryScheme:
		d.CategorySchemes = append(d.CategorySchemes, *v)
	case *ConceptScheme:
		d.ConceptSchemes = append(d.ConceptSchemes, *v)
	case *Codelist:
		d.Codelists = append(d.Codelists, *v)
	case *GeographicCodelist:
		d.GeographicCodelists = append(d.GeographicCodelists, *v)
	case *GeoGridCodelist:
		d.GeoGridCodelists = append(d.GeoGridCodelists, *v)
	case *AgencyScheme:
		d.AgencySchemes = append(d.AgencySchemes, *v)
	case *DataProviderScheme:
		d.DataProviderSchemes = append(d.DataProviderSchemes, *v)
	case *DataConsumerScheme:
		d.DataConsumerSchemes = append(d.DataConsumerSchemes, *v)
	case *MetadataProviderScheme:
		d.MetadataProviderSchemes = append(d.MetadataProviderSchemes, *v)
	case *OrganisationUnitScheme:
		d.OrganisationUnitSchemes = append(d.OrganisationUnitSchemes, *v)
	case *Dataflow:
		d.Dataflows = append(d.Dataflows, *v)
	case *ReportingTaxonomy:
		d.ReportingTaxonomies = append(d.ReportingTaxonomies, *v)
	case *Categorisation:
		d.Categorisations = append(d.Categorisations, *v)
	case *DataConstraint:
		d.DataConstraints = append(d.DataConstraints, *v)
	case *MetadataConstraint:
		d.MetadataConstraints = append(d.MetadataConstraints, *v)
	case *CustomTypeScheme:
		d.CustomTypeSchemes = append(d.CustomTypeSchemes, *v)
	case *VtlMappingScheme:
		d.VtlMappingSchemes = append(d.VtlMappingSchemes, *v)
	case *NamePersonalisationScheme:
		d.NamePersonalisationSchemes = append(d.NamePersonalisationSchemes, *v)
	case *RulesetScheme:
		d.RulesetSchemes = append(d.RulesetSchemes, *v)
	case *TransformationScheme:
		d.TransformationSchemes = append(d.TransformationSchemes, *v)
	case *UserDefinedOperatorScheme:
		d.UserDefinedOperatorSchemes = append(d.UserDefinedOperatorSchemes, *v)
	case *GenericArtefact:
		list := d.generic(v.kind)
		if list == nil {
			return fmt.Errorf("structure: no generic collection for %s", v.kind)
		}
		*list = append(*list, *v)
	default:
		return fmt.Errorf("structure: cannot add %T", a)
	}
	return nil
}
