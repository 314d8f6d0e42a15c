package structure

import (
	"context"
	"strings"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/wire"
)

// ArtefactKind enumerates the artefact collections of a structure message.
// The string form is the collection's wire key.
type ArtefactKind int

const (
	KindDataStructures ArtefactKind = iota + 1
	KindMetadataStructures
	KindCategorySchemes
	KindConceptSchemes
	KindCodelists
	KindGeographicCodelists
	KindGeoGridCodelists
	KindValueLists
	KindHierarchies
	KindHierarchyAssociations
	KindAgencySchemes
	KindDataProviderSchemes
	KindDataConsumerSchemes
	KindMetadataProviderSchemes
	KindOrganisationUnitSchemes
	KindDataflows
	KindMetadataflows
	KindReportingTaxonomies
	KindProvisionAgreements
	KindMetadataProvisionAgreements
	KindStructureMaps
	KindRepresentationMaps
	KindConceptSchemeMaps
	KindCategorySchemeMaps
	KindOrganisationSchemeMaps
	KindReportingTaxonomyMaps
	KindProcesses
	KindCategorisations
	KindDataConstraints
	KindMetadataConstraints
	KindCustomTypeSchemes
	KindVtlMappingSchemes
	KindNamePersonalisationSchemes
	KindRulesetSchemes
	KindTransformationSchemes
	KindUserDefinedOperatorSchemes
)

var kindKeys = [...]string{
	KindDataStructures:              "dataStructures",
	KindMetadataStructures:          "metadataStructures",
	KindCategorySchemes:             "categorySchemes",
	KindConceptSchemes:              "conceptSchemes",
	KindCodelists:                   "codelists",
	KindGeographicCodelists:         "geographicCodelists",
	KindGeoGridCodelists:            "geoGridCodelists",
	KindValueLists:                  "valueLists",
	KindHierarchies:                 "hierarchies",
	KindHierarchyAssociations:       "hierarchyAssociations",
	KindAgencySchemes:               "agencySchemes",
	KindDataProviderSchemes:         "dataProviderSchemes",
	KindDataConsumerSchemes:         "dataConsumerSchemes",
	KindMetadataProviderSchemes:     "metadataProviderSchemes",
	KindOrganisationUnitSchemes:     "organisationUnitSchemes",
	KindDataflows:                   "dataflows",
	KindMetadataflows:               "metadataflows",
	KindReportingTaxonomies:         "reportingTaxonomies",
	KindProvisionAgreements:         "provisionAgreements",
	KindMetadataProvisionAgreements: "metadataProvisionAgreements",
	KindStructureMaps:               "structureMaps",
	KindRepresentationMaps:          "representationMaps",
	KindConceptSchemeMaps:           "conceptSchemeMaps",
	KindCategorySchemeMaps:          "categorySchemeMaps",
	KindOrganisationSchemeMaps:      "organisationSchemeMaps",
	KindReportingTaxonomyMaps:       "reportingTaxonomyMaps",
	KindProcesses:                   "processes",
	KindCategorisations:             "categorisations",
	KindDataConstraints:             "dataConstraints",
	KindMetadataConstraints:         "metadataConstraints",
	KindCustomTypeSchemes:           "customTypeSchemes",
	KindVtlMappingSchemes:           "vtlMappingSchemes",
	KindNamePersonalisationSchemes:  "namePersonalisationSchemes",
	KindRulesetSchemes:              "rulesetSchemes",
	KindTransformationSchemes:       "transformationSchemes",
	KindUserDefinedOperatorSchemes:  "userDefinedOperatorSchemes",
}

var kindByKey = func() map[string]ArtefactKind {
	m := make(map[string]ArtefactKind, len(kindKeys))
	for k, s := range kindKeys {
		if s != "" {
			m[s] = ArtefactKind(k)
		}
	}
	return m
}()

// Kinds returns every artefact kind in collection order.
func Kinds() []ArtefactKind {
	out := make([]ArtefactKind, 0, len(kindKeys)-1)
	for k := KindDataStructures; k <= KindUserDefinedOperatorSchemes; k++ {
		out = append(out, k)
	}
	return out
}

func (k ArtefactKind) String() string {
	if k < KindDataStructures || k > KindUserDefinedOperatorSchemes {
		return "unknown"
	}
	return kindKeys[k]
}

// ParseArtefactKind maps a collection key to its kind.
func ParseArtefactKind(s string) (ArtefactKind, bool) {
	k, ok := kindByKey[s]
	return k, ok
}

// IsGeneric reports whether the kind is modelled by GenericArtefact.
func (k ArtefactKind) IsGeneric() bool {
	switch k {
	case KindValueLists, KindHierarchies, KindHierarchyAssociations,
		KindMetadataflows, KindProvisionAgreements, KindMetadataProvisionAgreements,
		KindStructureMaps, KindRepresentationMaps, KindConceptSchemeMaps,
		KindCategorySchemeMaps, KindOrganisationSchemeMaps, KindReportingTaxonomyMaps,
		KindProcesses:
		return true
	}
	return false
}

// ArtefactType is the closed union of artefact kinds. Every variant is a
// pointer to a concrete artefact; switch on the dynamic type or on Kind.
type ArtefactType interface {
	Artefact
	wire.Record
	Kind() ArtefactKind
	sealed()
}

// NewArtefact returns an empty artefact of kind, or nil for an unknown kind.
func NewArtefact(kind ArtefactKind) ArtefactType {
	switch kind {
	case KindDataStructures:
		return &DataStructure{}
	case KindMetadataStructures:
		return &MetadataStructure{}
	case KindCategorySchemes:
		return &CategoryScheme{}
	case KindConceptSchemes:
		return &ConceptScheme{}
	case KindCodelists:
		return &Codelist{}
	case KindGeographicCodelists:
		return &GeographicCodelist{}
	case KindGeoGridCodelists:
		return &GeoGridCodelist{}
	case KindAgencySchemes:
		return &AgencyScheme{}
	case KindDataProviderSchemes:
		return &DataProviderScheme{}
	case KindDataConsumerSchemes:
		return &DataConsumerScheme{}
	case KindMetadataProviderSchemes:
		return &MetadataProviderScheme{}
	case KindOrganisationUnitSchemes:
		return &OrganisationUnitScheme{}
	case KindDataflows:
		return &Dataflow{}
	case KindReportingTaxonomies:
		return &ReportingTaxonomy{}
	case KindCategorisations:
		return &Categorisation{}
	case KindDataConstraints:
		return &DataConstraint{}
	case KindMetadataConstraints:
		return &MetadataConstraint{}
	case KindCustomTypeSchemes:
		return &CustomTypeScheme{}
	case KindVtlMappingSchemes:
		return &VtlMappingScheme{}
	case KindNamePersonalisationSchemes:
		return &NamePersonalisationScheme{}
	case KindRulesetSchemes:
		return &RulesetScheme{}
	case KindTransformationSchemes:
		return &TransformationScheme{}
	case KindUserDefinedOperatorSchemes:
		return &UserDefinedOperatorScheme{}
	}
	if kind.IsGeneric() {
		return NewGenericArtefact(kind)
	}
	return nil
}

// decodeArtefact decodes raw as an artefact of kind at path.
func decodeArtefact(kind ArtefactKind, raw any, path string, issues *gosdmx.Issues) (ArtefactType, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		wire.Report(issues, path, gosdmx.CodeInvalidType, "expected object")
		return nil, false
	}
	a := NewArtefact(kind)
	before := len(*issues)
	a.DecodeFields(wire.NewFields(m, path, issues))
	return a, len(*issues) == before
}

var kindTokens = strings.Join(kindKeys[1:], ", ")

// MarshalArtefact encodes a as a single-key object tagged with its kind:
// {"codelists": {...}}.
func MarshalArtefact(a ArtefactType) ([]byte, error) {
	w := wire.NewWriter()
	wire.WriteRecord(w, a.Kind().String(), a)
	return w.Bytes()
}

// UnmarshalArtefact decodes the tagged form written by MarshalArtefact.
func UnmarshalArtefact(ctx context.Context, b []byte, opts ...gosdmx.ParseOpt) (ArtefactType, error) {
	raw, err := gosdmx.DecodeBytes(ctx, b, opts...)
	if err != nil {
		return nil, err
	}
	var issues gosdmx.Issues
	a := artefactFromTree(raw, "", &issues)
	if len(issues) > 0 {
		return nil, issues
	}
	return a, nil
}

func artefactFromTree(raw any, path string, issues *gosdmx.Issues) ArtefactType {
	m, ok := raw.(map[string]any)
	if !ok {
		wire.Report(issues, path, gosdmx.CodeInvalidType, "expected object")
		return nil
	}
	if len(m) != 1 {
		wire.Report(issues, path, gosdmx.CodeUnionNoMatch, "expected exactly one artefact kind key")
		return nil
	}
	for key, body := range m {
		kind, ok := ParseArtefactKind(key)
		if !ok {
			*issues = gosdmx.AppendIssues(*issues, wire.EnumIssue(wire.JoinPointer(path, key), key, kindTokens))
			return nil
		}
		a, _ := decodeArtefact(kind, body, wire.JoinPointer(path, key), issues)
		return a
	}
	return nil
}
