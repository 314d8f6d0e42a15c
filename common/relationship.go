package common

import (
	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/wire"
)

// RelationshipKind identifies what an attribute is attached to.
type RelationshipKind int

const (
	AttachedToDimensions RelationshipKind = iota
	AttachedToGroup
	AttachedToObservation
	AttachedToDataflow
	AttachedToPrimaryMeasure
	AttachedToMeasures
)

func (k RelationshipKind) String() string {
	switch k {
	case AttachedToGroup:
		return "group"
	case AttachedToObservation:
		return "observation"
	case AttachedToDataflow:
		return "dataflow"
	case AttachedToPrimaryMeasure:
		return "primaryMeasure"
	case AttachedToMeasures:
		return "measures"
	default:
		return "dimensions"
	}
}

// AttributeRelationship tells where an attribute value is attached. The wire
// form carries no tag; shapes are tried in this order and the first whose
// required key is present and well typed wins:
//
//  1. dimensions: "dimensions" is an array of strings, with an optional
//     "areDimensionsOptional" array of booleans of the same length
//  2. group: "group" is a string
//  3. observation: "observation" is an object
//  4. dataflow: "dataflow" is an object
//
// Keys belonging to the shapes that lost are kept as extensions. The chosen
// shape is written back as is.
type AttributeRelationship struct {
	Kind                  RelationshipKind
	Dimensions            []string
	AreDimensionsOptional []bool
	Group                 string
	PrimaryMeasure        string
	Measures              []string
	// Marker holds the members of the observation or dataflow object,
	// usually empty.
	Marker     map[string]any
	Extensions wire.Extensions
}

// DimensionsRelationship attaches to the given dimensions.
func DimensionsRelationship(dims ...string) AttributeRelationship {
	if dims == nil {
		dims = []string{}
	}
	return AttributeRelationship{Kind: AttachedToDimensions, Dimensions: dims}
}

// GroupRelationship attaches to a group.
func GroupRelationship(group string) AttributeRelationship {
	return AttributeRelationship{Kind: AttachedToGroup, Group: group}
}

// ObservationRelationship attaches to the observation.
func ObservationRelationship() AttributeRelationship {
	return AttributeRelationship{Kind: AttachedToObservation, Marker: map[string]any{}}
}

// DataflowRelationship attaches to the dataflow as a whole.
func DataflowRelationship() AttributeRelationship {
	return AttributeRelationship{Kind: AttachedToDataflow, Marker: map[string]any{}}
}

// PrimaryMeasureRelationship attaches to the primary measure.
func PrimaryMeasureRelationship(measure string) AttributeRelationship {
	return AttributeRelationship{Kind: AttachedToPrimaryMeasure, PrimaryMeasure: measure}
}

// MeasuresRelationship attaches to the given measures.
func MeasuresRelationship(measures ...string) AttributeRelationship {
	if measures == nil {
		measures = []string{}
	}
	return AttributeRelationship{Kind: AttachedToMeasures, Measures: measures}
}

func isStringArray(raw any) bool {
	arr, ok := raw.([]any)
	if !ok {
		return false
	}
	for _, e := range arr {
		if _, ok := e.(string); !ok {
			return false
		}
	}
	return true
}

func (r *AttributeRelationship) DecodeFields(f *wire.Fields) { r.decode(f, false) }

func (r *AttributeRelationship) decode(f *wire.Fields, withMeasures bool) {
	if raw, ok := f.Peek("dimensions"); ok && isStringArray(raw) {
		r.Kind = AttachedToDimensions
		r.Dimensions = f.OptStrings("dimensions")
		r.AreDimensionsOptional = f.OptBools("areDimensionsOptional")
		if r.AreDimensionsOptional != nil && len(r.AreDimensionsOptional) != len(r.Dimensions) {
			f.Fail("areDimensionsOptional", gosdmx.CodeInvalidFormat, "expected one flag per dimension")
		}
		r.Extensions = f.Rest()
		return
	}
	if raw, ok := f.Peek("group"); ok {
		if s, ok := raw.(string); ok {
			f.Consume("group")
			r.Kind = AttachedToGroup
			r.Group = s
			r.Extensions = f.Rest()
			return
		}
	}
	if raw, ok := f.Peek("observation"); ok {
		if m, ok := raw.(map[string]any); ok {
			f.Consume("observation")
			r.Kind = AttachedToObservation
			r.Marker = m
			r.Extensions = f.Rest()
			return
		}
	}
	if raw, ok := f.Peek("dataflow"); ok {
		if m, ok := raw.(map[string]any); ok {
			f.Consume("dataflow")
			r.Kind = AttachedToDataflow
			r.Marker = m
			r.Extensions = f.Rest()
			return
		}
	}
	if withMeasures {
		if raw, ok := f.Peek("primaryMeasure"); ok {
			if s, ok := raw.(string); ok {
				f.Consume("primaryMeasure")
				r.Kind = AttachedToPrimaryMeasure
				r.PrimaryMeasure = s
				r.Extensions = f.Rest()
				return
			}
		}
		if raw, ok := f.Peek("measures"); ok && isStringArray(raw) {
			r.Kind = AttachedToMeasures
			r.Measures = f.OptStrings("measures")
			r.Extensions = f.Rest()
			return
		}
		wire.Report(f.Issues(), f.Path(), gosdmx.CodeUnionNoMatch, "expected one of dimensions, group, observation, dataflow, primaryMeasure, measures")
		return
	}
	wire.Report(f.Issues(), f.Path(), gosdmx.CodeUnionNoMatch, "expected one of dimensions, group, observation, dataflow")
}

func (r *AttributeRelationship) EncodeFields(w *wire.Writer) {
	switch r.Kind {
	case AttachedToDimensions:
		dims := r.Dimensions
		if dims == nil {
			dims = []string{}
		}
		w.OptStrings("dimensions", dims)
		w.OptBools("areDimensionsOptional", r.AreDimensionsOptional)
	case AttachedToGroup:
		w.String("group", r.Group)
	case AttachedToObservation:
		w.Field("observation", marker(r.Marker))
	case AttachedToDataflow:
		w.Field("dataflow", marker(r.Marker))
	case AttachedToPrimaryMeasure:
		w.String("primaryMeasure", r.PrimaryMeasure)
	case AttachedToMeasures:
		ms := r.Measures
		if ms == nil {
			ms = []string{}
		}
		w.OptStrings("measures", ms)
	}
	w.Extensions(r.Extensions)
}

// DataAttributeRelationship is the relationship of a data message attribute.
// It accepts two more shapes after dataflow:
//
//  5. primaryMeasure: "primaryMeasure" is a string
//  6. measures: "measures" is an array of strings
type DataAttributeRelationship struct {
	AttributeRelationship
}

func (r *DataAttributeRelationship) DecodeFields(f *wire.Fields) { r.decode(f, true) }

func marker(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
