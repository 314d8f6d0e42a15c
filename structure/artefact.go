// Package structure models SDMX-JSON structure messages: artefact identity,
// item schemes, data and metadata structures, dataflows, categorisations,
// constraints and the closed artefact-type union.
package structure

import (
	"strings"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/timeperiod"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

// CommonArtefact carries the identity every artefact shares. Specialised
// artefacts embed it; its keys are flattened into the artefact's own object
// and Extensions holds whatever the outermost record did not recognise.
type CommonArtefact struct {
	ID                  string
	AgencyID            *string
	Version             *string
	Name                *string
	Names               value.LocalizedText
	ValidFrom           *string
	ValidTo             *string
	IsExternalReference *bool
	Annotations         []common.Annotation
	Links               []common.Link
	Extensions          wire.Extensions
}

// Artefact is implemented by every artefact through CommonArtefact.
type Artefact interface {
	Identity() *CommonArtefact
}

// Identity returns the artefact's shared identity.
func (a *CommonArtefact) Identity() *CommonArtefact { return a }

// Ref renders the artefact reference as AGENCY:ID(VERSION). Missing parts are
// left out.
func (a *CommonArtefact) Ref() string {
	var b strings.Builder
	if a.AgencyID != nil {
		b.WriteString(*a.AgencyID)
		b.WriteByte(':')
	}
	b.WriteString(a.ID)
	if a.Version != nil {
		b.WriteByte('(')
		b.WriteString(*a.Version)
		b.WriteByte(')')
	}
	return b.String()
}

// DisplayName returns the name in lang, falling back to the default name and
// then to the identifier.
func (a *CommonArtefact) DisplayName(lang string) string {
	if s, ok := a.Names.Get(lang); ok {
		return s
	}
	if a.Name != nil {
		return *a.Name
	}
	return a.ID
}

func (a *CommonArtefact) decodeIdentity(f *wire.Fields) {
	a.ID = f.String("id")
	a.AgencyID = f.OptString("agencyID")
	a.Version = f.OptString("version")
	a.Name = f.OptString("name")
	a.Names = f.OptText("names")
	a.ValidFrom = f.OptString("validFrom")
	a.ValidTo = f.OptString("validTo")
	a.IsExternalReference = f.OptBool("isExternalReference")
	a.Annotations = wire.RecordList[common.Annotation](f, "annotations")
	a.Links = wire.RecordList[common.Link](f, "links")
	checkValidity(f, a.ValidFrom, a.ValidTo)
}

func (a *CommonArtefact) encodeIdentity(w *wire.Writer) {
	w.String("id", a.ID)
	w.OptString("agencyID", a.AgencyID)
	w.OptString("version", a.Version)
	w.OptString("name", a.Name)
	w.OptText("names", a.Names)
	w.OptString("validFrom", a.ValidFrom)
	w.OptString("validTo", a.ValidTo)
	w.OptBool("isExternalReference", a.IsExternalReference)
	wire.WriteRecordList(w, "annotations", a.Annotations)
	wire.WriteRecordList(w, "links", a.Links)
}

// checkValidity requires validFrom <= validTo when both are present and both
// are dates. Values that do not parse as dates are left alone.
func checkValidity(f *wire.Fields, from, to *string) {
	if from == nil || to == nil {
		return
	}
	ft, ok1 := timeperiod.ParseDate(*from)
	tt, ok2 := timeperiod.ParseDate(*to)
	if ok1 && ok2 && tt.Before(ft) {
		f.Fail("validTo", gosdmx.CodeInvalidFormat, "validTo precedes validFrom")
	}
}

// GenericArtefact is an artefact kind modelled by its identity only; every
// kind-specific key is kept in Extensions.
type GenericArtefact struct {
	CommonArtefact
	kind ArtefactKind
}

// NewGenericArtefact returns an empty artefact of a kind without a dedicated
// model. It panics when kind has one.
func NewGenericArtefact(kind ArtefactKind) *GenericArtefact {
	if !kind.IsGeneric() {
		panic("structure: " + kind.String() + " has a dedicated model")
	}
	return &GenericArtefact{kind: kind}
}

func (g *GenericArtefact) Kind() ArtefactKind { return g.kind }
func (*GenericArtefact) sealed() {}

func (g *GenericArtefact) DecodeFields(f *wire.Fields) {
	g.decodeIdentity(f)
	g.Extensions = f.Rest()
}

func (g *GenericArtefact) EncodeFields(w *wire.Writer) {
	g.encodeIdentity(w)
	w.Extensions(g.Extensions)
}
