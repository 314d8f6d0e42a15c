package sdmxcsv

import (
	"fmt"
	"strings"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/i18n"
	"github.com/reoring/gosdmx/wire"
)

// StructureKind is the kind of artefact named in the STRUCTURE column.
type StructureKind int

const (
	Dataflow StructureKind = iota + 1
	DataStructure
	DataProvision
	Metadataflow
	MetadataStructure
	MetadataProvision
)

var structureNames = [...]string{"", "dataflow", "datastructure", "dataprovision", "metadataflow", "metadatastructure", "metadataprovision"}

const (
	dataStructureTokens     = "dataflow, datastructure, dataprovision"
	metadataStructureTokens = "metadataflow, metadatastructure, metadataprovision"
)

func (k StructureKind) String() string {
	if k <= 0 || int(k) >= len(structureNames) {
		return "unknown"
	}
	return structureNames[k]
}

// IsMetadata reports whether k names a metadata artefact.
func (k StructureKind) IsMetadata() bool { return k >= Metadataflow && k <= MetadataProvision }

// ParseStructureKind parses the STRUCTURE cell of either table type.
func ParseStructureKind(s string) (StructureKind, bool) {
	for i := 1; i < len(structureNames); i++ {
		if strings.EqualFold(s, structureNames[i]) {
			return StructureKind(i), true
		}
	}
	return 0, false
}

// StructureID names an artefact as AGENCY:ID(VERSION).
type StructureID struct {
	Agency  string
	ID      string
	Version string
}

func (s StructureID) String() string { return s.Agency + ":" + s.ID + "(" + s.Version + ")" }

// ParseStructureID parses AGENCY:ID(VERSION). Every part must be non-empty.
func ParseStructureID(s string) (StructureID, error) {
	agency, rest, ok := strings.Cut(s, ":")
	id, version, ok2 := strings.Cut(rest, "(")
	if !ok || !ok2 || agency == "" || id == "" || !strings.HasSuffix(version, ")") || len(version) < 2 ||
		strings.ContainsAny(id, ":()") || strings.ContainsAny(version[:len(version)-1], "()") {
		return StructureID{}, gosdmx.Issues{{
			Path:    "/" + ColStructureID,
			Code:    gosdmx.CodeInvalidFormat,
			Message: i18n.T(gosdmx.CodeInvalidFormat, nil),
			Hint:    "expected AGENCY:ID(VERSION)",
			Params:  map[string]any{"got": s},
		}}
	}
	return StructureID{Agency: agency, ID: id, Version: version[:len(version)-1]}, nil
}

// ActionTokens lists the accepted ACTION cell spellings.
const ActionTokens = "A, R, D, I, " + common.ActionTokens

// ParseAction maps an ACTION cell. An empty cell means Information.
func ParseAction(cell string) (common.Action, bool) {
	if cell == "" {
		return common.ActionInformation, true
	}
	if a, ok := common.ActionFromCode(cell); ok {
		return a, true
	}
	return common.ParseAction(cell)
}

// DataRecord is one row of a data table. Components and Others are keyed
// by column position; Headers resolves positions to column ids.
//
// Cell strings share memory with the row they were read from. Clone
// detaches a record that is kept after the next row is read.
type DataRecord struct {
	Line          int
	Structure     StructureKind
	StructureID   StructureID
	StructureName *string
	Action        common.Action
	SeriesKey     *string
	ObsKey        *string
	Components    map[int]string
	Others        map[int]string
}

// Clone returns a copy that shares no memory with the source row.
func (r DataRecord) Clone() DataRecord {
	r.StructureID = r.StructureID.clone()
	r.StructureName = cloneOpt(r.StructureName)
	r.SeriesKey = cloneOpt(r.SeriesKey)
	r.ObsKey = cloneOpt(r.ObsKey)
	r.Components = cloneCells(r.Components)
	r.Others = cloneCells(r.Others)
	return r
}

// Component returns the cell of the component column with the given id.
func (r *DataRecord) Component(h *Headers, id string) (string, bool) {
	return lookup(r.Components, h, id)
}

// MetadataRecord is one row of a metadata table. Components holds the
// metadata attribute columns.
type MetadataRecord struct {
	Line            int
	Structure       StructureKind
	StructureID     StructureID
	StructureName   *string
	MetadataSetID   string
	MetadataSetName *string
	Action          common.Action
	TargetTypes     []string
	TargetIDs       []string
	TargetNames     []string
	Components      map[int]string
	Others          map[int]string
}

// Clone returns a copy that shares no memory with the source row.
func (r MetadataRecord) Clone() MetadataRecord {
	r.StructureID = r.StructureID.clone()
	r.StructureName = cloneOpt(r.StructureName)
	r.MetadataSetID = strings.Clone(r.MetadataSetID)
	r.MetadataSetName = cloneOpt(r.MetadataSetName)
	r.TargetTypes = cloneList(r.TargetTypes)
	r.TargetIDs = cloneList(r.TargetIDs)
	r.TargetNames = cloneList(r.TargetNames)
	r.Components = cloneCells(r.Components)
	r.Others = cloneCells(r.Others)
	return r
}

// Attribute returns the cell of the attribute column with the given id.
func (r *MetadataRecord) Attribute(h *Headers, id string) (string, bool) {
	return lookup(r.Components, h, id)
}

func lookup(cells map[int]string, h *Headers, id string) (string, bool) {
	i, ok := h.Index(id)
	if !ok {
		return "", false
	}
	v, ok := cells[i]
	return v, ok
}

func (s StructureID) clone() StructureID {
	return StructureID{Agency: strings.Clone(s.Agency), ID: strings.Clone(s.ID), Version: strings.Clone(s.Version)}
}

func cloneOpt(s *string) *string {
	if s == nil {
		return nil
	}
	c := strings.Clone(*s)
	return &c
}

func cloneList(l []string) []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = strings.Clone(s)
	}
	return out
}

func cloneCells(m map[int]string) map[int]string {
	if m == nil {
		return nil
	}
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = strings.Clone(v)
	}
	return out
}

const targetSep = ";"

func splitTargets(cell string) []string {
	if cell == "" {
		return []string{}
	}
	return strings.Split(cell, targetSep)
}

// RowError reports a row that could not be turned into a record. Column is
// the zero-based position of the offending cell, or -1 for the whole row.
// Reading continues with the next row.
type RowError struct {
	Line   int
	Column int
	Issue  gosdmx.Issue
}

func (e *RowError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Issue.Code)
	}
	return fmt.Sprintf("line %d, column %d: %s at %s", e.Line, e.Column, e.Issue.Code, e.Issue.Path)
}

// Unwrap exposes the issue as gosdmx.Issues.
func (e *RowError) Unwrap() error { return gosdmx.Issues{e.Issue} }

func rowIssue(line, col int, path, code, hint string) *RowError {
	var iss gosdmx.Issues
	wire.Report(&iss, path, code, hint)
	return &RowError{Line: line, Column: col, Issue: iss[0]}
}
