package sdmxcsv

import (
	"encoding/csv"
	"io"
	"strings"

	gosdmx "github.com/reoring/gosdmx"
)

// table is the csv writer shared by both table types. The header row is
// written before the first record.
type table struct {
	csv     *csv.Writer
	headers *Headers
	layout  *layout
	started bool
}

func newTable(w io.Writer, h *Headers, l *layout, cfg config) *table {
	cw := csv.NewWriter(w)
	cw.Comma = cfg.comma
	return &table{csv: cw, headers: h, layout: l}
}

func (t *table) header() error {
	if t.started {
		return nil
	}
	t.started = true
	if err := t.csv.Write(t.headers.Row()); err != nil {
		return &gosdmx.SourceError{Op: "write csv", Err: err}
	}
	return nil
}

func (t *table) write(row []string) error {
	if err := t.header(); err != nil {
		return err
	}
	if err := t.csv.Write(row); err != nil {
		return &gosdmx.SourceError{Op: "write csv", Err: err}
	}
	return nil
}

// Flush writes buffered rows to the underlying writer. A table with no
// records still gets its header row.
func (t *table) Flush() error {
	if err := t.header(); err != nil {
		return err
	}
	t.csv.Flush()
	if err := t.csv.Error(); err != nil {
		return &gosdmx.SourceError{Op: "write csv", Err: err}
	}
	return nil
}

func (t *table) row(structure StructureKind, id StructureID, name *string, action string) []string {
	l := t.layout
	row := make([]string, t.headers.Len())
	row[l.structure] = structure.String()
	row[l.structureID] = id.String()
	put(row, l.structureName, name)
	if l.action != absent {
		row[l.action] = action
	}
	return row
}

func put(row []string, i int, v *string) {
	if i != absent && v != nil {
		row[i] = *v
	}
}

func putCells(row []string, cells map[int]string) {
	for i, v := range cells {
		if i >= 0 && i < len(row) {
			row[i] = v
		}
	}
}

// DataWriter writes a data table with a fixed header.
type DataWriter struct {
	*table
}

// NewDataWriter checks h against opts and returns a writer for it.
func NewDataWriter(w io.Writer, h *Headers, opts DataOptions, options ...Option) (*DataWriter, error) {
	l, err := dataLayout(h, opts)
	if err != nil {
		return nil, err
	}
	return &DataWriter{table: newTable(w, h, l, newConfig(options))}, nil
}

// Write appends one record. The action is written as its one-letter code.
func (d *DataWriter) Write(rec DataRecord) error {
	if rec.Structure.IsMetadata() {
		return rowIssue(rec.Line, d.layout.structure, "/"+ColStructure, gosdmx.CodeInvalidEnum, "expected one of "+dataStructureTokens)
	}
	row := d.row(rec.Structure, rec.StructureID, rec.StructureName, rec.Action.Code())
	put(row, d.layout.seriesKey, rec.SeriesKey)
	put(row, d.layout.obsKey, rec.ObsKey)
	putCells(row, rec.Components)
	putCells(row, rec.Others)
	return d.write(row)
}

// MetadataWriter writes a metadata table with a fixed header.
type MetadataWriter struct {
	*table
}

// NewMetadataWriter checks h against opts and returns a writer for it.
func NewMetadataWriter(w io.Writer, h *Headers, opts MetadataOptions, options ...Option) (*MetadataWriter, error) {
	l, err := metadataLayout(h, opts)
	if err != nil {
		return nil, err
	}
	return &MetadataWriter{table: newTable(w, h, l, newConfig(options))}, nil
}

// Write appends one record.
func (m *MetadataWriter) Write(rec MetadataRecord) error {
	if !rec.Structure.IsMetadata() {
		return rowIssue(rec.Line, m.layout.structure, "/"+ColStructure, gosdmx.CodeInvalidEnum, "expected one of "+metadataStructureTokens)
	}
	l := m.layout
	row := m.row(rec.Structure, rec.StructureID, rec.StructureName, rec.Action.Code())
	row[l.setID] = rec.MetadataSetID
	put(row, l.setName, rec.MetadataSetName)
	row[l.targetTypes] = strings.Join(rec.TargetTypes, targetSep)
	row[l.targetIDs] = strings.Join(rec.TargetIDs, targetSep)
	if l.targetNames != absent {
		row[l.targetNames] = strings.Join(rec.TargetNames, targetSep)
	}
	putCells(row, rec.Components)
	putCells(row, rec.Others)
	return m.write(row)
}
