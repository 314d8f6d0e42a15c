// Package sdmxcsv reads and writes SDMX-CSV data and metadata tables.
//
// The columns a table carries depend on options that usually travel out of
// band (an HTTP Accept header, a command-line flag), so every reader and
// writer takes them explicitly. A malformed row yields a *RowError and the
// reader moves on to the next row.
package sdmxcsv

import (
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"strings"

	"go.uber.org/zap"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/timeperiod"
)

// Option configures a reader or writer.
type Option func(*config)

type config struct {
	logger     *zap.Logger
	components map[string]struct{}
	comma      rune
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop(), comma: ','}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithLogger sets the logger used for rejected rows.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithComponents names the columns that are structural components
// (dimensions, measures, attributes, or metadata attributes). Other
// non-fixed columns go to Others. Without this option every non-fixed
// column is a component.
func WithComponents(ids ...string) Option {
	return func(c *config) {
		c.components = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			c.components[id] = struct{}{}
		}
	}
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(c *config) { c.comma = r }
}

// rows wraps the csv reader shared by both table types.
type rows struct {
	csv     *csv.Reader
	headers *Headers
	cfg     config
}

func openRows(r io.Reader, cfg config) (*rows, error) {
	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, rowIssue(1, absent, "/", gosdmx.CodeRequired, "missing header row")
		}
		return nil, readError(err)
	}
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	return &rows{csv: cr, headers: NewHeaders(head), cfg: cfg}, nil
}

// next returns the next row with its line number. Syntax errors come back
// as *RowError, read failures as *gosdmx.SourceError.
func (r *rows) next() ([]string, int, error) {
	row, err := r.csv.Read()
	if err != nil {
		return nil, 0, readError(err)
	}
	line, _ := r.csv.FieldPos(0)
	if len(row) != r.headers.Len() {
		return nil, line, rowIssue(line, absent, "/", gosdmx.CodeInvalidFormat, "row width differs from header")
	}
	return row, line, nil
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return rowIssue(pe.StartLine, absent, "/", gosdmx.CodeParseError, pe.Error())
	}
	return &gosdmx.SourceError{Op: "read csv", Err: err}
}

func (r *rows) reject(err error) {
	var re *RowError
	if errors.As(err, &re) {
		r.cfg.logger.Debug("sdmx-csv row rejected",
			zap.Int("line", re.Line),
			zap.Int("column", re.Column),
			zap.String("code", re.Issue.Code),
			zap.String("path", re.Issue.Path),
		)
	}
}

// identity decodes the structure columns both table types share.
func (r *rows) identity(l *layout, row []string, line int, metadata bool) (StructureKind, StructureID, error) {
	kind, ok := ParseStructureKind(row[l.structure])
	accepted := dataStructureTokens
	if metadata {
		accepted = metadataStructureTokens
	}
	if !ok || kind.IsMetadata() != metadata {
		iss := rowIssue(line, l.structure, "/"+ColStructure, gosdmx.CodeInvalidEnum, "expected one of "+accepted)
		iss.Issue.Params = map[string]any{"got": row[l.structure]}
		return 0, StructureID{}, iss
	}
	id, err := ParseStructureID(row[l.structureID])
	if err != nil {
		var iss gosdmx.Issues
		errors.As(err, &iss)
		return 0, StructureID{}, &RowError{Line: line, Column: l.structureID, Issue: iss[0]}
	}
	return kind, id, nil
}

func (r *rows) action(l *layout, row []string, line int) (common.Action, error) {
	if l.action == absent {
		return common.ActionInformation, nil
	}
	a, ok := ParseAction(row[l.action])
	if !ok {
		iss := rowIssue(line, l.action, "/"+ColAction, gosdmx.CodeInvalidEnum, "expected one of "+ActionTokens)
		iss.Issue.Params = map[string]any{"got": row[l.action]}
		return "", iss
	}
	return a, nil
}

// DataReader reads a data table.
type DataReader struct {
	rows   *rows
	opts   DataOptions
	layout *layout
	period int
}

// NewDataReader reads and checks the header row of r.
func NewDataReader(r io.Reader, opts DataOptions, options ...Option) (*DataReader, error) {
	rs, err := openRows(r, newConfig(options))
	if err != nil {
		return nil, err
	}
	l, err := dataLayout(rs.headers, opts)
	if err != nil {
		return nil, err
	}
	period, ok := rs.headers.Index(ColTimePeriod)
	if !ok || period < l.first {
		period = absent
	}
	return &DataReader{rows: rs, opts: opts, layout: l, period: period}, nil
}

// Headers returns the interned header of the table.
func (d *DataReader) Headers() *Headers { return d.rows.headers }

// Options returns the options the table is read with.
func (d *DataReader) Options() DataOptions { return d.opts }

// Read returns the next record, io.EOF after the last row, a *RowError for
// a malformed row, or a *gosdmx.SourceError when reading fails.
func (d *DataReader) Read() (DataRecord, error) {
	row, line, err := d.rows.next()
	if err != nil {
		d.rows.reject(err)
		return DataRecord{}, err
	}
	rec, err := d.record(row, line)
	if err != nil {
		d.rows.reject(err)
		return DataRecord{}, err
	}
	return rec, nil
}

func (d *DataReader) record(row []string, line int) (DataRecord, error) {
	l := d.layout
	kind, id, err := d.rows.identity(l, row, line, false)
	if err != nil {
		return DataRecord{}, err
	}
	action, err := d.rows.action(l, row, line)
	if err != nil {
		return DataRecord{}, err
	}
	rec := DataRecord{
		Line:          line,
		Structure:     kind,
		StructureID:   id,
		StructureName: cell(row, l.structureName),
		Action:        action,
		SeriesKey:     cell(row, l.seriesKey),
		ObsKey:        cell(row, l.obsKey),
	}
	rec.Components, rec.Others = l.split(d.rows.headers, row, d.rows.cfg.components)
	if d.opts.TimeFormat == TimeNormalized && d.period != absent && row[d.period] != "" {
		norm, err := timeperiod.Normalize(row[d.period])
		if err != nil {
			return DataRecord{}, rowIssue(line, d.period, "/"+ColTimePeriod, gosdmx.CodeInvalidFormat, "expected an SDMX time period")
		}
		if _, ok := rec.Components[d.period]; ok {
			rec.Components[d.period] = norm
		} else {
			rec.Others[d.period] = norm
		}
	}
	return rec, nil
}

// Records iterates over the remaining rows. Row errors are yielded and
// iteration continues; a source error is yielded last.
func (d *DataReader) Records() iter.Seq2[DataRecord, error] {
	return func(yield func(DataRecord, error) bool) {
		for {
			rec, err := d.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || gosdmx.IsSourceError(err) {
				return
			}
		}
	}
}

// MetadataReader reads a metadata table.
type MetadataReader struct {
	rows   *rows
	opts   MetadataOptions
	layout *layout
}

// NewMetadataReader reads and checks the header row of r.
func NewMetadataReader(r io.Reader, opts MetadataOptions, options ...Option) (*MetadataReader, error) {
	rs, err := openRows(r, newConfig(options))
	if err != nil {
		return nil, err
	}
	l, err := metadataLayout(rs.headers, opts)
	if err != nil {
		return nil, err
	}
	return &MetadataReader{rows: rs, opts: opts, layout: l}, nil
}

// Headers returns the interned header of the table.
func (m *MetadataReader) Headers() *Headers { return m.rows.headers }

// Options returns the options the table is read with.
func (m *MetadataReader) Options() MetadataOptions { return m.opts }

// Read returns the next record; errors are as for DataReader.Read.
func (m *MetadataReader) Read() (MetadataRecord, error) {
	row, line, err := m.rows.next()
	if err != nil {
		m.rows.reject(err)
		return MetadataRecord{}, err
	}
	rec, err := m.record(row, line)
	if err != nil {
		m.rows.reject(err)
		return MetadataRecord{}, err
	}
	return rec, nil
}

func (m *MetadataReader) record(row []string, line int) (MetadataRecord, error) {
	l := m.layout
	kind, id, err := m.rows.identity(l, row, line, true)
	if err != nil {
		return MetadataRecord{}, err
	}
	action, err := m.rows.action(l, row, line)
	if err != nil {
		return MetadataRecord{}, err
	}
	if row[l.setID] == "" {
		return MetadataRecord{}, rowIssue(line, l.setID, "/"+ColMetadataSetID, gosdmx.CodeRequired, "")
	}
	rec := MetadataRecord{
		Line:            line,
		Structure:       kind,
		StructureID:     id,
		StructureName:   cell(row, l.structureName),
		MetadataSetID:   row[l.setID],
		MetadataSetName: cell(row, l.setName),
		Action:          action,
		TargetTypes:     splitTargets(row[l.targetTypes]),
		TargetIDs:       splitTargets(row[l.targetIDs]),
	}
	if l.targetNames != absent {
		rec.TargetNames = splitTargets(row[l.targetNames])
	}
	if len(rec.TargetTypes) != len(rec.TargetIDs) {
		return MetadataRecord{}, rowIssue(line, l.targetIDs, "/"+ColTargetIDs, gosdmx.CodeInvalidFormat, "one target id per target type")
	}
	rec.Components, rec.Others = l.split(m.rows.headers, row, m.rows.cfg.components)
	return rec, nil
}

// Records iterates over the remaining rows; see DataReader.Records.
func (m *MetadataReader) Records() iter.Seq2[MetadataRecord, error] {
	return func(yield func(MetadataRecord, error) bool) {
		for {
			rec, err := m.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || gosdmx.IsSourceError(err) {
				return
			}
		}
	}
}
