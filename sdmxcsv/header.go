package sdmxcsv

import "strings"

// Fixed column names.
const (
	ColStructure       = "STRUCTURE"
	ColStructureID     = "STRUCTURE_ID"
	ColStructureName   = "STRUCTURE_NAME"
	ColAction          = "ACTION"
	ColSeriesKey       = "SERIES_KEY"
	ColObsKey          = "OBS_KEY"
	ColMetadataSetID   = "METADATASET_ID"
	ColMetadataSetName = "METADATASET_NAME"
	ColTargetTypes     = "TARGET_TYPES"
	ColTargetIDs       = "TARGET_IDS"
	ColTargetNames     = "TARGET_NAMES"
	ColTimePeriod      = "TIME_PERIOD"
)

// Column is one interned header cell. A cell written as "FREQ: Frequency"
// has ID FREQ and Label Frequency.
type Column struct {
	ID    string
	Label string
}

func (c Column) String() string {
	if c.Label == "" {
		return c.ID
	}
	return c.ID + ": " + c.Label
}

// Headers maps column positions to columns. It is built once per table and
// never changes afterwards, so records from one table can share it.
type Headers struct {
	cols  []Column
	index map[string]int
}

// NewHeaders interns a header row.
func NewHeaders(row []string) *Headers {
	cols := make([]Column, len(row))
	for i, cell := range row {
		id, label, _ := strings.Cut(strings.TrimSpace(cell), ": ")
		cols[i] = Column{ID: strings.TrimSpace(id), Label: strings.TrimSpace(label)}
	}
	return HeadersOf(cols...)
}

// HeadersOf interns columns given in position order.
func HeadersOf(cols ...Column) *Headers {
	h := &Headers{cols: append([]Column(nil), cols...), index: make(map[string]int, len(cols))}
	for i, c := range h.cols {
		if _, dup := h.index[c.ID]; !dup {
			h.index[c.ID] = i
		}
	}
	return h
}

// Len returns the number of columns.
func (h *Headers) Len() int { return len(h.cols) }

// Column returns the column at position i.
func (h *Headers) Column(i int) (Column, bool) {
	if i < 0 || i >= len(h.cols) {
		return Column{}, false
	}
	return h.cols[i], true
}

// ID returns the id of the column at position i, or "" when out of range.
func (h *Headers) ID(i int) string {
	c, _ := h.Column(i)
	return c.ID
}

// Index returns the position of the first column with the given id.
func (h *Headers) Index(id string) (int, bool) {
	i, ok := h.index[id]
	return i, ok
}

// Row returns the header row as written.
func (h *Headers) Row() []string {
	out := make([]string, len(h.cols))
	for i, c := range h.cols {
		out[i] = c.String()
	}
	return out
}
