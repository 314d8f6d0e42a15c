package sdmxcsv

import (
	gosdmx "github.com/reoring/gosdmx"
)

const absent = -1

// layout records where the fixed columns of a table sit. Which fixed
// columns exist follows from the options; the header row is only checked
// against that expectation. ACTION is optional in every table and found by
// name. Name columns a labels=id table still carries are skipped.
type layout struct {
	structure, structureID, structureName int
	action                                int
	seriesKey, obsKey                     int
	setID, setName                        int
	targetTypes, targetIDs, targetNames   int
	// first is the position of the first non-fixed column.
	first int
}

type layoutBuilder struct {
	h   *Headers
	pos int
	l   *layout
	err *RowError
}

func newLayout() *layout {
	return &layout{
		structureName: absent, action: absent, seriesKey: absent, obsKey: absent,
		setID: absent, setName: absent, targetTypes: absent, targetIDs: absent, targetNames: absent,
	}
}

// expect requires the next column to be id.
func (b *layoutBuilder) expect(id string) int {
	if b.err != nil {
		return absent
	}
	if got := b.h.ID(b.pos); got != id {
		hint := "expected column " + id
		if got != "" {
			hint += ", found " + got
		}
		b.err = rowIssue(1, b.pos, "/"+id, gosdmx.CodeRequired, hint)
		return absent
	}
	b.pos++
	return b.pos - 1
}

// optional takes the next column when it is id.
func (b *layoutBuilder) optional(id string) int {
	if b.err != nil || b.h.ID(b.pos) != id {
		return absent
	}
	b.pos++
	return b.pos - 1
}

// named expects a name column when labels asks for one and skips a stray one
// otherwise.
func (b *layoutBuilder) named(id string, labels Labels) int {
	if labels.withNames() {
		return b.expect(id)
	}
	b.optional(id)
	return absent
}

func (b *layoutBuilder) done() (*layout, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.l.first = b.pos
	return b.l, nil
}

func dataLayout(h *Headers, o DataOptions) (*layout, error) {
	b := &layoutBuilder{h: h, l: newLayout()}
	b.l.structure = b.expect(ColStructure)
	b.l.structureID = b.expect(ColStructureID)
	b.l.structureName = b.named(ColStructureName, o.Labels)
	b.l.action = b.optional(ColAction)
	if o.Keys.series() {
		b.l.seriesKey = b.expect(ColSeriesKey)
	}
	if o.Keys.obs() {
		b.l.obsKey = b.expect(ColObsKey)
	}
	return b.done()
}

func metadataLayout(h *Headers, o MetadataOptions) (*layout, error) {
	b := &layoutBuilder{h: h, l: newLayout()}
	b.l.structure = b.expect(ColStructure)
	b.l.structureID = b.expect(ColStructureID)
	b.l.structureName = b.named(ColStructureName, o.Labels)
	b.l.setID = b.expect(ColMetadataSetID)
	b.l.setName = b.named(ColMetadataSetName, o.Labels)
	b.l.action = b.optional(ColAction)
	b.l.targetTypes = b.expect(ColTargetTypes)
	b.l.targetIDs = b.expect(ColTargetIDs)
	b.l.targetNames = b.named(ColTargetNames, o.Labels)
	return b.done()
}

// split buckets the non-fixed cells of row. A column is a component when
// its id is in components, or always when components is nil.
func (l *layout) split(h *Headers, row []string, components map[string]struct{}) (comp, other map[int]string) {
	comp, other = map[int]string{}, map[int]string{}
	for i := l.first; i < len(row); i++ {
		if components == nil {
			comp[i] = row[i]
			continue
		}
		if _, ok := components[h.ID(i)]; ok {
			comp[i] = row[i]
		} else {
			other[i] = row[i]
		}
	}
	return comp, other
}

func cell(row []string, i int) *string {
	if i == absent {
		return nil
	}
	return &row[i]
}
