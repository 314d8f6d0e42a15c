package structure

import "github.com/reoring/gosdmx/wire"

// Dataflow points a flow of data at the data structure describing it.
type Dataflow struct {
	CommonArtefact
	Structure *string
}

func (*Dataflow) Kind() ArtefactKind { return KindDataflows }
func (*Dataflow) sealed() {}

func (d *Dataflow) DecodeFields(f *wire.Fields) {
	d.decodeIdentity(f)
	d.Structure = f.OptString("structure")
	d.Extensions = f.Rest()
}

func (d *Dataflow) EncodeFields(w *wire.Writer) {
	d.encodeIdentity(w)
	w.OptString("structure", d.Structure)
	w.Extensions(d.Extensions)
}

// Categorisation files the source artefact under the target category.
type Categorisation struct {
	CommonArtefact
	Source *string
	Target *string
}

func (*Categorisation) Kind() ArtefactKind { return KindCategorisations }
func (*Categorisation) sealed() {}

func (c *Categorisation) DecodeFields(f *wire.Fields) {
	c.decodeIdentity(f)
	c.Source = f.OptString("source")
	c.Target = f.OptString("target")
	c.Extensions = f.Rest()
}

func (c *Categorisation) EncodeFields(w *wire.Writer) {
	c.encodeIdentity(w)
	w.OptString("source", c.Source)
	w.OptString("target", c.Target)
	w.Extensions(c.Extensions)
}
