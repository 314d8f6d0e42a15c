// Package common holds the records shared by every SDMX-JSON message: links,
// annotations, parties, the message header, status messages and the
// enumerations and unions used across data, metadata and structure payloads.
package common

import (
	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

// LocationKind tells which key carries a link target.
type LocationKind int

const (
	Href LocationKind = iota
	URN
)

func (k LocationKind) String() string {
	if k == URN {
		return "urn"
	}
	return "href"
}

// Location is the target of a link: a hyperlink reference or a URN.
type Location struct {
	Kind   LocationKind
	Target string
}

// HrefLocation returns an href target.
func HrefLocation(s string) Location { return Location{Kind: Href, Target: s} }

// URNLocation returns a urn target.
func URNLocation(s string) Location { return Location{Kind: URN, Target: s} }

// decodeLocation reads the flattened href/urn pair. When both are present
// href wins and urn is left for the record's extensions.
func decodeLocation(f *wire.Fields) Location {
	switch {
	case f.Has("href"):
		return HrefLocation(f.String("href"))
	case f.Has("urn"):
		return URNLocation(f.String("urn"))
	}
	wire.Report(f.Issues(), f.Path(), gosdmx.CodeUnionNoMatch, "expected href or urn")
	return Location{}
}

func (l Location) encode(w *wire.Writer) {
	w.String(l.Kind.String(), l.Target)
}

// Link points to an external resource.
type Link struct {
	Location   Location
	Rel        string
	URL        *string
	URI        *string
	Title      *string
	Titles     value.LocalizedText
	Type       *string
	HrefLang   *string
	Extensions wire.Extensions
}

func (l *Link) DecodeFields(f *wire.Fields) {
	l.Location = decodeLocation(f)
	l.Rel = f.String("rel")
	l.URL = f.OptString("url")
	l.URI = f.OptString("uri")
	l.Title = f.OptString("title")
	l.Titles = f.OptText("titles")
	l.Type = f.OptString("type")
	l.HrefLang = f.OptString("hreflang")
	l.Extensions = f.Rest()
}

func (l *Link) EncodeFields(w *wire.Writer) {
	l.Location.encode(w)
	w.String("rel", l.Rel)
	w.OptString("url", l.URL)
	w.OptString("uri", l.URI)
	w.OptString("title", l.Title)
	w.OptText("titles", l.Titles)
	w.OptString("type", l.Type)
	w.OptString("hreflang", l.HrefLang)
	w.Extensions(l.Extensions)
}

// Annotation attaches free-form information to another record.
type Annotation struct {
	ID         *string
	Title      *string
	Type       *string
	Value      *string
	Text       *string
	Texts      value.LocalizedText
	Links      []Link
	Extensions wire.Extensions
}

func (a *Annotation) DecodeFields(f *wire.Fields) {
	a.ID = f.OptString("id")
	a.Title = f.OptString("title")
	a.Type = f.OptString("type")
	a.Value = f.OptString("value")
	a.Text = f.OptString("text")
	a.Texts = f.OptText("texts")
	a.Links = wire.RecordList[Link](f, "links")
	a.Extensions = f.Rest()
}

func (a *Annotation) EncodeFields(w *wire.Writer) {
	w.OptString("id", a.ID)
	w.OptString("title", a.Title)
	w.OptString("type", a.Type)
	w.OptString("value", a.Value)
	w.OptString("text", a.Text)
	w.OptText("texts", a.Texts)
	wire.WriteRecordList(w, "links", a.Links)
	w.Extensions(a.Extensions)
}
