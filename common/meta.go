package common

import (
	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

// Contact describes how to reach an individual.
type Contact struct {
	ID          string
	Name        *string
	Names       value.LocalizedText
	Department  *string
	Departments value.LocalizedText
	Role        *string
	Roles       value.LocalizedText
	Telephones  []string
	Faxes       []string
	URIs        []string
	Emails      []string
	X400s       []string
	Extensions  wire.Extensions
}

func (c *Contact) DecodeFields(f *wire.Fields) {
	c.ID = f.String("id")
	c.Name = f.OptString("name")
	c.Names = f.OptText("names")
	c.Department = f.OptString("department")
	c.Departments = f.OptText("departments")
	c.Role = f.OptString("role")
	c.Roles = f.OptText("roles")
	c.Telephones = f.OptStrings("telephones")
	c.Faxes = f.OptStrings("faxes")
	c.URIs = f.OptStrings("uris")
	c.Emails = f.OptStrings("emails")
	c.X400s = f.OptStrings("x400s")
	c.Extensions = f.Rest()
}

func (c *Contact) EncodeFields(w *wire.Writer) {
	w.String("id", c.ID)
	w.OptString("name", c.Name)
	w.OptText("names", c.Names)
	w.OptString("department", c.Department)
	w.OptText("departments", c.Departments)
	w.OptString("role", c.Role)
	w.OptText("roles", c.Roles)
	w.OptStrings("telephones", c.Telephones)
	w.OptStrings("faxes", c.Faxes)
	w.OptStrings("uris", c.URIs)
	w.OptStrings("emails", c.Emails)
	w.OptStrings("x400s", c.X400s)
	w.Extensions(c.Extensions)
}

// Party sends or receives a message.
type Party struct {
	ID         string
	Name       *string
	Names      value.LocalizedText
	Contacts   []Contact
	Extensions wire.Extensions
}

func (p *Party) DecodeFields(f *wire.Fields) {
	p.ID = f.String("id")
	p.Name = f.OptString("name")
	p.Names = f.OptText("names")
	p.Contacts = wire.RecordList[Contact](f, "contacts")
	p.Extensions = f.Rest()
}

func (p *Party) EncodeFields(w *wire.Writer) {
	w.String("id", p.ID)
	w.OptString("name", p.Name)
	w.OptText("names", p.Names)
	wire.WriteRecordList(w, "contacts", p.Contacts)
	w.Extensions(p.Extensions)
}

// Meta is the message header.
//
// Receivers accepts either an array of parties or a single party object on
// input. A single party is held as a one-element list and is written back as
// an object while the list still has exactly one entry.
type Meta struct {
	Schema           *string
	ID               string
	Test             *bool
	Prepared         string
	ContentLanguages []string
	Name             *string
	Names            value.LocalizedText
	Sender           Party
	Receivers        []Party
	Links            []Link
	Extensions       wire.Extensions

	receiversSingle bool
}

func (m *Meta) DecodeFields(f *wire.Fields) {
	m.Schema = f.OptString("schema")
	m.ID = f.String("id")
	m.Test = f.OptBool("test")
	m.Prepared = f.String("prepared")
	m.ContentLanguages = f.OptStrings("contentLanguages")
	m.Name = f.OptString("name")
	m.Names = f.OptText("names")
	m.Sender = wire.ReqRecord[Party](f, "sender")
	m.Receivers, m.receiversSingle = decodeReceivers(f)
	m.Links = wire.RecordList[Link](f, "links")
	m.Extensions = f.Rest()
}

func decodeReceivers(f *wire.Fields) ([]Party, bool) {
	raw, ok := f.Raw("receivers")
	if !ok {
		return nil, false
	}
	path := f.At("receivers")
	switch t := raw.(type) {
	case map[string]any:
		p, _ := wire.DecodeObject[Party](t, path, f.Issues())
		return []Party{p}, true
	case []any:
		out := make([]Party, 0, len(t))
		for i, e := range t {
			p, _ := wire.DecodeObject[Party](e, wire.JoinIndex(path, i), f.Issues())
			out = append(out, p)
		}
		return out, false
	}
	wire.Report(f.Issues(), path, gosdmx.CodeInvalidType, "expected party or array of parties")
	return nil, false
}

// SingleReceiver reports whether receivers was read as a single object.
func (m *Meta) SingleReceiver() bool { return m.receiversSingle }

// SetSingleReceiver chooses the object shape for a one-element Receivers.
func (m *Meta) SetSingleReceiver(single bool) { m.receiversSingle = single }

func (m *Meta) EncodeFields(w *wire.Writer) {
	w.OptString("schema", m.Schema)
	w.String("id", m.ID)
	w.OptBool("test", m.Test)
	w.String("prepared", m.Prepared)
	w.OptStrings("contentLanguages", m.ContentLanguages)
	w.OptString("name", m.Name)
	w.OptText("names", m.Names)
	wire.WriteRecord(w, "sender", &m.Sender)
	if m.receiversSingle && len(m.Receivers) == 1 {
		w.Declare("receivers")
		wire.WriteRecord(w, "receivers", &m.Receivers[0])
	} else {
		wire.WriteRecordList(w, "receivers", m.Receivers)
	}
	wire.WriteRecordList(w, "links", m.Links)
	w.Extensions(m.Extensions)
}

// StatusMessage reports an error status alongside, or instead of, a payload.
type StatusMessage struct {
	Code       int
	Title      *string
	Titles     value.LocalizedText
	Detail     *string
	Details    value.LocalizedText
	Links      []Link
	Extensions wire.Extensions
}

func (s *StatusMessage) DecodeFields(f *wire.Fields) {
	s.Code = f.Count("code")
	s.Title = f.OptString("title")
	s.Titles = f.OptText("titles")
	s.Detail = f.OptString("detail")
	s.Details = f.OptText("details")
	s.Links = wire.RecordList[Link](f, "links")
	s.Extensions = f.Rest()
}

func (s *StatusMessage) EncodeFields(w *wire.Writer) {
	w.Int("code", s.Code)
	w.OptString("title", s.Title)
	w.OptText("titles", s.Titles)
	w.OptString("detail", s.Detail)
	w.OptText("details", s.Details)
	wire.WriteRecordList(w, "links", s.Links)
	w.Extensions(s.Extensions)
}

// SentinelValue is a reserved value of a data domain with a special meaning.
type SentinelValue struct {
	Value        *value.NumberOrString
	Name         *string
	Names        value.LocalizedText
	Description  *string
	Descriptions value.LocalizedText
	Extensions   wire.Extensions
}

func (s *SentinelValue) DecodeFields(f *wire.Fields) {
	s.Value = f.OptNumberOrString("value")
	s.Name = f.OptString("name")
	s.Names = f.OptText("names")
	s.Description = f.OptString("description")
	s.Descriptions = f.OptText("descriptions")
	s.Extensions = f.Rest()
}

func (s *SentinelValue) EncodeFields(w *wire.Writer) {
	w.OptNumberOrString("value", s.Value)
	w.OptString("name", s.Name)
	w.OptText("names", s.Names)
	w.OptString("description", s.Description)
	w.OptText("descriptions", s.Descriptions)
	w.Extensions(s.Extensions)
}
