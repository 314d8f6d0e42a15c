package wire_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

type child struct {
	ID         string
	Extensions wire.Extensions
}

func (c *child) DecodeFields(f *wire.Fields) {
	c.ID = f.String("id")
	c.Extensions = f.Rest()
}

func (c *child) EncodeFields(w *wire.Writer) {
	w.String("id", c.ID)
	w.Extensions(c.Extensions)
}

type parent struct {
	Name       *string
	Count      *int
	Flags      []bool
	Title      value.LocalizedText
	Child      *child
	Children   []child
	Extensions wire.Extensions
}

func (p *parent) DecodeFields(f *wire.Fields) {
	p.Name = f.OptString("name")
	p.Count = f.OptCount("count")
	p.Flags = f.OptBools("flags")
	p.Title = f.OptText("title")
	p.Child = wire.OptRecord[child](f, "child")
	p.Children = wire.RecordList[child](f, "children")
	p.Extensions = f.Rest()
}

func (p *parent) EncodeFields(w *wire.Writer) {
	w.OptString("name", p.Name)
	w.OptInt("count", p.Count)
	w.OptBools("flags", p.Flags)
	w.OptText("title", p.Title)
	wire.WriteOptRecord(w, "child", p.Child)
	wire.WriteRecordList(w, "children", p.Children)
	w.Extensions(p.Extensions)
}

func TestUnmarshal_ExtensionsPreservedAtEveryLevel(t *testing.T) {
	in := `{"name":"n","x":1,"child":{"id":"c","y":[true,null]},"children":[{"id":"a","z":{"k":"v"}}]}`
	p, err := wire.UnmarshalBytes[parent](context.Background(), []byte(in))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := p.Extensions["x"]; !ok {
		t.Fatalf("top-level extension lost: %v", p.Extensions)
	}
	if _, ok := p.Child.Extensions["y"]; !ok {
		t.Fatalf("nested extension lost: %v", p.Child.Extensions)
	}
	out, err := wire.Marshal(&p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"n","child":{"id":"c","y":[true,null]},"children":[{"id":"a","z":{"k":"v"}}],"x":1}`
	if string(out) != want {
		t.Fatalf("got  %s\nwant %s", out, want)
	}
}

func TestMarshal_OmitsAbsentFields(t *testing.T) {
	out, err := wire.Marshal(&parent{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "{}" {
		t.Fatalf("absent fields must be omitted, got %s", out)
	}
}

func TestUnmarshal_NullIsAbsent(t *testing.T) {
	p, err := wire.UnmarshalBytes[parent](context.Background(), []byte(`{"name":null,"child":null}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Name != nil || p.Child != nil || p.Extensions != nil {
		t.Fatalf("null should be absent: %+v", p)
	}
}

func TestUnmarshal_AbsentVersusEmptyArray(t *testing.T) {
	p, err := wire.UnmarshalBytes[parent](context.Background(), []byte(`{"children":[]}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Children == nil || len(p.Children) != 0 || p.Flags != nil {
		t.Fatalf("want empty children and nil flags, got %#v %#v", p.Children, p.Flags)
	}
	out, _ := wire.Marshal(&p)
	if string(out) != `{"children":[]}` {
		t.Fatalf("got %s", out)
	}
}

func TestUnmarshal_IssuesCarryPaths(t *testing.T) {
	in := `{"name":5,"count":-1,"child":{},"children":[{"id":"ok"},{"id":true}]}`
	_, err := wire.UnmarshalBytes[parent](context.Background(), []byte(in))
	iss, ok := gosdmx.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	got := map[string]string{}
	for _, it := range iss {
		got[it.Path] = it.Code
	}
	want := map[string]string{
		"/name":          gosdmx.CodeInvalidType,
		"/count":         gosdmx.CodeTooSmall,
		"/child/id":      gosdmx.CodeRequired,
		"/children/1/id": gosdmx.CodeInvalidType,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDecode_FailFastKeepsFirstIssue(t *testing.T) {
	raw := map[string]any{"name": true, "flags": "x"}
	_, err := wire.Decode[parent](raw, gosdmx.ParseOpt{FailFast: true})
	iss, _ := gosdmx.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/name" {
		t.Fatalf("expected only the first issue, got %v", iss)
	}
}

func TestUnmarshal_RootMustBeObject(t *testing.T) {
	_, err := wire.UnmarshalBytes[parent](context.Background(), []byte(`[1]`))
	iss, ok := gosdmx.AsIssues(err)
	if !ok || iss[0].Path != "/" || iss[0].Code != gosdmx.CodeInvalidType {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestWriter_NamedFieldWinsOverExtension(t *testing.T) {
	c := child{ID: "a", Extensions: wire.Extensions{"id": "shadow", "b": "x"}}
	out, err := wire.Marshal(&c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Count(string(out), `"id"`) != 1 || string(out) != `{"id":"a","b":"x"}` {
		t.Fatalf("got %s", out)
	}
}

func TestWriter_ExtensionNamedLikeAbsentFieldIsDropped(t *testing.T) {
	p := parent{Extensions: wire.Extensions{"name": "n", "count": 3, "child": map[string]any{"id": "c"}, "other": true}}
	out, err := wire.Marshal(&p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"other":true}` {
		t.Fatalf("got %s", out)
	}
	back, err := wire.UnmarshalBytes[parent](context.Background(), out)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if back.Name != nil || back.Count != nil || back.Child != nil {
		t.Fatalf("extension read back as a named field: %+v", back)
	}
}

type obs struct {
	Value *value.Value
	Rest  []value.Value
}

func (o *obs) DecodeFields(f *wire.Fields) {
	o.Value = f.OptValue("value")
	o.Rest = f.OptValues("rest")
	f.Rest()
}

func (o *obs) EncodeFields(w *wire.Writer) {
	w.OptValue("value", o.Value)
	w.OptValues("rest", o.Rest)
}

func TestUnmarshal_IntegerOverflowIsReported(t *testing.T) {
	_, err := wire.UnmarshalBytes[obs](context.Background(), []byte(`{"value":99999999999999999999,"rest":[1,-99999999999999999999]}`))
	iss, ok := gosdmx.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("unexpected: %v", err)
	}
	if iss[0].Path != "/value" || iss[0].Code != gosdmx.CodeOverflow {
		t.Fatalf("got %+v", iss[0])
	}
	if iss[1].Path != "/rest/1" || iss[1].Code != gosdmx.CodeOverflow {
		t.Fatalf("got %+v", iss[1])
	}
}

func TestJoinPointer_Escapes(t *testing.T) {
	if got := wire.JoinPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("got %q", got)
	}
}
