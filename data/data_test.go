package data_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/data"
	"github.com/reoring/gosdmx/value"
	"github.com/reoring/gosdmx/wire"
)

const sample = `{"meta":{"id":"M1","prepared":"2024-01-01T00:00:00Z","sender":{"id":"ECB"},"x-trace":"abc"},` +
	`"data":{"structures":[{"dimensions":{"series":[{"id":"FREQ","keyPosition":0,"roles":["FREQ"],"values":[{"id":"A","name":"Annual"},{"id":"M"}]}],` +
	`"observation":[{"id":"TIME_PERIOD","values":[{"id":"2020","start":"2020-01-01T00:00:00","end":"2020-12-31T23:59:59"}]}]},` +
	`"measures":{"observation":[{"id":"OBS_VALUE","format":{"dataType":"Double","decimals":2}}]},` +
	`"attributes":{"series":[{"id":"TITLE","relationship":{"dimensions":["FREQ"]},"values":["free text",null,{"en":"Title"}]}],` +
	`"observation":[{"id":"OBS_STATUS","relationship":{"observation":{}},"values":[{"id":"A"}]}]},"dataSets":[0]}],` +
	`"dataSets":[{"structure":0,"action":"Replace","series":{"0":{"attributes":[0],"observations":{"0":[1.25,0]}},"1":{"observations":{"0":["NaN",null]}}}}]},` +
	`"unknownTop":{"nested":[1,"two"]}}`

func TestDataMessage_ParseAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	m, err := data.ParseBytes(ctx, []byte(sample))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	st := m.Data.Structures[0]
	freq := st.Dimensions.Series[0]
	if *freq.KeyPosition != 0 || len(freq.Values) != 2 || freq.Values[0].Kind() != data.EntryObject {
		t.Fatalf("FREQ: %+v", freq)
	}
	title := st.Attributes.Series[0]
	if title.Relationship.Kind != common.AttachedToDimensions {
		t.Fatalf("relationship kind %v", title.Relationship.Kind)
	}
	kinds := []data.EntryKind{data.EntryScalar, data.EntryNull, data.EntryScalar}
	for i, want := range kinds {
		if got := title.Values[i].Kind(); got != want {
			t.Fatalf("TITLE value %d: %v want %v", i, got, want)
		}
	}
	if title.Values[0].ID() != "free text" {
		t.Fatalf("scalar id %q", title.Values[0].ID())
	}
	ds := m.Data.DataSets[0]
	if ds.EffectiveAction() != common.ActionReplace {
		t.Fatalf("action %v", ds.EffectiveAction())
	}
	obs, _ := ds.Series["0"].Observations["0"].AsArray()
	if f, ok := obs[0].AsFloat(); !ok || f != 1.25 {
		t.Fatalf("obs value %v", obs[0])
	}
	if m.Meta.Extensions["x-trace"] != "abc" {
		t.Fatalf("meta extension lost")
	}

	out, err := data.Marshal(&m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"x-trace":"abc"`, `"unknownTop":{"nested":[1,"two"]}`, `"values":["free text",null,{"en":"Title"}]`, `"dataSets":[0]`} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("missing %s in %s", want, out)
		}
	}
	again, err := data.ParseBytes(ctx, out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	out2, _ := data.Marshal(&again)
	if string(out) != string(out2) {
		t.Fatalf("round trip not stable:\n%s\n%s", out, out2)
	}
}

func TestDataMessage_MetaOptional(t *testing.T) {
	m, err := data.ParseBytes(context.Background(), []byte(`{"data":{"dataSets":[{}]}}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.Meta != nil {
		t.Fatalf("meta must stay absent")
	}
	if m.Data.DataSets[0].EffectiveAction() != common.ActionInformation {
		t.Fatalf("absent action must mean Information")
	}
	out, _ := data.Marshal(&m)
	if string(out) != `{"data":{"dataSets":[{}]}}` {
		t.Fatalf("got %s", out)
	}
}

func TestDataMessage_Errors(t *testing.T) {
	cases := []struct {
		in   string
		path string
		code string
	}{
		{`{"data":{"dataSets":[{"action":"Upsert"}]}}`, "/data/dataSets/0/action", gosdmx.CodeInvalidEnum},
		{`{"data":{"structures":[{"attributes":{}}]}}`, "/data/structures/0/dimensions", gosdmx.CodeRequired},
		{`{"data":{"structures":[{"dimensions":{},"attributes":{"series":[{"id":"A","values":[[1]]}]}}]}}`,
			"/data/structures/0/attributes/series/0/values/0", gosdmx.CodeUnionNoMatch},
		{`{"data":{"structures":[{"dimensions":{},"attributes":{"series":[{"id":"A","relationship":{"group":7}}]}}]}}`,
			"/data/structures/0/attributes/series/0/relationship", gosdmx.CodeUnionNoMatch},
		{`{"data":{"structures":[{"dimensions":{"series":[{"id":"F","format":{"maxOccurs":"-1"}}]},"attributes":{}}]}}`,
			"/data/structures/0/dimensions/series/0/format/maxOccurs", gosdmx.CodeTooSmall},
	}
	for _, tc := range cases {
		_, err := data.ParseBytes(context.Background(), []byte(tc.in))
		iss, ok := gosdmx.AsIssues(err)
		if !ok || len(iss) == 0 {
			t.Fatalf("%s: expected issues, got %v", tc.in, err)
		}
		if iss[0].Path != tc.path || iss[0].Code != tc.code {
			t.Fatalf("%s: got %s at %s, want %s at %s", tc.in, iss[0].Code, iss[0].Path, tc.code, tc.path)
		}
	}
}

func TestComponentValueEntry_Priority(t *testing.T) {
	cases := []struct {
		raw  any
		want data.EntryKind
	}{
		{nil, data.EntryNull},
		{map[string]any{"id": "A", "extra": true}, data.EntryObject},
		{map[string]any{"en": "text"}, data.EntryScalar},
		{"x", data.EntryScalar},
		{true, data.EntryScalar},
	}
	for _, tc := range cases {
		var iss gosdmx.Issues
		e, ok := data.ComponentValueEntryFromTree(tc.raw, "/v", &iss)
		if !ok || e.Kind() != tc.want {
			t.Fatalf("%v: kind %v ok=%v want %v (%v)", tc.raw, e.Kind(), ok, tc.want, iss)
		}
	}
	var iss gosdmx.Issues
	if _, ok := data.ComponentValueEntryFromTree(map[string]any{"id": 1}, "/v", &iss); ok {
		t.Fatalf("object with numeric id and non-text members must fail")
	}
}

func TestComponentValueEntry_TextWithIDTag(t *testing.T) {
	var iss gosdmx.Issues
	e, ok := data.ComponentValueEntryFromTree(map[string]any{"id": "Teks", "en": "Text"}, "/v", &iss)
	if !ok || e.Kind() != data.EntryObject || e.Object.ID != "Teks" {
		t.Fatalf("object shape must win: %+v %v", e, iss)
	}
	c := data.Component{ID: "TITLE", Values: []data.ComponentValueEntry{
		data.ScalarEntry(value.Text(value.LocalizedText{"id": "Teks", "en": "Text"})),
	}}
	if _, err := wire.Marshal(&c); !errors.Is(err, data.ErrAmbiguousText) {
		t.Fatalf("expected ErrAmbiguousText, got %v", err)
	}
	c.Values[0] = data.ScalarEntry(value.Text(value.LocalizedText{"en": "Text"}))
	if b, err := wire.Marshal(&c); err != nil || string(b) != `{"id":"TITLE","values":[{"en":"Text"}]}` {
		t.Fatalf("got %s (%v)", b, err)
	}
}

func TestComponentValueEntry_IntegerOverflow(t *testing.T) {
	var iss gosdmx.Issues
	if _, ok := data.ComponentValueEntryFromTree(json.Number("99999999999999999999"), "/v", &iss); ok {
		t.Fatalf("expected failure")
	}
	if len(iss) != 1 || iss[0].Code != gosdmx.CodeOverflow || iss[0].Path != "/v" {
		t.Fatalf("got %v", iss)
	}
}

func TestComponent_ValueLookup(t *testing.T) {
	c := data.Component{ID: "FREQ", Values: []data.ComponentValueEntry{
		data.ObjectEntry(data.ComponentValue{ID: "A"}),
		data.ScalarEntry(value.String("free")),
	}}
	if e, ok := c.Value(0); !ok || e.ID() != "A" {
		t.Fatalf("index 0: %+v", e)
	}
	if _, ok := c.Value(2); ok {
		t.Fatalf("index 2 must be out of range")
	}
	b, err := wire.Marshal(&c)
	if err != nil || string(b) != `{"id":"FREQ","values":[{"id":"A"},"free"]}` {
		t.Fatalf("got %s (%v)", b, err)
	}
}

func TestComponents_All(t *testing.T) {
	c := data.Components{
		DataSet:     []data.Component{{ID: "DS"}},
		Series:      []data.Component{{ID: "S1"}, {ID: "S2"}},
		Observation: []data.Component{{ID: "O"}},
	}
	var ids []string
	for _, comp := range c.All() {
		ids = append(ids, comp.ID)
	}
	if strings.Join(ids, ",") != "DS,S1,S2,O" {
		t.Fatalf("got %v", ids)
	}
}
