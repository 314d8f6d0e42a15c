package common_test

import (
	"context"
	"encoding/json"
	"testing"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/wire"
)

func decodeRel(t *testing.T, in string) (common.AttributeRelationship, error) {
	t.Helper()
	return wire.UnmarshalBytes[common.AttributeRelationship](context.Background(), []byte(in))
}

func TestAttributeRelationship_PriorityOrder(t *testing.T) {
	cases := []struct {
		in   string
		want common.RelationshipKind
	}{
		{`{"dimensions":["FREQ","REF_AREA"]}`, common.AttachedToDimensions},
		{`{"group":"SIBLING"}`, common.AttachedToGroup},
		{`{"observation":{}}`, common.AttachedToObservation},
		{`{"dataflow":{}}`, common.AttachedToDataflow},
		// overlapping shapes resolve by priority
		{`{"group":"G","dataflow":{}}`, common.AttachedToGroup},
		{`{"dimensions":["A"],"group":"G"}`, common.AttachedToDimensions},
		{`{"observation":{},"dataflow":{}}`, common.AttachedToObservation},
		// an ill-typed higher shape falls through
		{`{"dimensions":"A","group":"G"}`, common.AttachedToGroup},
	}
	for _, tc := range cases {
		r, err := decodeRel(t, tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.in, err)
		}
		if r.Kind != tc.want {
			t.Fatalf("%s: kind=%v want %v", tc.in, r.Kind, tc.want)
		}
	}
}

func TestAttributeRelationship_DeterministicAndKeepsLosers(t *testing.T) {
	in := `{"group":"G","dataflow":{}}`
	for i := 0; i < 20; i++ {
		r, err := decodeRel(t, in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if r.Kind != common.AttachedToGroup {
			t.Fatalf("iteration %d picked %v", i, r.Kind)
		}
		if _, ok := r.Extensions["dataflow"]; !ok {
			t.Fatalf("losing shape key must stay an extension: %v", r.Extensions)
		}
		out, err := wire.Marshal(&r)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != `{"group":"G","dataflow":{}}` {
			t.Fatalf("got %s", out)
		}
	}
}

func TestAttributeRelationship_NoMatch(t *testing.T) {
	for _, in := range []string{`{}`, `{"group":1}`, `{"observation":true}`} {
		_, err := decodeRel(t, in)
		iss, ok := gosdmx.AsIssues(err)
		if !ok || !iss.HasCode(gosdmx.CodeUnionNoMatch) {
			t.Fatalf("%s: expected union_no_match, got %v", in, err)
		}
	}
}

func TestAttributeRelationship_OptionalFlagsLength(t *testing.T) {
	_, err := decodeRel(t, `{"dimensions":["A","B"],"areDimensionsOptional":[true]}`)
	iss, ok := gosdmx.AsIssues(err)
	if !ok || iss[0].Path != "/areDimensionsOptional" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestAttributeRelationship_RoundTripConstructors(t *testing.T) {
	for _, r := range []common.AttributeRelationship{
		common.DimensionsRelationship("A"),
		common.GroupRelationship("G"),
		common.ObservationRelationship(),
		common.DataflowRelationship(),
	} {
		b, err := wire.Marshal(&r)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		back, err := decodeRel(t, string(b))
		if err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if back.Kind != r.Kind {
			t.Fatalf("%s: kind %v want %v", b, back.Kind, r.Kind)
		}
	}
}

func TestDataAttributeRelationship_MeasureShapes(t *testing.T) {
	cases := []struct {
		in   string
		want common.RelationshipKind
	}{
		{`{"primaryMeasure":"OBS_VALUE"}`, common.AttachedToPrimaryMeasure},
		{`{"measures":["OBS_VALUE","OBS_CONF"]}`, common.AttachedToMeasures},
		{`{"measures":[]}`, common.AttachedToMeasures},
		// measure shapes come after dataflow
		{`{"dataflow":{},"primaryMeasure":"OBS_VALUE"}`, common.AttachedToDataflow},
		{`{"primaryMeasure":"OBS_VALUE","measures":["M"]}`, common.AttachedToPrimaryMeasure},
		{`{"measures":["M"],"primaryMeasure":1}`, common.AttachedToMeasures},
	}
	for _, tc := range cases {
		r, err := wire.UnmarshalBytes[common.DataAttributeRelationship](context.Background(), []byte(tc.in))
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.in, err)
		}
		if r.Kind != tc.want {
			t.Fatalf("%s: kind=%v want %v", tc.in, r.Kind, tc.want)
		}
		out, _ := wire.Marshal(&r)
		if string(out) != tc.in {
			t.Fatalf("%s: round trip gave %s", tc.in, out)
		}
	}

	r, _ := wire.UnmarshalBytes[common.DataAttributeRelationship](context.Background(), []byte(`{"primaryMeasure":"OBS_VALUE"}`))
	if r.PrimaryMeasure != "OBS_VALUE" {
		t.Fatalf("got %+v", r)
	}
	_, err := wire.UnmarshalBytes[common.DataAttributeRelationship](context.Background(), []byte(`{"measures":"M"}`))
	if iss, ok := gosdmx.AsIssues(err); !ok || !iss.HasCode(gosdmx.CodeUnionNoMatch) {
		t.Fatalf("expected union_no_match, got %v", err)
	}
	// the structure relationship does not take the measure shapes
	if _, err := decodeRel(t, `{"primaryMeasure":"OBS_VALUE"}`); err == nil {
		t.Fatalf("expected union_no_match for the structure relationship")
	}
}

func TestMeasureRelationshipConstructors(t *testing.T) {
	for _, r := range []common.DataAttributeRelationship{
		{AttributeRelationship: common.PrimaryMeasureRelationship("OBS_VALUE")},
		{AttributeRelationship: common.MeasuresRelationship()},
	} {
		b, err := wire.Marshal(&r)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		back, err := wire.UnmarshalBytes[common.DataAttributeRelationship](context.Background(), b)
		if err != nil || back.Kind != r.Kind {
			t.Fatalf("%s: kind %v err %v", b, back.Kind, err)
		}
	}
}

func TestParseOccurs(t *testing.T) {
	o, err := common.ParseOccurs("unbounded")
	if err != nil || !o.IsUnbounded() {
		t.Fatalf("unbounded: %v %v", o, err)
	}
	o, err = common.ParseOccurs("5")
	if err != nil {
		t.Fatalf("5: %v", err)
	}
	if n, ok := o.Bound(); !ok || n != 5 {
		t.Fatalf("expected bound 5, got %v", o)
	}
	if _, err := common.ParseOccurs("-1"); err == nil {
		t.Fatalf("-1 must fail")
	}
	if _, err := common.ParseOccurs("Unbounded"); err == nil {
		t.Fatalf("token is case sensitive")
	}
}

func TestOccursFromTree_Codes(t *testing.T) {
	cases := []struct {
		raw  any
		code string
	}{
		{json.Number("-1"), gosdmx.CodeTooSmall},
		{"-1", gosdmx.CodeTooSmall},
		{"many", gosdmx.CodeInvalidEnum},
		{json.Number("1.5"), gosdmx.CodeInvalidType},
		{true, gosdmx.CodeInvalidType},
	}
	for _, tc := range cases {
		var iss gosdmx.Issues
		if _, ok := common.OccursFromTree(tc.raw, "/maxOccurs", &iss); ok {
			t.Fatalf("%v: expected failure", tc.raw)
		}
		if iss[0].Code != tc.code || iss[0].Path != "/maxOccurs" {
			t.Fatalf("%v: got %+v", tc.raw, iss[0])
		}
	}
}

func TestOccurs_JSON(t *testing.T) {
	b, _ := json.Marshal(common.Unbounded())
	if string(b) != `"unbounded"` {
		t.Fatalf("got %s", b)
	}
	var o common.Occurs
	if err := json.Unmarshal([]byte(`7`), &o); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n, ok := o.Bound(); !ok || n != 7 {
		t.Fatalf("got %v", o)
	}
}

func TestOccurs_KeepsSourceShape(t *testing.T) {
	var iss gosdmx.Issues
	o, ok := common.OccursFromTree("5", "/maxOccurs", &iss)
	if !ok || o.Tree() != "5" {
		t.Fatalf("string bound: got %#v", o.Tree())
	}
	o, ok = common.OccursFromTree(json.Number("5"), "/maxOccurs", &iss)
	if !ok || o.Tree() != json.Number("5") {
		t.Fatalf("number bound: got %#v", o.Tree())
	}
	if common.Bounded(5).Tree() != json.Number("5") {
		t.Fatalf("constructed bound must be a number")
	}

	var u common.Occurs
	if err := json.Unmarshal([]byte(`"5"`), &u); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b, _ := json.Marshal(u); string(b) != `"5"` {
		t.Fatalf("got %s", b)
	}
}

func TestActionFromCode(t *testing.T) {
	want := map[string]common.Action{
		"A": common.ActionAppend,
		"R": common.ActionReplace,
		"D": common.ActionDelete,
		"I": common.ActionInformation,
	}
	for code, a := range want {
		got, ok := common.ActionFromCode(code)
		if !ok || got != a {
			t.Fatalf("%s: got %v", code, got)
		}
		if a.Code() != code {
			t.Fatalf("%v: code %s", a, a.Code())
		}
	}
	if _, ok := common.ActionFromCode("X"); ok {
		t.Fatalf("X must fail")
	}
}

func TestDataTypes(t *testing.T) {
	if n := len(common.DataTypes()); n != 41 {
		t.Fatalf("expected 41 data types, got %d", n)
	}
	if _, ok := common.ParseDataType("URI"); !ok {
		t.Fatalf("URI must be accepted")
	}
	if _, ok := common.ParseDataType("Uri"); ok {
		t.Fatalf("Uri must be rejected")
	}
	if !common.DataTypeReportingQuarter.IsReporting() || common.DataTypeGregorianDay.IsReporting() {
		t.Fatalf("IsReporting mismatch")
	}
	if !common.DataTypeGregorianYear.IsGregorian() || !common.DataTypeTimeRange.IsTimePeriod() {
		t.Fatalf("time classification mismatch")
	}
}

func TestLink_Location(t *testing.T) {
	l, err := wire.UnmarshalBytes[common.Link](context.Background(), []byte(`{"urn":"urn:x","rel":"self","extra":1}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if l.Location.Kind != common.URN || l.Location.Target != "urn:x" {
		t.Fatalf("got %+v", l.Location)
	}
	out, _ := wire.Marshal(&l)
	if string(out) != `{"urn":"urn:x","rel":"self","extra":1}` {
		t.Fatalf("got %s", out)
	}

	_, err = wire.UnmarshalBytes[common.Link](context.Background(), []byte(`{"rel":"self"}`))
	if iss, ok := gosdmx.AsIssues(err); !ok || !iss.HasCode(gosdmx.CodeUnionNoMatch) {
		t.Fatalf("expected union_no_match, got %v", err)
	}
}

func TestLink_HrefAndURN(t *testing.T) {
	in := `{"href":"https://x/y","rel":"structure","urn":"urn:sdmx:org.sdmx.infomodel.datastructure.Dataflow=A:B(1.0)"}`
	l, err := wire.UnmarshalBytes[common.Link](context.Background(), []byte(in))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if l.Location.Kind != common.Href || l.Location.Target != "https://x/y" {
		t.Fatalf("got %+v", l.Location)
	}
	if _, ok := l.Extensions["urn"]; !ok {
		t.Fatalf("urn not kept: %+v", l.Extensions)
	}
	out, _ := wire.Marshal(&l)
	if string(out) != in {
		t.Fatalf("got %s", out)
	}
}

func TestMeta_ReceiversOneOrMany(t *testing.T) {
	single := `{"id":"M","prepared":"2024-01-01T00:00:00Z","sender":{"id":"S"},"receivers":{"id":"R"}}`
	m, err := wire.UnmarshalBytes[common.Meta](context.Background(), []byte(single))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(m.Receivers) != 1 || m.Receivers[0].ID != "R" {
		t.Fatalf("got %+v", m.Receivers)
	}
	if !m.SingleReceiver() {
		t.Fatalf("single receiver shape not recorded")
	}
	out, _ := wire.Marshal(&m)
	if string(out) != single {
		t.Fatalf("got %s", out)
	}

	list := `{"id":"M","prepared":"2024-01-01T00:00:00Z","sender":{"id":"S"},"receivers":[{"id":"R"}]}`
	m, err = wire.UnmarshalBytes[common.Meta](context.Background(), []byte(list))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out, _ = wire.Marshal(&m); string(out) != list {
		t.Fatalf("got %s", out)
	}

	// a list that grew past one entry is written as an array
	m.SetSingleReceiver(true)
	m.Receivers = append(m.Receivers, common.Party{ID: "R2"})
	out, _ = wire.Marshal(&m)
	want := `{"id":"M","prepared":"2024-01-01T00:00:00Z","sender":{"id":"S"},"receivers":[{"id":"R"},{"id":"R2"}]}`
	if string(out) != want {
		t.Fatalf("got %s", out)
	}

	_, err = wire.UnmarshalBytes[common.Meta](context.Background(), []byte(`{"id":"M","sender":{"id":"S"}}`))
	iss, _ := gosdmx.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/prepared" || iss[0].Code != gosdmx.CodeRequired {
		t.Fatalf("unexpected issues: %v", iss)
	}
}
