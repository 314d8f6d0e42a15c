package gosdmx_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/iotest"

	gosdmx "github.com/reoring/gosdmx"
)

func TestDecodeReader_DuplicateKey_Error(t *testing.T) {
	jsb := []byte(`{"a":1,"a":2}`)
	opt := gosdmx.ParseOpt{Strictness: gosdmx.Strictness{OnDuplicateKey: gosdmx.Error}}
	_, err := gosdmx.DecodeReader(context.Background(), bytes.NewReader(jsb), opt)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	iss, ok := gosdmx.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got: %v", err)
	}
	if len(iss) == 0 || iss[0].Code != gosdmx.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key issue, got: %v", iss)
	}
	if iss[0].Path != "/a" {
		t.Fatalf("expected path=/a, got: %s", iss[0].Path)
	}
}

func TestDecodeBytes_DuplicateKey_NestedPath(t *testing.T) {
	jsb := []byte(`{"data":{"dataSets":[{"action":"A","action":"R"}]}}`)
	opt := gosdmx.ParseOpt{Strictness: gosdmx.Strictness{OnDuplicateKey: gosdmx.Error}}
	_, err := gosdmx.DecodeBytes(context.Background(), jsb, opt)
	iss, ok := gosdmx.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Path != "/data/dataSets/0/action" {
		t.Fatalf("expected path=/data/dataSets/0/action, got: %s", iss[0].Path)
	}
}

func TestDecodeBytes_DuplicateKey_Ignored(t *testing.T) {
	v, err := gosdmx.DecodeBytes(context.Background(), []byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(map[string]any)["a"]; !ok {
		t.Fatalf("expected key a in %v", v)
	}
}

func TestDecodeReader_MaxDepth_Exceeded(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	jsb := []byte(`{"a":{"b":{"c":1}}}`)
	opt := gosdmx.ParseOpt{MaxDepth: 2}
	_, err := gosdmx.DecodeReader(context.Background(), bytes.NewReader(jsb), opt)
	if err == nil {
		t.Fatalf("expected error for max depth exceeded")
	}
	if iss, ok := gosdmx.AsIssues(err); ok {
		if len(iss) == 0 || iss[0].Path != "/a/b" {
			t.Fatalf("expected path=/a/b for max depth, got: %v", iss)
		}
	}
}

func TestDecodeReader_MaxBytes_Exceeded(t *testing.T) {
	data := append([]byte("{}"), bytes.Repeat([]byte("x"), 1024)...)
	opt := gosdmx.ParseOpt{MaxBytes: 2}
	_, err := gosdmx.DecodeReader(context.Background(), bytes.NewReader(data), opt)
	iss, ok := gosdmx.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != gosdmx.CodeTruncated {
		t.Fatalf("expected truncated issue, got: %v", err)
	}
	if iss[0].Path != "/" {
		t.Fatalf("expected truncated path at root, got: %s", iss[0].Path)
	}
}

func TestDecodeReader_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := gosdmx.DecodeReader(context.Background(), iotest.ErrReader(boom))
	if !gosdmx.IsSourceError(err) {
		t.Fatalf("expected *SourceError, got: %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got: %v", err)
	}
	if _, ok := gosdmx.AsIssues(err); ok {
		t.Fatalf("source errors must not carry issues")
	}
}

func TestDecodeBytes_TrailingData(t *testing.T) {
	_, err := gosdmx.DecodeBytes(context.Background(), []byte(`{} {}`))
	if _, ok := gosdmx.AsIssues(err); !ok {
		t.Fatalf("expected Issues for trailing data, got: %v", err)
	}
}

func TestDecodeTree_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gosdmx.DecodeTree(ctx, gosdmx.JSONBytes([]byte(`{}`)))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestYAMLBytes(t *testing.T) {
	v, err := gosdmx.DecodeTree(context.Background(), gosdmx.YAMLBytes([]byte("meta:\n  id: I\n  test: true\nn: 12\n")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := v.(map[string]any)
	meta := root["meta"].(map[string]any)
	if meta["id"] != "I" || meta["test"] != true {
		t.Fatalf("meta: %v", meta)
	}
	if n, ok := root["n"].(interface{ String() string }); !ok || n.String() != "12" {
		t.Fatalf("expected json.Number 12, got %T %v", root["n"], root["n"])
	}

	_, err = gosdmx.DecodeTree(context.Background(), gosdmx.YAMLBytes([]byte("a: [1, 2")))
	iss, ok := gosdmx.AsIssues(err)
	if !ok || iss[0].Code != gosdmx.CodeParseError || iss[0].Hint != "invalid YAML" {
		t.Fatalf("expected parse_error, got: %v", err)
	}
}

func TestJSONToYAML(t *testing.T) {
	out, err := gosdmx.JSONToYAML(context.Background(), []byte(`{"meta":{"id":"I"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "meta:\n  id: I\n" {
		t.Fatalf("got %q", out)
	}
}

func TestSetJSONDriver(t *testing.T) {
	t.Cleanup(gosdmx.UseDefaultJSONDriver)
	gosdmx.SetJSONDriver(gosdmx.EncodingJSONDriver())
	if gosdmx.JSONDriverName() != "encoding/json" {
		t.Fatalf("driver = %s", gosdmx.JSONDriverName())
	}
	opt := gosdmx.ParseOpt{Strictness: gosdmx.Strictness{OnDuplicateKey: gosdmx.Error}}
	_, err := gosdmx.DecodeBytes(context.Background(), []byte(`{"a":1,"a":2}`), opt)
	iss, ok := gosdmx.AsIssues(err)
	if !ok || iss[0].Code != gosdmx.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key with encoding/json driver, got: %v", err)
	}

	gosdmx.SetJSONDriver(nil)
	if gosdmx.JSONDriverName() != "encoding/json" {
		t.Fatalf("nil driver must be ignored")
	}
}
