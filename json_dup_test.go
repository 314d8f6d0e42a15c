package gosdmx

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestDetectJSONDuplicateKeysBytes_NoDup(t *testing.T) {
	js := []byte(`{"meta":{"id":"I"},"data":{}}`)
	iss, err := DetectJSONDuplicateKeysBytes(js, Strictness{OnDuplicateKey: Warn}, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 0 {
		t.Fatalf("expected 0 issues, got %d: %v", len(iss), iss)
	}
}

func TestDetectJSONDuplicateKeysBytes_WithDup(t *testing.T) {
	js := []byte(`{"meta":{"id":"I","id":"J"}}`)
	iss, err := DetectJSONDuplicateKeysBytes(js, Strictness{OnDuplicateKey: Warn}, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) == 0 {
		t.Fatalf("expected duplicate_key issue")
	}
	if iss[0].Code != CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %s", iss[0].Code)
	}
}

func TestParseSeverity(t *testing.T) {
	for in, want := range map[string]Severity{"": Ignore, "ignore": Ignore, "warn": Warn, "error": Error} {
		got, ok := ParseSeverity(in)
		if !ok || got != want {
			t.Fatalf("ParseSeverity(%q) = %v, %v", in, got, ok)
		}
		if in != "" && got.String() != in {
			t.Fatalf("String() = %q, want %q", got.String(), in)
		}
	}
	if _, ok := ParseSeverity("fatal"); ok {
		t.Fatalf("fatal should not parse")
	}
}

func TestDetectJSONDuplicateKeysReader(t *testing.T) {
	iss, err := DetectJSONDuplicateKeysReader(strings.NewReader(`[{"a":1},{"a":1,"b":2,"a":3}]`), Strictness{OnDuplicateKey: Warn}, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Path != "/1/a" {
		t.Fatalf("expected one duplicate at /1/a, got %v", iss)
	}

	boom := errors.New("boom")
	_, err = DetectJSONDuplicateKeysReader(iotest.ErrReader(boom), Strictness{OnDuplicateKey: Warn}, -1)
	if !IsSourceError(err) || !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestDetectJSONDuplicateKeys_Disabled(t *testing.T) {
	js := []byte(`{"a":1,"a":2}`)
	if iss, _ := DetectJSONDuplicateKeysBytes(js, Strictness{OnDuplicateKey: Ignore}, -1); len(iss) != 0 {
		t.Fatalf("ignore should report nothing, got %v", iss)
	}
	if iss, _ := DetectJSONDuplicateKeysBytes(js, Strictness{OnDuplicateKey: Warn}, 0); len(iss) != 0 {
		t.Fatalf("maxIssues=0 should report nothing, got %v", iss)
	}
}
