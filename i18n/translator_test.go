package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == "invalid type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeAndField(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown code should echo, got %q", msg)
	}
	if msg := T("required", map[string]string{"field": "id"}); msg != "required property missing: id" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestSetLanguage_FallsBackToEnglish(t *testing.T) {
	SetLanguage("fr")
	defer SetLanguage("en")
	if msg := T("union_no_match", nil); msg != "value matches none of the accepted shapes" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
}
