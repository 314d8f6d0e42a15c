package engine

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
)

// tokens replays a fixed token list; offsets grow by ten bytes per token.
type tokens struct {
	list []Token
	pos  int
}

func (s *tokens) NextToken() (Token, error) {
	if s.pos >= len(s.list) {
		return Token{}, io.EOF
	}
	t := s.list[s.pos]
	s.pos++
	return t, nil
}

func (s *tokens) Location() int64 { return int64(s.pos * 10) }

func obj(members ...Token) []Token {
	out := []Token{{Kind: KindBeginObject}}
	out = append(out, members...)
	return append(out, Token{Kind: KindEndObject})
}

func key(k string) Token { return Token{Kind: KindKey, String: k} }
func str(v string) Token { return Token{Kind: KindString, String: v} }
func num(v string) Token { return Token{Kind: KindNumber, Number: v} }

func drain(src TokenSource) error {
	for {
		if _, err := src.NextToken(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// {"dataSets":[{"action":"A","action":"R"}],"x/y":{"a":1,"a":2}}
func nested() []Token {
	var list []Token
	list = append(list, Token{Kind: KindBeginObject}, key("dataSets"), Token{Kind: KindBeginArray})
	list = append(list, obj(key("action"), str("A"), key("action"), str("R"))...)
	list = append(list, Token{Kind: KindEndArray}, key("x/y"))
	list = append(list, obj(key("a"), num("1"), key("a"), num("2"))...)
	return append(list, Token{Kind: KindEndObject})
}

func TestEnforce_DuplicateError(t *testing.T) {
	err := drain(WrapWithEnforcement(&tokens{list: nested()}, EnforceOptions{OnDuplicate: DupError}))
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != codeDuplicateKey || ie.Path != "/dataSets/0/action" {
		t.Fatalf("got %+v", ie.SimpleIssue)
	}
}

func TestEnforce_DuplicateWarnCollects(t *testing.T) {
	var got []SimpleIssue
	sink := func(si SimpleIssue) { got = append(got, si) }
	err := drain(WrapWithEnforcement(&tokens{list: nested()}, EnforceOptions{OnDuplicate: DupWarn, IssueSink: sink}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Path != "/dataSets/0/action" || got[1].Path != "/x~1y/a" {
		t.Fatalf("got %+v", got)
	}
}

func TestEnforce_DuplicateIgnored(t *testing.T) {
	var got []SimpleIssue
	sink := func(si SimpleIssue) { got = append(got, si) }
	if err := drain(WrapWithEnforcement(&tokens{list: nested()}, EnforceOptions{IssueSink: sink})); err != nil || len(got) != 0 {
		t.Fatalf("err=%v issues=%v", err, got)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	err := drain(WrapWithEnforcement(&tokens{list: nested()}, EnforceOptions{MaxDepth: 2}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Path != "/dataSets/0" || ie.Code != codeParseError {
		t.Fatalf("got %v", err)
	}
}

func TestEnforce_MaxBytes(t *testing.T) {
	err := drain(WrapWithEnforcement(&tokens{list: nested()}, EnforceOptions{MaxBytes: 35}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != codeTruncated {
		t.Fatalf("got %v", err)
	}
}

func TestCollectDuplicateKeys(t *testing.T) {
	all, err := CollectDuplicateKeys(&tokens{list: nested()}, DupWarn, -1)
	if err != nil || len(all) != 2 {
		t.Fatalf("warn: %v %v", all, err)
	}
	first, _ := CollectDuplicateKeys(&tokens{list: nested()}, DupError, -1)
	if len(first) != 1 {
		t.Fatalf("error mode should stop at the first duplicate: %v", first)
	}
	capped, _ := CollectDuplicateKeys(&tokens{list: nested()}, DupWarn, 1)
	if len(capped) != 2 || capped[1].Code != codeTruncated {
		t.Fatalf("capped: %v", capped)
	}
	if none, _ := CollectDuplicateKeys(&tokens{list: nested()}, DupWarn, 0); none != nil {
		t.Fatalf("disabled: %v", none)
	}
}

func TestDecodeAnyFromTreeSource(t *testing.T) {
	in := map[string]any{"b": []any{json.Number("1"), true, nil}, "a": "x"}
	src := TreeSource(in)
	v, err := DecodeAnyFromSource(src)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := v.(map[string]any)
	if m["a"] != "x" || len(m["b"].([]any)) != 3 || m["b"].([]any)[0] != json.Number("1") {
		t.Fatalf("got %v", v)
	}
	if err := ExpectEOF(src); err != nil {
		t.Fatalf("expected EOF: %v", err)
	}
}
