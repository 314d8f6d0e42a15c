package engine

import (
	"encoding/json"
	"io"
	"sort"
)

// TreeSource replays an already decoded tree (map[string]any, []any, string,
// json.Number, bool, nil) as a token stream. Object keys are emitted in sorted
// order so enforcement paths are deterministic.
func TreeSource(v any) TokenSource {
	t := &treeSource{}
	t.push(v)
	return t
}

type treeSource struct {
	pending []Token
	pos     int
}

func (t *treeSource) push(v any) {
	switch x := v.(type) {
	case map[string]any:
		t.pending = append(t.pending, Token{Kind: KindBeginObject, Offset: -1})
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.pending = append(t.pending, Token{Kind: KindKey, String: k, Offset: -1})
			t.push(x[k])
		}
		t.pending = append(t.pending, Token{Kind: KindEndObject, Offset: -1})
	case []any:
		t.pending = append(t.pending, Token{Kind: KindBeginArray, Offset: -1})
		for _, e := range x {
			t.push(e)
		}
		t.pending = append(t.pending, Token{Kind: KindEndArray, Offset: -1})
	case string:
		t.pending = append(t.pending, Token{Kind: KindString, String: x, Offset: -1})
	case json.Number:
		t.pending = append(t.pending, Token{Kind: KindNumber, Number: string(x), Offset: -1})
	case bool:
		t.pending = append(t.pending, Token{Kind: KindBool, Bool: x, Offset: -1})
	default:
		t.pending = append(t.pending, Token{Kind: KindNull, Offset: -1})
	}
}

func (t *treeSource) NextToken() (Token, error) {
	if t.pos >= len(t.pending) {
		return Token{}, io.EOF
	}
	tok := t.pending[t.pos]
	t.pos++
	return tok, nil
}

func (t *treeSource) Location() int64 { return -1 }
