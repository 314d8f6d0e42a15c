package gosdmx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/gosdmx/internal/engine"
)

// YAMLBytes decodes a single YAML document and exposes it as a Source, so
// YAML-authored messages go through the same enforcement and typed decoding as
// JSON. Object keys are replayed in sorted order.
func YAMLBytes(b []byte) Source {
	var node any
	if err := yaml.Unmarshal(b, &node); err != nil {
		return &yamlSource{err: err}
	}
	tree, err := yamlNormalizeValue(node)
	if err != nil {
		return &yamlSource{err: err}
	}
	return &yamlSource{inner: eng.TreeSource(tree)}
}

type yamlSource struct {
	inner eng.TokenSource
	err   error
}

func (s *yamlSource) NextToken() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: fromEngineKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: -1}, nil
}

func (s *yamlSource) Location() int64 { return -1 }

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any and native numbers) into the JSON-like tree used everywhere
// else: map[string]any, []any and json.Number.
func yamlNormalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			nv, err := yamlNormalizeValue(vv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml: non-string key %v", k)
			}
			nv, err := yamlNormalizeValue(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			nv, err := yamlNormalizeValue(t[i])
			if err != nil {
				return nil, err
			}
			arr[i] = nv
		}
		return arr, nil
	case int:
		return json.Number(strconv.Itoa(t)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case string, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("yaml: unsupported value %T", v)
	}
}

// JSONToYAML re-renders a JSON document as YAML with sorted keys. Numbers keep
// their integer or floating form.
func JSONToYAML(ctx context.Context, data []byte) ([]byte, error) {
	tree, err := DecodeBytes(ctx, data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlOutputValue(tree)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlOutputValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlOutputValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlOutputValue(t[i])
		}
		return arr
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return string(t)
	default:
		return v
	}
}
