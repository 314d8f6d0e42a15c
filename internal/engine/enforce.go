package engine

import (
	"strconv"
	"strings"
)

// Issue codes shared with the public error model.
const (
	codeParseError   = "parse_error"
	codeDuplicateKey = "duplicate_key"
	codeTruncated    = "truncated"
)

// EnforceOptions controls the checks applied while tokens stream through.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives every issue found, including duplicates that do
	// not stop the stream.
	IssueSink func(SimpleIssue)
	// FailFast turns a reported duplicate into an error even under DupWarn.
	FailFast bool
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// WrapWithEnforcement returns a TokenSource that enforces the duplicate key
// policy, the nesting depth limit and the byte limit of opt.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

// container tracks one open object or array.
type container struct {
	object bool
	path   string
	keys   map[string]struct{}
	key    string // member whose value is being read
	inKey  bool   // key read, value not yet complete
	index  int    // next array index
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	open  []container
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	path := e.pointer(tok)
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		c := container{object: tok.Kind == KindBeginObject, path: path}
		if c.object {
			c.keys = map[string]struct{}{}
		}
		e.open = append(e.open, c)
		if e.opt.MaxDepth > 0 && len(e.open) > e.opt.MaxDepth {
			return Token{}, e.fail(SimpleIssue{Code: codeParseError, Path: rootPath(path), Message: "max depth exceeded"})
		}
	case KindEndObject, KindEndArray:
		if n := len(e.open); n > 0 {
			e.open = e.open[:n-1]
		}
		e.valueDone()
	case KindKey:
		if err := e.member(tok.String, path); err != nil {
			return Token{}, err
		}
	default:
		e.valueDone()
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off > e.opt.MaxBytes {
			return Token{}, e.fail(SimpleIssue{Code: codeTruncated, Path: rootPath(path), Message: "max bytes exceeded"})
		}
	}
	return tok, nil
}

// pointer returns the JSON Pointer of tok: the member for a key, the
// enclosing container for a closing delimiter, and the value itself
// otherwise. Array indexes advance as values are seen.
func (e *enforcingTokenSource) pointer(tok Token) string {
	n := len(e.open)
	if n == 0 {
		return ""
	}
	top := &e.open[n-1]
	switch tok.Kind {
	case KindKey:
		return joinJSONPointer(top.path, tok.String)
	case KindEndObject, KindEndArray:
		return top.path
	}
	if !top.object {
		p := joinJSONPointer(top.path, strconv.Itoa(top.index))
		top.index++
		return p
	}
	if top.inKey {
		return joinJSONPointer(top.path, top.key)
	}
	return top.path
}

func (e *enforcingTokenSource) member(key, path string) error {
	n := len(e.open)
	if n == 0 {
		return nil
	}
	top := &e.open[n-1]
	if !top.object || top.inKey {
		return nil
	}
	if _, dup := top.keys[key]; dup && e.opt.OnDuplicate != DupIgnore {
		si := SimpleIssue{Code: codeDuplicateKey, Path: rootPath(path), Message: "key '" + key + "' duplicated"}
		if e.opt.IssueSink != nil {
			e.opt.IssueSink(si)
		}
		if e.opt.OnDuplicate == DupError || e.opt.FailFast {
			return IssueError{si}
		}
	}
	top.keys[key] = struct{}{}
	top.key, top.inKey = key, true
	return nil
}

// valueDone marks the pending member of the enclosing object as complete.
func (e *enforcingTokenSource) valueDone() {
	if n := len(e.open); n > 0 && e.open[n-1].object {
		e.open[n-1].key, e.open[n-1].inKey = "", false
	}
}

func (e *enforcingTokenSource) fail(si SimpleIssue) error {
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(si)
	}
	return IssueError{si}
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

func rootPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
