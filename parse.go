package gosdmx

import (
	"context"
	"errors"
	"io"

	"github.com/reoring/gosdmx/i18n"
	eng "github.com/reoring/gosdmx/internal/engine"
)

// DecodeTree consumes one document from the Source and builds an untyped tree
// of map[string]any, []any, string, json.Number, bool and nil. Duplicate keys,
// depth and size are enforced according to opts. Read failures of the
// underlying input are returned as *SourceError; everything else is Issues.
func DecodeTree(ctx context.Context, src Source, opts ...ParseOpt) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opt := LastOpt(opts)
	enforced := eng.WrapWithEnforcement(engineTokenSource(src), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		FailFast:    opt.FailFast,
	})
	v, err := eng.DecodeAnyFromSource(enforced)
	if err != nil {
		return nil, toSourceOrIssues(src, err)
	}
	if err := eng.ExpectEOF(enforced); err != nil {
		return nil, toSourceOrIssues(src, err)
	}
	return v, nil
}

// DecodeBytes is DecodeTree over a JSON byte slice.
func DecodeBytes(ctx context.Context, b []byte, opts ...ParseOpt) (any, error) {
	opt := LastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return DecodeTree(ctx, JSONBytes(b), opts...)
}

// DecodeReader reads JSON from r. When MaxBytes is set it enforces the size cap
// up front, otherwise it streams tokens through the active driver.
func DecodeReader(ctx context.Context, r io.Reader, opts ...ParseOpt) (any, error) {
	opt := LastOpt(opts)
	if opt.MaxBytes > 0 {
		lr := io.LimitReader(r, opt.MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			return nil, &SourceError{Op: "read", Err: err}
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, singleIssue(CodeTruncated, "max bytes exceeded")
		}
		return DecodeTree(ctx, JSONBytes(data), opts...)
	}
	return DecodeTree(ctx, JSONReader(r), opts...)
}

func toSourceOrIssues(src Source, err error) error {
	if rs, ok := src.(*readerSource); ok && rs.readErr() != nil {
		return &SourceError{Op: "read", Err: rs.readErr()}
	}
	if ys, ok := src.(*yamlSource); ok && ys.err != nil {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "invalid YAML", Cause: ys.err})
	}
	return toIssues(err)
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: i18n.T(ie.Code, nil), Hint: ie.Message})
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "unexpected end of input", Cause: err})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg})
}
