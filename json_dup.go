package gosdmx

import (
	"io"

	eng "github.com/reoring/gosdmx/internal/engine"
)

// DetectJSONDuplicateKeysBytes lists the duplicate object keys of a JSON
// document without decoding it. The document never fails here; callers
// decide what a duplicate means. maxIssues < 0 is unlimited and 0 disables
// detection.
func DetectJSONDuplicateKeysBytes(data []byte, strict Strictness, maxIssues int) (Issues, error) {
	return detectDuplicates(JSONBytes(data), strict, maxIssues)
}

// DetectJSONDuplicateKeysReader is the io.Reader variant of
// DetectJSONDuplicateKeysBytes. It consumes the reader fully.
func DetectJSONDuplicateKeysReader(r io.Reader, strict Strictness, maxIssues int) (Issues, error) {
	src := JSONReader(r)
	iss, err := detectDuplicates(src, strict, maxIssues)
	if rs, ok := src.(*readerSource); ok && rs.readErr() != nil {
		return nil, &SourceError{Op: "read", Err: rs.readErr()}
	}
	return iss, err
}

func detectDuplicates(src Source, strict Strictness, maxIssues int) (Issues, error) {
	si, err := eng.CollectDuplicateKeys(engineTokenSource(src), toEngineDup(strict.OnDuplicateKey), maxIssues)
	if err != nil {
		return nil, err
	}
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message})
	}
	return iss, nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
