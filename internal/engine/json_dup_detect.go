package engine

import "io"

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// CollectDuplicateKeys drains src and returns the duplicate object keys it
// contains. Under DupError collection stops at the first duplicate.
// maxIssues < 0 means unlimited, 0 disables collection, and a positive value
// caps the result and appends a truncated issue once the cap is reached. A
// syntax error ends the scan and is reported as a parse_error issue.
func CollectDuplicateKeys(src TokenSource, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore || maxIssues == 0 {
		return nil, nil
	}
	var issues []SimpleIssue
	full := false
	sink := func(si SimpleIssue) {
		if full {
			return
		}
		issues = append(issues, si)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: codeTruncated, Path: "/", Message: "max issues reached"})
			full = true
		}
	}

	enforced := WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupWarn, IssueSink: sink})
	for {
		_, err := enforced.NextToken()
		if err == io.EOF {
			return issues, nil
		}
		if err != nil {
			sink(SimpleIssue{Code: codeParseError, Path: "/", Message: err.Error()})
			return issues, nil
		}
		if onDup == DupError && len(issues) > 0 {
			return issues, nil
		}
	}
}
