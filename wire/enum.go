package wire

import (
	gosdmx "github.com/reoring/gosdmx"
)

// EnumDecoder returns a TreeDecoder that accepts the strings parse knows.
// accepted is reported as the hint on failure.
func EnumDecoder[T ~string](parse func(string) (T, bool), accepted string) TreeDecoder[T] {
	return func(raw any, path string, issues *gosdmx.Issues) (T, bool) {
		s, ok := raw.(string)
		if !ok {
			Report(issues, path, gosdmx.CodeInvalidType, "expected string")
			var zero T
			return zero, false
		}
		v, ok := parse(s)
		if !ok {
			*issues = gosdmx.AppendIssues(*issues, EnumIssue(path, s, accepted))
			return v, false
		}
		return v, true
	}
}

// EnumIssue builds the invalid_enum issue for got at path.
func EnumIssue(path, got, accepted string) gosdmx.Issue {
	if path == "" {
		path = "/"
	}
	return gosdmx.Issue{
		Path:    path,
		Code:    gosdmx.CodeInvalidEnum,
		Message: messageFor(gosdmx.CodeInvalidEnum),
		Hint:    "expected one of " + accepted,
		Params:  map[string]any{"got": got},
	}
}

// OptEnum reads an optional enumerated string.
func OptEnum[T ~string](f *Fields, key string, parse func(string) (T, bool), accepted string) *T {
	return OptWith(f, key, EnumDecoder(parse, accepted))
}

// Enum reads a required enumerated string.
func Enum[T ~string](f *Fields, key string, parse func(string) (T, bool), accepted string) T {
	if !f.Has(key) {
		f.Consume(key)
		f.Required(key)
		var zero T
		return zero
	}
	if v := OptEnum(f, key, parse, accepted); v != nil {
		return *v
	}
	var zero T
	return zero
}
