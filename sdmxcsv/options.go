package sdmxcsv

import (
	"mime"
	"strings"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/i18n"
	"github.com/reoring/gosdmx/wire"
)

// Labels selects whether structural reference columns carry an id, a
// localized name, or both.
type Labels int

const (
	LabelsID Labels = iota
	LabelsName
	LabelsBoth
)

// LabelsTokens lists the accepted labels spellings.
const LabelsTokens = "id, name, both"

var labelNames = [...]string{"id", "name", "both"}

func (l Labels) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return "unknown"
	}
	return labelNames[l]
}

// ParseLabels parses a labels token.
func ParseLabels(s string) (Labels, bool) {
	for i, n := range labelNames {
		if strings.EqualFold(s, n) {
			return Labels(i), true
		}
	}
	return LabelsID, false
}

// withNames reports whether name columns are present.
func (l Labels) withNames() bool { return l == LabelsName || l == LabelsBoth }

// Keys selects which extra key columns a data table carries.
type Keys int

const (
	KeysNone Keys = iota
	KeysObs
	KeysSeries
	KeysBoth
)

// KeysTokens lists the accepted keys spellings.
const KeysTokens = "none, obs, series, both"

var keyNames = [...]string{"none", "obs", "series", "both"}

func (k Keys) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKeys parses a keys token.
func ParseKeys(s string) (Keys, bool) {
	for i, n := range keyNames {
		if strings.EqualFold(s, n) {
			return Keys(i), true
		}
	}
	return KeysNone, false
}

func (k Keys) series() bool { return k == KeysSeries || k == KeysBoth }
func (k Keys) obs() bool    { return k == KeysObs || k == KeysBoth }

// TimeFormat selects whether TIME_PERIOD values pass through unchanged or
// are rewritten as ISO 8601 intervals.
type TimeFormat int

const (
	TimeOriginal TimeFormat = iota
	TimeNormalized
)

// TimeFormatTokens lists the accepted timeFormat spellings.
const TimeFormatTokens = "original, normalized"

func (t TimeFormat) String() string {
	switch t {
	case TimeOriginal:
		return "original"
	case TimeNormalized:
		return "normalized"
	}
	return "unknown"
}

// ParseTimeFormat parses a timeFormat token.
func ParseTimeFormat(s string) (TimeFormat, bool) {
	switch strings.ToLower(s) {
	case "original":
		return TimeOriginal, true
	case "normalized", "normalised":
		return TimeNormalized, true
	}
	return TimeOriginal, false
}

// DataOptions configures a data table. The zero value is labels=id,
// keys=none, timeFormat=original.
type DataOptions struct {
	Labels     Labels
	Keys       Keys
	TimeFormat TimeFormat
}

// MetadataOptions configures a metadata table.
type MetadataOptions struct {
	Labels Labels
}

// ParseDataOptions reads options from a media type with parameters, as
// sent in an Accept or Content-Type header:
//
//	application/vnd.sdmx.data+csv; version=2.0.0; labels=both; keys=series
//
// Unknown parameters are ignored. When the header lists several media
// ranges the first csv one is used.
func ParseDataOptions(accept string) (DataOptions, error) {
	var o DataOptions
	params, err := csvParams(accept)
	if err != nil {
		return o, err
	}
	var iss gosdmx.Issues
	if v, ok := params["labels"]; ok {
		o.Labels = option(&iss, "labels", v, ParseLabels, LabelsTokens)
	}
	if v, ok := params["keys"]; ok {
		o.Keys = option(&iss, "keys", v, ParseKeys, KeysTokens)
	}
	for _, k := range []string{"timeformat", "time_format"} {
		if v, ok := params[k]; ok {
			o.TimeFormat = option(&iss, k, v, ParseTimeFormat, TimeFormatTokens)
		}
	}
	if len(iss) > 0 {
		return o, iss
	}
	return o, nil
}

// ParseMetadataOptions reads metadata options from a media type.
func ParseMetadataOptions(accept string) (MetadataOptions, error) {
	var o MetadataOptions
	params, err := csvParams(accept)
	if err != nil {
		return o, err
	}
	var iss gosdmx.Issues
	if v, ok := params["labels"]; ok {
		o.Labels = option(&iss, "labels", v, ParseLabels, LabelsTokens)
	}
	if len(iss) > 0 {
		return o, iss
	}
	return o, nil
}

func csvParams(accept string) (map[string]string, error) {
	ranges := strings.Split(accept, ",")
	chosen := ranges[0]
	for _, r := range ranges {
		mt, _, _ := strings.Cut(r, ";")
		if strings.HasSuffix(strings.TrimSpace(mt), "csv") {
			chosen = r
			break
		}
	}
	_, params, err := mime.ParseMediaType(strings.TrimSpace(chosen))
	if err != nil {
		return nil, gosdmx.Issues{{
			Path:    "/",
			Code:    gosdmx.CodeInvalidFormat,
			Message: i18n.T(gosdmx.CodeInvalidFormat, nil),
			Hint:    "expected a media type with parameters",
			Cause:   err,
		}}
	}
	return params, nil
}

func option[T any](iss *gosdmx.Issues, key, v string, parse func(string) (T, bool), accepted string) T {
	t, ok := parse(v)
	if !ok {
		*iss = gosdmx.AppendIssues(*iss, wire.EnumIssue("/"+key, v, accepted))
	}
	return t
}
