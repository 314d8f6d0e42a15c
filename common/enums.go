package common

import "strings"

// Action describes why data is being transmitted.
type Action string

const (
	ActionAppend      Action = "Append"
	ActionReplace     Action = "Replace"
	ActionDelete      Action = "Delete"
	ActionInformation Action = "Information"
)

// ActionTokens lists the accepted action spellings for issue hints.
const ActionTokens = "Append, Replace, Delete, Information"

// ParseAction accepts the wire spelling of an action.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionAppend, ActionReplace, ActionDelete, ActionInformation:
		return Action(s), true
	}
	return "", false
}

// ActionFromCode maps the single-letter tabular action code.
func ActionFromCode(c string) (Action, bool) {
	switch c {
	case "A":
		return ActionAppend, true
	case "R":
		return ActionReplace, true
	case "D":
		return ActionDelete, true
	case "I":
		return ActionInformation, true
	}
	return "", false
}

// Code returns the single-letter tabular code of the action.
func (a Action) Code() string {
	if a == "" {
		return "I"
	}
	return string(a)[:1]
}

// Usage tells whether an attribute or measure must be reported.
type Usage string

const (
	UsageMandatory Usage = "mandatory"
	UsageOptional  Usage = "optional"
)

// UsageTokens lists the accepted usage spellings for issue hints.
const UsageTokens = "mandatory, optional"

// ParseUsage accepts the wire spelling of a usage.
func ParseUsage(s string) (Usage, bool) {
	switch Usage(s) {
	case UsageMandatory, UsageOptional:
		return Usage(s), true
	}
	return "", false
}

// DataType is the representation type of a component value.
type DataType string

const (
	DataTypeString                  DataType = "String"
	DataTypeAlpha                   DataType = "Alpha"
	DataTypeAlphaNumeric            DataType = "AlphaNumeric"
	DataTypeNumeric                 DataType = "Numeric"
	DataTypeBigInteger              DataType = "BigInteger"
	DataTypeInteger                 DataType = "Integer"
	DataTypeLong                    DataType = "Long"
	DataTypeShort                   DataType = "Short"
	DataTypeDecimal                 DataType = "Decimal"
	DataTypeFloat                   DataType = "Float"
	DataTypeDouble                  DataType = "Double"
	DataTypeBoolean                 DataType = "Boolean"
	DataTypeURI                     DataType = "URI"
	DataTypeCount                   DataType = "Count"
	DataTypeInclusiveValueRange     DataType = "InclusiveValueRange"
	DataTypeExclusiveValueRange     DataType = "ExclusiveValueRange"
	DataTypeIncremental             DataType = "Incremental"
	DataTypeObservationalTimePeriod DataType = "ObservationalTimePeriod"
	DataTypeStandardTimePeriod      DataType = "StandardTimePeriod"
	DataTypeBasicTimePeriod         DataType = "BasicTimePeriod"
	DataTypeGregorianTimePeriod     DataType = "GregorianTimePeriod"
	DataTypeGregorianYear           DataType = "GregorianYear"
	DataTypeGregorianYearMonth      DataType = "GregorianYearMonth"
	DataTypeGregorianDay            DataType = "GregorianDay"
	DataTypeReportingTimePeriod     DataType = "ReportingTimePeriod"
	DataTypeReportingYear           DataType = "ReportingYear"
	DataTypeReportingSemester       DataType = "ReportingSemester"
	DataTypeReportingTrimester      DataType = "ReportingTrimester"
	DataTypeReportingQuarter        DataType = "ReportingQuarter"
	DataTypeReportingMonth          DataType = "ReportingMonth"
	DataTypeReportingWeek           DataType = "ReportingWeek"
	DataTypeReportingDay            DataType = "ReportingDay"
	DataTypeDateTime                DataType = "DateTime"
	DataTypeTimeRange               DataType = "TimeRange"
	DataTypeMonth                   DataType = "Month"
	DataTypeMonthDay                DataType = "MonthDay"
	DataTypeDay                     DataType = "Day"
	DataTypeTime                    DataType = "Time"
	DataTypeDuration                DataType = "Duration"
	DataTypeGeospatialInformation   DataType = "GeospatialInformation"
	DataTypeXHTML                   DataType = "XHTML"
)

var dataTypes = []DataType{
	DataTypeString, DataTypeAlpha, DataTypeAlphaNumeric, DataTypeNumeric,
	DataTypeBigInteger, DataTypeInteger, DataTypeLong, DataTypeShort,
	DataTypeDecimal, DataTypeFloat, DataTypeDouble, DataTypeBoolean,
	DataTypeURI, DataTypeCount, DataTypeInclusiveValueRange,
	DataTypeExclusiveValueRange, DataTypeIncremental,
	DataTypeObservationalTimePeriod, DataTypeStandardTimePeriod,
	DataTypeBasicTimePeriod, DataTypeGregorianTimePeriod, DataTypeGregorianYear,
	DataTypeGregorianYearMonth, DataTypeGregorianDay,
	DataTypeReportingTimePeriod, DataTypeReportingYear,
	DataTypeReportingSemester, DataTypeReportingTrimester,
	DataTypeReportingQuarter, DataTypeReportingMonth, DataTypeReportingWeek,
	DataTypeReportingDay, DataTypeDateTime, DataTypeTimeRange, DataTypeMonth,
	DataTypeMonthDay, DataTypeDay, DataTypeTime, DataTypeDuration,
	DataTypeGeospatialInformation, DataTypeXHTML,
}

var dataTypeSet = func() map[DataType]struct{} {
	m := make(map[DataType]struct{}, len(dataTypes))
	for _, d := range dataTypes {
		m[d] = struct{}{}
	}
	return m
}()

// DataTypes returns every known data type in declaration order.
func DataTypes() []DataType { return append([]DataType(nil), dataTypes...) }

// DataTypeTokens lists the accepted data type spellings for issue hints.
var DataTypeTokens = func() string {
	parts := make([]string, len(dataTypes))
	for i, d := range dataTypes {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}()

// ParseDataType accepts the wire spelling of a data type.
func ParseDataType(s string) (DataType, bool) {
	if _, ok := dataTypeSet[DataType(s)]; ok {
		return DataType(s), true
	}
	return "", false
}

// IsReporting reports whether d is one of the reporting period types.
func (d DataType) IsReporting() bool {
	switch d {
	case DataTypeReportingTimePeriod, DataTypeReportingYear, DataTypeReportingSemester,
		DataTypeReportingTrimester, DataTypeReportingQuarter, DataTypeReportingMonth,
		DataTypeReportingWeek, DataTypeReportingDay:
		return true
	}
	return false
}

// IsGregorian reports whether d is one of the gregorian period types.
func (d DataType) IsGregorian() bool {
	switch d {
	case DataTypeGregorianTimePeriod, DataTypeGregorianYear, DataTypeGregorianYearMonth, DataTypeGregorianDay:
		return true
	}
	return false
}

// IsTimePeriod reports whether d may represent a time dimension.
func (d DataType) IsTimePeriod() bool {
	switch d {
	case DataTypeObservationalTimePeriod, DataTypeStandardTimePeriod, DataTypeBasicTimePeriod,
		DataTypeDateTime, DataTypeTimeRange:
		return true
	}
	return d.IsReporting() || d.IsGregorian()
}
