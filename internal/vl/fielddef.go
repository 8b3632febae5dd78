package vl

// Type is the semantic type of a bound field.
type Type string

const (
	Quantitative Type = "quantitative"
	Ordinal      Type = "ordinal"
	Temporal     Type = "temporal"
	Nominal      Type = "nominal"
)

var shortTypes = map[string]Type{
	"Q": Quantitative,
	"O": Ordinal,
	"T": Temporal,
	"N": Nominal,
}

// ParseType accepts a full type name or its one-letter short form.
func ParseType(s string) (Type, bool) {
	if t, ok := shortTypes[s]; ok {
		return t, true
	}

	switch t := Type(s); t {
	case Quantitative, Ordinal, Temporal, Nominal:
		return t, true
	default:
		return "", false
	}
}

// TimeUnit is a time-granularity transform applied to a temporal field.
type TimeUnit string

const (
	TimeUnitYear                TimeUnit = "year"
	TimeUnitMonth               TimeUnit = "month"
	TimeUnitDay                 TimeUnit = "day"
	TimeUnitDate                TimeUnit = "date"
	TimeUnitHours               TimeUnit = "hours"
	TimeUnitMinutes             TimeUnit = "minutes"
	TimeUnitSeconds             TimeUnit = "seconds"
	TimeUnitMilliseconds        TimeUnit = "milliseconds"
	TimeUnitQuarter             TimeUnit = "quarter"
	TimeUnitYearMonth           TimeUnit = "yearmonth"
	TimeUnitYearMonthDate       TimeUnit = "yearmonthdate"
	TimeUnitYearMonthDay        TimeUnit = "yearmonthday"
	TimeUnitYearMonthDateHours  TimeUnit = "yearmonthdatehours"
	TimeUnitHoursMinutes        TimeUnit = "hoursminutes"
	TimeUnitHoursMinutesSeconds TimeUnit = "hoursminutesseconds"
	TimeUnitMinutesSeconds      TimeUnit = "minutesseconds"
	TimeUnitSecondsMillis       TimeUnit = "secondsmilliseconds"
	TimeUnitMonthDate           TimeUnit = "monthdate"
	TimeUnitYearQuarter         TimeUnit = "yearquarter"
	TimeUnitQuarterMonth        TimeUnit = "quartermonth"
)

// Bin describes binning of a quantitative field.
// It decodes from either a boolean or a mapping with bin parameters.
type Bin struct {
	Enabled bool
	MaxBins int `yaml:"maxbins,omitempty"`
}

// AggregateCount is the only aggregate that does not need a field.
const AggregateCount = "count"

// FieldDef binds a channel to a data field or to a constant value.
type FieldDef struct {
	Field     string   `yaml:"field,omitempty"`
	Type      Type     `yaml:"type,omitempty"`
	Bin       Bin      `yaml:"bin,omitempty"`
	TimeUnit  TimeUnit `yaml:"timeUnit,omitempty"`
	Aggregate string   `yaml:"aggregate,omitempty"`
	Title     string   `yaml:"title,omitempty"`
	// Value is a constant used instead of a field.
	Value any `yaml:"value,omitempty"`
	// Legend is nil when no legend property was given.
	Legend *Legend `yaml:"legend,omitempty"`
}

// IsBound reports whether fd refers to a field or carries a constant value.
func (fd *FieldDef) IsBound() bool {
	if fd == nil {
		return false
	}

	return fd.Field != "" || fd.Value != nil || fd.Aggregate == AggregateCount
}

// Aggregated reports whether fd applies an aggregate operation.
func (fd *FieldDef) Aggregated() bool {
	return fd != nil && fd.Aggregate != ""
}

// IsCount reports whether fd is a record count.
func (fd *FieldDef) IsCount() bool {
	return fd != nil && fd.Aggregate == AggregateCount
}

// IsMeasure reports whether fd is quantitative-like: quantitative or binned.
func (fd *FieldDef) IsMeasure() bool {
	if fd == nil {
		return false
	}

	return fd.Type == Quantitative || fd.Bin.Enabled
}

// Binned reports whether fd is binned.
func (fd *FieldDef) Binned() bool {
	return fd != nil && fd.Bin.Enabled
}

// HasTimeUnit reports whether fd carries a time-granularity transform.
func (fd *FieldDef) HasTimeUnit() bool {
	return fd != nil && fd.TimeUnit != ""
}

// NeedsLegendScale reports whether a color legend for fd must go through the
// ordinal color-legend scale: ordinal fields map ranks to values, binned and
// time-unit fields use it as an identity mapping.
func (fd *FieldDef) NeedsLegendScale() bool {
	if fd == nil {
		return false
	}

	return fd.Type == Ordinal || fd.Binned() || fd.HasTimeUnit()
}

// IsConstant reports whether fd carries a constant value instead of a field.
func (fd *FieldDef) IsConstant() bool {
	return fd != nil && fd.Value != nil
}
