package fielddef

import (
	"chartc/internal/vl"
)

type timeFormats struct {
	long  string
	short string
}

func same(f string) timeFormats {
	return timeFormats{long: f, short: f}
}

var timeUnitFormats = map[vl.TimeUnit]timeFormats{
	vl.TimeUnitYear:                same("%Y"),
	vl.TimeUnitQuarter:             same("Q%q"),
	vl.TimeUnitMonth:               {long: "%B", short: "%b"},
	vl.TimeUnitDay:                 {long: "%A", short: "%a"},
	vl.TimeUnitDate:                same("%d"),
	vl.TimeUnitHours:               same("%H"),
	vl.TimeUnitMinutes:             same("%M"),
	vl.TimeUnitSeconds:             same("%S"),
	vl.TimeUnitMilliseconds:        same("%L"),
	vl.TimeUnitYearMonth:           {long: "%B %Y", short: "%b %Y"},
	vl.TimeUnitYearMonthDate:       {long: "%B %d, %Y", short: "%b %d, %Y"},
	vl.TimeUnitYearMonthDay:        {long: "%A, %B %d, %Y", short: "%a, %b %d, %Y"},
	vl.TimeUnitYearMonthDateHours:  {long: "%B %d, %Y %H:00", short: "%b %d, %Y %H:00"},
	vl.TimeUnitHoursMinutes:        same("%H:%M"),
	vl.TimeUnitHoursMinutesSeconds: same("%H:%M:%S"),
	vl.TimeUnitMinutesSeconds:      same("%M:%S"),
	vl.TimeUnitSecondsMillis:       same("%S.%L"),
	vl.TimeUnitMonthDate:           {long: "%B %d", short: "%b %d"},
	vl.TimeUnitYearQuarter:         same("Q%q %Y"),
	vl.TimeUnitQuarterMonth:        {long: "Q%q %B", short: "Q%q %b"},
}

// TimeFormat returns the time format string for the field bound to ch.
// Month and weekday names are abbreviated when the legend of ch, or the
// legend config, asks for short time labels. Fields without a known time
// unit use the configured time format.
func TimeFormat(ctx Context, ch vl.Channel) string {
	cfg := ctx.Config()

	fd := ctx.FieldDef(ch)
	if !fd.HasTimeUnit() {
		return cfg.TimeFormat
	}

	formats, ok := timeUnitFormats[fd.TimeUnit]
	if !ok {
		return cfg.TimeFormat
	}

	short := cfg.Legend.ShortTimeLabels
	if l := ctx.Legend(ch); l != nil && l.ShortTimeLabels != nil {
		short = *l.ShortTimeLabels
	}

	if short {
		return formats.short
	}

	return formats.long
}

// KnownTimeUnit reports whether u has a time format.
func KnownTimeUnit(u vl.TimeUnit) bool {
	_, ok := timeUnitFormats[u]
	return ok
}
