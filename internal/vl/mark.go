package vl

// Mark is the graphical mark type of a chart.
type Mark string

const (
	MarkArea   Mark = "area"
	MarkBar    Mark = "bar"
	MarkLine   Mark = "line"
	MarkPoint  Mark = "point"
	MarkText   Mark = "text"
	MarkTick   Mark = "tick"
	MarkRule   Mark = "rule"
	MarkCircle Mark = "circle"
	MarkSquare Mark = "square"
)

// Marks lists every supported mark type.
var Marks = []Mark{
	MarkArea, MarkBar, MarkLine, MarkPoint, MarkText,
	MarkTick, MarkRule, MarkCircle, MarkSquare,
}

// Valid reports whether m is one of the supported mark types.
func (m Mark) Valid() bool {
	switch m {
	case MarkArea, MarkBar, MarkLine, MarkPoint, MarkText,
		MarkTick, MarkRule, MarkCircle, MarkSquare:
		return true
	default:
		return false
	}
}

// IsPointLike reports whether m draws one marker per datum.
func (m Mark) IsPointLike() bool {
	switch m {
	case MarkPoint, MarkTick, MarkCircle, MarkSquare:
		return true
	default:
		return false
	}
}

func (m Mark) String() string {
	return string(m)
}
