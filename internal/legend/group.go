package legend

//go:generate go tool stringer -type=Group -linecomment -output=group_string.go

// Group names a legend property group.
type Group int

const (
	GroupTitle   Group = iota // title
	GroupSymbols              // symbols
	GroupLegend               // legend
	GroupLabels               // labels

	// GroupTotal is the number of groups.
	GroupTotal = int(iota)
)

// Groups lists the property groups in output order.
var Groups = []Group{GroupTitle, GroupSymbols, GroupLegend, GroupLabels}
