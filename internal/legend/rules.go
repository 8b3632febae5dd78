package legend

import (
	"chartc/internal/vl"
)

// GroupRule generates the properties of one group. override is the
// request's explicit group, which the rule layers on top of what it
// generates. A nil result means the group is empty.
type GroupRule func(fd *vl.FieldDef, override vl.Props, m Model, ch vl.Channel) (vl.Props, error)

// groupRules holds the groups that have a generation rule. Groups missing
// here pass their override through unchanged.
var groupRules = map[Group]GroupRule{
	GroupSymbols: symbols,
	GroupLabels:  labels,
}
