package fielddef

import (
	"fmt"
	"strings"

	"chartc/internal/vl"
)

// CountTitle is the title of a record count.
const CountTitle = "Number of Records"

// Title returns a human-readable label for fd. An explicit title wins;
// otherwise the field name is wrapped in the applied function, e.g.
// "MEAN(price)", "YEAR(date)" or "BIN(age)".
func Title(fd *vl.FieldDef) string {
	if fd == nil {
		return ""
	}

	if fd.Title != "" {
		return fd.Title
	}

	if fd.IsCount() {
		return CountTitle
	}

	var fn string

	switch {
	case fd.Aggregated():
		fn = fd.Aggregate
	case fd.HasTimeUnit():
		fn = string(fd.TimeUnit)
	case fd.Binned():
		fn = "bin"
	default:
		return fd.Field
	}

	return fmt.Sprintf("%s(%s)", strings.ToUpper(fn), fd.Field)
}
