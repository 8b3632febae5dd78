package markconfig

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"chartc/internal/vl"
)

// Resolve returns the mark configuration for mark and enc with every
// ambiguous property defaulted. base is copied, never modified.
//
// mark and the channels of enc are expected to be validated already.
func Resolve(mark vl.Mark, enc vl.Encoding, base vl.MarkConfig) vl.MarkConfig {
	var out vl.MarkConfig

	if err := deepcopy.Copy(&out, &base); err != nil {
		panic(fmt.Sprintf("markconfig: copy base config: %v", err))
	}

	for _, r := range Rules {
		r.Apply(mark, enc, &out)
	}

	return out
}
