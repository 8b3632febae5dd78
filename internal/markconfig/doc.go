// Package markconfig resolves mark-level configuration defaults.
//
// Resolution runs an ordered table of independent rules, one per property:
//  1. filled: point, line and rule marks are unfilled, everything else filled
//  2. opacity: 0.7 for marker marks on raw (or detail-split) data
//  3. orient: horizontal when only x is a measure, cleared when only y is
//  4. align: text marks center on x when bound, otherwise right-align
//
// Filled, opacity and align only fill gaps: an explicit base value always
// wins. Orient is decided by the encoding whenever it is unambiguous and
// left to the base configuration otherwise.
package markconfig
