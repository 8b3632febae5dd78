// Package legend compiles legend definitions for the legend-bearing
// channels (color, size, shape) of a unit model.
//
// Each legend is compiled independently from read-only model lookups:
//
//  1. bind the channel's scale (fill or stroke for color, size, shape)
//  2. title from the request or the field
//  3. format mixins, skipped for binned fields
//  4. orient and values passed through from the request
//  5. property groups title, symbols, legend, labels in that order
//
// Property groups with a generation rule (symbols, labels) merge the
// generated properties with the request's override, the override winning
// per key. Groups without a rule pass the override through. Empty groups
// are omitted.
package legend
