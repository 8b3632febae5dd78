// Package compile runs the compilation pipeline for a single chart:
//  1. validate the chart structurally
//  2. resolve mark configuration defaults
//  3. build the unit model with its scale names
//  4. compile the legends of color, size and shape
//
// The Result is assembled once and not modified afterwards.
package compile
