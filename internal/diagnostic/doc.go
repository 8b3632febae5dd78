// Package diagnostic provides structured errors, warnings and notes
// collected while loading and compiling a chart specification.
//
// Key capabilities:
//   - Unknown mark, channel or field type reports
//   - Legend requests on channels that cannot carry a legend
//   - Notes explaining which defaulting rule fired
package diagnostic
