// Package vl defines the declarative chart model consumed by the compiler:
// marks, encoding channels, field definitions, the partial configuration
// object and legend requests.
//
// All values in this package are treated as read-only inputs once loaded.
// Optional configuration properties are pointers; nil means "resolve by
// rule" and is distinct from an explicit zero value.
package vl
