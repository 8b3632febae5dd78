// Package fielddef derives display properties from field definitions:
// human-readable titles, number/time format mixins and time format strings.
package fielddef
