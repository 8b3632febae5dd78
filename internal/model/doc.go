// Package model provides the read-only unit model queried while compiling
// legends: the mark, channel bindings, effective legend requests, allocated
// scale names and the resolved configuration.
package model
