// Package spec loads chart specifications from YAML (or JSON) files and
// checks them structurally before compilation.
//
// A specification has the following structure:
//
//	mark: bar
//	encoding:
//	  x: {field: category, type: nominal}
//	  y: {field: amount, type: quantitative, aggregate: sum}
//	  color:
//	    field: region
//	    type: O
//	    legend:
//	      title: Region
//	      properties:
//	        labels:
//	          fontSize: {value: 12}
//	config:
//	  mark:
//	    filled: false
//	  legend:
//	    orient: left
//
// Any legend may be `false` to turn it off; `bin` may be `true` or a
// mapping of bin parameters.
package spec
