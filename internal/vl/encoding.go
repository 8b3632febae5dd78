package vl

// Encoding maps channels to their bindings. A channel has at most one binding.
type Encoding map[Channel]*FieldDef

// Has reports whether ch is bound to a field or a constant value.
func (e Encoding) Has(ch Channel) bool {
	return e[ch].IsBound()
}

// FieldDef returns the binding of ch, or nil.
func (e Encoding) FieldDef(ch Channel) *FieldDef {
	return e[ch]
}

// Aggregated reports whether any channel applies an aggregate.
func (e Encoding) Aggregated() bool {
	for _, fd := range e {
		if fd.Aggregated() {
			return true
		}
	}

	return false
}

// IsMeasure reports whether ch is bound to a measure field.
func (e Encoding) IsMeasure(ch Channel) bool {
	return e[ch].IsMeasure()
}
