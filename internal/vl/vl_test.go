package vl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkValid(t *testing.T) {
	for _, m := range Marks {
		assert.True(t, m.Valid(), m)
	}

	assert.False(t, Mark("pie").Valid())
	assert.True(t, MarkTick.IsPointLike())
	assert.False(t, MarkBar.IsPointLike())
}

func TestChannelValid(t *testing.T) {
	assert.True(t, Color.Valid())
	assert.False(t, ColorLegend.Valid(), "scale roles are not encodable")
	assert.False(t, Channel("z").Valid())
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in       string
		expected Type
		ok       bool
	}{
		{"Q", Quantitative, true},
		{"O", Ordinal, true},
		{"T", Temporal, true},
		{"N", Nominal, true},
		{"quantitative", Quantitative, true},
		{"nominal", Nominal, true},
		{"q", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ, ok := ParseType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, typ)
		})
	}
}

func TestFieldDefPredicates(t *testing.T) {
	var unbound *FieldDef
	assert.False(t, unbound.IsBound())
	assert.False(t, unbound.IsMeasure())
	assert.False(t, unbound.NeedsLegendScale())

	count := &FieldDef{Aggregate: AggregateCount, Type: Quantitative}
	assert.True(t, count.IsBound())
	assert.True(t, count.IsCount())
	assert.True(t, count.Aggregated())

	binned := &FieldDef{Field: "a", Type: Ordinal, Bin: Bin{Enabled: true}}
	assert.True(t, binned.IsMeasure())
	assert.True(t, binned.NeedsLegendScale())

	constant := &FieldDef{Value: "red"}
	assert.True(t, constant.IsBound())
	assert.True(t, constant.IsConstant())

	assert.True(t, (&FieldDef{Field: "t", Type: Nominal, TimeUnit: TimeUnitDay}).NeedsLegendScale())
	assert.False(t, (&FieldDef{Field: "n", Type: Nominal}).NeedsLegendScale())
	assert.False(t, (&FieldDef{Field: "d", Type: Temporal}).IsMeasure())
}

func TestEncoding(t *testing.T) {
	enc := Encoding{
		X:      {Field: "a", Type: Quantitative},
		Y:      {Field: "b", Type: Nominal, Aggregate: "count"},
		Detail: nil,
	}

	assert.True(t, enc.Has(X))
	assert.False(t, enc.Has(Detail))
	assert.False(t, enc.Has(Color))
	assert.True(t, enc.Aggregated())
	assert.True(t, enc.IsMeasure(X))
	assert.False(t, enc.IsMeasure(Y))

	delete(enc, Y)
	assert.False(t, enc.Aggregated())
}

func TestPropsMerge(t *testing.T) {
	base := Props{"shape": Const("square"), "strokeWidth": Const(0)}
	over := Props{"shape": Const("diamond"), "size": Const(50)}

	merged := base.Merge(over)
	assert.Equal(t, Props{
		"shape":       Const("diamond"),
		"strokeWidth": Const(0),
		"size":        Const(50),
	}, merged)

	// inputs are untouched
	assert.Equal(t, Const("square"), base["shape"])
	assert.Len(t, over, 2)

	assert.Equal(t, Props{}, Props(nil).Merge(nil))
	assert.Nil(t, Props(nil).Clone())
}

func TestMarkConfigAccessors(t *testing.T) {
	var cfg MarkConfig
	assert.True(t, cfg.IsFilled())
	assert.Equal(t, OrientVertical, cfg.Orientation())

	cfg.Filled = Ptr(false)
	cfg.Orient = Ptr(OrientHorizontal)
	assert.False(t, cfg.IsFilled())
	assert.Equal(t, OrientHorizontal, cfg.Orientation())
}

func TestLegendEnabled(t *testing.T) {
	var l *Legend
	assert.True(t, l.Enabled())
	assert.True(t, (&Legend{}).Enabled())
	assert.False(t, (&Legend{Disabled: true}).Enabled())
	assert.Equal(t, Props{"x": Const(1)}, LegendProperties{Labels: Props{"x": Const(1)}}.Group("labels"))
	assert.Nil(t, LegendProperties{}.Group("unknown"))
}
