package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestWithout(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		drop     []string
		expected []string
	}{
		{"nothing dropped", []string{"fill", "stroke"}, nil, []string{"fill", "stroke"}},
		{"keeps order", []string{"fill", "opacity", "stroke"}, []string{"opacity"}, []string{"fill", "stroke"}},
		{"all dropped", []string{"fill"}, []string{"fill", "stroke"}, []string{}},
		{"empty input", nil, []string{"fill"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Without(tt.in, tt.drop...))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
}
