package modes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCount(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"", 6, ""},
		{"3", 6, "3"},
		{"007", 12, "7"},
		{"000", 6, "0"},
		{"18", 12, "12"},
		{"4a2", 99, "42"},
		{"99999999999999999999", 6, "6"},
		{"5", 0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCount(tt.in, tt.max), "in=%q max=%d", tt.in, tt.max)
	}
}

func TestParseCount(t *testing.T) {
	assert.Nil(t, ParseCount(""))
	assert.Nil(t, ParseCount("  "))
	n := ParseCount("4")
	if assert.NotNil(t, n) {
		assert.Equal(t, 4, *n)
	}
}
