package keymap

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key  rune
		code uint8
		ok   bool
	}{
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'q', 0x4, true},
		{'Q', 0x4, true},
		{'x', 0x0, true},
		{'v', 0xF, true},
		{'z', 0xA, true},
		{'5', 0, false},
		{' ', 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			code, ok := Lookup(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	for code, r := range Layout {
		got, ok := Lookup(r)
		assert.True(t, ok)
		assert.Equal(t, uint8(code), got)
	}
}
