package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00E0, "cls"},
		{0x00EE, "ret"},
		{0x1234, "jp $234"},
		{0xB234, "jp V0, $234"},
		{0x2300, "call $300"},
		{0x3234, "se V2, $34"},
		{0x9120, "sne V1, V2"},
		{0x6A05, "ld VA, $05"},
		{0xA123, "ld I, $123"},
		{0xF329, "ld F, V3"},
		{0xF355, "ld [I], V3"},
		{0x7F01, "add VF, $01"},
		{0x8124, "add V1, V2"},
		{0xF21E, "add I, V2"},
		{0x8125, "sub V1, V2"},
		{0x812E, "shl V1"},
		{0xC3FF, "rnd V3, $FF"},
		{0xD125, "drw V1, V2, $5"},
		{0xE49E, "skp V4"},
		{0x0000, ".word $0000"},
		{0x8128, ".word $8128"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Disassemble(tt.opcode))
		})
	}
}

func TestIsValidOpcode(t *testing.T) {
	assert.True(t, IsValidOpcode(0x00E0))
	assert.True(t, IsValidOpcode(0x1FFF))
	assert.True(t, IsValidOpcode(0xF065))
	assert.False(t, IsValidOpcode(0x0FFF))
	assert.False(t, IsValidOpcode(0xF066))
}
