package listing

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name     string
		program  []byte
		expected string
	}{
		{
			name:     "instructions",
			program:  []byte{0x00, 0xE0, 0x60, 0x05, 0xA2, 0x0A, 0xD0, 0x15},
			expected: "$200: 00 E0  cls\n$202: 60 05  ld V0, $05\n$204: A2 0A  ld I, $20A\n$206: D0 15  drw V0, V1, $5\n",
		},
		{
			name:     "data word",
			program:  []byte{0xFF, 0xFF},
			expected: "$200: FF FF  .word $FFFF\n",
		},
		{
			name:     "trailing byte",
			program:  []byte{0x12, 0x00, 0x7C},
			expected: "$200: 12 00  jp $200\n$202: 7C     .byte $7C\n",
		},
		{
			name:     "empty",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, New(&buf).Write(tt.program))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteFile(t *testing.T) {
	opts := options.New()
	opts.Output = filepath.Join(t.TempDir(), "game.lst")

	assert.NoError(t, WriteFile(opts, []byte{0x00, 0xEE}))

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.Equal(t, "$200: 00 EE  ret\n", string(data))
}

func TestWriteFile_InvalidPath(t *testing.T) {
	opts := options.New()
	opts.Output = filepath.Join(t.TempDir(), "missing", "game.lst")

	err := WriteFile(opts, []byte{0x00, 0xEE})
	assert.ErrorContains(t, err, "creating output file")
}
