package frontend

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// halfBlocks contains the characters for the combinations of an upper and a
// lower pixel, indexed by upper | lower<<1.
var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

// renderHalfBlocks renders the framebuffer as text lines, every character
// representing two pixels stacked on top of each other.
func renderHalfBlocks(machine *chip8.Chip8) []string {
	lines := make([]string, 0, chip8.Height/2)
	var sb strings.Builder

	for y := 0; y < chip8.Height; y += 2 {
		sb.Reset()
		for x := range chip8.Width {
			index := 0
			if machine.Pixel(x, y) {
				index |= 1
			}
			if machine.Pixel(x, y+1) {
				index |= 2
			}
			sb.WriteRune(halfBlocks[index])
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// renderASCII renders the framebuffer as text lines of one character per pixel.
func renderASCII(machine *chip8.Chip8) []string {
	lines := make([]string, 0, chip8.Height)
	line := make([]byte, chip8.Width)

	for y := range chip8.Height {
		for x := range chip8.Width {
			line[x] = '.'
			if machine.Pixel(x, y) {
				line[x] = '#'
			}
		}
		lines = append(lines, string(line))
	}
	return lines
}
