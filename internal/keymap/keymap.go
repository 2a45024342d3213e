// Package keymap maps keyboard keys to the keys of the CHIP-8 hexadecimal keypad.
//
// The keypad is laid out on the left side of a QWERTY keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
package keymap

import "unicode"

// Layout contains the keyboard key for every keypad key, indexed by key code.
var Layout = [16]rune{
	'X', '1', '2', '3',
	'Q', 'W', 'E', 'A',
	'S', 'D', 'Z', 'C',
	'4', 'R', 'F', 'V',
}

var keys = func() map[rune]uint8 {
	m := make(map[rune]uint8, len(Layout))
	for code, r := range Layout {
		m[r] = uint8(code)
	}
	return m
}()

// Lookup returns the keypad key code for a keyboard key. Letters are
// matched case insensitive. Keys that are not part of the layout return false.
func Lookup(r rune) (uint8, bool) {
	code, ok := keys[unicode.ToUpper(r)]
	return code, ok
}
