// Package chip8 implements the CHIP-8 interpreter core.
//
// # Machine Overview
//
// CHIP-8 is an interpreted byte-code from the 1970s designed for simple games.
// The machine consists of:
//   - 4KB of memory (0x000-MaxAddress)
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - a 16-bit index register I and a program counter
//   - a call stack of StackDepth return addresses
//   - delay and sound timers counting down once per cycle
//   - a 64x32 monochrome framebuffer and a 16 key hexadecimal keypad
//
// # Memory Layout
//
//   - 0x000-0x04F: built-in hexadecimal glyph table (16 glyphs, 5 bytes each)
//   - 0x050-0x1FF: reserved interpreter area
//   - ProgramStart-MaxAddress: program image (MaxProgramSize bytes)
//
// # Execution
//
// The core is a single synchronous fetch-decode-execute cycle. Step runs
// exactly one instruction and advances both timers, pacing is left to the
// caller. Faults are returned as errors:
//
//	machine := chip8.New()
//	if err := machine.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if err := machine.Step(); err != nil {
//			return fmt.Errorf("executing cycle: %w", err)
//		}
//	}
//
// A Chip8 value is not safe for concurrent use.
package chip8
