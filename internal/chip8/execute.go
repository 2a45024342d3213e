package chip8

import "fmt"

// Step executes exactly one cycle: it fetches and executes the instruction
// at the program counter and then advances the delay and sound timers.
// If the instruction faults, the machine state is left unchanged and the
// error is returned.
func (c *Chip8) Step() error {
	opcode := c.read16(c.PC)
	if err := c.execute(opcode); err != nil {
		return err
	}
	c.updateTimers()
	return nil
}

func (c *Chip8) updateTimers() {
	if c.DT > 0 {
		c.DT--
	}
	if c.ST > 0 {
		if c.ST == 1 {
			c.toneHook()
		}
		c.ST--
	}
}

// execute dispatches on the opcode family. Every handler is responsible for
// setting the program counter of the next instruction.
func (c *Chip8) execute(opcode uint16) error {
	switch opcode & 0xF000 {
	case 0x0000:
		return c.executeSystem(opcode)
	case 0x1000:
		c.PC = nnn(opcode)
	case 0x2000:
		return c.call(opcode)
	case 0x3000:
		c.skipIf(c.V[x(opcode)] == kk(opcode))
	case 0x4000:
		c.skipIf(c.V[x(opcode)] != kk(opcode))
	case 0x5000:
		if n(opcode) != 0 {
			return c.decodeError(opcode)
		}
		c.skipIf(c.V[x(opcode)] == c.V[y(opcode)])
	case 0x6000:
		c.V[x(opcode)] = kk(opcode)
		c.advance()
	case 0x7000:
		c.V[x(opcode)] += kk(opcode)
		c.advance()
	case 0x8000:
		return c.executeArithmetic(opcode)
	case 0x9000:
		if n(opcode) != 0 {
			return c.decodeError(opcode)
		}
		c.skipIf(c.V[x(opcode)] != c.V[y(opcode)])
	case 0xA000:
		c.I = nnn(opcode)
		c.advance()
	case 0xB000:
		c.PC = (nnn(opcode) + uint16(c.V[0])) & MaxAddress
	case 0xC000:
		c.V[x(opcode)] = c.random() & kk(opcode)
		c.advance()
	case 0xD000:
		c.draw(c.V[x(opcode)], c.V[y(opcode)], n(opcode))
		c.advance()
	case 0xE000:
		return c.executeKeypad(opcode)
	default: // 0xF000
		return c.executeMisc(opcode)
	}
	return nil
}

func (c *Chip8) executeSystem(opcode uint16) error {
	switch opcode {
	case 0x00E0: // cls
		c.clearDisplay()
		c.advance()
		return nil

	case 0x00EE: // ret
		if c.SP == 0 {
			return fmt.Errorf("return at address $%03X: %w", c.PC, ErrStackUnderflow)
		}
		c.SP--
		c.PC = c.Stack[c.SP]
		return nil

	default:
		return c.decodeError(opcode)
	}
}

func (c *Chip8) call(opcode uint16) error {
	if c.SP >= StackDepth {
		return fmt.Errorf("call at address $%03X: %w", c.PC, ErrStackOverflow)
	}
	c.Stack[c.SP] = (c.PC + opcodeSize) & MaxAddress
	c.SP++
	c.PC = nnn(opcode)
	return nil
}

// executeArithmetic runs the 8xy? register instructions. The flag register
// is written before the destination register, so VF as destination keeps
// the result and not the flag.
func (c *Chip8) executeArithmetic(opcode uint16) error {
	vx, vy := x(opcode), y(opcode)

	switch n(opcode) {
	case 0x0: // ld Vx, Vy
		c.V[vx] = c.V[vy]
	case 0x1: // or
		c.V[vx] |= c.V[vy]
	case 0x2: // and
		c.V[vx] &= c.V[vy]
	case 0x3: // xor
		c.V[vx] ^= c.V[vy]
	case 0x4: // add
		sum := uint16(c.V[vx]) + uint16(c.V[vy])
		c.V[FlagRegister] = boolToByte(sum > 0xFF)
		c.V[vx] = byte(sum)
	case 0x5: // sub
		c.V[FlagRegister] = boolToByte(c.V[vx] > c.V[vy])
		c.V[vx] -= c.V[vy]
	case 0x6: // shr
		c.V[FlagRegister] = c.V[vx] & 1
		c.V[vx] >>= 1
	case 0x7: // subn
		c.V[FlagRegister] = boolToByte(c.V[vy] > c.V[vx])
		c.V[vx] = c.V[vy] - c.V[vx]
	case 0xE: // shl
		c.V[FlagRegister] = c.V[vx] >> 7
		c.V[vx] <<= 1
	default:
		return c.decodeError(opcode)
	}

	c.advance()
	return nil
}

func (c *Chip8) executeKeypad(opcode uint16) error {
	pressed := c.Keys[c.V[x(opcode)]&0xF]

	switch kk(opcode) {
	case 0x9E: // skp
		c.skipIf(pressed)
	case 0xA1: // sknp
		c.skipIf(!pressed)
	default:
		return c.decodeError(opcode)
	}
	return nil
}

func (c *Chip8) executeMisc(opcode uint16) error {
	vx := x(opcode)

	switch kk(opcode) {
	case 0x07: // ld Vx, DT
		c.V[vx] = c.DT

	case 0x0A: // ld Vx, K
		if c.noopKeyWait {
			break
		}
		key, ok := c.pressedKey()
		if !ok {
			return nil // execute the instruction again in the next cycle
		}
		c.V[vx] = key

	case 0x15: // ld DT, Vx
		c.DT = c.V[vx]

	case 0x18: // ld ST, Vx
		c.ST = c.V[vx]

	case 0x1E: // add I, Vx
		c.I += uint16(c.V[vx])
		c.V[FlagRegister] = boolToByte(c.I > 0x0F00)

	case 0x29: // ld F, Vx
		c.I = uint16(c.V[vx]) * glyphSize

	case 0x33: // ld B, Vx
		value := c.V[vx]
		c.write(c.I, value/100)
		c.write(c.I+1, value/10%10)
		c.write(c.I+2, value%10)

	case 0x55: // ld [I], Vx
		for i := uint16(0); i <= uint16(vx); i++ {
			c.write(c.I+i, c.V[i])
		}

	case 0x65: // ld Vx, [I]
		for i := uint16(0); i <= uint16(vx); i++ {
			c.V[i] = c.read(c.I + i)
		}

	default:
		return c.decodeError(opcode)
	}

	c.advance()
	return nil
}

// draw XORs an n byte sprite from memory at I onto the framebuffer at the
// given coordinates. VF is set if any set pixel was cleared.
func (c *Chip8) draw(vx, vy byte, rows uint16) {
	var collision byte

	for row := range rows {
		sprite := c.read(c.I + row)
		for col := range 8 {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			i := pixelIndex(int(vx)+col, int(vy)+int(row))
			if c.Display[i] {
				collision = 1
			}
			c.Display[i] = !c.Display[i]
		}
	}

	c.V[FlagRegister] = collision
}

// pressedKey returns the lowest key code that is currently pressed.
func (c *Chip8) pressedKey() (byte, bool) {
	for key, pressed := range c.Keys {
		if pressed {
			return byte(key), true
		}
	}
	return 0, false
}

func (c *Chip8) advance() {
	c.PC = (c.PC + opcodeSize) & MaxAddress
}

func (c *Chip8) skipIf(condition bool) {
	c.advance()
	if condition {
		c.advance()
	}
}

func (c *Chip8) decodeError(opcode uint16) error {
	return &DecodeError{Address: c.PC, Opcode: opcode}
}

// x extracts the X register nibble from an opcode.
func x(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// y extracts the Y register nibble from an opcode.
func y(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}

func n(opcode uint16) uint16 {
	return opcode & 0x000F
}

func kk(opcode uint16) byte {
	return byte(opcode)
}

func nnn(opcode uint16) uint16 {
	return opcode & 0x0FFF
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
