package chip8

import (
	"math/rand/v2"
)

// CHIP-8 machine layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// ProgramStart is the memory address where programs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general-purpose registers.
	RegisterCount = 16

	// FlagRegister is the index of the register used as carry/borrow/collision flag.
	FlagRegister = 0xF

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// KeyCount is the number of keys of the hexadecimal keypad.
	KeyCount = 16

	// Width and Height are the framebuffer dimensions in pixels.
	Width  = 64
	Height = 32

	// opcodeSize is the size of CHIP-8 instructions in bytes.
	opcodeSize = 2
)

// Chip8 is the state of one CHIP-8 machine.
type Chip8 struct {
	Memory  [MemorySize]byte
	V       [RegisterCount]byte
	I       uint16
	PC      uint16
	Stack   [StackDepth]uint16
	SP      uint8
	Keys    [KeyCount]bool
	DT      byte // delay timer
	ST      byte // sound timer
	Display [Width * Height]bool

	random      func() byte
	toneHook    func()
	noopKeyWait bool
}

// Option configures optional behavior of a machine.
type Option func(*Chip8)

// WithRandom sets the source for the random byte instruction.
func WithRandom(random func() byte) Option {
	return func(c *Chip8) {
		c.random = random
	}
}

// WithToneHook sets a function that is called when the sound timer expires.
func WithToneHook(hook func()) Option {
	return func(c *Chip8) {
		c.toneHook = hook
	}
}

// WithNoopKeyWait makes the wait for key instruction Fx0A fall through
// without waiting or storing a key.
func WithNoopKeyWait() Option {
	return func(c *Chip8) {
		c.noopKeyWait = true
	}
}

// New returns a new machine in its initial state.
func New(options ...Option) *Chip8 {
	c := &Chip8{
		random:   randomByte,
		toneHook: func() {},
	}
	for _, option := range options {
		option(c)
	}
	c.Reset()
	return c
}

// Reset puts the machine into its initial state. Registers, stack, keypad,
// timers and framebuffer are cleared, the glyph table is written to low memory
// and the program counter points to ProgramStart.
// The program area of memory is left untouched.
func (c *Chip8) Reset() {
	c.V = [RegisterCount]byte{}
	c.Stack = [StackDepth]uint16{}
	c.Keys = [KeyCount]bool{}
	c.clearDisplay()
	c.I = 0
	c.PC = ProgramStart
	c.SP = 0
	c.DT = 0
	c.ST = 0

	copy(c.Memory[:], glyphs[:])
}

// LoadProgram copies the program image to ProgramStart, zero fills the rest
// of the program area and resets the machine.
func (c *Chip8) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return &ProgramSizeError{Size: len(program)}
	}

	area := c.Memory[ProgramStart:]
	n := copy(area, program)
	clear(area[n:])

	c.Reset()
	return nil
}

// SetKey sets the pressed state of a keypad key. Keys outside of the
// keypad range are ignored.
func (c *Chip8) SetKey(key uint8, pressed bool) {
	if int(key) >= KeyCount {
		return
	}
	c.Keys[key] = pressed
}

// Pixel returns whether the framebuffer pixel at the given coordinates is set.
// Coordinates wrap around the screen edges.
func (c *Chip8) Pixel(x, y int) bool {
	return c.Display[pixelIndex(x, y)]
}

// Opcode returns the instruction word at the program counter.
func (c *Chip8) Opcode() uint16 {
	return c.read16(c.PC)
}

func (c *Chip8) clearDisplay() {
	c.Display = [Width * Height]bool{}
}

func (c *Chip8) read16(address uint16) uint16 {
	return uint16(c.read(address))<<8 | uint16(c.read(address+1))
}

func (c *Chip8) read(address uint16) byte {
	return c.Memory[address&MaxAddress]
}

func (c *Chip8) write(address uint16, value byte) {
	c.Memory[address&MaxAddress] = value
}

func pixelIndex(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return y*Width + x
}

// randomByte returns a random value in the range 1-255.
func randomByte() byte {
	return byte(rand.IntN(255) + 1)
}
