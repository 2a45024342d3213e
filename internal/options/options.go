// Package options contains the program options.
package options

// Names of the supported frontends.
const (
	FrontendEbiten   = "ebiten"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Frontends lists all supported frontend names.
var Frontends = []string{FrontendEbiten, FrontendTerminal, FrontendHeadless}

// Default values of the program options.
const (
	DefaultFrontend = FrontendEbiten
	DefaultScale    = 10
	DefaultSpeed    = 700
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output file of the disassembly listing (default: stdout)"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend    string `flag:"frontend" usage:"frontend to run the program with: ebiten, terminal, headless" default:"ebiten"`
	Scale       int    `flag:"scale" usage:"size of a screen pixel in window pixels" default:"10"`
	Speed       int    `flag:"speed" usage:"instructions executed per second" default:"700"`
	Cycles      int    `flag:"cycles" usage:"stop after this many cycles, 0 runs until the program faults"`
	Disassemble bool   `flag:"disasm" usage:"print a disassembly listing of the ROM instead of running it"`
	NoKeyWait   bool   `flag:"nokeywait" usage:"do not block on the wait for key instruction"`
	Trace       bool   `flag:"trace" usage:"log every executed instruction, implies debug"`
	Debug       bool   `flag:"debug" usage:"enable debug logging"`
	Quiet       bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}

// New returns program options with default values.
func New() Program {
	return Program{
		Flags: Flags{
			Frontend: DefaultFrontend,
			Scale:    DefaultScale,
			Speed:    DefaultSpeed,
		},
	}
}
