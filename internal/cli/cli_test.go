package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: "ebiten", Scale: 10, Speed: 700},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: "ebiten", Scale: 10, Speed: 700},
			},
		},
		{
			name: "terminal frontend",
			args: []string{"prog", "-frontend", "Terminal", "-speed", "500", "-scale", "2", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: "terminal", Scale: 2, Speed: 500},
			},
		},
		{
			name: "headless with cycle limit",
			args: []string{"prog", "-frontend", "headless", "-cycles", "100", "-nokeywait", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags: options.Flags{Frontend: "headless", Scale: 10, Speed: 700,
					Cycles: 100, NoKeyWait: true},
			},
		},
		{
			name: "trace implies debug",
			args: []string{"prog", "-trace", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: "ebiten", Scale: 10, Speed: 700, Trace: true, Debug: true},
			},
		},
		{
			name: "disassembly listing",
			args: []string{"prog", "-disasm", "-o", "pong.asm", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8", Output: "pong.asm"},
				Flags:      options.Flags{Frontend: "ebiten", Scale: 10, Speed: 700, Disassemble: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args)

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"missing ROM file", []string{"prog"}, true},
		{"unknown flag", []string{"prog", "-unknown", "pong.ch8"}, true},
		{"flag after file", []string{"prog", "pong.ch8", "-q"}, true},
		{"unsupported frontend", []string{"prog", "-frontend", "sdl", "pong.ch8"}, false},
		{"invalid scale", []string{"prog", "-scale", "0", "pong.ch8"}, false},
		{"invalid speed", []string{"prog", "-speed", "-1", "pong.ch8"}, false},
		{"negative cycles", []string{"prog", "-cycles", "-5", "pong.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args)

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func setArgs(t *testing.T, args []string) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

func TestParseFlags_Help(t *testing.T) {
	setArgs(t, []string{"prog", "-h"})

	stderr, err := os.CreateTemp(t.TempDir(), "stderr")
	assert.NoError(t, err)
	oldStderr := os.Stderr
	t.Cleanup(func() { os.Stderr = oldStderr })
	os.Stderr = stderr

	_, err = ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))

	// the flag set must not print its own usage in addition to ShowUsage
	os.Stderr = oldStderr
	assert.NoError(t, stderr.Close())
	output, err := os.ReadFile(stderr.Name())
	assert.NoError(t, err)
	assert.Equal(t, "", string(output))
}
