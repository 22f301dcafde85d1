package engine

import (
	"context"
	"fmt"
	"strconv"
)

// DefaultEncodeKey is the decode key applied when a request does not carry
// one.
const DefaultEncodeKey uint8 = 203

// Decompiler turns compiled bytecode back into source text. Implementations
// must be safe for concurrent use.
type Decompiler interface {
	// Decompile runs the engine over the given bytecode. The encode key is
	// the one-byte XOR key the bytecode was encoded with, and legacy selects
	// the older dialect's instruction set.
	Decompile(ctx context.Context, bytecode []byte, encodeKey uint8, legacy bool) (string, error)
}

// New builds the adapter selected by the configured mode.
func New(cfg Config) (Decompiler, error) {
	switch cfg.Mode {
	case ModeCommand:
		return NewCommandEngine(cfg)
	case ModeWasm:
		return NewWasmEngine(cfg)
	default:
		return nil, fmt.Errorf("unknown engine mode %q", cfg.Mode)
	}
}

// buildArgs renders the decode parameters as engine arguments.
func buildArgs(encodeKey uint8, legacy bool) []string {
	args := []string{"--key", strconv.Itoa(int(encodeKey))}
	if legacy {
		args = append(args, "--legacy")
	}
	return args
}
