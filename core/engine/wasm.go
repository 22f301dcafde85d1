package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
)

// WasmEngine hosts the decompiler as a WASI command module. The module is
// compiled once at startup and instantiated per request, so concurrent
// requests never share instance state.
type WasmEngine struct {
	runtime wazero.Runtime
	code    wazero.CompiledModule
	timeout time.Duration
}

// NewWasmEngine reads and compiles the module at the configured path.
func NewWasmEngine(cfg Config) (*WasmEngine, error) {
	wasmBytes, err := os.ReadFile(cfg.WasmPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine module: %w", err)
	}

	ctx := context.Background()
	runtime := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCloseOnContextDone(true))
	wasi_snapshot_preview1.MustInstantiate(ctx, runtime)

	code, err := runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("failed to compile engine module: %w", err)
	}

	return &WasmEngine{
		runtime: runtime,
		code:    code,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// Decompile instantiates the module with the bytecode on stdin and returns
// its stdout. exit(0) counts as success, anything else surfaces stderr.
func (e *WasmEngine) Decompile(ctx context.Context, bytecode []byte, encodeKey uint8, legacy bool) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	// Anonymous instances can be created concurrently from the same
	// compiled module.
	modConfig := wazero.NewModuleConfig().
		WithName("").
		WithStdin(bytes.NewReader(bytecode)).
		WithStdout(stdout).
		WithStderr(stderr).
		WithArgs(append([]string{"engine"}, buildArgs(encodeKey, legacy)...)...).
		WithSysWalltime().
		WithSysNanotime()

	mod, err := e.runtime.InstantiateModule(ctx, e.code, modConfig)
	if mod != nil {
		defer mod.Close(ctx)
	}
	if err != nil {
		var exitErr *sys.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 0 {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return "", fmt.Errorf("decompiler failed: %s", msg)
			}
			return "", fmt.Errorf("decompiler failed: %w", err)
		}
	}

	return stdout.String(), nil
}

// Close releases the runtime and the compiled module.
func (e *WasmEngine) Close() error {
	return e.runtime.Close(context.Background())
}
