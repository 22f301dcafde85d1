package engine

// Engine modes.
const (
	// ModeCommand runs the decompiler as an external binary per request.
	ModeCommand = "command"

	// ModeWasm hosts the decompiler as an in-process WebAssembly module.
	ModeWasm = "wasm"
)

// Config holds the engine settings.
type Config struct {
	// Mode selects the engine adapter (command, wasm).
	Mode string `mapstructure:"mode" default:"command"`

	// Command is the decompiler binary invoked in command mode. Resolved
	// via PATH unless absolute.
	Command string `mapstructure:"command" default:"luau-decompile"`

	// WasmPath is the decompiler module loaded in wasm mode.
	WasmPath string `mapstructure:"wasm_path" default:"engine.wasm"`

	// TimeoutSeconds bounds a single decompilation run. Zero disables the
	// bound.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// IsValidMode checks if the configured mode names a known adapter.
func (c Config) IsValidMode() bool {
	return c.Mode == ModeCommand || c.Mode == ModeWasm
}
