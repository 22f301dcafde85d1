package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWasmEngine(t *testing.T) {
	t.Run("MissingModule", func(t *testing.T) {
		eng, err := NewWasmEngine(Config{WasmPath: "does-not-exist.wasm"})
		assert.Error(t, err)
		assert.Nil(t, eng)
		assert.Contains(t, err.Error(), "failed to read engine module")
	})

	t.Run("InvalidModule", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.wasm")
		require.NoError(t, os.WriteFile(path, []byte("not a wasm module"), 0o600))

		eng, err := NewWasmEngine(Config{WasmPath: path})
		assert.Error(t, err)
		assert.Nil(t, eng)
		assert.Contains(t, err.Error(), "failed to compile engine module")
	})
}
