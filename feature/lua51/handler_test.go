package lua51_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"decompile-server/core/apperr"
	"decompile-server/core/engine/mocks"
	"decompile-server/feature/lua51"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Classic Lua 5.1 chunk header: ESC "Lua" followed by the version byte.
var sampleBytecode = []byte{0x1b, 0x4c, 0x75, 0x61, 0x51}

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Decompiler) {
	t.Helper()

	mockEngine := new(mocks.Decompiler)
	svc := lua51.NewService(mockEngine, zap.NewNop())
	h := lua51.NewHandler(svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.Handler(zap.NewNop()),
	})
	h.RegisterRoutes(app)

	return app, mockEngine
}

func postBytecode(t *testing.T, app *fiber.App, target string, payload []byte) (int, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	resp, err := app.Test(httptest.NewRequest("POST", target, body))
	require.NoError(t, err)

	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(text)
}

func TestHandleDecompile_NoBytecode(t *testing.T) {
	app, mockEngine := setupTestApp(t)

	status, body := postBytecode(t, app, "/lua51/decompile", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No bytecode provided", body)
	mockEngine.AssertNotCalled(t, "Decompile")
}

func TestHandleDecompile_TooShort(t *testing.T) {
	app, mockEngine := setupTestApp(t)

	status, body := postBytecode(t, app, "/lua51/decompile", sampleBytecode[:2])

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Bytecode too short (minimum 4 bytes)", body)
	mockEngine.AssertNotCalled(t, "Decompile")
}

func TestHandleDecompile_Success(t *testing.T) {
	app, mockEngine := setupTestApp(t)

	mockEngine.On("Decompile", mock.Anything, sampleBytecode, uint8(203), true).
		Return("function main() end", nil)

	status, body := postBytecode(t, app, "/lua51/decompile", sampleBytecode)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "function main() end", body)
	mockEngine.AssertExpectations(t)
}

// The legacy endpoint has one fixed decoding convention: whatever the query
// string says, the engine sees the default key and the legacy flag.
func TestHandleDecompile_IgnoresQuery(t *testing.T) {
	app, mockEngine := setupTestApp(t)

	mockEngine.On("Decompile", mock.Anything, sampleBytecode, uint8(203), true).
		Return("function main() end", nil)

	status, _ := postBytecode(t, app, "/lua51/decompile?encode_key=77", sampleBytecode)

	assert.Equal(t, fiber.StatusOK, status)
	mockEngine.AssertExpectations(t)
}

func TestHandleDecompile_EngineFailure(t *testing.T) {
	app, mockEngine := setupTestApp(t)

	mockEngine.On("Decompile", mock.Anything, sampleBytecode, uint8(203), true).
		Return("", assert.AnError)

	status, body := postBytecode(t, app, "/lua51/decompile", sampleBytecode)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, assert.AnError.Error(), body)
}

func TestHandleDecompile_EmptyResult(t *testing.T) {
	app, mockEngine := setupTestApp(t)

	mockEngine.On("Decompile", mock.Anything, sampleBytecode, uint8(203), true).
		Return("\n\n", nil)

	status, body := postBytecode(t, app, "/lua51/decompile", sampleBytecode)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Empty decompilation result", body)
}

func TestLoader(t *testing.T) {
	feature := lua51.NewFeature(new(mocks.Decompiler), true, zap.NewNop())

	assert.Equal(t, "lua51", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	disabled := lua51.NewFeature(new(mocks.Decompiler), false, zap.NewNop())
	assert.False(t, disabled.IsEnabled())
}
