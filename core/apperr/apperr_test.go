package apperr_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"decompile-server/core/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestError_Status(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, apperr.BadRequest("nope").Status())
	assert.Equal(t, fiber.StatusInternalServerError, apperr.Internal("boom").Status())
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "No bytecode provided", apperr.BadRequest("No bytecode provided").Error())
	assert.Equal(t, "key 77 rejected", apperr.BadRequestf("key %d rejected", 77).Error())
	assert.Equal(t, "engine exploded", apperr.Internalf("engine %s", "exploded").Error())
}

func setupApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.Handler(zap.New(core)),
	})
	return app, logs
}

func TestHandler_BadRequest(t *testing.T) {
	app, logs := setupApp(t)
	app.Get("/", func(c *fiber.Ctx) error {
		return apperr.BadRequest("No bytecode provided")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No bytecode provided", string(body))
	// Client errors are never logged at error severity.
	assert.Zero(t, logs.Len())
}

func TestHandler_Internal(t *testing.T) {
	app, logs := setupApp(t)
	app.Get("/", func(c *fiber.Ctx) error {
		return apperr.Internal("Empty decompilation result")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Empty decompilation result", string(body))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Empty decompilation result", logs.All()[0].Message)
}

func TestHandler_FiberError(t *testing.T) {
	app, logs := setupApp(t)
	app.Get("/", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Zero(t, logs.Len())
}

func TestHandler_UnknownError(t *testing.T) {
	app, logs := setupApp(t)
	app.Get("/", func(c *fiber.Ctx) error {
		return errors.New("something unexpected")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "something unexpected", string(body))
	assert.Equal(t, 1, logs.Len())
}
