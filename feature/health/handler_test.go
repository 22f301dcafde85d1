package health_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"decompile-server/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleHealth(t *testing.T) {
	app := fiber.New()
	feature := health.NewFeature(zap.NewNop())

	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}
