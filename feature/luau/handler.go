package luau

import (
	"strconv"

	"decompile-server/core/apperr"
	"decompile-server/core/bytecode"
	"decompile-server/core/engine"
	"decompile-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for Luau decompilation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the Luau routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/luau")
	group.Post("/decompile", h.HandleDecompile)
}

// HandleDecompile decompiles a Luau bytecode payload.
// @Summary Decompile Luau Bytecode
// @Description Decompiles a raw Luau bytecode chunk back into source text. The optional encode_key query parameter names the one-byte key the chunk was encoded with.
// @Tags luau
// @Accept octet-stream
// @Produce plain
// @Param encode_key query integer false "Decode key (0-255)" default(203)
// @Param bytecode body string true "Raw Luau bytecode"
// @Success 200 {string} string "Decompiled source text"
// @Failure 400 {string} string "Missing or malformed payload, or invalid encode_key"
// @Failure 500 {string} string "Decompilation failed"
// @Router /luau/decompile [post]
func (h *Handler) HandleDecompile(c *fiber.Ctx) error {
	body := c.Body()
	if err := bytecode.Validate(body); err != nil {
		return err
	}

	encodeKey, err := resolveEncodeKey(c.Query("encode_key"))
	if err != nil {
		return err
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Decompiling Luau bytecode",
		zap.Int("size", len(body)),
		zap.Uint8("encode_key", encodeKey),
	)

	result, err := h.service.Decompile(c.Context(), body, encodeKey)
	if err != nil {
		return err
	}

	return c.SendString(result)
}

// resolveEncodeKey parses the optional encode_key query value, falling back
// to the engine default when it is absent.
func resolveEncodeKey(raw string) (uint8, error) {
	if raw == "" {
		return engine.DefaultEncodeKey, nil
	}

	key, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, apperr.BadRequestf("Invalid encode_key %q: expected an integer between 0 and 255", raw)
	}

	return uint8(key), nil
}
