package lua51

import (
	"decompile-server/core/bytecode"
	"decompile-server/core/engine"
	"decompile-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for Lua 5.1 decompilation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the Lua 5.1 routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lua51")
	group.Post("/decompile", h.HandleDecompile)
}

// HandleDecompile decompiles a Lua 5.1 bytecode payload.
// @Summary Decompile Lua 5.1 Bytecode
// @Description Decompiles a raw Lua 5.1 bytecode chunk back into source text. The legacy format has one fixed decoding convention, so no parameters are accepted.
// @Tags lua51
// @Accept octet-stream
// @Produce plain
// @Param bytecode body string true "Raw Lua 5.1 bytecode"
// @Success 200 {string} string "Decompiled source text"
// @Failure 400 {string} string "Missing or malformed payload"
// @Failure 500 {string} string "Decompilation failed"
// @Router /lua51/decompile [post]
func (h *Handler) HandleDecompile(c *fiber.Ctx) error {
	body := c.Body()
	if err := bytecode.Validate(body); err != nil {
		return err
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Decompiling Lua 5.1 bytecode",
		zap.Int("size", len(body)),
		zap.Uint8("encode_key", engine.DefaultEncodeKey),
	)

	result, err := h.service.Decompile(c.Context(), body)
	if err != nil {
		return err
	}

	return c.SendString(result)
}
