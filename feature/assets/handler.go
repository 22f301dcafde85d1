package assets

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler serves asset requests from the storage origin.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the handler as the catch-all fallback.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.HandleAsset)
}

// HandleAsset streams the object backing the request path. Only GET and
// HEAD reach the storage origin; other methods fall out as not found, the
// same way an unmatched API route does.
func (h *Handler) HandleAsset(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
		return fiber.ErrNotFound
	}

	object := strings.TrimPrefix(c.Path(), "/")

	obj, info, err := h.service.Fetch(c.Context(), object)
	if errors.Is(err, ErrAssetNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	} else if ext := filepath.Ext(object); ext != "" {
		c.Type(ext)
	}

	return c.SendStream(obj, int(info.Size))
}
