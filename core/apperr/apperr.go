package apperr

import (
	"errors"
	"fmt"

	"decompile-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Kind classifies an error as caller-fixable or not.
type Kind int

const (
	// KindBadRequest marks errors the caller can fix (bad input).
	KindBadRequest Kind = iota
	// KindInternal marks errors the caller cannot fix from this layer's
	// point of view (engine failures, empty results).
	KindInternal
)

// Error is the classified error produced by the request handling path.
// The message is returned to the caller verbatim.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	if e.Kind == KindBadRequest {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// BadRequest returns a caller-fixable error.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// BadRequestf returns a caller-fixable error with a formatted message.
func BadRequestf(format string, a ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, a...)}
}

// Internal returns a server-side error.
func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg}
}

// Internalf returns a server-side error with a formatted message.
func Internalf(format string, a ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, a...)}
}

// Handler returns the Fiber error handler that renders classified errors as
// plain-text responses. Fiber's own errors (router 404s, body limit, ...)
// keep their status code; anything unrecognized is treated as internal.
// Server-side errors are logged at error severity, client errors are not.
func Handler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := err.Error()

		var e *Error
		var fe *fiber.Error
		switch {
		case errors.As(err, &e):
			status = e.Status()
			message = e.Message
		case errors.As(err, &fe):
			status = fe.Code
			message = fe.Message
		}

		if status >= fiber.StatusInternalServerError {
			logger.WithRayID(log, c).Error(message)
		}

		return c.Status(status).SendString(message)
	}
}
