package luau

import (
	"context"
	"strings"

	"decompile-server/core/apperr"
	"decompile-server/core/engine"

	"go.uber.org/zap"
)

// Service runs Luau decompilation requests through the engine.
type Service struct {
	engine engine.Decompiler
	logger *zap.Logger
}

// NewService creates a new Luau service.
func NewService(eng engine.Decompiler, logger *zap.Logger) *Service {
	return &Service{engine: eng, logger: logger}
}

// Decompile forwards the bytecode to the engine with the given encode key
// and classifies the outcome. Engine failures surface as internal errors
// with the engine's message; a result that trims to nothing is also an
// internal error, since a well-formed decompilation of non-trivial bytecode
// is never empty text. Successful results are returned verbatim.
func (s *Service) Decompile(ctx context.Context, payload []byte, encodeKey uint8) (string, error) {
	result, err := s.engine.Decompile(ctx, payload, encodeKey, false)
	if err != nil {
		return "", apperr.Internal(err.Error())
	}
	if strings.TrimSpace(result) == "" {
		return "", apperr.Internal("Empty decompilation result")
	}

	return result, nil
}
