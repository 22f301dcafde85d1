package lua51

import (
	"context"
	"strings"

	"decompile-server/core/apperr"
	"decompile-server/core/engine"

	"go.uber.org/zap"
)

// Service runs Lua 5.1 decompilation requests through the engine.
type Service struct {
	engine engine.Decompiler
	logger *zap.Logger
}

// NewService creates a new Lua 5.1 service.
func NewService(eng engine.Decompiler, logger *zap.Logger) *Service {
	return &Service{engine: eng, logger: logger}
}

// Decompile forwards the bytecode to the engine in legacy mode and
// classifies the outcome the same way the Luau service does: engine failures
// and results that trim to nothing are internal errors, everything else is
// returned verbatim. The decode key is fixed for this dialect.
func (s *Service) Decompile(ctx context.Context, payload []byte) (string, error) {
	result, err := s.engine.Decompile(ctx, payload, engine.DefaultEncodeKey, true)
	if err != nil {
		return "", apperr.Internal(err.Error())
	}
	if strings.TrimSpace(result) == "" {
		return "", apperr.Internal("Empty decompilation result")
	}

	return result, nil
}
