package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Decompiler is a mock implementation of engine.Decompiler
type Decompiler struct {
	mock.Mock
}

func (m *Decompiler) Decompile(ctx context.Context, bytecode []byte, encodeKey uint8, legacy bool) (string, error) {
	args := m.Called(ctx, bytecode, encodeKey, legacy)
	return args.String(0), args.Error(1)
}
