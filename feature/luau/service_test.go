package luau_test

import (
	"context"
	"errors"
	"testing"

	"decompile-server/core/apperr"
	"decompile-server/core/engine/mocks"
	"decompile-server/feature/luau"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Decompile(t *testing.T) {
	ctx := context.Background()

	t.Run("VerbatimResult", func(t *testing.T) {
		mockEngine := new(mocks.Decompiler)
		mockEngine.On("Decompile", mock.Anything, sampleBytecode, uint8(203), false).
			Return("\nlocal ok = true\n", nil)

		svc := luau.NewService(mockEngine, zap.NewNop())
		result, err := svc.Decompile(ctx, sampleBytecode, 203)

		require.NoError(t, err)
		// Surrounding whitespace is preserved; trimming is only an
		// emptiness check, not a transformation.
		assert.Equal(t, "\nlocal ok = true\n", result)
	})

	t.Run("EngineFailure", func(t *testing.T) {
		mockEngine := new(mocks.Decompiler)
		mockEngine.On("Decompile", mock.Anything, sampleBytecode, uint8(13), false).
			Return("", errors.New("invalid chunk header"))

		svc := luau.NewService(mockEngine, zap.NewNop())
		_, err := svc.Decompile(ctx, sampleBytecode, 13)

		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperr.KindInternal, appErr.Kind)
		assert.Equal(t, "invalid chunk header", appErr.Message)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		mockEngine := new(mocks.Decompiler)
		mockEngine.On("Decompile", mock.Anything, sampleBytecode, uint8(203), false).
			Return("", nil)

		svc := luau.NewService(mockEngine, zap.NewNop())
		_, err := svc.Decompile(ctx, sampleBytecode, 203)

		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperr.KindInternal, appErr.Kind)
		assert.Equal(t, "Empty decompilation result", appErr.Message)
	})
}
