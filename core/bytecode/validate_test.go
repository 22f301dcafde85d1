package bytecode_test

import (
	"bytes"
	"testing"

	"decompile-server/core/apperr"
	"decompile-server/core/bytecode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		wantMsg string
	}{
		{"Nil", nil, "No bytecode provided"},
		{"Empty", []byte{}, "No bytecode provided"},
		{"OneByte", []byte{0x1b}, "Bytecode too short (minimum 4 bytes)"},
		{"ThreeBytes", []byte{0x1b, 0x4c, 0x75}, "Bytecode too short (minimum 4 bytes)"},
		{"FourBytes", []byte{0x1b, 0x4c, 0x75, 0x61}, ""},
		{"Large", bytes.Repeat([]byte{0xaa}, 1024), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bytecode.Validate(tt.payload)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
		})
	}
}
