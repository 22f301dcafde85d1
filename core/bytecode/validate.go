// Package bytecode holds the payload checks performed before a request is
// handed to the decompilation engine. The checks are format-agnostic; they
// reject obviously malformed input without understanding either bytecode
// dialect.
package bytecode

import "decompile-server/core/apperr"

// MinLength is the smallest payload the service will forward to the engine.
// Anything shorter cannot be a valid chunk in either dialect.
const MinLength = 4

// Validate checks an inbound bytecode payload. It returns a BadRequest
// error for empty or too-short payloads and nil otherwise.
func Validate(payload []byte) error {
	if len(payload) == 0 {
		return apperr.BadRequest("No bytecode provided")
	}
	if len(payload) < MinLength {
		return apperr.BadRequestf("Bytecode too short (minimum %d bytes)", MinLength)
	}
	return nil
}
