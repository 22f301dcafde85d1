// Package engine abstracts the decompilation engine the service forwards
// bytecode to. The front end treats the engine as an opaque collaborator:
// it hands over the raw payload, a one-byte decode key and a legacy-dialect
// flag, and receives back either the decompiled source text or an error.
//
// # Engine Contract
//
// Both adapters speak the same convention: bytecode on stdin, "--key N" plus
// an optional "--legacy" flag as arguments, decompiled source on stdout and
// a failure reason on stderr with a non-zero exit.
//
// # Adapters
//
//   - CommandEngine: runs a decompiler binary installed next to the service.
//   - WasmEngine: hosts a decompiler compiled to WebAssembly (WASI) inside
//     the process, instantiated per request from a module compiled once at
//     startup.
//
// The Decompiler interface makes handlers independent of the adapter in use
// and is mocked in core/engine/mocks for tests.
package engine
