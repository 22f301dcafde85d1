// Package luau implements the Luau bytecode decompilation feature.
//
// It exposes a single endpoint that accepts a raw Luau bytecode chunk in the
// request body, forwards it to the decompilation engine and returns the
// recovered source text. Luau bytecode is commonly distributed XOR-encoded
// with a one-byte key; the endpoint accepts the key as an optional query
// parameter and falls back to the conventional default when it is absent.
//
// # Components
//
//   - Service: Forwards validated payloads to the engine and classifies the
//     outcome (engine failures and empty results are internal errors).
//   - Handler: Validates the request, resolves the encode key and renders
//     the decompiled source as plain text.
//   - Loader: Registers the feature when the Luau endpoint is enabled.
//
// # HTTP Endpoints
//
//   - POST /luau/decompile : Decompile a Luau bytecode chunk (optional
//     ?encode_key=N, 0-255, default 203).
package luau
