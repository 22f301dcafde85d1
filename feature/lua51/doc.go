// Package lua51 implements the Lua 5.1 bytecode decompilation feature.
//
// It mirrors the luau feature for the legacy dialect: a raw Lua 5.1 chunk in
// the request body is forwarded to the engine and the recovered source text
// is returned. Unlike Luau, the Lua 5.1 format has a single fixed decoding
// convention, so the endpoint takes no parameters; the engine is always
// invoked with the default decode key and the legacy flag set.
//
// # HTTP Endpoints
//
//   - POST /lua51/decompile : Decompile a Lua 5.1 bytecode chunk.
package lua51
