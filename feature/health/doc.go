// Package health exposes the service liveness endpoint.
//
// The endpoint is registered unconditionally: deployments probe it to decide
// whether the process accepts traffic, independent of which decompilation
// dialects are enabled.
//
// # HTTP Endpoints
//
//   - GET /health : Returns 200 "OK" while the server is running.
package health
