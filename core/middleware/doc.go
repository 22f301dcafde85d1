// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// The permissive CORS policy is not defined here; it comes straight from
// Fiber's cors middleware and is configured in the serve command.
//
// These middleware components are designed to be registered globally or per-route group
// in the main application setup.
package middleware
