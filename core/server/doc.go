// Package server holds the HTTP server configuration and constants.
//
// While the serve command handles the actual startup, this package defines
// the configuration structure and valid values for server settings, such as
// which decompilation dialects are exposed and where static assets come from.
//
// # Configuration
//
// The Config struct defines the HTTP port, the Luau and Lua 5.1 endpoint
// flags, and the static asset settings (directory, default document, source).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command to validate the configuration before the
// router is built.
package server
