// Package loader wires optional features into the Fiber application.
//
// A feature is anything that registers routes and can be switched on or off
// by configuration, such as a decompilation endpoint. Each one implements:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// Manager collects features via Register and mounts the enabled ones via
// LoadAll, skipping disabled ones. Loading happens in registration order, so
// route precedence follows registration; a catch-all feature such as the
// static asset fallback must be registered last.
//
// Keeping each endpoint behind this interface lets the luau and lua51
// features (and future dialects) be developed and tested in isolation.
package loader
