package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"3000"`
	// Luau enables the Luau decompilation endpoint.
	Luau bool `mapstructure:"luau" default:"true"`
	// Lua51 enables the Lua 5.1 decompilation endpoint.
	Lua51 bool `mapstructure:"lua51" default:"true"`
	// AssetsDir is the directory the static fallback serves files from.
	AssetsDir string `mapstructure:"assets_dir" default:"public"`
	// IndexFile is the default document served for the root path.
	IndexFile string `mapstructure:"index_file" default:"index.html"`
	// AssetSource selects where static assets come from (local, storage).
	AssetSource string `mapstructure:"asset_source" default:"local"`
}

const (
	AssetSourceLocal   = "local"
	AssetSourceStorage = "storage"
)

// IsValidAssetSource checks if the configured asset source is valid.
func (c Config) IsValidAssetSource() bool {
	switch c.AssetSource {
	case AssetSourceLocal, AssetSourceStorage:
		return true
	default:
		return false
	}
}

// HasDialect reports whether at least one decompilation endpoint is enabled.
// A server without any dialect only serves static assets and the health
// check, which is almost certainly a misconfiguration; the serve command
// refuses to start in that case.
func (c Config) HasDialect() bool {
	return c.Luau || c.Lua51
}

// Validate checks the mechanical parts of the configuration. Whether a
// dialect must be enabled is the caller's decision, see HasDialect.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid server port %d: must be between 1 and 65535", c.Port)
	}
	if !c.IsValidAssetSource() {
		return fmt.Errorf("invalid asset source %q: must be %q or %q", c.AssetSource, AssetSourceLocal, AssetSourceStorage)
	}
	return nil
}
