package config_test

import (
	"testing"

	"decompile-server/core/config"
	"decompile-server/core/engine"
	"decompile-server/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.True(t, cfg.Server.Luau)
	assert.True(t, cfg.Server.Lua51)
	assert.Equal(t, "public", cfg.Server.AssetsDir)
	assert.Equal(t, "index.html", cfg.Server.IndexFile)
	assert.Equal(t, server.AssetSourceLocal, cfg.Server.AssetSource)
	assert.Equal(t, engine.ModeCommand, cfg.Engine.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9001")
	t.Setenv("SERVER_LUAU", "false")
	t.Setenv("SERVER_ASSET_SOURCE", "storage")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port)
	assert.False(t, cfg.Server.Luau)
	assert.True(t, cfg.Server.Lua51)
	assert.Equal(t, server.AssetSourceStorage, cfg.Server.AssetSource)
	assert.Equal(t, "debug", cfg.Log.Level)
}
