package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"decompile-server/core/engine"
	"decompile-server/core/logger"
	"decompile-server/core/server"
	"decompile-server/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config aggregates the partial configurations of every subsystem.
type Config struct {
	// Server configures the HTTP front end and its endpoints.
	Server server.Config `mapstructure:"server"`
	// Engine configures the decompilation backend.
	Engine engine.Config `mapstructure:"engine"`
	// Storage configures the object store used as an asset origin.
	Storage storage.Config `mapstructure:"storage"`
	// Log configures the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig builds a Config from `default:` struct tags, a .env file in dir
// (when present) and process environment variables, in ascending precedence.
// Nested keys map to underscore-delimited variables, e.g. SERVER_PORT
// overrides server.port.
func LoadConfig(dir string) (*Config, error) {
	// Missing .env is fine; deployments usually rely on real env vars.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	setDefaults(v, reflect.TypeOf(Config{}), "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults walks the config struct and registers the `default:` tag of
// every mapstructure-tagged leaf. Registering the key (even with an empty
// value) is what makes AutomaticEnv pick the variable up during Unmarshal.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
