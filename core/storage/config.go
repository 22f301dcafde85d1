package storage

// Config holds the connection settings for the object store that backs the
// static asset fallback when server.asset_source is "storage".
type Config struct {
	// Endpoint is the host:port of the store; an http:// or https:// scheme
	// prefix is tolerated and stripped.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey authenticates the client.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey authenticates the client.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the published assets.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// Region of the bucket, for S3-compatible stores that require one.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
