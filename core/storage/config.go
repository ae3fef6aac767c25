package storage

// Config holds configuration for the S3-compatible object store used by the object cache backend.
type Config struct {
	// Endpoint is host:port of the MinIO or S3 service.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives one object per persisted cache. It is created on first use.
	Bucket string `mapstructure:"bucket" default:"static-data"`
	// Region is used when the bucket has to be created (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, the TLS handshake and waiting for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
