package configs

import (
	"time"

	"github.com/docker/go-units"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Analytics   AnalyticsConfig   `mapstructure:"analytics" validate:"required"`
	Sessions    SessionsConfig    `mapstructure:"sessions" validate:"required"`
	Beacon      BeaconConfig      `mapstructure:"beacon" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int      `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int      `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int      `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int      `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	AllowedOrigins    []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// AnalyticsConfig describes the remote analytics endpoints and payload limits.
type AnalyticsConfig struct {
	DefaultHost      string `mapstructure:"default_host" validate:"required,hostname_port|hostname"`
	Scheme           string `mapstructure:"scheme" validate:"required,oneof=https http"`
	AdapterVersion   string `mapstructure:"adapter_version" validate:"required"`
	FrameworkVersion string `mapstructure:"framework_version" validate:"required"`
	MaxBatchSize     string `mapstructure:"max_batch_size" validate:"required"` // e.g. "64KiB"
}

// MaxBatchBytes parses MaxBatchSize using binary multipliers.
func (c AnalyticsConfig) MaxBatchBytes() (int64, error) {
	return units.RAMInBytes(c.MaxBatchSize)
}

// SessionsConfig bounds the in-memory session cache.
type SessionsConfig struct {
	MaxSessions int           `mapstructure:"max_sessions" validate:"required,min=1"`
	IdleTTL     time.Duration `mapstructure:"idle_ttl" validate:"required"`
}

// BeaconConfig holds the outbound beacon transport configuration.
type BeaconConfig struct {
	Partitions  int    `mapstructure:"partitions" validate:"required,min=1,max=64"`
	Buffer      int    `mapstructure:"buffer" validate:"required,min=1"`
	Timeout     int    `mapstructure:"timeout" validate:"required,min=1"` // seconds
	Compression string `mapstructure:"compression" validate:"omitempty,oneof=none gzip"`
}
