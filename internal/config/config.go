package config

import "fmt"

// Supported cache backend names
const (
	BackendMemory = "memory"
	BackendDisk   = "disk"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig
	Cache   CacheConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// CacheConfig selects and parameterizes the cache backend
type CacheConfig struct {
	// Backend is one of memory, disk, redis, sqlite
	Backend string

	// Dir is the cache directory for the disk backend
	Dir string

	// RedisAddr is the host:port for the redis backend
	RedisAddr string

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string
}

// OutputConfig holds formatting defaults
type OutputConfig struct {
	Separator string
	Format    string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Verbose bool
}

// New creates a new config with the given parameters
func New(port string, cacheCfg CacheConfig, separator, format string, verbose bool) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: port,
		},
		Cache: cacheCfg,
		Output: OutputConfig{
			Separator: separator,
			Format:    format,
		},
		Logging: LoggingConfig{
			Verbose: verbose,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func (c *Config) validate() error {
	switch c.Cache.Backend {
	case BackendMemory:
	case BackendDisk:
		if c.Cache.Dir == "" {
			return fmt.Errorf("cache directory cannot be empty for the disk backend")
		}
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("redis address cannot be empty for the redis backend")
		}
	case BackendSQLite:
		if c.Cache.SQLitePath == "" {
			return fmt.Errorf("sqlite path cannot be empty for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown cache backend: %s", c.Cache.Backend)
	}

	switch c.Output.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unknown output format: %s", c.Output.Format)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	return nil
}
