package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		port      string
		cacheCfg  CacheConfig
		separator string
		format    string
		wantErr   string
	}{
		{
			name:      "memory backend",
			port:      "8080",
			cacheCfg:  CacheConfig{Backend: BackendMemory},
			separator: " ",
			format:    "text",
		},
		{
			name:      "disk backend with dir",
			port:      "8080",
			cacheCfg:  CacheConfig{Backend: BackendDisk, Dir: "/tmp/countryflag"},
			separator: " ",
			format:    "json",
		},
		{
			name:      "disk backend missing dir",
			port:      "8080",
			cacheCfg:  CacheConfig{Backend: BackendDisk},
			separator: " ",
			format:    "text",
			wantErr:   "cache directory cannot be empty",
		},
		{
			name:      "redis backend with address",
			port:      "8080",
			cacheCfg:  CacheConfig{Backend: BackendRedis, RedisAddr: "localhost:6379"},
			separator: " ",
			format:    "csv",
		},
		{
			name:      "redis backend missing address",
			port:      "8080",
			cacheCfg:  CacheConfig{Backend: BackendRedis},
			separator: " ",
			format:    "text",
			wantErr:   "redis address cannot be empty",
		},
		{
			name:      "sqlite backend missing path",
			port:      "8080",
			cacheCfg:  CacheConfig{Backend: BackendSQLite},
			separator: " ",
			format:    "text",
			wantErr:   "sqlite path cannot be empty",
		},
		{
			name:      "unknown backend",
			port:      "8080",
			cacheCfg:  CacheConfig{Backend: "memcached"},
			separator: " ",
			format:    "text",
			wantErr:   "unknown cache backend",
		},
		{
			name:      "unknown format",
			port:      "8080",
			cacheCfg:  CacheConfig{Backend: BackendMemory},
			separator: " ",
			format:    "yaml",
			wantErr:   "unknown output format",
		},
		{
			name:      "empty port",
			port:      "",
			cacheCfg:  CacheConfig{Backend: BackendMemory},
			separator: " ",
			format:    "text",
			wantErr:   "server port cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.port, tt.cacheCfg, tt.separator, tt.format, false)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.port, cfg.Server.Port)
			assert.Equal(t, tt.cacheCfg.Backend, cfg.Cache.Backend)
			assert.Equal(t, tt.separator, cfg.Output.Separator)
			assert.Equal(t, tt.format, cfg.Output.Format)
		})
	}
}
