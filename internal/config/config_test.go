// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing, validation, and DSN assembly
package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/blogbench/internal/storage"
)

var envKeys = []string{
	"BLOGBENCH_DB_DRIVER", "BLOGBENCH_DB_DSN", "BLOGBENCH_DB_TIMEOUT",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_TIMEOUT", "BLOGBENCH_TEMPERATURE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, storage.SQLite, cfg.Dialect())
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 30*time.Second, cfg.DBTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)

	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "blogbench", "blogbench.db"), dsn)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLOGBENCH_DB_DRIVER", "dolt")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "bench")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "blogs")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("OPENAI_TIMEOUT", "45s")
	t.Setenv("BLOGBENCH_DB_TIMEOUT", "5s")
	t.Setenv("BLOGBENCH_TEMPERATURE", "0.2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, storage.MySQL, cfg.Dialect())
	assert.Equal(t, "test-key", cfg.OpenAIKey)
	assert.Equal(t, "http://localhost:11434/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)

	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "bench:pw@tcp(db.internal:3306)/blogs")
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "explicit sqlite path",
			cfg:  Config{DBDriver: "sqlite", DBDSN: "/tmp/bench.db"},
			want: "/tmp/bench.db",
		},
		{
			name: "explicit postgres dsn wins",
			cfg:  Config{DBDriver: "postgres", DBDSN: "postgres://x@y/z", DBName: "ignored"},
			want: "postgres://x@y/z",
		},
		{
			name: "postgres from parts with default port",
			cfg:  Config{DBDriver: "postgres", DBHost: "pg", DBUser: "u", DBName: "blogs"},
			want: "postgres://u@pg:5432/blogs",
		},
		{
			name: "postgres custom port",
			cfg:  Config{DBDriver: "postgresql", DBHost: "pg", DBPort: 6543, DBUser: "u", DBPassword: "p", DBName: "blogs"},
			want: "postgres://u:p@pg:6543/blogs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.DSN()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{DBDriver: "sqlite", Temperature: 0.7, Timeout: time.Minute, DBTimeout: time.Second}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }, true},
		{"mysql without database", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"mysql with dsn", func(c *Config) { c.DBDriver = "mysql"; c.DBDSN = "u@tcp(h)/d" }, false},
		{"port out of range", func(c *Config) { c.DBPort = 70000 }, true},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }, true},
		{"negative temperature", func(c *Config) { c.Temperature = -1 }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"zero timeouts allowed", func(c *Config) { c.Timeout = 0; c.DBTimeout = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("BB_TEST_INT", "nope")
	t.Setenv("BB_TEST_DURATION", "soon")
	t.Setenv("BB_TEST_FLOAT", "warm")

	assert.Equal(t, 7, getEnvInt("BB_TEST_INT", 7))
	assert.Equal(t, time.Second, getEnvDuration("BB_TEST_DURATION", time.Second))
	assert.InDelta(t, 1.5, getEnvFloat("BB_TEST_FLOAT", 1.5), 1e-9)
	assert.Equal(t, "fallback", getEnv("BB_TEST_MISSING", "fallback"))
}
