package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_http": ":9000",
		"endpoint_addr_grpc": ":9001",
		"db_host":            "db",
		"db_port":            6432,
		"db_user":            "u",
		"db_password":        "p",
		"db_name":            "n",
		"max_conns":          3,
		"acquire_timeout":    "1s",
		"bcrypt_cost":        11,
		"run_migrations":     false,
		"shutdown_timeout":   "30s",
		"log_level":          "warn",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, ":9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, ":9001", cfg.EndpointAddrGRPC)
		assert.Equal(t, "db", cfg.DBHost)
		assert.Equal(t, 6432, cfg.DBPort)
		assert.Equal(t, "u", cfg.DBUser)
		assert.Equal(t, "p", cfg.DBPassword)
		assert.Equal(t, "n", cfg.DBName)
		assert.Equal(t, "disable", cfg.DBSSLMode, "absent keys keep defaults")
		assert.Equal(t, 3, cfg.MaxConns)
		assert.Equal(t, time.Second, cfg.AcquireTimeout)
		assert.Equal(t, 11, cfg.BcryptCost)
		assert.False(t, cfg.RunMigrations)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrHTTP: ":1234", MaxConns: 7}
		parseJson(cfg)

		assert.Equal(t, ":1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, 7, cfg.MaxConns)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
