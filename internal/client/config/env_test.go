package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("environment overrides, unset keeps value", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("LOGINFLOW_LOG_LEVEL", "debug")
		t.Setenv("LOGINFLOW_LATENCY_LOGIN", "0s")
		t.Setenv("LOGINFLOW_ONLINE_CHECK_INTERVAL", "1m")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, time.Duration(0), cfg.Latency.Login)
		assert.Equal(t, 500*time.Millisecond, cfg.Latency.Logout)
		assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	})

	t.Run("dotenv file from flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("LOGINFLOW_STORE=sqlite\nLOGINFLOW_TOKEN_SECRET=s3cr3t\n"), 0o600))
		t.Cleanup(func() {
			_ = os.Unsetenv("LOGINFLOW_STORE")
			_ = os.Unsetenv("LOGINFLOW_TOKEN_SECRET")
		})
		os.Args = []string{"testbin", "-env-file", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, StoreSQLite, cfg.Store)
		assert.Equal(t, "s3cr3t", cfg.TokenSecret)
	})

	t.Run("malformed duration panics", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("LOGINFLOW_LATENCY_LOGOUT", "soon")

		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("missing dotenv file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-e", filepath.Join(t.TempDir(), "absent.env")}

		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
