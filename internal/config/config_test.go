package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteelite/solgate/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AllowSecretSigning)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.False(t, cfg.AuditEnabled())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"SOLGATE_ADDR=127.0.0.1:9000\n"+
			"SOLGATE_ALLOW_SECRET_SIGNING=true\n"+
			"SOLGATE_KAFKA_BROKERS=k1:9092;k2:9092\n"+
			"SOLGATE_KAFKA_TOPIC=instructions\n"), 0o600))
	for _, key := range []string{"SOLGATE_ADDR", "SOLGATE_ALLOW_SECRET_SIGNING", "SOLGATE_KAFKA_BROKERS", "SOLGATE_KAFKA_TOPIC"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.True(t, cfg.AllowSecretSigning)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.AuditEnabled())
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SOLGATE_ADDR=127.0.0.1:9000\n"), 0o600))
	t.Setenv("SOLGATE_ADDR", ":4000")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Addr)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	bad := cfg
	bad.KafkaBrokers = []string{"k1:9092"}
	bad.KafkaTopic = ""
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.MaxBodyBytes = 0
	assert.Error(t, bad.Validate())
}
