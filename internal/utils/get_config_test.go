package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig_Defaults(t *testing.T) {
	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"127.0.0.1:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, time.Second, cfg.Limiter.Expiration)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestReadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
database:
  driver: mysql
  port: "3306"
kafka:
  enabled: true
  topic: orders
limiter:
  expiration: 5s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Setenv("GROENEWEIDE_DATABASE_NAME", "lockers")

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "lockers", cfg.Database.Name)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, "orders", cfg.Kafka.Topic)
	assert.Equal(t, 5*time.Second, cfg.Limiter.Expiration)
}

func TestReadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("database: [unclosed"), 0o600))

	_, err := ReadConfig(dir)
	assert.Error(t, err)
}
