package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(`
server:
  port: "8081"
payroll:
  generation_lease_ttl: 90s
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Payroll.GenerationLeaseTTL)
	assert.Equal(t, 8, cfg.Payroll.DefaultWorkingHoursPerDay)
	assert.Equal(t, 22, cfg.Payroll.DefaultWorkingDaysPerMonth)
	assert.Equal(t, "15 0 * * *", cfg.Scheduler.NightlySpec)
	assert.Equal(t, 20, cfg.Kafka.OutboxMaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Kafka.OutboxClaimLease)
	assert.Equal(t, 5, cfg.Kafka.ConsumerRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Kafka.ConsumerRetryBackoff)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"8081\"\n"), 0o600))
	t.Setenv("WF_SERVER_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: "3000"}}
	assert.Error(t, cfg.Validate())

	cfg.Payroll = PayrollConfig{GenerationLeaseTTL: time.Minute, DefaultWorkingHoursPerDay: 8, DefaultWorkingDaysPerMonth: 22}
	assert.NoError(t, cfg.Validate())
}
