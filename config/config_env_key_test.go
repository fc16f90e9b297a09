package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"fulfillment": map[string]any{
			"defaultSlotCapacity": 10,
			"taxRate":             0,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"jobs": map[string]any{
			"slotReset": map[string]any{"spec": ""},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "FULFILLMENT_DEFAULTSLOTCAPACITY", want: "fulfillment.defaultSlotCapacity"},
		{envKey: "FULFILLMENT_TAXRATE", want: "fulfillment.taxRate"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "JOBS_SLOTRESET_SPEC", want: "jobs.slotReset.spec"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "POSTGRES__SSLMODE", want: "postgres.sslMode"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  env: test
  serviceName: pizzahouse
  log:
    level: debug
http:
  port: 8080
fulfillment:
  timezone: UTC
  defaultSlotCapacity: 4
  slotLength: 30m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("FULFILLMENT_TAXRATE", "0.17")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.ApplyDefaults()

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "pizzahouse", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Fulfillment)
	assert.Equal(t, 4, cfg.Fulfillment.DefaultSlotCapacity)
	assert.Equal(t, 30*time.Minute, cfg.Fulfillment.SlotLength)
	assert.InDelta(t, 0.17, cfg.Fulfillment.TaxRate, 1e-9)
	assert.Equal(t, defaultSideEffectWorkers, cfg.SideEffects.Workers)
	assert.Equal(t, defaultSlotResetSpec, cfg.Jobs.SlotReset.Spec)
	assert.True(t, cfg.Jobs.SlotReset.Enabled)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
