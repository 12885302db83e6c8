package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/fitstreak/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(path, []byte("FITSTREAK_TEST_ADDR=:8081\nFITSTREAK_TEST_BURST=42\nFITSTREAK_TEST_RPS=2.5\nFITSTREAK_TEST_TIMEOUT=3s\nFITSTREAK_TEST_PROXY=true\n"), 0o600)
	require.NoError(t, err)
	t.Setenv("CONFIG_PATH", path)

	cfg := config.New()
	assert.Same(t, cfg, config.New())
	assert.Equal(t, ":8081", cfg.GetString("FITSTREAK_TEST_ADDR"))
	assert.Equal(t, "fallback", cfg.GetStringOr("FITSTREAK_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, cfg.GetInt("FITSTREAK_TEST_BURST", 1))
	assert.Equal(t, 7, cfg.GetInt("FITSTREAK_TEST_ADDR", 7))
	assert.Equal(t, 2.5, cfg.GetFloat("FITSTREAK_TEST_RPS", 1))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("FITSTREAK_TEST_TIMEOUT", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("FITSTREAK_TEST_MISSING", time.Second))
	assert.True(t, cfg.GetBool("FITSTREAK_TEST_PROXY", false))
	assert.False(t, cfg.GetBool("FITSTREAK_TEST_ADDR", false))
}
