package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.False(t, opts.AllowNested)
	assert.False(t, opts.AllowNakedNames)
	assert.True(t, opts.CitationClearing)
	assert.True(t, opts.DisallowUnqualifiedTranslocations)
	assert.Empty(t, opts.RequiredAnnotations)
}

func TestLoadGlobal_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BELC_CACHE_DIR", "/tmp/belc-test-cache")
	t.Setenv("BELC_HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("BELC_RATE_LIMIT_HZ", "2.5")

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/belc-test-cache", cfg.CacheDir)
	assert.Equal(t, float64(2.5), cfg.RateLimitHz)
}
