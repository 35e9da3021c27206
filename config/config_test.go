// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/settle/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadWith(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, 1e-10, cfg.Epsilon)
	assert.False(t, cfg.ScaledTolerance)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.SkipInvalid)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.LoadWith(env.Options{Environment: map[string]string{
		"SETTLE_EPSILON":          "1e-6",
		"SETTLE_SCALED_TOLERANCE": "true",
		"SETTLE_PRECISION":        "-1",
		"SETTLE_LOG_LEVEL":        "debug",
		"SETTLE_LOG_FORMAT":       "json",
		"SETTLE_SKIP_INVALID":     "true",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Epsilon)
	assert.True(t, cfg.ScaledTolerance)
	assert.Equal(t, -1, cfg.Precision)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.SkipInvalid)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.LoadWith(env.Options{Environment: map[string]string{"SETTLE_PRECISION": "two"}})
	require.Error(t, err)

	_, err = config.LoadWith(env.Options{Environment: map[string]string{"SETTLE_EPSILON": "0"}})
	require.Error(t, err)
}

func TestLoad_FromProcessEnv(t *testing.T) {
	t.Setenv("SETTLE_PRECISION", "4")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Precision)
}
