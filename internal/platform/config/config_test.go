// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/plusgroup/internal/platform/config"
)

/*
TestLoad_Defaults verifies the zero-environment configuration.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v2", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "default", cfg.TokenAccount)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.DefaultQuery)
}

/*
TestLoad_FromEnvironment verifies overrides, including the map-valued default query.
*/
func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PLUS_BASE_URL", "https://plus.example.com/api/v2")
	t.Setenv("PLUS_REQUEST_TIMEOUT", "3s")
	t.Setenv("PLUS_DEFAULT_QUERY", "lang:zh,platform:h5")
	t.Setenv("PLUS_RATE_LIMIT_RPS", "5")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://plus.example.com/api/v2", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, map[string]string{"lang": "zh", "platform": "h5"}, cfg.DefaultQuery)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
}

/*
TestLoad_Invalid rejects values that would make the transport unusable.
*/
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"relative_base_url", "PLUS_BASE_URL", "/api/v2"},
		{"zero_timeout", "PLUS_REQUEST_TIMEOUT", "0s"},
		{"negative_rps", "PLUS_RATE_LIMIT_RPS", "-1"},
		{"unparseable_timeout", "PLUS_REQUEST_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
