package config_test

import (
	"testing"
	"time"

	"github.com/ecom-labs/order-total-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	conf := config.New()

	assert.Equal(t, "8002", conf.Http.Port)
	assert.Equal(t, "0.0.0.0", conf.Http.Host)
	assert.Equal(t, "http://localhost:8001/find_rate", conf.RateService.URL)
	assert.Equal(t, 5*time.Second, conf.RateService.Timeout)
	assert.Equal(t, []string{"*"}, conf.Cors.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, conf.Cors.AllowedMethods)
	assert.Equal(t, []string{"api", "Keep-Alive", "User-Agent", "Content-Type"}, conf.Cors.AllowedHeaders)

	require.NoError(t, conf.Validate())
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9002")
	t.Setenv("SALES_TAX_RATE_SERVICE", "http://rates.internal:8001/find_rate")
	t.Setenv("RATE_SERVICE_TIMEOUT", "2s")

	conf := config.New()

	assert.Equal(t, "production", conf.Env)
	assert.Equal(t, "9002", conf.Http.Port)
	assert.Equal(t, "http://rates.internal:8001/find_rate", conf.RateService.URL)
	assert.Equal(t, 2*time.Second, conf.RateService.Timeout)

	require.NoError(t, conf.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("unknown env rejected", func(t *testing.T) {
		t.Setenv("ENV", "weird")
		conf := config.New()
		assert.Error(t, conf.Validate())
	})

	t.Run("bad rate service url rejected", func(t *testing.T) {
		t.Setenv("SALES_TAX_RATE_SERVICE", "not a url")
		conf := config.New()
		assert.Error(t, conf.Validate())
	})

	t.Run("bad timeout falls back to default", func(t *testing.T) {
		t.Setenv("RATE_SERVICE_TIMEOUT", "soon")
		conf := config.New()
		assert.Equal(t, 5*time.Second, conf.RateService.Timeout)
	})
}
