package defillama

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://api.llama.fi", cfg.BaseURL)
	assert.Equal(t, "https://coins.llama.fi", cfg.CoinsURL)
	assert.Equal(t, "https://stablecoins.llama.fi", cfg.StablecoinsURL)
	assert.Equal(t, "https://yields.llama.fi", cfg.YieldsURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing base URL", func(c *Config) { c.BaseURL = "" }, "base URL is required"},
		{"unsupported scheme", func(c *Config) { c.CoinsURL = "ftp://coins.llama.fi" }, "coins URL must be http or https"},
		{"no host", func(c *Config) { c.YieldsURL = "https://" }, "yields URL has no host"},
		{"query string", func(c *Config) { c.StablecoinsURL = "https://stablecoins.llama.fi?x=1" }, "must not carry a query"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewClient(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		c, err := NewClient(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, c.hosts[hostAPI])
		assert.Equal(t, DefaultYieldsURL, c.hosts[hostYields])
		assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
		assert.Equal(t, DefaultUserAgent, c.userAgent)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BaseURL = "not a url"
		_, err := NewClient(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("trims trailing slashes and keeps custom http client", func(t *testing.T) {
		hc := &http.Client{Timeout: time.Second}
		cfg := DefaultConfig()
		cfg.CoinsURL = "http://localhost:8080/coins/"
		cfg.HTTPClient = hc
		cfg.UserAgent = ""

		c, err := NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/coins", c.hosts[hostCoins])
		assert.Same(t, hc, c.httpClient)
		assert.Equal(t, DefaultUserAgent, c.userAgent)
	})
}

func TestCloseIsIdempotent(t *testing.T) {
	c, err := NewClient(nil)
	require.NoError(t, err)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestBool(t *testing.T) {
	assert.True(t, *Bool(true))
	assert.False(t, *Bool(false))
}
