// Package defillama is a typed client for the DefiLlama REST API: protocol TVL,
// token prices, stablecoins, yield pools, DEX and options volume, fees and revenue.
//
// Every operation is a method on Client taking a context first. Client.Async
// exposes the same operations as non-blocking calls.
package defillama

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Default service endpoints.
const (
	DefaultBaseURL        = "https://api.llama.fi"
	DefaultCoinsURL       = "https://coins.llama.fi"
	DefaultStablecoinsURL = "https://stablecoins.llama.fi"
	DefaultYieldsURL      = "https://yields.llama.fi"

	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "defillama-go"
)

// Config configures a Client. Host URLs are fixed for the lifetime of the client.
type Config struct {
	// BaseURL serves protocol, chain, volume and fee data.
	BaseURL string

	// CoinsURL serves token prices and blocks.
	CoinsURL string

	// StablecoinsURL serves stablecoin data.
	StablecoinsURL string

	// YieldsURL serves yield pools.
	YieldsURL string

	// Timeout bounds each request, including reading the body.
	// Ignored when HTTPClient is set.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// HTTPClient overrides the transport. Optional.
	HTTPClient *http.Client

	// Logger receives one debug line per request and a warning per failed call.
	// If nil, logging is discarded.
	Logger logrus.FieldLogger
}

// DefaultConfig returns a configuration pointing at the public service
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		CoinsURL:       DefaultCoinsURL,
		StablecoinsURL: DefaultStablecoinsURL,
		YieldsURL:      DefaultYieldsURL,
		Timeout:        DefaultTimeout,
		UserAgent:      DefaultUserAgent,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for _, h := range []struct{ name, raw string }{
		{"base URL", c.BaseURL},
		{"coins URL", c.CoinsURL},
		{"stablecoins URL", c.StablecoinsURL},
		{"yields URL", c.YieldsURL},
	} {
		name, raw := h.name, h.raw
		if raw == "" {
			return fmt.Errorf("%s is required", name)
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s must be http or https, got %q", name, raw)
		}
		if u.Host == "" {
			return fmt.Errorf("%s has no host: %q", name, raw)
		}
		if u.RawQuery != "" || u.Fragment != "" {
			return fmt.Errorf("%s must not carry a query or fragment: %q", name, raw)
		}
	}
	if c.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}
	return nil
}

// Client issues requests against the DefiLlama hosts. It is safe for concurrent use.
type Client struct {
	hosts      [hostCount]string
	httpClient *http.Client
	userAgent  string
	logger     logrus.FieldLogger

	closeOnce sync.Once
}

// NewClient creates a client. A nil config uses DefaultConfig.
// Returns an error if the configuration is invalid.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	c := &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}
	c.hosts[hostAPI] = strings.TrimRight(cfg.BaseURL, "/")
	c.hosts[hostCoins] = strings.TrimRight(cfg.CoinsURL, "/")
	c.hosts[hostStablecoins] = strings.TrimRight(cfg.StablecoinsURL, "/")
	c.hosts[hostYields] = strings.TrimRight(cfg.YieldsURL, "/")
	return c, nil
}

// Close releases idle pooled connections. Safe to call more than once.
// In-flight requests are not interrupted.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
	return nil
}

// Bool returns a pointer to v, for the tri-state flags of option structs.
func Bool(v bool) *bool {
	return &v
}
