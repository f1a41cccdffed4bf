package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	// Set some test environment variables
	if err := os.Setenv("LLAMA_COINS_URL", "http://localhost:9999"); err != nil {
		t.Fatalf("Failed to set LLAMA_COINS_URL: %v", err)
	}
	if err := os.Setenv("LLAMA_TIMEOUT", "5s"); err != nil {
		t.Fatalf("Failed to set LLAMA_TIMEOUT: %v", err)
	}
	if err := os.Setenv("LOG_LEVEL", "debug"); err != nil {
		t.Fatalf("Failed to set LOG_LEVEL: %v", err)
	}
	defer func() {
		_ = os.Unsetenv("LLAMA_COINS_URL")
		_ = os.Unsetenv("LLAMA_TIMEOUT")
		_ = os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.API.CoinsURL != "http://localhost:9999" {
		t.Errorf("API.CoinsURL = %v, want %v", cfg.API.CoinsURL, "http://localhost:9999")
	}

	if cfg.API.URL != "https://api.llama.fi" {
		t.Errorf("API.URL = %v, want %v", cfg.API.URL, "https://api.llama.fi")
	}

	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, 5*time.Second)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want %v", cfg.Logging.Level, "debug")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llama.yaml")
	content := []byte("api:\n  yields_url: http://yields.test\n  timeout: 45s\nlogging:\n  format: json\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("LLAMA_CONFIG_FILE", path)
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.API.YieldsURL != "http://yields.test" {
		t.Errorf("API.YieldsURL = %v, want %v", cfg.API.YieldsURL, "http://yields.test")
	}
	if cfg.API.Timeout != 45*time.Second {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, 45*time.Second)
	}
	if cfg.API.StablecoinsURL != "https://stablecoins.llama.fi" {
		t.Errorf("API.StablecoinsURL = %v, want default", cfg.API.StablecoinsURL)
	}
	// environment wins over the file
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %v, want %v", cfg.Logging.Format, "text")
	}

	client := cfg.ClientConfig()
	if client.YieldsURL != "http://yields.test" || client.Timeout != 45*time.Second {
		t.Errorf("ClientConfig() = %+v, want file values", client)
	}
	if err := client.Validate(); err != nil {
		t.Errorf("ClientConfig().Validate() error = %v", err)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	t.Setenv("LLAMA_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("api: [unclosed"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("LLAMA_CONFIG_FILE", path)
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() expected error for malformed file")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
	}{
		{
			name:         "returns environment variable when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
		},
		{
			name:         "returns default when environment variable not set",
			key:          "NONEXISTENT_KEY",
			defaultValue: "default",
			envValue:     "",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				if err := os.Setenv(tt.key, tt.envValue); err != nil {
					t.Fatalf("Failed to set env var: %v", err)
				}
				defer func() {
					_ = os.Unsetenv(tt.key)
				}()
			}

			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue int
		envValue     string
		want         int
	}{
		{
			name:         "returns integer when valid",
			key:          "TEST_INT",
			defaultValue: 100,
			envValue:     "200",
			want:         200,
		},
		{
			name:         "returns default when invalid",
			key:          "TEST_INT_INVALID",
			defaultValue: 100,
			envValue:     "invalid",
			want:         100,
		},
		{
			name:         "returns default when not set",
			key:          "TEST_INT_NOTSET",
			defaultValue: 100,
			envValue:     "",
			want:         100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				if err := os.Setenv(tt.key, tt.envValue); err != nil {
					t.Fatalf("Failed to set env var: %v", err)
				}
				defer func() {
					_ = os.Unsetenv(tt.key)
				}()
			}

			got := getEnvAsInt(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvAsInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue time.Duration
		envValue     string
		want         time.Duration
	}{
		{
			name:         "returns duration when valid",
			key:          "TEST_DURATION",
			defaultValue: 10 * time.Second,
			envValue:     "30s",
			want:         30 * time.Second,
		},
		{
			name:         "returns default when invalid",
			key:          "TEST_DURATION_INVALID",
			defaultValue: 10 * time.Second,
			envValue:     "invalid",
			want:         10 * time.Second,
		},
		{
			name:         "returns default when not set",
			key:          "TEST_DURATION_NOTSET",
			defaultValue: 10 * time.Second,
			envValue:     "",
			want:         10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				if err := os.Setenv(tt.key, tt.envValue); err != nil {
					t.Fatalf("Failed to set env var: %v", err)
				}
				defer func() {
					_ = os.Unsetenv(tt.key)
				}()
			}

			got := getEnvAsDuration(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvAsDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
