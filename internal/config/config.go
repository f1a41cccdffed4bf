// Package config provides configuration management for the llama command.
// It loads configuration from an optional YAML file, .env files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/caentzminger/defillama"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig holds the service endpoints and HTTP settings
type APIConfig struct {
	URL            string        `yaml:"url"`
	CoinsURL       string        `yaml:"coins_url"`
	StablecoinsURL string        `yaml:"stablecoins_url"`
	YieldsURL      string        `yaml:"yields_url"`
	Timeout        time.Duration `yaml:"timeout"`
	UserAgent      string        `yaml:"user_agent"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	client := defillama.DefaultConfig()
	return &Config{
		API: APIConfig{
			URL:            client.BaseURL,
			CoinsURL:       client.CoinsURL,
			StablecoinsURL: client.StablecoinsURL,
			YieldsURL:      client.YieldsURL,
			Timeout:        client.Timeout,
			UserAgent:      client.UserAgent,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from .env file, the YAML file named by
// LLAMA_CONFIG_FILE and environment variables, in increasing precedence.
func LoadConfig() (*Config, error) {
	// Load .env file (optional)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	config := Default()

	if path := getEnv("LLAMA_CONFIG_FILE", ""); path != "" {
		if err := loadFile(path, config); err != nil {
			return nil, err
		}
	}

	config.API = APIConfig{
		URL:            getEnv("LLAMA_API_URL", config.API.URL),
		CoinsURL:       getEnv("LLAMA_COINS_URL", config.API.CoinsURL),
		StablecoinsURL: getEnv("LLAMA_STABLECOINS_URL", config.API.StablecoinsURL),
		YieldsURL:      getEnv("LLAMA_YIELDS_URL", config.API.YieldsURL),
		Timeout:        getEnvAsDuration("LLAMA_TIMEOUT", config.API.Timeout),
		UserAgent:      getEnv("LLAMA_USER_AGENT", config.API.UserAgent),
	}
	config.Logging = LoggingConfig{
		Level:      getEnv("LOG_LEVEL", config.Logging.Level),
		Format:     getEnv("LOG_FORMAT", config.Logging.Format),
		File:       getEnv("LOG_FILE", config.Logging.File),
		MaxSizeMB:  getEnvAsInt("LOG_FILE_MAX_SIZE_MB", config.Logging.MaxSizeMB),
		MaxBackups: getEnvAsInt("LOG_FILE_MAX_BACKUPS", config.Logging.MaxBackups),
	}

	return config, nil
}

// loadFile overlays the YAML file at path onto config. Keys absent from the file keep their values.
func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return nil
}

// ClientConfig converts the API section into a client configuration
func (c *Config) ClientConfig() *defillama.Config {
	cfg := defillama.DefaultConfig()
	cfg.BaseURL = c.API.URL
	cfg.CoinsURL = c.API.CoinsURL
	cfg.StablecoinsURL = c.API.StablecoinsURL
	cfg.YieldsURL = c.API.YieldsURL
	cfg.Timeout = c.API.Timeout
	cfg.UserAgent = c.API.UserAgent
	return cfg
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration with a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
