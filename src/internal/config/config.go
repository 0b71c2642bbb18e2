// FILE: src/internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

type Config struct {
	// Logger name stamped on every event produced by this process
	LoggerName string `toml:"logger_name"`

	// Ordered output properties; declaration order is output order
	Properties []PropertyConfig `toml:"properties"`

	// Seed values for the variable store
	Variables map[string]string `toml:"variables"`

	// Optional ceiling on rendered lines per second
	RateLimit *RateLimitConfig `toml:"rate_limit"`

	Sinks   SinksConfig `toml:"sinks"`
	Logging *LogConfig  `toml:"logging"`
}

// PropertyConfig declares one named, template-driven output field
type PropertyConfig struct {
	Name     string `toml:"name"`
	Template string `toml:"template"`
}

type RateLimitConfig struct {
	// Lines per second, 0 disables limiting
	Rate float64 `toml:"rate"`

	// Burst capacity, defaults to rate when unset
	Burst int64 `toml:"burst"`
}

type SinksConfig struct {
	Console    *ConsoleSinkOptions    `toml:"console"`
	File       *FileSinkOptions       `toml:"file"`
	Memory     *MemorySinkOptions     `toml:"memory"`
	HTTPClient *HTTPClientSinkOptions `toml:"http_client"`
	TCPServer  *TCPSinkOptions        `toml:"tcp_server"`
}

func defaults() *Config {
	return &Config{
		LoggerName: "loglayout",
		Sinks: SinksConfig{
			Console: &ConsoleSinkOptions{
				Enabled:    true,
				Target:     "stdout",
				BufferSize: 1000,
			},
		},
		Logging: DefaultLogConfig(),
	}
}

// Load builds the configuration from defaults, the config file, the
// environment and CLI arguments, in ascending precedence.
func Load(cliArgs []string) (*Config, error) {
	configPath := GetConfigPath()

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("LOGLAYOUT_").
		WithFile(configPath).
		WithArgs(cliArgs).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig, ""); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	return finalConfig, finalConfig.Validate()
}

func GetConfigPath() string {
	if configFile := os.Getenv("LOGLAYOUT_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("LOGLAYOUT_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("LOGLAYOUT_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "loglayout.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "loglayout.toml")
	}

	return "loglayout.toml"
}
