// FILE: src/internal/config/validation_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		LoggerName: "app",
		Properties: []PropertyConfig{
			{Name: "zone", Template: "${var:zone}"},
		},
		Sinks: SinksConfig{
			Console: &ConsoleSinkOptions{Enabled: true, Target: "stdout"},
		},
		Logging: DefaultLogConfig(),
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "Valid",
			mutate: func(*Config) {},
		},
		{
			name: "DuplicatePropertyNamesAllowed",
			mutate: func(c *Config) {
				c.Properties = append(c.Properties, PropertyConfig{Name: "zone", Template: "x"})
			},
		},
		{
			name:    "EmptyLoggerName",
			mutate:  func(c *Config) { c.LoggerName = "" },
			wantErr: "logger_name",
		},
		{
			name: "EmptyPropertyName",
			mutate: func(c *Config) {
				c.Properties[0].Name = "  "
			},
			wantErr: "missing name",
		},
		{
			name: "UnterminatedTemplate",
			mutate: func(c *Config) {
				c.Properties[0].Template = "${var:zone"
			},
			wantErr: "invalid template",
		},
		{
			name: "NoSinksEnabled",
			mutate: func(c *Config) {
				c.Sinks.Console.Enabled = false
			},
			wantErr: "no sinks enabled",
		},
		{
			name: "BadConsoleTarget",
			mutate: func(c *Config) {
				c.Sinks.Console.Target = "serial"
			},
			wantErr: "invalid target",
		},
		{
			name: "HTTPClientMissingURL",
			mutate: func(c *Config) {
				c.Sinks.HTTPClient = &HTTPClientSinkOptions{Enabled: true}
			},
			wantErr: "missing url",
		},
		{
			name: "HTTPClientBadScheme",
			mutate: func(c *Config) {
				c.Sinks.HTTPClient = &HTTPClientSinkOptions{Enabled: true, URL: "ftp://host"}
			},
			wantErr: "invalid url scheme",
		},
		{
			name: "TCPServerBadPort",
			mutate: func(c *Config) {
				c.Sinks.TCPServer = &TCPSinkOptions{Enabled: true, Port: 70000}
			},
			wantErr: "invalid port",
		},
		{
			name: "NegativeRate",
			mutate: func(c *Config) {
				c.RateLimit = &RateLimitConfig{Rate: -1}
			},
			wantErr: "cannot be negative",
		},
		{
			name: "BadLogLevel",
			mutate: func(c *Config) {
				c.Logging.Level = "verbose"
			},
			wantErr: "invalid log level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
