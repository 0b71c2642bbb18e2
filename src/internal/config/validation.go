// FILE: src/internal/config/validation.go
package config

import (
	"fmt"
	"strings"

	"loglayout/src/internal/template"
)

// Validate checks the loaded configuration for structural problems so
// bad templates and sink settings fail at startup, not per event.
func (c *Config) Validate() error {
	if c.LoggerName == "" {
		return fmt.Errorf("logger_name cannot be empty")
	}

	for i, p := range c.Properties {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("properties[%d]: missing name", i)
		}
		if err := template.Validate(p.Template); err != nil {
			return fmt.Errorf("properties[%d] '%s': invalid template: %w", i, p.Name, err)
		}
	}

	if c.RateLimit != nil && c.RateLimit.Rate < 0 {
		return fmt.Errorf("rate_limit.rate cannot be negative")
	}

	enabled := 0
	if c.Sinks.Console != nil && c.Sinks.Console.Enabled {
		enabled++
		if t := c.Sinks.Console.Target; t != "" && t != "stdout" && t != "stderr" {
			return fmt.Errorf("sinks.console: invalid target: %s", t)
		}
	}
	if c.Sinks.File != nil && c.Sinks.File.Enabled {
		enabled++
		if c.Sinks.File.Directory == "" {
			return fmt.Errorf("sinks.file: missing directory")
		}
	}
	if c.Sinks.Memory != nil && c.Sinks.Memory.Enabled {
		enabled++
		if c.Sinks.Memory.Capacity < 0 {
			return fmt.Errorf("sinks.memory: capacity cannot be negative")
		}
	}
	if c.Sinks.HTTPClient != nil && c.Sinks.HTTPClient.Enabled {
		enabled++
		url := c.Sinks.HTTPClient.URL
		if url == "" {
			return fmt.Errorf("sinks.http_client: missing url")
		}
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return fmt.Errorf("sinks.http_client: invalid url scheme: %s", url)
		}
	}
	if c.Sinks.TCPServer != nil && c.Sinks.TCPServer.Enabled {
		enabled++
		port := c.Sinks.TCPServer.Port
		if port < 1 || port > 65535 {
			return fmt.Errorf("sinks.tcp_server: invalid port: %d", port)
		}
	}

	if enabled == 0 {
		return fmt.Errorf("no sinks enabled")
	}

	if c.Logging != nil {
		if err := validateLogConfig(c.Logging); err != nil {
			return err
		}
	}

	return nil
}
