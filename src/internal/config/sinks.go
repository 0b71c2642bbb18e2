// FILE: src/internal/config/sinks.go
package config

// ConsoleSinkOptions configures the console sink
type ConsoleSinkOptions struct {
	Enabled bool `toml:"enabled"`

	// Target for output: "stdout" or "stderr"
	Target string `toml:"target"`

	BufferSize int64 `toml:"buffer_size"`
}

// FileSinkOptions configures the rotating file sink
type FileSinkOptions struct {
	Enabled bool `toml:"enabled"`

	// Directory for output files
	Directory string `toml:"directory"`

	// Base name for output files
	Name string `toml:"name"`

	// Maximum size per file in MB
	MaxSizeMB int64 `toml:"max_size_mb"`

	// Maximum total size of all files in MB
	MaxTotalSizeMB int64 `toml:"max_total_size_mb"`

	// Retention in hours (0 = disabled)
	RetentionHours float64 `toml:"retention_hours"`

	BufferSize int64 `toml:"buffer_size"`
}

// MemorySinkOptions configures the in-memory ring buffer sink
type MemorySinkOptions struct {
	Enabled bool `toml:"enabled"`

	// Number of recent lines retained
	Capacity int64 `toml:"capacity"`

	BufferSize int64 `toml:"buffer_size"`
}

// HTTPClientSinkOptions configures the HTTP forwarding sink
type HTTPClientSinkOptions struct {
	Enabled bool `toml:"enabled"`

	// Remote endpoint receiving batched lines
	URL string `toml:"url"`

	// Lines per batch before a flush is forced
	BatchSize int64 `toml:"batch_size"`

	// Flush interval for partial batches
	BatchDelayMS int64 `toml:"batch_delay_ms"`

	// Request timeout in seconds
	Timeout int64 `toml:"timeout_seconds"`

	MaxRetries   int64   `toml:"max_retries"`
	RetryDelayMS int64   `toml:"retry_delay_ms"`
	RetryBackoff float64 `toml:"retry_backoff"`

	// Shared secret for HS256 bearer tokens; empty disables auth
	JWTSecret string `toml:"jwt_secret"`

	// Token lifetime in seconds when JWTSecret is set
	JWTExpirySeconds int64 `toml:"jwt_expiry_seconds"`

	InsecureSkipVerify bool `toml:"insecure_skip_verify"`

	BufferSize int64 `toml:"buffer_size"`
}

// TCPSinkOptions configures the TCP streaming sink
type TCPSinkOptions struct {
	Enabled bool `toml:"enabled"`

	Host string `toml:"host"`
	Port int64  `toml:"port"`

	BufferSize int64 `toml:"buffer_size"`

	Heartbeat *HeartbeatConfig `toml:"heartbeat"`
}

// HeartbeatConfig configures keepalive comment lines on streaming sinks
type HeartbeatConfig struct {
	Enabled    bool  `toml:"enabled"`
	IntervalMS int64 `toml:"interval_ms"`
}
