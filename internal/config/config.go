package config

import "time"

// Config holds server configuration values.
type Config struct {
	// TCPAddr is the raw line-protocol listener address.
	TCPAddr string `mapstructure:"tcp_addr" yaml:"tcp_addr"`
	// HTTPAddr serves the health/stats API and the websocket bridge.
	HTTPAddr          string        `mapstructure:"http_addr" yaml:"http_addr"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat         string        `mapstructure:"log_format" yaml:"log_format"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	// MaxLineBytes caps a single inbound line; longer input drops the connection.
	MaxLineBytes int `mapstructure:"max_line_bytes" yaml:"max_line_bytes"`
	// SendQueueSize is the per-session outgoing queue depth.
	SendQueueSize int `mapstructure:"send_queue_size" yaml:"send_queue_size"`
}

// Default returns configuration with reasonable starter defaults. Port
// 5000 is the historical TRC port.
func Default() Config {
	return Config{
		TCPAddr:           ":5000",
		HTTPAddr:          ":8080",
		LogLevel:          "info",
		LogFormat:         "console",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		MaxLineBytes:      4096,
		SendQueueSize:     32,
	}
}
