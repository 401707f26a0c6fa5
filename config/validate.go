package config

import "fmt"

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.RPC.Port < 1 || c.RPC.Port > 65535 {
		return fmt.Errorf("rpc port must be 1-65535, got %d", c.RPC.Port)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	return nil
}
