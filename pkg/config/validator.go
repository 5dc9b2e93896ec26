package config

import (
	"fmt"
)

// ValidateConfig validates every section
func (c *Config) ValidateConfig() error {
	if c.Server == nil {
		return fmt.Errorf("%w: %v: server", ErrServerConfig, ErrMissingRequired)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("%w: port must be within 1-65535: %v", ErrServerConfig, err)
	}

	if c.App != nil {
		if err := c.App.Validate(); err != nil {
			return fmt.Errorf("%w: log_level %q / log_caller %q: %v", ErrAppConfig, c.App.LogLevel, c.App.LogCaller, err)
		}
	}

	if err := c.GetPlacesConfig().Validate(); err != nil {
		return fmt.Errorf("%w: keystore_path %q is not readable: %v", ErrPlacesConfig, c.GetPlacesConfig().KeyStorePath, err)
	}

	if c.Client != nil {
		if err := c.Client.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrClientConfig, err)
		}
	}

	return nil
}

// isValidValue reports whether value is one of validValues
func isValidValue(value string, validValues []string) bool {
	for _, valid := range validValues {
		if value == valid {
			return true
		}
	}
	return false
}
