package config

import "os"

// Mastercard Places API base URLs
const (
	DefaultPlacesSandboxURL    = "https://sandbox.api.mastercard.com"
	DefaultPlacesProductionURL = "https://api.mastercard.com"
)

// PlacesConfig holds Mastercard Places API settings
// Credentials are supplied out-of-band (file or environment), never compiled in.
type PlacesConfig struct {
	ConsumerKey   string `json:"consumer_key" yaml:"consumer_key"`
	KeyStorePath  string `json:"keystore_path" yaml:"keystore_path"` // PKCS#12 file
	KeyAlias      string `json:"key_alias" yaml:"key_alias"`
	KeyPassword   string `json:"key_password" yaml:"key_password"`
	SandboxURL    string `json:"sandbox_url" yaml:"sandbox_url"`
	ProductionURL string `json:"production_url" yaml:"production_url"`
	Timeout       int    `json:"timeout" yaml:"timeout"` // seconds
	EnableDebug   bool   `json:"enable_debug" yaml:"enable_debug"`
}

// NewPlacesConfig creates a Places configuration populated from environment variables
func NewPlacesConfig() *PlacesConfig {
	return &PlacesConfig{
		ConsumerKey:   getEnv("MASTERCARD_CONSUMER_KEY", ""),
		KeyStorePath:  getEnv("MASTERCARD_KEYSTORE_PATH", ""),
		KeyAlias:      getEnv("MASTERCARD_KEY_ALIAS", ""),
		KeyPassword:   getEnv("MASTERCARD_KEY_PASSWORD", ""),
		SandboxURL:    getEnv("MASTERCARD_SANDBOX_URL", DefaultPlacesSandboxURL),
		ProductionURL: getEnv("MASTERCARD_PRODUCTION_URL", DefaultPlacesProductionURL),
		Timeout:       getEnvInt("MASTERCARD_TIMEOUT", 30),
		EnableDebug:   getEnvBool("MASTERCARD_DEBUG", false),
	}
}

// BaseURL selects the sandbox or production endpoint
func (c *PlacesConfig) BaseURL(production bool) string {
	if production {
		if c.ProductionURL != "" {
			return c.ProductionURL
		}
		return DefaultPlacesProductionURL
	}
	if c.SandboxURL != "" {
		return c.SandboxURL
	}
	return DefaultPlacesSandboxURL
}

// HasCredentials reports whether enough credentials are present to sign requests
func (c *PlacesConfig) HasCredentials() bool {
	return c.ConsumerKey != "" && c.KeyStorePath != ""
}

// Validate checks the Places configuration.
// Missing credentials are not an error here: the gateway starts and reports a
// provider error on first use, as the provider session is initialized lazily.
func (c *PlacesConfig) Validate() error {
	if c.KeyStorePath != "" {
		if _, err := os.Stat(c.KeyStorePath); err != nil {
			return ErrInvalidValue
		}
	}

	if c.Timeout <= 0 {
		c.Timeout = 30
	}

	return nil
}

// mergePlacesEnvVars overlays MASTERCARD_* variables
func mergePlacesEnvVars(config *Config) {
	if config.Places == nil {
		config.Places = NewPlacesConfig()
		return
	}

	pc := config.Places
	envMappings := map[string]interface{}{
		"MASTERCARD_CONSUMER_KEY":   &pc.ConsumerKey,
		"MASTERCARD_KEYSTORE_PATH":  &pc.KeyStorePath,
		"MASTERCARD_KEY_ALIAS":      &pc.KeyAlias,
		"MASTERCARD_KEY_PASSWORD":   &pc.KeyPassword,
		"MASTERCARD_SANDBOX_URL":    &pc.SandboxURL,
		"MASTERCARD_PRODUCTION_URL": &pc.ProductionURL,
		"MASTERCARD_TIMEOUT":        &pc.Timeout,
	}
	applyEnvMappings(envMappings)

	if debug := os.Getenv("MASTERCARD_DEBUG"); debug != "" {
		pc.EnableDebug = debug == "true" || debug == "1"
	}
}

// applyEnvMappings sets each target from its variable when present, parsed by target type
func applyEnvMappings(envMappings map[string]interface{}) {
	for envKey, fieldPtr := range envMappings {
		if value := os.Getenv(envKey); value != "" {
			switch ptr := fieldPtr.(type) {
			case *int:
				if intVal := parseIntOrDefault(value, 0); intVal != 0 {
					*ptr = intVal
				}
			case *string:
				*ptr = value
			case *float64:
				*ptr = parseFloatOrDefault(value, *ptr)
			}
		}
	}
}
