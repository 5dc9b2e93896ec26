package config

// Config is the root configuration
type Config struct {
	Server *ServerConfig `json:"server" yaml:"server"`
	App    *AppConfig    `json:"app" yaml:"app"`
	Places *PlacesConfig `json:"places" yaml:"places"`
	Client *ClientConfig `json:"client" yaml:"client"`
}

// getDefaultConfig builds every section from its defaults
func getDefaultConfig() *Config {
	return &Config{
		Server: NewServerConfig(),
		App:    NewAppConfig(),
		Places: NewPlacesConfig(),
		Client: NewClientConfig(),
	}
}

// GetPlacesConfig returns the merchant-location provider configuration
func (c *Config) GetPlacesConfig() *PlacesConfig {
	if c.Places != nil {
		return c.Places
	}
	return NewPlacesConfig()
}

// GetClientConfig returns the map client configuration
func (c *Config) GetClientConfig() *ClientConfig {
	if c.Client != nil {
		return c.Client
	}
	return NewClientConfig()
}

// IsProduction reports whether the deployment mode is production
func (c *Config) IsProduction() bool {
	return c.App != nil && c.App.IsProduction()
}
