package config

import "strings"

// ServerConfig represents HTTP gateway settings
type ServerConfig struct {
	Port                    int    `json:"port" yaml:"port"`
	Address                 string `json:"address" yaml:"address"`
	WebRoot                 string `json:"web_root" yaml:"web_root"`                                   // index.html, service-worker.js and static/
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout" yaml:"graceful_shutdown_timeout"` // seconds
}

// AppConfig represents application configuration settings
type AppConfig struct {
	LogLevel    string `json:"log_level" yaml:"log_level"`
	LogFile     string `json:"log_file" yaml:"log_file"`
	LogCaller   string `json:"log_caller" yaml:"log_caller"`   // short, medium or full
	Environment string `json:"environment" yaml:"environment"` // production selects the live provider and real-network search
}

// ClientConfig represents map client settings
type ClientConfig struct {
	GatewayURL  string  `json:"gateway_url" yaml:"gateway_url"`
	Timeout     int     `json:"timeout" yaml:"timeout"` // seconds
	DefaultLat  float64 `json:"default_lat" yaml:"default_lat"`
	DefaultLng  float64 `json:"default_lng" yaml:"default_lng"`
	DefaultZoom int     `json:"default_zoom" yaml:"default_zoom"`
}

// NewServerConfig creates a server configuration with default values populated from environment variables
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:                    parseIntOrDefault(getFirstEnv("", "PORT", "SERVER_PORT"), 3000),
		Address:                 getEnv("SERVER_ADDRESS", ""),
		WebRoot:                 getEnv("SERVER_WEB_ROOT", "./web"),
		GracefulShutdownTimeout: getEnvInt("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT", 10),
	}
}

// NewAppConfig creates an application configuration with default values populated from environment variables
func NewAppConfig() *AppConfig {
	return &AppConfig{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		LogCaller:   getEnv("LOG_CALLER", "short"),
		Environment: getFirstEnv(EnvDevelopment, "APP_ENV", "NODE_ENV"),
	}
}

// NewClientConfig creates a map client configuration with default values populated from environment variables
func NewClientConfig() *ClientConfig {
	return &ClientConfig{
		GatewayURL:  getEnv("CLIENT_GATEWAY_URL", "http://localhost:3000"),
		Timeout:     getEnvInt("CLIENT_TIMEOUT", 30),
		DefaultLat:  getEnvFloat("CLIENT_DEFAULT_LAT", -33.8688),
		DefaultLng:  getEnvFloat("CLIENT_DEFAULT_LNG", 151.2195),
		DefaultZoom: getEnvInt("CLIENT_DEFAULT_ZOOM", 14),
	}
}

// IsProduction reports whether the deployment mode is production
func (ac *AppConfig) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(ac.Environment), EnvProduction)
}

// Validate validates server configuration
func (sc *ServerConfig) Validate() error {
	if sc.Port <= 0 || sc.Port > 65535 {
		return ErrInvalidValue
	}

	if sc.GracefulShutdownTimeout <= 0 {
		sc.GracefulShutdownTimeout = 10
	}

	return nil
}

// Validate validates application configuration
func (ac *AppConfig) Validate() error {
	if ac.LogLevel != "" {
		validLevels := []string{"debug", "info", "warn", "error", "fatal"}
		if !isValidValue(ac.LogLevel, validLevels) {
			return ErrInvalidValue
		}
	}

	if ac.LogCaller != "" && !isValidValue(ac.LogCaller, []string{"short", "medium", "full"}) {
		return ErrInvalidValue
	}

	if ac.Environment == "" {
		ac.Environment = EnvDevelopment
	}

	return nil
}

// Validate validates map client configuration
func (cc *ClientConfig) Validate() error {
	if cc.GatewayURL == "" {
		return ErrMissingRequired
	}

	if cc.DefaultLat < -90 || cc.DefaultLat > 90 || cc.DefaultLng < -180 || cc.DefaultLng > 180 {
		return ErrInvalidValue
	}

	if cc.Timeout <= 0 {
		cc.Timeout = 30
	}

	if cc.DefaultZoom <= 0 {
		cc.DefaultZoom = 14
	}

	return nil
}
