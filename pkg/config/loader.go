package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from configPath, or the first default location found
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// no file: defaults from environment
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	config := &Config{}
	ext := filepath.Ext(configPath)

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	mergeEnvVars(config)
	return config, nil
}

// SaveConfig writes config to configPath as yaml or json
func SaveConfig(config *Config, configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("config serialization failed: %w", err)
	}

	// credentials may be present; keep the file private
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultConfigPath returns the first existing default config file
func getDefaultConfigPath() string {
	// working directory, then ~/.moi, then /etc/moi
	paths := []string{
		"./config.yaml",
		"./config.json",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".moi", "config.yaml"),
			filepath.Join(homeDir, ".moi", "config.json"),
		)
	}

	paths = append(paths,
		"/etc/moi/config.yaml",
		"/etc/moi/config.json",
	)

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "./config.yaml"
}

// mergeEnvVars overlays environment variables on a loaded file
func mergeEnvVars(config *Config) {
	mergeServerEnvVars(config)
	mergeAppEnvVars(config)
	mergePlacesEnvVars(config)
	mergeClientEnvVars(config)
}

// mergeServerEnvVars overlays server settings
func mergeServerEnvVars(config *Config) {
	if config.Server == nil {
		config.Server = NewServerConfig()
		return
	}

	if port := parseIntOrDefault(getFirstEnv("", "PORT", "SERVER_PORT"), 0); port != 0 {
		config.Server.Port = port
	}
	if config.Server.Port == 0 {
		config.Server.Port = 3000
	}

	applyEnvMappings(map[string]interface{}{
		"SERVER_ADDRESS":                   &config.Server.Address,
		"SERVER_WEB_ROOT":                  &config.Server.WebRoot,
		"SERVER_GRACEFUL_SHUTDOWN_TIMEOUT": &config.Server.GracefulShutdownTimeout,
	})
	if config.Server.WebRoot == "" {
		config.Server.WebRoot = "./web"
	}
}

// mergeAppEnvVars overlays app settings
func mergeAppEnvVars(config *Config) {
	if config.App == nil {
		config.App = NewAppConfig()
		return
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.App.LogLevel = logLevel
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		config.App.LogFile = logFile
	}
	if logCaller := os.Getenv("LOG_CALLER"); logCaller != "" {
		config.App.LogCaller = logCaller
	}
	if env := getFirstEnv("", "APP_ENV", "NODE_ENV"); env != "" {
		config.App.Environment = env
	}
}

// mergeClientEnvVars overlays map client settings
func mergeClientEnvVars(config *Config) {
	if config.Client == nil {
		config.Client = NewClientConfig()
		return
	}

	cc := config.Client
	applyEnvMappings(map[string]interface{}{
		"CLIENT_GATEWAY_URL":  &cc.GatewayURL,
		"CLIENT_TIMEOUT":      &cc.Timeout,
		"CLIENT_DEFAULT_LAT":  &cc.DefaultLat,
		"CLIENT_DEFAULT_LNG":  &cc.DefaultLng,
		"CLIENT_DEFAULT_ZOOM": &cc.DefaultZoom,
	})
}
