package handlers

import (
	"time"

	"moi/pkg/config"
	"moi/pkg/logger"
	"moi/pkg/places"

	"github.com/go-playground/validator/v10"
)

// HandlerService provides HTTP handlers for the API
type HandlerService struct {
	config    *config.Config
	provider  places.Provider
	validate  *validator.Validate
	startTime time.Time
}

// NewHandlerService creates a new handler service backed by provider
func NewHandlerService(cfg *config.Config, provider places.Provider) *HandlerService {
	logger.Info("Initializing handler service")

	return &HandlerService{
		config:    cfg,
		provider:  provider,
		validate:  validator.New(),
		startTime: time.Now(),
	}
}

// getCurrentTimestamp returns the current UTC time
func getCurrentTimestamp() time.Time {
	return time.Now().UTC()
}
