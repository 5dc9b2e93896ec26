package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"syscall"
	"time"

	_ "moi/docs" // swagger docs
	"moi/pkg/config"
	"moi/pkg/handlers"
	"moi/pkg/logger"
	"moi/pkg/middleware"
	"moi/pkg/places"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server constants
const (
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 60 * time.Second
	DefaultIdleTimeout  = 120 * time.Second
	DefaultVersion      = "1.0.0"
	ServiceName         = "moi"
)

// Config holds HTTP server configuration
type Config struct {
	Address string
	Port    int
	Config  *config.Config
}

// HTTPServer represents the HTTP server component
type HTTPServer struct {
	server     *http.Server
	engine     *gin.Engine
	config     *Config
	handlerSvc *handlers.HandlerService
}

// NewHTTPServer creates a new HTTP server serving the places gateway and the web client.
func NewHTTPServer(cfg *Config, provider places.Provider) *HTTPServer {
	if cfg.Config != nil && cfg.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	s := &HTTPServer{
		engine:     engine,
		config:     cfg,
		handlerSvc: handlers.NewHandlerService(cfg.Config, provider),
	}

	s.addMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}

	logger.Info("HTTP server initialized", zap.String("listen_addr", addr))
	return s
}

// Handler returns the HTTP handler serving all routes
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address
func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

func (s *HTTPServer) addMiddleware() {
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.GinZapLogger(logger.Logger))
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.ErrorHandler())
	s.engine.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

func (s *HTTPServer) setupRoutes() {
	s.engine.GET("/health", s.handlerSvc.HealthCheck)
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.setupPlacesRoutes(s.engine.Group("/places"))
	s.setupClientRoutes(s.engine.Group("/client"))
	s.setupWebRoutes()
}

func (s *HTTPServer) setupPlacesRoutes(group *gin.RouterGroup) {
	group.GET("/merchantPOI", s.handlerSvc.GetMerchantPOI)
	group.GET("/merchantCategoryCodes", s.handlerSvc.GetMerchantCategoryCodes)
	group.GET("/merchantIndustries", s.handlerSvc.GetMerchantIndustries)
}

func (s *HTTPServer) setupClientRoutes(group *gin.RouterGroup) {
	group.GET("/settings", s.handlerSvc.GetClientSettings)
	group.GET("/sample", s.handlerSvc.GetSampleResponse)
}

// setupWebRoutes serves the browser client from the configured web root
func (s *HTTPServer) setupWebRoutes() {
	webRoot := "./web"
	if s.config.Config != nil && s.config.Config.Server != nil && s.config.Config.Server.WebRoot != "" {
		webRoot = s.config.Config.Server.WebRoot
	}

	s.engine.StaticFile("/", filepath.Join(webRoot, "index.html"))
	s.engine.StaticFile("/service-worker.js", filepath.Join(webRoot, "service-worker.js"))
	s.engine.Static("/static", filepath.Join(webRoot, "static"))
}

// Start listens on the configured address and serves until Shutdown.
// Listen failures are returned as *ListenError.
func (s *HTTPServer) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return newListenError(s.server.Addr, err)
	}

	logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	logger.Info("HTTP server stopped")
	return nil
}

// ListenError is a failure to bind the listen address
type ListenError struct {
	Addr string
	Err  error
}

func (e *ListenError) Error() string {
	switch {
	case errors.Is(e.Err, syscall.EACCES):
		return fmt.Sprintf("%s requires elevated privileges", e.Addr)
	case errors.Is(e.Err, syscall.EADDRINUSE):
		return fmt.Sprintf("%s is already in use", e.Addr)
	default:
		return fmt.Sprintf("listen on %s: %v", e.Addr, e.Err)
	}
}

// Unwrap supports error wrapping
func (e *ListenError) Unwrap() error {
	return e.Err
}

func newListenError(addr string, err error) *ListenError {
	return &ListenError{Addr: addr, Err: err}
}
