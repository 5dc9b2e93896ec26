package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// skipPaths are never access-logged
var skipPaths = map[string]bool{
	"/health":            true,
	"/favicon.ico":       true,
	"/service-worker.js": true,
}

// GinZapLogger writes one access-log line per request, at a level chosen by status.
func GinZapLogger(zapLogger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.Request.URL.Path
		if skipPaths[path] {
			return
		}
		if strings.HasPrefix(path, "/swagger/") && path != "/swagger/index.html" {
			return
		}
		if strings.HasPrefix(path, "/static/") && c.Writer.Status() < 400 {
			return
		}

		fields := []zap.Field{
			zap.String("request_id", c.GetString(ContextRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("response_size", c.Writer.Size()),
		}

		if c.Request.URL.RawQuery != "" {
			fields = append(fields, zap.String("query", c.Request.URL.RawQuery))
		}

		if gin.Mode() == gin.DebugMode {
			fields = append(fields, zap.String("user_agent", c.Request.UserAgent()))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}

		statusCode := c.Writer.Status()
		switch {
		case statusCode >= 500:
			zapLogger.Error("Internal server error", fields...)
		case statusCode >= 400:
			zapLogger.Warn("Client request error", fields...)
		case statusCode >= 300:
			zapLogger.Info("Request redirect", fields...)
		default:
			zapLogger.Info("HTTP request completed", fields...)
		}
	}
}
