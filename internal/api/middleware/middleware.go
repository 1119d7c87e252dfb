package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ip-search-agent/internal/api/shared/errors"
	"github.com/feral-file/ip-search-agent/internal/logger"
)

// Logger returns a gin middleware logging one line per request.
// Search requests log at info, everything else such as health checks and metrics scrapes at debug.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			fields = append(fields, zap.String("query", raw))
		}

		ctx := c.Request.Context()
		if c.Request.Method == http.MethodGet && !isLookupRoute(c.FullPath()) {
			logger.DebugCtx(ctx, "API request", fields...)
			return
		}
		logger.InfoCtx(ctx, "API request", fields...)
	}
}

// isLookupRoute reports whether a GET route performs a registry lookup
func isLookupRoute(route string) bool {
	switch route {
	case "/metadata/:ipId", "/metadata/:ipId/analysis":
		return true
	}
	return false
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				apiErr := apierrors.NewInternalError("Internal server error")
				c.AbortWithStatusJSON(apiErr.Status(), apiErr)
			}
		}()
		c.Next()
	}
}
