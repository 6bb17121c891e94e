package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/dispatch/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every request with latency and status
func RequestLoggerMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status

			fields := []logger.Field{
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
			}

			switch {
			case statusCode >= 500:
				zl.Error("Server error", fields...)
			case statusCode >= 400:
				zl.Warn("Client error", fields...)
			default:
				zl.Info("Request processed", fields...)
			}

			return err
		}
	}
}
