package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"mentoria/internal/observability"
)

// RequestLogger logs every request through zap and records its duration.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURIPath:   true,
		LogRoutePath: true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("path", v.URIPath),
				zap.String("method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("ip", v.RemoteIP),
				zap.String("request_id", v.RequestID),
				zap.String("user_agent", v.UserAgent),
			}
			if v.Error != nil {
				log.Warn("request failed", append(fields, zap.Error(v.Error))...)
			} else {
				log.Info("request completed", fields...)
			}

			// route pattern keeps label cardinality bounded
			route := v.RoutePath
			if route == "" {
				route = "unmatched"
			}
			observability.RequestDuration.WithLabelValues(
				route,
				v.Method,
				strconv.Itoa(v.Status),
			).Observe(v.Latency.Seconds())
			return nil
		},
	})
}
