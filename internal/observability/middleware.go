package observability

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnknownCountry is recorded when no edge header or GeoIP match is available.
const UnknownCountry = "Unknown"

// GetRealClientIP extracts the real client IP from CDN headers.
// CloudFront-Viewer-Address contains the client IP in "IP:port" format.
// Falls back to c.ClientIP(), which honours X-Forwarded-For from trusted proxies.
func GetRealClientIP(c *gin.Context) string {
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if viewerAddr := c.GetHeader("CloudFront-Viewer-Address"); viewerAddr != "" {
		if colonIdx := strings.LastIndex(viewerAddr, ":"); colonIdx > 0 {
			return viewerAddr[:colonIdx]
		}
		return viewerAddr
	}
	return c.ClientIP()
}

// GetViewerCountry returns the ISO country code an edge proxy attached to the
// request, or an empty string when none did.
func GetViewerCountry(c *gin.Context) string {
	for _, header := range []string{"CF-IPCountry", "CloudFront-Viewer-Country"} {
		if v := strings.TrimSpace(c.GetHeader(header)); v != "" && v != "XX" {
			return strings.ToUpper(v)
		}
	}
	return ""
}

// Middleware to add observability fields to Gin context. Requests to
// skipPaths are neither logged nor measured.
func Middleware(l *Logger, m *Metrics, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx = WithFields(ctx,
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", c.Request.UserAgent()},
		)
		if c.Request.ContentLength > 0 {
			ctx = WithFields(ctx, Field{"content_length", c.Request.ContentLength})
		}

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "An internal error occurred. Please try again later.",
					"code":  "INTERNAL_ERROR",
				})
			}

			if skip[c.Request.URL.Path] {
				return
			}
			latency := time.Since(start)
			status := c.Writer.Status()
			l.Info(WithFields(ctx,
				Field{"latency_ns", latency.Nanoseconds()},
				Field{"status", status},
			), "Request processed")

			l.Metrics(ctx,
				MetricField{"method", c.Request.Method},
				MetricField{"route", c.FullPath()},
				MetricField{"status", status},
				MetricField{"latency", latency},
			)
			m.ObserveRequest(c.Request.Method, c.FullPath(), status, latency)
		}()
		c.Next()
	}
}
