package ratelimit

import (
	"strconv"
	"time"

	"ltrack-server/internal/apierrors"
	"ltrack-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per real client IP
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		result := s.CheckRateLimit(c.Request.Context(), observability.GetRealClientIP(c), time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(max(1, int(result.RetryAfter.Round(time.Second).Seconds()))))
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Too many requests from this IP, please try again later."))
			c.Abort()
			return
		}

		c.Next()
	}
}
