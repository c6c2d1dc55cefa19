package handler

import (
	"net/http"
	"time"

	"ltrack-server/internal/apierrors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleDashboardStats(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	stats, err := h.processor.GetDashboardStats(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleAnalytics reports per-code clicks and friends for ?period=24h|7d|30d
func (h *Handler) HandleAnalytics(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	analytics, err := h.processor.GetAnalytics(c.Request.Context(), userID, c.Query("period"), time.Now().UTC())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
