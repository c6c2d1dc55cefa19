package handler

import (
	"net/http"
	"time"

	"ltrack-server/internal/apierrors"
	"ltrack-server/internal/line/processor"
	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.LineProcessor
	logger    *observability.Logger
}

func New(processor processor.LineProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateLineAccountRequest struct {
	Name               string `json:"name" binding:"required,min=2,max=100"`
	ChannelID          string `json:"channelId" binding:"required"`
	ChannelSecret      string `json:"channelSecret" binding:"required"`
	ChannelAccessToken string `json:"channelAccessToken" binding:"required"`
}

type UpdateLineAccountRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=2,max=100"`
	ChannelID          *string `json:"channelId" binding:"omitempty,min=1"`
	ChannelSecret      *string `json:"channelSecret" binding:"omitempty,min=1"`
	ChannelAccessToken *string `json:"channelAccessToken" binding:"omitempty,min=1"`
	IsActive           *bool   `json:"isActive"`
}

func caller(c *gin.Context) (uuid.UUID, string, bool) {
	userIDStr, ok := c.Get("User-ID")
	if !ok {
		return uuid.Nil, "", false
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, "", false
	}
	return userID, c.GetString("User-Email"), true
}

func respondUnauthenticated(c *gin.Context) {
	apierrors.RespondWithError(c, apierrors.Unauthorized(apierrors.CodeUnauthorized, "Authentication required"))
}

// lineAccountID parses the :id path parameter; a malformed id is reported as not found
func lineAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, processor.ErrLineAccountNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// HandleListLineAccounts lists the caller's LINE channels
func (h *Handler) HandleListLineAccounts(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	lineAccounts, err := h.processor.ListLineAccounts(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lineAccounts": lineAccounts, "total": len(lineAccounts)})
}

// HandleCreateLineAccount registers a LINE channel for the caller
func (h *Handler) HandleCreateLineAccount(c *gin.Context) {
	userID, email, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req CreateLineAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	lineAccount, err := h.processor.CreateLineAccount(c.Request.Context(), userID, email, store.CreateLineAccountParams{
		Name:               req.Name,
		ChannelID:          req.ChannelID,
		ChannelSecret:      req.ChannelSecret,
		ChannelAccessToken: req.ChannelAccessToken,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"lineAccount": lineAccount})
}

// HandleUpdateLineAccount applies a partial update to one of the caller's channels
func (h *Handler) HandleUpdateLineAccount(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	id, ok := lineAccountID(c)
	if !ok {
		return
	}

	var req UpdateLineAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	lineAccount, err := h.processor.UpdateLineAccount(c.Request.Context(), userID, id, store.UpdateLineAccountParams{
		Name:               req.Name,
		ChannelID:          req.ChannelID,
		ChannelSecret:      req.ChannelSecret,
		ChannelAccessToken: req.ChannelAccessToken,
		IsActive:           req.IsActive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lineAccount": lineAccount})
}

// HandleDeleteLineAccount removes one of the caller's channels
func (h *Handler) HandleDeleteLineAccount(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	id, ok := lineAccountID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteLineAccount(c.Request.Context(), userID, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "LINE account deleted successfully"})
}

func (h *Handler) HandleSetupWebhook(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	id, ok := lineAccountID(c)
	if !ok {
		return
	}

	setup, err := h.processor.SetupWebhook(c.Request.Context(), userID, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Webhook URL configured",
		"webhookUrl": setup.WebhookURL,
		"account":    setup.LineAccount,
	})
}

func (h *Handler) HandleVerifyWebhook(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	id, ok := lineAccountID(c)
	if !ok {
		return
	}

	verification, err := h.processor.VerifyWebhook(c.Request.Context(), userID, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	message := "Webhook verified"
	if !verification.Verified {
		message = "Webhook URL is not configured"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"verified":   verification.Verified,
		"webhookUrl": verification.WebhookURL,
	})
}

func (h *Handler) HandleGetWebhookInfo(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	id, ok := lineAccountID(c)
	if !ok {
		return
	}

	info, err := h.processor.GetWebhookInfo(c.Request.Context(), userID, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// HandleGetWebhookStats summarises webhook activity for ?period=1h|24h|7d|30d
func (h *Handler) HandleGetWebhookStats(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	stats, err := h.processor.GetWebhookStats(c.Request.Context(), userID, c.Query("period"), time.Now())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
