package handler

import (
	"net/http"
	"time"

	"ltrack-server/internal/apierrors"
	"ltrack-server/internal/observability"
	"ltrack-server/internal/tracking/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor   processor.TrackingProcessor
	fallbackURL string
	metrics     *observability.Metrics
	logger      *observability.Logger
}

func New(processor processor.TrackingProcessor, fallbackURL string, metrics *observability.Metrics, logger *observability.Logger) Handler {
	return Handler{
		processor:   processor,
		fallbackURL: fallbackURL,
		metrics:     metrics,
		logger:      logger,
	}
}

type CreateTrackingCodeRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=100"`
	Description   *string `json:"description" binding:"omitempty,max=500"`
	LineAccountID string  `json:"lineAccountId" binding:"required,uuid"`
}

type UpdateTrackingCodeRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description   *string `json:"description" binding:"omitempty,max=500"`
	LineAccountID *string `json:"lineAccountId" binding:"omitempty,uuid"`
	IsActive      *bool   `json:"isActive"`
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

// HandleCreateTrackingCode issues a new tracking link for one of the caller's channels
func (h *Handler) HandleCreateTrackingCode(c *gin.Context) {
	userID, email, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req CreateTrackingCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	trackingCode, err := h.processor.CreateTrackingCode(c.Request.Context(), userID, email, processor.CreateTrackingCodeParams{
		Name:          req.Name,
		Description:   req.Description,
		LineAccountID: uuid.MustParse(req.LineAccountID),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tracking code created", "trackingCode": trackingCode})
}

func (h *Handler) HandleListTrackingCodes(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	codes, err := h.processor.ListTrackingCodes(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trackingCodes": codes, "total": len(codes)})
}

// HandleGetTrackingCode returns one code by its short code with recent activity
func (h *Handler) HandleGetTrackingCode(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	details, err := h.processor.GetTrackingCodeDetails(c.Request.Context(), userID, c.Param("code"), time.Now().UTC())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *Handler) HandleUpdateTrackingCode(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, processor.ErrTrackingCodeNotFound)
		return
	}

	var req UpdateTrackingCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.UpdateTrackingCodeParams{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if req.LineAccountID != nil {
		lineAccountID := uuid.MustParse(*req.LineAccountID)
		params.LineAccountID = &lineAccountID
	}

	trackingCode, err := h.processor.UpdateTrackingCode(c.Request.Context(), userID, id, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tracking code updated", "trackingCode": trackingCode})
}

func (h *Handler) HandleDeleteTrackingCode(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, processor.ErrTrackingCodeNotFound)
		return
	}

	if err := h.processor.DeleteTrackingCode(c.Request.Context(), userID, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tracking code deleted"})
}

// HandleGetSession returns a live click session for one of the caller's codes
func (h *Handler) HandleGetSession(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	s, err := h.processor.GetSession(c.Request.Context(), userID, c.Param("sessionId"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": s})
}
