package handler

import (
	"net/http"
	"strconv"
	"time"

	"ltrack-server/internal/ai/processor"
	"ltrack-server/internal/apierrors"
	"ltrack-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AIProcessor
	logger    *observability.Logger
}

func New(processor processor.AIProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, ok := c.Get("User-ID")
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func respondUnauthenticated(c *gin.Context) {
	apierrors.RespondWithError(c, apierrors.Unauthorized(apierrors.CodeUnauthorized, "Authentication required"))
}

// investmentAmount reads ?investmentAmount=, defaulting when absent
func investmentAmount(c *gin.Context) (float64, error) {
	raw := c.Query("investmentAmount")
	if raw == "" {
		return processor.DefaultInvestmentAmount, nil
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, processor.ErrInvalidInvestmentAmount
	}
	return amount, processor.ValidateInvestment(amount)
}

func (h *Handler) HandleFriendsPrediction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	prediction, err := h.processor.PredictFriends(c.Request.Context(), userID, time.Now())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prediction)
}

// HandleROIPrediction projects ROI for ?investmentAmount= (JPY)
func (h *Handler) HandleROIPrediction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	amount, err := investmentAmount(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	prediction, err := h.processor.PredictROI(c.Request.Context(), userID, amount, time.Now())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prediction)
}

func (h *Handler) HandleSegments(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	analysis, err := h.processor.SegmentFriends(c.Request.Context(), userID, time.Now())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *Handler) HandleChurnPrediction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	prediction, err := h.processor.PredictChurnRisk(c.Request.Context(), userID, time.Now())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, prediction)
}
