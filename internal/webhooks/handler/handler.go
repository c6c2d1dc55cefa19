package handler

import (
	"errors"
	"net/http"
	"time"

	"ltrack-server/internal/apierrors"
	"ltrack-server/internal/observability"
	"ltrack-server/internal/webhooks/processor"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "X-Line-Signature"
	maxBodyBytes    = 1 << 20
)

// Handler receives LINE platform webhooks
type Handler struct {
	processor processor.WebhookProcessor
	metrics   *observability.Metrics
	logger    *observability.Logger
}

func New(processor processor.WebhookProcessor, metrics *observability.Metrics, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		metrics:   metrics,
		logger:    logger,
	}
}

func (h *Handler) readBody(c *gin.Context) ([]byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Webhook body too large"))
			return nil, false
		}
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Could not read webhook body"))
		return nil, false
	}
	return body, true
}

// HandleAccountWebhook handles POST /webhook/line/:accountId
func (h *Handler) HandleAccountWebhook(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}

	res, err := h.processor.HandleAccountWebhook(c.Request.Context(), c.Param("accountId"), body, c.GetHeader(signatureHeader), time.Now().UTC())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	h.metrics.RecordWebhookEvents("account", res.Total, res.Processed)

	c.String(http.StatusOK, "OK")
}

// HandleGenericWebhook handles POST /webhook/line
func (h *Handler) HandleGenericWebhook(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}

	res, err := h.processor.HandleGenericWebhook(c.Request.Context(), body, c.GetHeader(signatureHeader), time.Now().UTC())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	h.metrics.RecordWebhookEvents("generic", res.Total, res.Processed)

	c.String(http.StatusOK, "OK")
}

// HandleHealth handles GET /webhook/health
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
