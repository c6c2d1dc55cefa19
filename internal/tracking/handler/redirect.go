package handler

import (
	"net/http"
	"time"

	"ltrack-server/internal/apierrors"
	"ltrack-server/internal/observability"
	"ltrack-server/internal/tracking/processor"

	"github.com/gin-gonic/gin"
)

// HandleRedirect records a click on /t/:code and sends the visitor to LINE.
// Every failure ends in a redirect to the fallback URL.
func (h *Handler) HandleRedirect(c *gin.Context) {
	code := c.Param("code")
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "tracking_code", Value: code})

	res, err := h.processor.RecordClick(ctx, processor.ClickRequest{
		Code:          code,
		IPAddress:     observability.GetRealClientIP(c),
		UserAgent:     c.Request.UserAgent(),
		Referer:       c.Request.Referer(),
		UTMSource:     c.Query("utm_source"),
		UTMMedium:     c.Query("utm_medium"),
		UTMCampaign:   c.Query("utm_campaign"),
		ViewerCountry: observability.GetViewerCountry(c),
		Timestamp:     time.Now().UTC(),
	})
	if err != nil {
		h.logger.InfoWithError(ctx, "redirecting click to fallback", err)
		h.metrics.RecordRedirect(observability.RedirectFallback)
		c.Redirect(http.StatusFound, h.fallbackURL)
		return
	}

	h.metrics.RecordRedirect(observability.RedirectLine)
	c.Redirect(http.StatusFound, res.RedirectURL)
}

// HandleQRCode serves the tracking URL of an active code as a PNG. ?dl=1 downloads it.
func (h *Handler) HandleQRCode(c *gin.Context) {
	code := c.Param("code")

	png, err := h.processor.QRCode(c.Request.Context(), code)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	if c.Query("dl") == "1" {
		c.Header("Content-Disposition", `attachment; filename="`+code+`-qr.png"`)
	}
	c.Data(http.StatusOK, "image/png", png)
}
