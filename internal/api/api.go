package api

import (
	"net/http"
	"time"

	aiHandler "ltrack-server/internal/ai/handler"
	authHandler "ltrack-server/internal/auth/handler"
	lineHandler "ltrack-server/internal/line/handler"
	trackingHandler "ltrack-server/internal/tracking/handler"
	webhookHandler "ltrack-server/internal/webhooks/handler"

	"github.com/gin-gonic/gin"
)

// HealthPath is excluded from request logging
const HealthPath = "/api/health"

type API struct {
	router          *gin.RouterGroup
	rateLimit       gin.HandlerFunc
	startedAt       time.Time
	authHandler     authHandler.Handler
	lineHandler     lineHandler.Handler
	trackingHandler trackingHandler.Handler
	webhookHandler  webhookHandler.Handler
	aiHandler       aiHandler.Handler
}

func New(
	router *gin.RouterGroup,
	rateLimit gin.HandlerFunc,
	authHandler authHandler.Handler,
	lineHandler lineHandler.Handler,
	trackingHandler trackingHandler.Handler,
	webhookHandler webhookHandler.Handler,
	aiHandler aiHandler.Handler,
) API {
	return API{
		router:          router,
		rateLimit:       rateLimit,
		startedAt:       time.Now(),
		authHandler:     authHandler,
		lineHandler:     lineHandler,
		trackingHandler: trackingHandler,
		webhookHandler:  webhookHandler,
		aiHandler:       aiHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Public redirect; never rate limited so a link always resolves
	a.router.GET("/t/:code", a.trackingHandler.HandleRedirect)

	webhookGroup := a.router.Group("/webhook")
	{
		webhookGroup.POST("/line/:accountId", a.webhookHandler.HandleAccountWebhook)
		webhookGroup.POST("/line", a.webhookHandler.HandleGenericWebhook)
		webhookGroup.GET("/health", a.webhookHandler.HandleHealth)
	}

	apiGroup := a.router.Group("/api")
	if a.rateLimit != nil {
		apiGroup.Use(a.rateLimit)
	}
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/register", a.authHandler.HandleRegister)
		authGroup.POST("/login", a.authHandler.HandleLogin)
		authGroup.GET("/profile", a.authHandler.HandleJWTMiddleware, a.authHandler.HandleGetProfile)

		apiGroup.GET("/tracking/qr/:code", a.trackingHandler.HandleQRCode)
	}

	lineGroup := apiGroup.Group("/line", a.authHandler.HandleJWTMiddleware)
	{
		lineGroup.GET("", a.lineHandler.HandleListLineAccounts)
		lineGroup.POST("", a.lineHandler.HandleCreateLineAccount)
		lineGroup.GET("/webhook/stats", a.lineHandler.HandleGetWebhookStats)
		lineGroup.PUT("/:id", a.lineHandler.HandleUpdateLineAccount)
		lineGroup.DELETE("/:id", a.lineHandler.HandleDeleteLineAccount)
		lineGroup.POST("/:id/setup-webhook", a.lineHandler.HandleSetupWebhook)
		lineGroup.POST("/:id/verify-webhook", a.lineHandler.HandleVerifyWebhook)
		lineGroup.GET("/:id/webhook-info", a.lineHandler.HandleGetWebhookInfo)
	}

	trackingGroup := apiGroup.Group("/tracking", a.authHandler.HandleJWTMiddleware)
	{
		trackingGroup.GET("/codes", a.trackingHandler.HandleListTrackingCodes)
		trackingGroup.POST("/codes", a.trackingHandler.HandleCreateTrackingCode)
		trackingGroup.GET("/codes/:code", a.trackingHandler.HandleGetTrackingCode)
		trackingGroup.PUT("/codes/:id", a.trackingHandler.HandleUpdateTrackingCode)
		trackingGroup.DELETE("/codes/:id", a.trackingHandler.HandleDeleteTrackingCode)
		trackingGroup.GET("/dashboard/stats", a.trackingHandler.HandleDashboardStats)
		trackingGroup.GET("/analytics", a.trackingHandler.HandleAnalytics)
		trackingGroup.GET("/sessions/:sessionId", a.trackingHandler.HandleGetSession)
	}

	aiGroup := apiGroup.Group("/ai", a.authHandler.HandleJWTMiddleware)
	{
		aiGroup.GET("/predictions/friends", a.aiHandler.HandleFriendsPrediction)
		aiGroup.GET("/predictions/roi", a.aiHandler.HandleROIPrediction)
		aiGroup.GET("/predictions/churn", a.aiHandler.HandleChurnPrediction)
		aiGroup.GET("/segments", a.aiHandler.HandleSegments)
	}
}

func (a *API) Health() {
	a.router.GET(HealthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(a.startedAt).Seconds(),
		})
	})
}
