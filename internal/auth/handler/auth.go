package handler

import (
	"net/http"
	"strings"

	"ltrack-server/internal/apierrors"
	"ltrack-server/internal/auth/processor"
	"ltrack-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Keys under which the bearer middleware stores the caller identity
const (
	ContextUserID    = "User-ID"
	ContextUserEmail = "User-Email"
	ContextUserRole  = "User-Role"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthResponse struct {
	Message   string         `json:"message"`
	User      processor.User `json:"user"`
	Token     string         `json:"token"`
	ExpiresIn string         `json:"expiresIn"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.authProcessor.Register(c.Request.Context(), processor.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message:   "User created successfully",
		User:      result.User,
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}

func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.authProcessor.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message:   "Login successful",
		User:      result.User,
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}

func (h *Handler) HandleGetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	userIDStr, ok := c.Get(ContextUserID)
	if !ok {
		h.logger.Error(ctx, "failed to get user from context", nil)
		apierrors.RespondWithError(c, apierrors.Unauthorized(apierrors.CodeUnauthorized, "Authentication required"))
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse user id", err)
		apierrors.RespondWithError(c, apierrors.Unauthorized(apierrors.CodeUnauthorized, "Authentication required"))
		return
	}

	user, err := h.authProcessor.GetProfile(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// HandleJWTMiddleware authenticates the bearer token and stores the caller
// identity on the gin context
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	tokenString := strings.TrimSpace(strings.TrimPrefix(tokenHeader, "Bearer "))
	if !strings.HasPrefix(tokenHeader, "Bearer ") || tokenString == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized(apierrors.CodeNoToken, "Access token required"))
		return
	}

	user, err := h.authProcessor.Authenticate(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Set(ContextUserID, user.UserID.String())
	c.Set(ContextUserEmail, user.Email)
	c.Set(ContextUserRole, user.Role)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: user.UserID.String()},
	))

	c.Next()
}
