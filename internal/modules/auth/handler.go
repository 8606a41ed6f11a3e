package auth

import (
	"errors"
	"net/http"

	"inspectbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for the OTP login flow
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/otp/request", h.RequestOTP)
		authGroup.POST("/otp/verify", h.VerifyOTP)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/session", h.GetSession)
	}
}

func (h *Handler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.RequestOTP(c.Request.Context(), req.PhoneOrEmail)
	if err != nil {
		if errors.Is(err, ErrRateLimitExceeded) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Please wait before requesting another code")
			return
		}
		response.Error(c, http.StatusInternalServerError, "OTP_REQUEST_FAILED", "Failed to issue code")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.VerifyOTP(c.Request.Context(), req.PhoneOrEmail, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoPendingOTP):
			response.Error(c, http.StatusBadRequest, "NO_PENDING_OTP", "Request a code first")
		case errors.Is(err, ErrOTPExpired):
			response.Error(c, http.StatusUnauthorized, "OTP_EXPIRED", "Code expired, request a new one")
		case errors.Is(err, ErrTooManyAttempts):
			response.Error(c, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many attempts, request a new code")
		case errors.Is(err, ErrInvalidOTP):
			response.Error(c, http.StatusUnauthorized, "INVALID_OTP", "Code is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) GetSession(c *gin.Context) {
	session, ok := h.service.CurrentSession(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusNotFound, "NO_SESSION", "Not logged in")
		return
	}
	response.Success(c, http.StatusOK, session)
}
