package prefs

import (
	"errors"
	"net/http"

	"inspectbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the theme endpoints on the public group: the theme
// is a device preference and works before login.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	group := public.Group("/preferences")
	{
		group.GET("/theme", h.GetTheme)
		group.PUT("/theme", h.SetTheme)
	}
}

func (h *Handler) GetTheme(c *gin.Context) {
	theme, err := h.service.GetTheme(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PREFS_FAILED", "Failed to load theme preference")
		return
	}
	response.Success(c, http.StatusOK, ThemeResponse{Theme: theme})
}

func (h *Handler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetTheme(c.Request.Context(), req.Theme); err != nil {
		if errors.Is(err, ErrInvalidTheme) {
			response.Error(c, http.StatusBadRequest, "INVALID_THEME", "Theme must be light, dark or system")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PREFS_FAILED", "Failed to save theme preference")
		return
	}
	response.Success(c, http.StatusOK, ThemeResponse{Theme: req.Theme})
}
