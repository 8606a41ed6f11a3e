package profile

import (
	"net/http"

	"inspectbook/internal/domain"
	"inspectbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	manager StateManager
}

func NewHandler(manager StateManager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/profile")
	{
		group.GET("", h.Get)
		group.PUT("", h.Update)
		group.DELETE("/data", h.ClearData)
	}
}

func (h *Handler) Get(c *gin.Context) {
	state := h.manager.State()

	out := ProfileResponse{
		CRN:           state.CRN,
		Authenticated: state.IsAuthenticated,
		OrderCount:    len(state.Orders),
	}
	if state.Profile != nil {
		out.FullName = state.Profile.FullName
		out.Phone = state.Profile.Phone
		out.Email = state.Profile.Email
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	h.manager.UpdateProfile(domain.Profile{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	h.Get(c)
}

// ClearData erases the whole stored state, orders included. The theme
// preference lives under its own key and survives.
func (h *Handler) ClearData(c *gin.Context) {
	h.manager.ClearAll()
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}
