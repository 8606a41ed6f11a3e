package inspection

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/inspections")
	{
		group.POST("", h.Submit)
		group.GET("", h.List)
		group.GET("/prefill", h.Prefill)
		group.GET("/:id", h.Get)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, accepted, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please fill all required fields")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SUBMIT_FAILED", "Failed to submit inspection request")
		return
	}

	if !accepted {
		// A previous submission is still completing (double tap). Nothing
		// was created; the client should just wait for the first one.
		response.Success(c, http.StatusAccepted, gin.H{"in_progress": true})
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) List(c *gin.Context) {
	orders := h.service.List(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) Get(c *gin.Context) {
	order, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": order})
}

func (h *Handler) Prefill(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Prefill(c.Request.Context()))
}
