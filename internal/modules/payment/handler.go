package payment

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
	group := protected.Group("/payments")
	{
		group.GET("", h.Overview)
		group.POST("/:orderId/pay", h.Pay)
		group.POST("/:orderId/schedule", h.Schedule)
	}
}

func (h *Handler) Pay(c *gin.Context) {
	order, err := h.service.Pay(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": order})
}

func (h *Handler) Schedule(c *gin.Context) {
	order, err := h.service.Schedule(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order": order})
}

func (h *Handler) Overview(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Overview(c.Request.Context()))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	case errors.Is(err, ErrAlreadyPaid):
		response.Error(c, http.StatusConflict, "ALREADY_PAID", "Order is already paid")
	case errors.Is(err, ErrIllegalTransition):
		response.Error(c, http.StatusConflict, "ILLEGAL_TRANSITION", "Order cannot change to that status")
	default:
		response.Error(c, http.StatusInternalServerError, "PAYMENT_FAILED", "Payment operation failed")
	}
}
