package billing

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type checkoutRequest struct {
	// binding:"required" also rejects a literal zero, so a zero-credit
	// or zero-price purchase reads as a missing field and gets a 400.
	Credits int64   `json:"credits" binding:"required"`
	Price   float64 `json:"price" binding:"required"`
}

// CreateCheckoutSession handles POST /api/create-checkout-session.
// Auth is enforced by the middleware in front of this route.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing credits or price"})
		return
	}

	email := c.GetString("userEmail")

	url, err := h.service.CreateSession(req.Credits, req.Price, email)
	if err != nil {
		log.Printf("CHECKOUT_FAILED user=%s err=%v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
