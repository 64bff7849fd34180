package menu

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// processTimeout bounds one whole processing run (OCR plus the image
// fan-out). Collaborators publish no latency contract, so the bound is
// ours.
const processTimeout = 2 * time.Minute

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type processRequest struct {
	Image string `json:"image"`
}

// Process handles POST /api/process-menu. Auth is enforced by the
// middleware in front of this route.
func (h *Handler) Process(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	// Detached from the request context: an aborted client connection
	// must not cancel in-flight collaborator calls.
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	result, err := h.service.Process(ctx, req.Image)
	if err != nil {
		log.Printf("PROCESS_FAILED err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process menu"})
		return
	}

	c.JSON(http.StatusOK, result)
}
