package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/page"
)

type HealthHandler struct {
	sessions *page.Sessions
}

func NewHealthHandler(sessions *page.Sessions) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.sessions.Len()})
}
