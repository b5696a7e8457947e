package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulaview/aulaview-backend/internal/response"
)

type SystemHandler struct {
	cacheBackend string
}

func NewSystemHandler(cacheBackend string) *SystemHandler {
	return &SystemHandler{cacheBackend: cacheBackend}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":        "ok",
		"cache_backend": h.cacheBackend,
	})
}
