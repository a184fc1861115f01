package httpserver

import (
	"github.com/gin-gonic/gin"

	"finmail-classifier/pkg/response"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Liveness probe. Does not contact the completion provider.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "healthy"})
}
