package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processClassifyReq binds the classify request body. Emptiness is checked by the use case.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("corpo da requisição inválido: %w", err)
	}
	return req, nil
}
