package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// classify may carry extra middleware (e.g. the per-client throttle).
func RegisterRoutes(rg *gin.RouterGroup, h Handler, classify ...gin.HandlerFunc) {
	rg.GET("/models", h.ListModels)
	rg.POST("/classify", append(classify, h.Classify)...)
}
