package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	classificationHTTP "finmail-classifier/internal/classification/delivery/http"
	"finmail-classifier/pkg/response"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	srv.registerFrontend()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.Logger())
	srv.gin.Use(srv.mw.CORS())

	srv.l.Infof(context.Background(), "CORS mode: %s", srv.environment)
}

// recoverPanic answers a panicking handler with the generic 500 body.
func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	srv.l.Errorf(c.Request.Context(), "httpserver.recoverPanic: %v", recovered)
	response.InternalError(c, fmt.Errorf("panic: %v", recovered))
	c.Abort()
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api")
	classificationHTTP.RegisterRoutes(api, srv.classificationHandler, srv.mw.RateLimit())
	srv.l.Infof(context.Background(), "Classification routes registered at /api")
}
