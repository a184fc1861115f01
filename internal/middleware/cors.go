package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins, or every origin when none are set.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"X-Model-Used", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(m.cfg.AllowedOrigins) == 0 || (len(m.cfg.AllowedOrigins) == 1 && m.cfg.AllowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.cfg.AllowedOrigins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
