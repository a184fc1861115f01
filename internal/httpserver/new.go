package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	classificationHTTP "finmail-classifier/internal/classification/delivery/http"
	"finmail-classifier/internal/middleware"
	"finmail-classifier/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Edge
	mw      middleware.Middleware
	distDir string

	// Classification domain
	classificationHandler classificationHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Edge
	AllowedOrigins []string
	RequestsPerMin int
	DistDir        string

	// Classification domain
	ClassificationHandler classificationHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		distDir:         cfg.DistDir,
		mw: middleware.New(logger, middleware.Config{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestsPerMin: cfg.RequestsPerMin,
		}),
		classificationHandler: cfg.ClassificationHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.classificationHandler == nil {
		return errors.New("classification handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
