package http

import (
	"github.com/gin-gonic/gin"

	"finmail-classifier/internal/classification"
	pkgLog "finmail-classifier/pkg/log"
)

// Handler is the public interface for the classification HTTP delivery layer.
type Handler interface {
	Classify(c *gin.Context)
	ListModels(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc classification.UseCase
}

// New creates a new HTTP handler for the classification domain.
func New(l pkgLog.Logger, uc classification.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
