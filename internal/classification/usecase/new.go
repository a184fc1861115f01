package usecase

import (
	"context"

	"finmail-classifier/internal/classification"
	"finmail-classifier/pkg/llmprovider"
	pkgLog "finmail-classifier/pkg/log"
)

// Completer runs a completion request through the model fallback chain.
// *llmprovider.Manager implements it.
type Completer interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// DefaultTemperature is the sampling temperature used for classification.
const DefaultTemperature = 0.3

// Config is the dependency bag passed to New().
type Config struct {
	Temperature float64
	Provider    string
	Catalog     []classification.ModelInfo
}

// implUseCase is the private implementation of classification.UseCase.
type implUseCase struct {
	l           pkgLog.Logger
	llm         Completer
	temperature float64
	provider    string
	catalog     []classification.ModelInfo
}

// New creates a new classification UseCase implementation.
func New(l pkgLog.Logger, llm Completer, cfg Config) *implUseCase {
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Catalog == nil {
		cfg.Catalog = DefaultCatalog
	}

	return &implUseCase{
		l:           l,
		llm:         llm,
		temperature: cfg.Temperature,
		provider:    cfg.Provider,
		catalog:     cfg.Catalog,
	}
}
