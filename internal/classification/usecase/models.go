package usecase

import (
	"context"

	"finmail-classifier/internal/classification"
)

// DefaultCatalog lists the models exposed by GET /api/models.
var DefaultCatalog = []classification.ModelInfo{
	{
		Name:        "llama-3.1-70b-versatile",
		DisplayName: "Llama 3.1 70B Versatile",
		Description: "Modelo versátil e poderoso, ideal para tarefas complexas",
	},
	{
		Name:        "llama-3.1-8b-instant",
		DisplayName: "Llama 3.1 8B Instant",
		Description: "Modelo rápido e leve, ideal para respostas rápidas",
	},
	{
		Name:        "mixtral-8x7b-32768",
		DisplayName: "Mixtral 8x7B",
		Description: "Modelo de mistura de especialistas, muito eficiente",
	},
	{
		Name:        "gemma2-9b-it",
		DisplayName: "Gemma 2 9B",
		Description: "Modelo Google Gemma 2, otimizado para instruções",
	},
}

// ListModels returns the static model catalog.
func (uc *implUseCase) ListModels(ctx context.Context) classification.ListModelsOutput {
	models := make([]classification.ModelInfo, len(uc.catalog))
	copy(models, uc.catalog)

	return classification.ListModelsOutput{
		Models:   models,
		Provider: uc.provider,
	}
}
