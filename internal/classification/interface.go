package classification

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Classify sends the email to the completion service and returns a validated Result.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)

	// ListModels returns the static model catalog of the provider.
	ListModels(ctx context.Context) ListModelsOutput
}
