package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"finmail-classifier/internal/classification"
	"finmail-classifier/pkg/llmprovider"
)

// Classify validates the input, runs the prompt through the fallback chain and
// validates the model output. A Result is only returned when all six fields pass.
func (uc *implUseCase) Classify(ctx context.Context, input classification.ClassifyInput) (classification.ClassifyOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return classification.ClassifyOutput{}, classification.ErrEmptyContent
	}

	uc.l.Infof(ctx, "Classifying email (%d characters)", utf8.RuneCountInString(input.Content))

	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction,
		Prompt:            buildPrompt(input.Content),
		Temperature:       uc.temperature,
		ResponseFormat:    llmprovider.ResponseFormatJSONObject,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Classify Complete: %v", err)
		if errors.Is(err, llmprovider.ErrRateLimitExceeded) || errors.Is(err, llmprovider.ErrAllModelsFailed) {
			return classification.ClassifyOutput{}, err
		}
		return classification.ClassifyOutput{}, &classification.InternalError{
			Message: classification.Truncate(err.Error(), classification.SnippetLength),
			Err:     err,
		}
	}

	uc.l.Infof(ctx, "Model %s answered (first %d chars): %s",
		resp.ModelName, classification.SnippetLength, classification.Truncate(resp.Text, classification.SnippetLength))

	result, err := parseResult(resp.Text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Classify parseResult: %v", err)
		return classification.ClassifyOutput{}, err
	}

	uc.l.Infof(ctx, "Classification succeeded: %s", result.Category)

	return classification.ClassifyOutput{
		Result:    result,
		ModelUsed: resp.ModelName,
	}, nil
}
