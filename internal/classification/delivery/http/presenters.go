package http

import (
	"finmail-classifier/internal/classification"
)

// ModelUsedHeader carries the model that produced a classification.
const ModelUsedHeader = "X-Model-Used"

// --- Request DTOs ---

type classifyReq struct {
	Content string `json:"content"`
}

func (r classifyReq) toInput() classification.ClassifyInput {
	return classification.ClassifyInput{Content: r.Content}
}

// --- Response DTOs ---

type classifyResp struct {
	Category          string `json:"category"`
	Reason            string `json:"reason"`
	Summary           string `json:"summary"`
	SuggestedResponse string `json:"suggestedResponse"`
	Priority          string `json:"priority"`
	Sentiment         string `json:"sentiment"`
}

func (h *handler) newClassifyResp(out classification.ClassifyOutput) classifyResp {
	r := out.Result
	return classifyResp{
		Category:          string(r.Category),
		Reason:            r.Reason,
		Summary:           r.Summary,
		SuggestedResponse: r.SuggestedResponse,
		Priority:          string(r.Priority),
		Sentiment:         string(r.Sentiment),
	}
}

type modelResp struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

type modelsResp struct {
	AvailableModels []modelResp `json:"available_models"`
	Provider        string      `json:"provider"`
}

func (h *handler) newModelsResp(out classification.ListModelsOutput) modelsResp {
	models := make([]modelResp, len(out.Models))
	for i, m := range out.Models {
		models[i] = modelResp{
			Name:        m.Name,
			DisplayName: m.DisplayName,
			Description: m.Description,
		}
	}
	return modelsResp{
		AvailableModels: models,
		Provider:        out.Provider,
	}
}
