package classification

// --- Result Domain Model ---

// Category tells whether an email needs action.
type Category string

const (
	CategoryProductive   Category = "Produtivo"
	CategoryUnproductive Category = "Improdutivo"
)

// Priority is the suggested handling priority.
type Priority string

const (
	PriorityLow    Priority = "Baixa"
	PriorityMedium Priority = "Média"
	PriorityHigh   Priority = "Alta"
)

// Sentiment is the tone of the email.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positivo"
	SentimentNeutral  Sentiment = "Neutro"
	SentimentNegative Sentiment = "Negativo"
)

var (
	Categories = []Category{CategoryProductive, CategoryUnproductive}
	Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}
	Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}
)

func (c Category) Valid() bool { return contains(Categories, c) }
func (p Priority) Valid() bool { return contains(Priorities, p) }
func (s Sentiment) Valid() bool { return contains(Sentiments, s) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Result is a fully validated classification. JSON keys are part of the API.
type Result struct {
	Category          Category  `json:"category"`
	Reason            string    `json:"reason"`
	Summary           string    `json:"summary"`
	SuggestedResponse string    `json:"suggestedResponse"`
	Priority          Priority  `json:"priority"`
	Sentiment         Sentiment `json:"sentiment"`
}

// ModelInfo describes one model offered by the completion provider.
type ModelInfo struct {
	Name        string
	DisplayName string
	Description string
}

// --- UseCase Inputs ---

type ClassifyInput struct {
	Content string
}

// --- UseCase Outputs ---

type ClassifyOutput struct {
	Result    Result
	ModelUsed string
}

type ListModelsOutput struct {
	Models   []ModelInfo
	Provider string
}
