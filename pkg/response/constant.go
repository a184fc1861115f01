package response

const (
	// DefaultErrorMessage is sent when an error carries no client-facing message.
	DefaultErrorMessage = "Erro interno do servidor"
)
