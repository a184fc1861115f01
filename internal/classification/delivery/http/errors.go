package http

import (
	"errors"
	"fmt"
	"net/http"

	"finmail-classifier/internal/classification"
	pkgErrors "finmail-classifier/pkg/errors"
	"finmail-classifier/pkg/llmprovider"
)

// RateLimitDocsURL is where users are pointed when Groq throttles them.
const RateLimitDocsURL = "https://console.groq.com/docs/rate-limits"

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var (
		rateLimit *llmprovider.RateLimitError
		allFailed *llmprovider.AllModelsFailedError
		malformed *classification.MalformedResponseError
		schema    *classification.SchemaValidationError
		internal  *classification.InternalError
	)

	switch {
	case errors.Is(err, classification.ErrEmptyContent):
		return pkgErrors.WrapHTTPError(http.StatusBadRequest,
			"O conteúdo do email é obrigatório.", err)

	case errors.As(err, &rateLimit):
		return pkgErrors.WrapHTTPError(http.StatusTooManyRequests, fmt.Sprintf(
			"Limite de uso atingido. Por favor, aguarde alguns segundos antes de tentar novamente. "+
				"Modelo usado: %s. Para mais informações: %s", rateLimit.Model, RateLimitDocsURL), err)

	case errors.As(err, &allFailed):
		return pkgErrors.WrapHTTPError(http.StatusInternalServerError, fmt.Sprintf(
			"Não foi possível obter resposta. Último erro: %s",
			classification.Truncate(errString(allFailed.LastErr), classification.SnippetLength)), err)

	case errors.As(err, &malformed):
		return pkgErrors.WrapHTTPError(http.StatusInternalServerError, fmt.Sprintf(
			"Erro ao processar resposta JSON da API: %v | Resposta recebida: %s", malformed.Err, malformed.Snippet), err)

	case errors.As(err, &schema):
		return pkgErrors.WrapHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("Erro de validação: %v", schema.Err), err)

	case errors.As(err, &internal):
		return pkgErrors.WrapHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("Erro na classificação: %s", internal.Message), err)

	default:
		return pkgErrors.WrapHTTPError(http.StatusInternalServerError, fmt.Sprintf(
			"Erro na classificação: %s", classification.Truncate(err.Error(), classification.SnippetLength)), err)
	}
}

func errString(err error) string {
	if err == nil {
		return "desconhecido"
	}
	return err.Error()
}
