package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finmail-classifier/internal/classification"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", validJSON, validJSON},
		{"json fence", "```json\n" + validJSON + "\n```", validJSON},
		{"bare fence", "```\n" + validJSON + "\n```", validJSON},
		{"leading only", "```json" + validJSON, validJSON},
		{"trailing only", validJSON + "```", validJSON},
		{"surrounding whitespace", "  \n```json\n  " + validJSON + "  \n```\n ", validJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.raw))
		})
	}
}

func TestStripFences_RoundTrip(t *testing.T) {
	for _, doc := range []string{validJSON, `{}`, `{"a":"` + "`" + `"}`} {
		wrapped := "```json\n" + doc + "\n```"
		assert.Equal(t, doc, stripFences(wrapped))
	}
}

func TestParseResult_Valid(t *testing.T) {
	res, err := parseResult("```json\n" + validJSON + "\n```")
	require.NoError(t, err)

	assert.Equal(t, classification.CategoryProductive, res.Category)
	assert.Equal(t, classification.PriorityHigh, res.Priority)
	assert.Equal(t, classification.SentimentNeutral, res.Sentiment)
	assert.Equal(t, "Cliente cobra status do chamado 123", res.Summary)
	assert.True(t, res.Category.Valid())
	assert.True(t, res.Priority.Valid())
	assert.True(t, res.Sentiment.Valid())
}

func TestParseResult_Malformed(t *testing.T) {
	_, err := parseResult("not json")

	var me *classification.MalformedResponseError
	require.True(t, errors.As(err, &me), "expected *MalformedResponseError, got %T", err)
	assert.Equal(t, "not json", me.Snippet)
	assert.Contains(t, err.Error(), "not json")
}

func TestParseResult_MalformedSnippetIsTruncated(t *testing.T) {
	raw := "{" + strings.Repeat("x", 500)

	_, err := parseResult(raw)

	var me *classification.MalformedResponseError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, classification.SnippetLength, len([]rune(me.Snippet)))
	assert.True(t, strings.HasPrefix(raw, me.Snippet))
}

func TestParseResult_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing summary", `{"category":"Produtivo","reason":"r","suggestedResponse":"s","priority":"Alta","sentiment":"Neutro"}`},
		{"category out of enum", strings.Replace(validJSON, `"Produtivo"`, `"Productive"`, 1)},
		{"priority out of enum", strings.Replace(validJSON, `"Alta"`, `"Urgente"`, 1)},
		{"sentiment out of enum", strings.Replace(validJSON, `"Neutro"`, `"Feliz"`, 1)},
		{"wrong type", strings.Replace(validJSON, `"Pede status do chamado"`, `42`, 1)},
		{"not an object", `["Produtivo"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parseResult(tt.doc)

			var se *classification.SchemaValidationError
			require.True(t, errors.As(err, &se), "expected *SchemaValidationError, got %T: %v", err, err)
			assert.Equal(t, classification.Result{}, res)
		})
	}
}
