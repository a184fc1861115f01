package usecase

import "fmt"

const systemInstruction = "Você é um assistente especializado em análise de emails corporativos. " +
	"Sempre retorne apenas JSON válido, sem markdown."

const promptTemplate = `Analise o seguinte email corporativo do setor financeiro e classifique-o.

Email:
"""
%s
"""

Critérios:
- PRODUTIVO: Requer ação ou resposta específica (ex: suporte, status, dúvidas, envio de arquivos).
- IMPRODUTIVO: Mensagens de felicitações, agradecimentos genéricos ou irrelevantes.

Retorne APENAS um objeto JSON válido (sem markdown, sem texto adicional) com os seguintes campos:
{
  "category": "Produtivo" ou "Improdutivo",
  "reason": "Breve explicação do porquê desta classificação",
  "summary": "Um resumo de 1 linha do conteúdo do email",
  "suggestedResponse": "Uma resposta profissional sugerida para este email",
  "priority": "Baixa", "Média" ou "Alta",
  "sentiment": "Positivo", "Neutro" ou "Negativo"
}

IMPORTANTE: Retorne APENAS o JSON, sem markdown, sem explicações adicionais. Use Português do Brasil.`

// buildPrompt embeds content verbatim. The output depends only on content.
func buildPrompt(content string) string {
	return fmt.Sprintf(promptTemplate, content)
}
