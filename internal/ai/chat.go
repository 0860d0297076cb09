package ai

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"matjar_back_end/internal/i18n"
)

// AnswerProductQuestion répond à une question client en s'appuyant sur la
// description stockée du produit. Un contenu vide du modèle est remplacé par
// la réponse de repli localisée, jamais par une erreur.
func (g *Gateway) AnswerProductQuestion(ctx context.Context, question, lang, productDescription string) (string, error) {
	const op = "réponse à la question"

	client, err := g.resolve()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.TextModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildChatPrompt(question, lang, productDescription)},
		},
	})
	if err != nil {
		return "", upstream(op, err)
	}

	if len(resp.Choices) == 0 {
		return i18n.FallbackAnswer(lang), nil
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return i18n.FallbackAnswer(lang), nil
	}
	return answer, nil
}
