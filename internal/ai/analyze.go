package ai

import (
	"context"
	"encoding/base64"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"matjar_back_end/internal/models"
)

// ProductAnalysis est la fiche produit renvoyée par l'analyse d'image.
type ProductAnalysis struct {
	Name         string               `json:"name"`
	Descriptions models.LocalizedText `json:"descriptions"`
	Benefits     models.LocalizedList `json:"benefits"`
	Features     models.LocalizedList `json:"features"`
	Price        string               `json:"price"`
	Category     string               `json:"category"`
}

// AnalyzeProductImage envoie la photo au modèle multimodal et retourne la
// fiche marketing trilingue. benefits/features absents sont remplacés par
// des listes vides pour chaque langue.
func (g *Gateway) AnalyzeProductImage(ctx context.Context, data []byte, mimeType string) (*ProductAnalysis, error) {
	const op = "analyse de l'image"

	client, err := g.resolve()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	imageURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.TextModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: buildAnalysisPrompt()},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    imageURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, upstream(op, err)
	}
	if len(resp.Choices) == 0 {
		return nil, upstreamf(op, "le modèle n'a renvoyé aucun contenu")
	}

	var analysis ProductAnalysis
	if err := decodeModelJSON(op, resp.Choices[0].Message.Content, &analysis); err != nil {
		return nil, err
	}

	// Garantit l'invariant des trois langues dès la sortie du gateway.
	analysis.Descriptions = analysis.Descriptions.Normalized()
	analysis.Benefits = analysis.Benefits.Normalized()
	analysis.Features = analysis.Features.Normalized()

	return &analysis, nil
}
