package ai

import (
	"context"
	"encoding/base64"

	openai "github.com/sashabaranov/go-openai"

	"matjar_back_end/internal/models"
)

// MarketingCopy est le contenu promotionnel généré pour un produit dans une
// langue cible.
type MarketingCopy struct {
	Post         string   `json:"post"`
	Hashtags     []string `json:"hashtags"`
	CallToAction string   `json:"callToAction"`
	SalesTips    []string `json:"salesTips"`
}

// GenerateMarketingCopy demande au modèle un post, des hashtags, un appel à
// l'action et des conseils de vente dans la langue cible.
func (g *Gateway) GenerateMarketingCopy(ctx context.Context, p *models.Product, lang string) (*MarketingCopy, error) {
	const op = "génération du contenu marketing"

	client, err := g.resolve()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.TextModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildMarketingPrompt(p, lang)},
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

	var content MarketingCopy
	if err := decodeModelJSON(op, resp.Choices[0].Message.Content, &content); err != nil {
		return nil, err
	}
	if content.Hashtags == nil {
		content.Hashtags = []string{}
	}
	if content.SalesTips == nil {
		content.SalesTips = []string{}
	}
	return &content, nil
}

// MarketingImageInput décrit le visuel promotionnel demandé.
type MarketingImageInput struct {
	ProductName  string
	Post         string
	Hashtags     []string
	CallToAction string
}

// GenerateMarketingImage produit le visuel en PNG (le modèle répond en
// base64, décodé ici : le handler renvoie les octets tels quels).
func (g *Gateway) GenerateMarketingImage(ctx context.Context, input MarketingImageInput) ([]byte, error) {
	const op = "génération du visuel marketing"

	client, err := g.resolve()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         buildMarketingImagePrompt(input),
		Model:          g.cfg.ImageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, upstream(op, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, upstreamf(op, "aucune image renvoyée par le modèle")
	}

	png, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, upstreamf(op, "image renvoyée illisible: %v", err)
	}
	return png, nil
}

// GenerateChatImage produit une image à partir d'une consigne libre et
// retourne l'URL hébergée par le service. Échoue si aucune URL n'est rendue.
func (g *Gateway) GenerateChatImage(ctx context.Context, prompt, productName string) (string, error) {
	const op = "génération d'image"

	client, err := g.resolve()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	full := prompt
	if productName != "" {
		full = "Product: " + productName + "\n" + prompt
	}

	resp, err := client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         full,
		Model:          g.cfg.ImageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", upstream(op, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", upstreamf(op, "aucune URL d'image renvoyée par le modèle")
	}
	return resp.Data[0].URL, nil
}
