package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"matjar_back_end/internal/models"
)

// Sans credential, chaque capacité échoue au moment de l'appel (jamais à la
// construction) avec ErrMissingAPIKey.
func TestGateway_MissingAPIKeyFailsLazily(t *testing.T) {
	g := NewGateway(Config{})
	assert.False(t, g.Configured())

	ctx := context.Background()
	p := &models.Product{Name: "Tasse"}

	_, err := g.AnalyzeProductImage(ctx, []byte{0xFF}, "image/jpeg")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = g.GenerateMarketingCopy(ctx, p, "fr")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = g.GenerateMarketingImage(ctx, MarketingImageInput{ProductName: "Tasse"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = g.GenerateChatImage(ctx, "une tasse sur une table", "Tasse")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = g.AnswerProductQuestion(ctx, "prix ?", "fr", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGateway_DefaultModels(t *testing.T) {
	g := NewGateway(Config{APIKey: "test-key"})

	assert.NotEmpty(t, g.cfg.TextModel)
	assert.NotEmpty(t, g.cfg.ImageModel)
	assert.True(t, g.Configured())
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := upstream("opération", cause)

	var ue *UpstreamError
	assert.ErrorAs(t, err, &ue)
	assert.ErrorIs(t, err, cause)
}
