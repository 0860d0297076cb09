package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matjar_back_end/internal/models"
)

func promptProduct() *models.Product {
	return &models.Product{
		ID:       "p-1",
		Name:     "سجادة صوف",
		Price:    "900 MAD",
		Category: "Décoration",
		Descriptions: models.LocalizedText{
			"ar": "سجادة صوف تقليدية",
			"en": "A traditional wool rug",
			"fr": "Un tapis en laine traditionnel",
		},
		Benefits: models.LocalizedList{
			"ar": {}, "en": {"Hand woven"}, "fr": {"Tissé main"},
		},
		Features: models.LocalizedList{"ar": {}, "en": {}, "fr": {}},
	}
}

func TestBuildAnalysisPrompt_DescribesExpectedJSON(t *testing.T) {
	prompt := buildAnalysisPrompt()

	assert.Contains(t, prompt, `"name"`)
	assert.Contains(t, prompt, `"descriptions"`)
	assert.Contains(t, prompt, `"benefits"`)
	assert.Contains(t, prompt, `"features"`)
	assert.Contains(t, prompt, `"price"`)
	assert.Contains(t, prompt, `"category"`)
	assert.Contains(t, prompt, "JSON")
}

func TestBuildMarketingPrompt_EmbedsProductInTargetLanguage(t *testing.T) {
	prompt := buildMarketingPrompt(promptProduct(), "fr")

	assert.Contains(t, prompt, "French")
	assert.Contains(t, prompt, "سجادة صوف")
	assert.Contains(t, prompt, "900 MAD")
	assert.Contains(t, prompt, "Un tapis en laine traditionnel")
	assert.Contains(t, prompt, "Tissé main")
	assert.Contains(t, prompt, `"post"`)
	assert.Contains(t, prompt, `"salesTips"`)
}

func TestBuildMarketingPrompt_OmitsEmptyFields(t *testing.T) {
	p := promptProduct()
	p.Price = ""
	p.Category = ""

	prompt := buildMarketingPrompt(p, "en")
	assert.NotContains(t, prompt, "Price:")
	assert.NotContains(t, prompt, "Category:")
	assert.NotContains(t, prompt, "Features:")
}

func TestBuildMarketingImagePrompt(t *testing.T) {
	prompt := buildMarketingImagePrompt(MarketingImageInput{
		ProductName:  "Théière",
		Post:         "Un thé parfait chaque matin",
		Hashtags:     []string{"#thé", "#artisanat"},
		CallToAction: "Commandez maintenant",
	})

	assert.Contains(t, prompt, "Théière")
	assert.Contains(t, prompt, "Un thé parfait chaque matin")
	assert.Contains(t, prompt, "Commandez maintenant")
	assert.Contains(t, prompt, "#thé, #artisanat")
}

func TestBuildChatPrompt_GroundsOnDescription(t *testing.T) {
	prompt := buildChatPrompt("هل هو متوفر؟", "ar", "سجادة صوف تقليدية")

	assert.Contains(t, prompt, "Arabic")
	assert.Contains(t, prompt, "هل هو متوفر؟")
	assert.Contains(t, prompt, "سجادة صوف تقليدية")
}
