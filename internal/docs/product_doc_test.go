package docs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"matjar_back_end/internal/models"
)

var docTime = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func fullProduct() *models.Product {
	return &models.Product{
		ID:       "p-2",
		Name:     "Théière en céramique",
		Price:    "150 MAD",
		Category: "Cuisine",
		Descriptions: models.LocalizedText{
			"ar": "إبريق شاي أنيق",
			"en": "An elegant teapot",
			"fr": "Une théière élégante",
		},
		Benefits: models.LocalizedList{
			"ar": {"يحافظ على الحرارة"},
			"en": {"Keeps heat in"},
			"fr": {"Garde la chaleur"},
		},
		Features: models.LocalizedList{
			"ar": {}, "en": {}, "fr": {"Céramique artisanale"},
		},
	}
}

func TestProductDocument_Deterministic(t *testing.T) {
	p := fullProduct()

	first := ProductDocument(p, "ar", docTime)
	second := ProductDocument(p, "ar", docTime)

	assert.Equal(t, first, second)
}

func TestProductDocument_Direction(t *testing.T) {
	p := fullProduct()

	assert.Contains(t, ProductDocument(p, "ar", docTime), `dir="rtl"`)
	assert.Contains(t, ProductDocument(p, "en", docTime), `dir="ltr"`)
	assert.Contains(t, ProductDocument(p, "fr", docTime), `dir="ltr"`)
}

func TestProductDocument_Content(t *testing.T) {
	doc := ProductDocument(fullProduct(), "fr", docTime)

	assert.Contains(t, doc, "Théière en céramique")
	assert.Contains(t, doc, "150 MAD")
	assert.Contains(t, doc, "Cuisine")
	assert.Contains(t, doc, "Une théière élégante")
	assert.Contains(t, doc, "Garde la chaleur")
	assert.Contains(t, doc, "Céramique artisanale")
	assert.Contains(t, doc, "2025-03-15")
}

func TestProductDocument_OmitsEmptySections(t *testing.T) {
	p := fullProduct()

	// Pas de caractéristiques en anglais : la section est absente.
	doc := ProductDocument(p, "en", docTime)
	assert.NotContains(t, doc, "Features")

	p.Price = ""
	p.Category = ""
	doc = ProductDocument(p, "en", docTime)
	assert.NotContains(t, doc, "Price")
	assert.NotContains(t, doc, "Category")
}

func TestProductDocument_EscapesUserContent(t *testing.T) {
	p := fullProduct()
	p.Name = `Tasse <script>alert("x")</script>`

	doc := ProductDocument(p, "en", docTime)
	assert.NotContains(t, doc, `<script>alert`)
	assert.Contains(t, doc, "&lt;script&gt;")
}
