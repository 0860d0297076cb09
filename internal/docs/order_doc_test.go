package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matjar_back_end/internal/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:                 "o-1",
		ProductID:          "p-1",
		CustomerName:       "Ali",
		CustomerPhone:      "555",
		Quantity:           2,
		Status:             models.StatusPending,
		ConfirmationScript: "Hello Ali! Thank you for your order.",
		Language:           "en",
	}
}

func TestOrderDocument_WithProduct(t *testing.T) {
	doc := OrderDocument(sampleOrder(), chairProduct(), "en", docTime)

	assert.Contains(t, doc, "Ali")
	assert.Contains(t, doc, "555")
	assert.Contains(t, doc, "Chair")
	assert.Contains(t, doc, "$50")
	assert.Contains(t, doc, "Pending")
	assert.Contains(t, doc, "Hello Ali! Thank you for your order.")
}

func TestOrderDocument_ProductDeleted(t *testing.T) {
	// Référence faible : la fiche se rend sans les détails produit.
	doc := OrderDocument(sampleOrder(), nil, "en", docTime)

	assert.Contains(t, doc, "Ali")
	assert.Contains(t, doc, "This product is no longer available")
	assert.NotContains(t, doc, "Chair")
}

func TestOrderDocument_OmitsEmptyOptionalFields(t *testing.T) {
	doc := OrderDocument(sampleOrder(), chairProduct(), "en", docTime)

	assert.NotContains(t, doc, "Address")
	assert.NotContains(t, doc, "City")
	assert.NotContains(t, doc, "Notes")
}

func TestOrderDocument_StatusBadge(t *testing.T) {
	o := sampleOrder()

	o.Status = models.StatusConfirmed
	assert.Contains(t, OrderDocument(o, nil, "fr", docTime), "Confirmée")

	o.Status = models.StatusCancelled
	assert.Contains(t, OrderDocument(o, nil, "fr", docTime), "Annulée")

	o.Status = models.StatusDelivered
	assert.Contains(t, OrderDocument(o, nil, "ar", docTime), "تم التوصيل")
}

func TestOrderDocument_Direction(t *testing.T) {
	assert.Contains(t, OrderDocument(sampleOrder(), nil, "ar", docTime), `dir="rtl"`)
	assert.Contains(t, OrderDocument(sampleOrder(), nil, "fr", docTime), `dir="ltr"`)
}

func TestOrderDocument_EmptyScriptOmitted(t *testing.T) {
	o := sampleOrder()
	o.ConfirmationScript = ""

	doc := OrderDocument(o, nil, "en", docTime)
	assert.NotContains(t, doc, "<pre")
}
