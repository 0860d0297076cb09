package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matjar_back_end/internal/models"
)

func TestCreateProduct_DefaultsAndRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreateProduct(ctx, models.CreateProductInput{
		Name:     "كرسي خشبي",
		ImageURL: "/uploads/123.jpg",
		Descriptions: models.LocalizedText{
			"ar": "كرسي مريح",
			"en": "A comfortable chair",
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "كرسي خشبي", got.Name)
	assert.Equal(t, "/uploads/123.jpg", got.ImageURL)

	// Les trois langues sont toujours présentes, même non fournies.
	assert.Equal(t, models.LocalizedText{"ar": "كرسي مريح", "en": "A comfortable chair", "fr": ""}, got.Descriptions)
	assert.Equal(t, models.LocalizedList{"ar": {}, "en": {}, "fr": {}}, got.Benefits)
	assert.Equal(t, models.LocalizedList{"ar": {}, "en": {}, "fr": {}}, got.Features)
}

func TestGetProduct_Absent(t *testing.T) {
	s := NewMemoryStore()

	got, err := s.GetProduct(context.Background(), "inconnu")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetProducts_NewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	s.now = func() time.Time { return clock }

	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		p, err := s.CreateProduct(ctx, models.CreateProductInput{Name: name})
		require.NoError(t, err)
		ids = append(ids, p.ID)
		clock = clock.Add(time.Minute)
	}

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "C", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
	assert.Equal(t, "A", products[2].Name)
	assert.Equal(t, ids[2], products[0].ID)
}

func TestGetProducts_TieBreakOnInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// Même horodatage pour toutes les créations : l'ordre d'insertion départage.
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	for _, name := range []string{"premier", "deuxième", "troisième"} {
		_, err := s.CreateProduct(ctx, models.CreateProductInput{Name: name})
		require.NoError(t, err)
	}

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "troisième", products[0].Name)
	assert.Equal(t, "premier", products[2].Name)
}

func TestUpdateProduct_MergePreservesLanguages(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p, err := s.CreateProduct(ctx, models.CreateProductInput{
		Name:         "Tasse",
		Descriptions: models.LocalizedText{"ar": "كوب", "en": "A mug", "fr": "Une tasse"},
	})
	require.NoError(t, err)

	// Un patch qui ne fournit qu'une langue re-normalise quand même les trois clés.
	updated, err := s.UpdateProduct(ctx, p.ID, models.ProductUpdate{
		Descriptions: models.LocalizedText{"en": "A better mug"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "A better mug", updated.Descriptions["en"])
	assert.Contains(t, updated.Descriptions, "ar")
	assert.Contains(t, updated.Descriptions, "fr")
	assert.Equal(t, "Tasse", updated.Name)
}

func TestUpdateProduct_Absent(t *testing.T) {
	s := NewMemoryStore()

	name := "Nouveau nom"
	updated, err := s.UpdateProduct(context.Background(), "inconnu", models.ProductUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteProduct_TrueExactlyOnce(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	deleted, err := s.DeleteProduct(ctx, "jamais-créé")
	require.NoError(t, err)
	assert.False(t, deleted)

	p, err := s.CreateProduct(ctx, models.CreateProductInput{Name: "Éphémère"})
	require.NoError(t, err)

	deleted, err = s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p, err := s.CreateProduct(ctx, models.CreateProductInput{
		Name:         "Lampe",
		Descriptions: models.LocalizedText{"fr": "Une lampe"},
	})
	require.NoError(t, err)

	// Muter la copie rendue ne doit pas toucher l'état du store.
	p.Name = "Corrompu"
	p.Descriptions["fr"] = "Corrompu"

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lampe", got.Name)
	assert.Equal(t, "Une lampe", got.Descriptions["fr"])
}

func TestCreateOrder_Defaults(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, models.CreateOrderInput{
		ProductID:          "produit-1",
		CustomerName:       "Ali",
		CustomerPhone:      "555",
		ConfirmationScript: "مرحباً Ali",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, o.Status)
	assert.Equal(t, 1, o.Quantity)
	assert.Equal(t, "ar", o.Language)
	assert.NotEmpty(t, o.ConfirmationScript)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestCreateOrder_InvalidStatus(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.CreateOrder(context.Background(), models.CreateOrderInput{
		ProductID:     "p",
		CustomerName:  "Ali",
		CustomerPhone: "555",
		Status:        "expédiée",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateOrder_StatusOnlyChangesStatus(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, models.CreateOrderInput{
		ProductID:          "produit-1",
		CustomerName:       "Fatima",
		CustomerPhone:      "0661",
		Quantity:           3,
		ConfirmationScript: "script original",
	})
	require.NoError(t, err)

	status := models.StatusConfirmed
	updated, err := s.UpdateOrder(ctx, o.ID, models.OrderUpdate{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, "Fatima", updated.CustomerName)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "script original", updated.ConfirmationScript)
}

func TestUpdateOrder_PermissiveTransitions(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, models.CreateOrderInput{
		ProductID: "p", CustomerName: "Ali", CustomerPhone: "555",
	})
	require.NoError(t, err)

	// Aucun graphe de transition : cancelled peut repasser à delivered.
	for _, status := range []string{models.StatusCancelled, models.StatusDelivered, models.StatusPending} {
		st := status
		updated, err := s.UpdateOrder(ctx, o.ID, models.OrderUpdate{Status: &st})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateOrder_Validation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, models.CreateOrderInput{
		ProductID: "p", CustomerName: "Ali", CustomerPhone: "555",
	})
	require.NoError(t, err)

	bad := "livrée-en-retard"
	_, err = s.UpdateOrder(ctx, o.ID, models.OrderUpdate{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	zero := 0
	_, err = s.UpdateOrder(ctx, o.ID, models.OrderUpdate{Quantity: &zero})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestGetOrdersByProduct(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, pid := range []string{"a", "b", "a"} {
		_, err := s.CreateOrder(ctx, models.CreateOrderInput{
			ProductID: pid, CustomerName: "Ali", CustomerPhone: "555",
		})
		require.NoError(t, err)
	}

	orders, err := s.GetOrdersByProduct(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "a", o.ProductID)
	}
}

func TestGetOrders_NewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	var ids []string
	for i := 0; i < 3; i++ {
		o, err := s.CreateOrder(ctx, models.CreateOrderInput{
			ProductID: "p", CustomerName: "Ali", CustomerPhone: "555",
		})
		require.NoError(t, err)
		ids = append(ids, o.ID)
		clock = clock.Add(time.Hour)
	}

	orders, err := s.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, ids[2], orders[0].ID)
	assert.Equal(t, ids[0], orders[2].ID)
}

func TestDeleteOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, models.CreateOrderInput{
		ProductID: "p", CustomerName: "Ali", CustomerPhone: "555",
	})
	require.NoError(t, err)

	deleted, err := s.DeleteOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUsers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, models.CreateUserInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	byName, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, u.ID, byName.ID)

	_, err = s.CreateUser(ctx, models.CreateUserInput{Username: "admin", Password: "autre"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	absent, err := s.GetUser(ctx, "inconnu")
	require.NoError(t, err)
	assert.Nil(t, absent)
}
