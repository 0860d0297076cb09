package store

import (
	"context"
	"errors"

	"matjar_back_end/internal/models"
)

// Erreurs de validation renvoyées lors d'une fusion de mise à jour partielle.
var (
	ErrInvalidStatus   = errors.New("statut de commande invalide")
	ErrInvalidQuantity = errors.New("la quantité doit être au moins 1")
	ErrDuplicateUser   = errors.New("nom d'utilisateur déjà pris")
)

// Store est le contrat de persistance. Les lectures retournent nil (et non une
// erreur) quand l'entité est absente ; les handlers traduisent nil en 404.
// Deux implémentations : MemoryStore (par défaut) et GormStore (PostgreSQL).
type Store interface {
	// Users — entité héritée, pas de flux d'authentification.
	CreateUser(ctx context.Context, input models.CreateUserInput) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// Products — triés du plus récent au plus ancien.
	CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	// Orders — triées du plus récent au plus ancien.
	CreateOrder(ctx context.Context, input models.CreateOrderInput) (*models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	GetOrdersByProduct(ctx context.Context, productID string) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id string, patch models.OrderUpdate) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
}

// applyProductUpdate fusionne la mise à jour sur le produit puis re-normalise
// les champs localisés : l'invariant des trois langues tient toujours après
// un commit, quel que soit le patch reçu.
func applyProductUpdate(p *models.Product, patch models.ProductUpdate) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Descriptions != nil {
		p.Descriptions = patch.Descriptions
	}
	if patch.Benefits != nil {
		p.Benefits = patch.Benefits
	}
	if patch.Features != nil {
		p.Features = patch.Features
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	p.Descriptions = p.Descriptions.Normalized()
	p.Benefits = p.Benefits.Normalized()
	p.Features = p.Features.Normalized()
}

// applyOrderUpdate fusionne la mise à jour sur la commande. Le script de
// confirmation n'est jamais régénéré ici.
func applyOrderUpdate(o *models.Order, patch models.OrderUpdate) error {
	if patch.CustomerName != nil {
		o.CustomerName = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		o.CustomerPhone = *patch.CustomerPhone
	}
	if patch.CustomerAddress != nil {
		o.CustomerAddress = *patch.CustomerAddress
	}
	if patch.CustomerCity != nil {
		o.CustomerCity = *patch.CustomerCity
	}
	if patch.Notes != nil {
		o.Notes = *patch.Notes
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 1 {
			return ErrInvalidQuantity
		}
		o.Quantity = *patch.Quantity
	}
	if patch.Status != nil {
		// Tout statut peut suivre tout autre, mais il doit appartenir
		// à l'ensemble fixe.
		if !models.ValidStatus(*patch.Status) {
			return ErrInvalidStatus
		}
		o.Status = *patch.Status
	}
	if patch.Language != nil {
		o.Language = *patch.Language
	}
	return nil
}
