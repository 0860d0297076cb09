package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/models"
)

// Vérifie que les deux backends respectent bien le contrat.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*GormStore)(nil)
)

// GormStore est le backend durable (PostgreSQL via GORM), activé quand
// DATABASE_URL est défini. Chaque opération CRUD est atomique au niveau de
// l'enregistrement ; aucune transaction multi-enregistrements n'est requise.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore ouvre la connexion et migre le schéma.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connexion PostgreSQL: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}); err != nil {
		return nil, fmt.Errorf("migration du schéma: %w", err)
	}
	return &GormStore{db: db}, nil
}

// --- Users ---

func (s *GormStore) CreateUser(ctx context.Context, input models.CreateUserInput) (*models.User, error) {
	existing, err := s.GetUserByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: input.Username,
		Password: input.Password,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("création utilisateur: %w", err)
	}
	return user, nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture utilisateur: %w", err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture utilisateur: %w", err)
	}
	return &user, nil
}

// --- Products ---

func (s *GormStore) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	p := &models.Product{
		ID:           uuid.NewString(),
		Name:         input.Name,
		ImageURL:     input.ImageURL,
		Descriptions: input.Descriptions.Normalized(),
		Benefits:     input.Benefits.Normalized(),
		Features:     input.Features.Normalized(),
		Price:        input.Price,
		Category:     input.Category,
		CreatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("création produit: %w", err)
	}
	return p, nil
}

func (s *GormStore) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("lecture produits: %w", err)
	}
	return products, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture produit: %w", err)
	}
	return &p, nil
}

func (s *GormStore) UpdateProduct(ctx context.Context, id string, patch models.ProductUpdate) (*models.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	applyProductUpdate(p, patch)

	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("mise à jour produit: %w", err)
	}
	return p, nil
}

func (s *GormStore) DeleteProduct(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("suppression produit: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// --- Orders ---

func (s *GormStore) CreateOrder(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	o := &models.Order{
		ID:                 uuid.NewString(),
		ProductID:          input.ProductID,
		CustomerName:       input.CustomerName,
		CustomerPhone:      input.CustomerPhone,
		CustomerAddress:    input.CustomerAddress,
		CustomerCity:       input.CustomerCity,
		Notes:              input.Notes,
		Quantity:           quantity,
		Status:             status,
		ConfirmationScript: input.ConfirmationScript,
		Language:           i18n.Normalize(input.Language),
		CreatedAt:          time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, fmt.Errorf("création commande: %w", err)
	}
	return o, nil
}

func (s *GormStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("lecture commandes: %w", err)
	}
	return orders, nil
}

func (s *GormStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture commande: %w", err)
	}
	return &o, nil
}

func (s *GormStore) GetOrdersByProduct(ctx context.Context, productID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Where("product_id = ?", productID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("lecture commandes produit: %w", err)
	}
	return orders, nil
}

func (s *GormStore) UpdateOrder(ctx context.Context, id string, patch models.OrderUpdate) (*models.Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}

	if err := applyOrderUpdate(o, patch); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(o).Error; err != nil {
		return nil, fmt.Errorf("mise à jour commande: %w", err)
	}
	return o, nil
}

func (s *GormStore) DeleteOrder(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("suppression commande: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
