package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/models"
)

// record attache un numéro de séquence d'insertion à chaque entité : le tri
// "du plus récent au plus ancien" reste stable même quand deux créations
// partagent le même horodatage.
type productRecord struct {
	product *models.Product
	seq     uint64
}

type orderRecord struct {
	order *models.Order
	seq   uint64
}

// MemoryStore garde toutes les entités en mémoire du process. Toutes les
// opérations copient les entités en entrée comme en sortie : les appelants
// ne partagent jamais une instance avec le store.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	products map[string]productRecord
	orders   map[string]orderRecord
	seq      uint64

	// now est remplaçable dans les tests pour contrôler createdAt.
	now func() time.Time
}

// NewMemoryStore crée un store vide.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		products: make(map[string]productRecord),
		orders:   make(map[string]orderRecord),
		now:      time.Now,
	}
}

// --- Users ---

func (s *MemoryStore) CreateUser(_ context.Context, input models.CreateUserInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == input.Username {
			return nil, ErrDuplicateUser
		}
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: input.Username,
		Password: input.Password,
	}
	s.users[user.ID] = user

	out := *user
	return &out, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// --- Products ---

func (s *MemoryStore) CreateProduct(_ context.Context, input models.CreateProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.Product{
		ID:           uuid.NewString(),
		Name:         input.Name,
		ImageURL:     input.ImageURL,
		Descriptions: input.Descriptions.Normalized(),
		Benefits:     input.Benefits.Normalized(),
		Features:     input.Features.Normalized(),
		Price:        input.Price,
		Category:     input.Category,
		CreatedAt:    s.now(),
	}

	s.seq++
	s.products[p.ID] = productRecord{product: p, seq: s.seq}

	return p.Clone(), nil
}

func (s *MemoryStore) GetProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]productRecord, 0, len(s.products))
	for _, rec := range s.products {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.product.CreatedAt.Equal(b.product.CreatedAt) {
			return a.product.CreatedAt.After(b.product.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]models.Product, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec.product.Clone())
	}
	return out, nil
}

func (s *MemoryStore) GetProduct(_ context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return rec.product.Clone(), nil
}

func (s *MemoryStore) UpdateProduct(_ context.Context, id string, patch models.ProductUpdate) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.products[id]
	if !ok {
		return nil, nil
	}

	updated := rec.product.Clone()
	applyProductUpdate(updated, patch)

	s.products[id] = productRecord{product: updated, seq: rec.seq}
	return updated.Clone(), nil
}

func (s *MemoryStore) DeleteProduct(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

// --- Orders ---

func (s *MemoryStore) CreateOrder(_ context.Context, input models.CreateOrderInput) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
		CreatedAt:          s.now(),
	}

	s.seq++
	s.orders[o.ID] = orderRecord{order: o, seq: s.seq}

	return o.Clone(), nil
}

func (s *MemoryStore) GetOrders(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]orderRecord, 0, len(s.orders))
	for _, rec := range s.orders {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.order.CreatedAt.Equal(b.order.CreatedAt) {
			return a.order.CreatedAt.After(b.order.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]models.Order, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec.order.Clone())
	}
	return out, nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return rec.order.Clone(), nil
}

func (s *MemoryStore) GetOrdersByProduct(_ context.Context, productID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]orderRecord, 0)
	for _, rec := range s.orders {
		if rec.order.ProductID == productID {
			records = append(records, rec)
		}
	}
	// Ordre stable : plus récent d'abord, comme GetOrders.
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.order.CreatedAt.Equal(b.order.CreatedAt) {
			return a.order.CreatedAt.After(b.order.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]models.Order, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec.order.Clone())
	}
	return out, nil
}

func (s *MemoryStore) UpdateOrder(_ context.Context, id string, patch models.OrderUpdate) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.orders[id]
	if !ok {
		return nil, nil
	}

	updated := rec.order.Clone()
	if err := applyOrderUpdate(updated, patch); err != nil {
		return nil, err
	}

	s.orders[id] = orderRecord{order: updated, seq: rec.seq}
	return updated.Clone(), nil
}

func (s *MemoryStore) DeleteOrder(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}
