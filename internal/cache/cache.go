package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"matjar_back_end/internal/models"
)

const (
	productsKey = "products:all"
	productsTTL = time.Hour
)

// ProductCache met en cache la liste des produits dans Redis. Le client peut
// être nil (Redis non configuré) : toutes les opérations deviennent alors des
// no-ops et le store reste la source de vérité.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache accepte un client nil.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// GetProducts retourne la liste en cache, ou false si absente/illisible.
func (c *ProductCache) GetProducts(ctx context.Context) ([]models.Product, bool) {
	if c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, productsKey).Result()
	if err != nil || val == "" {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProducts met la liste en cache. Les erreurs Redis sont ignorées : le
// cache n'est jamais bloquant.
func (c *ProductCache) SetProducts(ctx context.Context, products []models.Product) {
	if c.client == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		c.client.Set(ctx, productsKey, data, productsTTL)
	}
}

// Invalidate purge la liste après toute création/mise à jour/suppression.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, productsKey)
}
