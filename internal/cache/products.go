package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"projectstore_backend/internal/models"
)

const (
	productListKey = "cache:products"

	ProductCacheTTL = 10 * time.Minute
)

// ProductCache garde la liste du catalogue en Redis pour éviter de
// retaper Mongo à chaque affichage de la boutique. Le cache est
// invalidé à chaque ajout ou suppression de produit.
type ProductCache struct {
	rdb *redis.Client
}

func NewProductCache(rdb *redis.Client) *ProductCache {
	return &ProductCache{rdb: rdb}
}

// Get renvoie la liste en cache, ou false si absente ou illisible.
func (c *ProductCache) Get(ctx context.Context) ([]models.Product, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, productListKey).Bytes()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Println("⚠️ Cache produits corrompu, invalidation:", err)
		c.rdb.Del(ctx, productListKey)
		return nil, false
	}
	return products, true
}

// Set stocke la liste du catalogue. Une erreur Redis est loguée mais
// jamais remontée : le cache reste un bonus.
func (c *ProductCache) Set(ctx context.Context, products []models.Product) {
	if c == nil || c.rdb == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, productListKey, data, ProductCacheTTL).Err(); err != nil {
		log.Println("⚠️ Impossible d'écrire le cache produits:", err)
	}
}

// Invalidate supprime la liste en cache.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, productListKey).Err(); err != nil {
		log.Println("⚠️ Impossible d'invalider le cache produits:", err)
	}
}
