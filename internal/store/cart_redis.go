package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"projectstore_backend/internal/models"
)

// cartTTL : un panier inactif expire au bout de 30 jours.
const cartTTL = 30 * 24 * time.Hour

// RedisCartStore garde chaque panier dans un hash Redis
// (cart:{userID} → product_id: quantité). HINCRBY rend l'ajout
// atomique : deux sessions du même utilisateur ne peuvent plus
// s'écraser mutuellement comme avec une map réécrite en bloc.
type RedisCartStore struct {
	rdb *redis.Client
}

func NewRedisCartStore(rdb *redis.Client) *RedisCartStore {
	return &RedisCartStore{rdb: rdb}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func (s *RedisCartStore) Add(ctx context.Context, userID, productID string) (int64, error) {
	key := cartKey(userID)

	qty, err := s.rdb.HIncrBy(ctx, key, productID, 1).Result()
	if err != nil {
		return 0, err
	}
	s.rdb.Expire(ctx, key, cartTTL)
	return qty, nil
}

func (s *RedisCartStore) Set(ctx context.Context, userID, productID string, qty int64) error {
	key := cartKey(userID)

	if qty <= 0 {
		return s.rdb.HDel(ctx, key, productID).Err()
	}
	if err := s.rdb.HSet(ctx, key, productID, qty).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, cartTTL).Err()
}

func (s *RedisCartStore) Remove(ctx context.Context, userID, productID string) error {
	key := cartKey(userID)

	if err := s.rdb.HDel(ctx, key, productID).Err(); err != nil {
		return err
	}

	// Purge les entrées à quantité nulle ou négative laissées par
	// d'anciens écrasements.
	entries, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return err
	}
	for field, raw := range entries {
		q, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || q <= 0 {
			s.rdb.HDel(ctx, key, field)
		}
	}
	return nil
}

func (s *RedisCartStore) Get(ctx context.Context, userID string) (models.CartData, error) {
	entries, err := s.rdb.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	cart := make(models.CartData, len(entries))
	for productID, raw := range entries {
		q, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || q <= 0 {
			continue
		}
		cart[productID] = q
	}
	return cart, nil
}

func (s *RedisCartStore) Clear(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, cartKey(userID)).Err()
}
