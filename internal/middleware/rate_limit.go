package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	AuthWindow = 15 * time.Minute
)

// AuthRateLimit limite les tentatives par IP sur les routes
// d'authentification : compteur Redis à fenêtre fixe.
func AuthRateLimit(rdb *redis.Client, name string, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		attempts, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis indisponible : on laisse passer plutôt que de
			// bloquer tout le monde.
			c.Next()
			return
		}
		if attempts == 1 {
			rdb.Expire(ctx, key, window)
		}

		if attempts > int64(max) {
			ttl, _ := rdb.TTL(ctx, key).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     fmt.Sprintf("Trop de tentatives. Réessayez dans %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
