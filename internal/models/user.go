package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // hash Argon2id, jamais exposé
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// CartData représente le panier d'un utilisateur : product_id → quantité.
// Stocké dans Redis (hash), jamais dans le document utilisateur.
type CartData map[string]int64
