package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product est un projet étudiant mis en vente : une image d'aperçu,
// une archive ZIP du code et une documentation PDF, toutes trois
// stockées dans MinIO (on ne garde que les URLs).
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	Category      string             `bson:"category" json:"category"`
	SubCategory   string             `bson:"sub_category" json:"subCategory"`
	BestSell      bool               `bson:"best_sell" json:"bestSell"`
	Image         string             `bson:"image" json:"image"`
	ProjectFiles  string             `bson:"project_files" json:"projectFiles"`
	Documentation string             `bson:"documentation" json:"documentation"`
	Date          time.Time          `bson:"date" json:"date"`
}
