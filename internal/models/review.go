package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review : un seul avis par couple (utilisateur, produit), garanti par
// un index unique sur (user_id, product_id) en plus du check applicatif.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"userId"`
	ProductID  string             `bson:"product_id" json:"productId"`
	UserName   string             `bson:"user_name" json:"userName"`
	Rating     int                `bson:"rating" json:"rating"` // 1-5
	ReviewText string             `bson:"review_text" json:"reviewText"`
	Date       time.Time          `bson:"date" json:"date"`
}

// ReviewSummary est l'agrégat recalculé à chaque lecture : moyenne
// arithmétique arrondie à une décimale, 0 sans avis.
type ReviewSummary struct {
	Reviews       []Review `json:"reviews"`
	TotalReviews  int      `json:"totalReviews"`
	AverageRating float64  `json:"averageRating"`
}
