package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"projectstore_backend/internal/models"
)

type MongoReviewStore struct {
	col *mongo.Collection
}

func NewMongoReviewStore(db *mongo.Database) *MongoReviewStore {
	return &MongoReviewStore{col: db.Collection("reviews")}
}

func (s *MongoReviewStore) Create(ctx context.Context, r *models.Review) error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}

	_, err := s.col.InsertOne(ctx, r)
	if mongo.IsDuplicateKeyError(err) {
		// L'index unique (user_id, product_id) a attrapé une soumission
		// concurrente passée entre le check applicatif et l'insert.
		return ErrDuplicate
	}
	return err
}

func (s *MongoReviewStore) FindByID(ctx context.Context, id string) (*models.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var r models.Review
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *MongoReviewStore) FindByUserAndProduct(ctx context.Context, userID, productID string) (*models.Review, error) {
	var r models.Review
	err := s.col.FindOne(ctx, bson.M{"user_id": userID, "product_id": productID}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *MongoReviewStore) Update(ctx context.Context, r *models.Review) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": r.ID}, bson.M{"$set": bson.M{
		"rating":      r.Rating,
		"review_text": r.ReviewText,
		"date":        r.Date,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoReviewStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoReviewStore) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
