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

type MongoOrderStore struct {
	col *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{col: db.Collection("orders")}
}

func (s *MongoOrderStore) Create(ctx context.Context, o *models.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	if o.Date.IsZero() {
		o.Date = time.Now()
	}
	if o.Status == "" {
		o.Status = models.StatusPlaced
	}

	_, err := s.col.InsertOne(ctx, o)
	return err
}

func (s *MongoOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *MongoOrderStore) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus ne touche que le champ status de la commande visée.
func (s *MongoOrderStore) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
