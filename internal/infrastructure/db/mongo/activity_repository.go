package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

const activityCollection = "activities"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{collection: db.Collection(activityCollection)}
}

// Insert appends one entry to the activities collection.
func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	if _, err := r.collection.InsertOne(ctx, activityDocument(activity)); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func activityDocument(a *domain.Activity) bson.M {
	return bson.M{
		"user_id":   a.UserID,
		"type":      string(a.Type),
		"target_id": a.TargetID,
		"message":   a.Message,
		"timestamp": a.Timestamp.UTC(),
	}
}
