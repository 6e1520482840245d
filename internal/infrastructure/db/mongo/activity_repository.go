package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resourcespen/storefront/internal/core/domain"
)

const maxActivityPage = 500

// ActivityRepository stores activity events in an append-only collection.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

// Insert persists an activity event to the audit collection.
func (r *ActivityRepository) Insert(ctx context.Context, ev *domain.ActivityEvent) error {
	doc := bson.M{
		"device_id":    ev.DeviceID,
		"action":       string(ev.Action),
		"timestamp":    ev.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if ev.UserID != "" {
		doc["user_id"] = ev.UserID
		doc["role"] = string(ev.Role)
	}
	if ev.View != "" {
		doc["view"] = string(ev.View)
	}
	if ev.Detail != "" {
		doc["detail"] = ev.Detail
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// List returns the latest events, newest first.
func (r *ActivityRepository) List(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > maxActivityPage {
		limit = maxActivityPage
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]*domain.ActivityEvent, 0, limit)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}
	return events, nil
}

func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "device_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
