package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resourcespen/storefront/internal/core/domain"
)

// ContentRepository serves the landing page configuration. The most recently
// updated published document wins.
type ContentRepository struct {
	col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{col: db.Collection(collectionContent)}
}

func (r *ContentRepository) GetPageContent(ctx context.Context) (*domain.PageContent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "last_updated", Value: -1}})

	var pc domain.PageContent
	if err := r.col.FindOne(ctx, bson.M{"status": "published"}, opts).Decode(&pc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("find page content: %w", err)
	}
	return &pc, nil
}

// Upsert writes pc keyed by its id.
func (r *ContentRepository) Upsert(ctx context.Context, pc *domain.PageContent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": pc.ID}, pc, options.Replace().SetUpsert(true))
	return err
}
