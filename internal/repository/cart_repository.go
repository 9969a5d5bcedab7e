package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartRepository stores carts in MongoDB. Each line keeps a snapshot of the
// product as it was when added, so later catalog changes do not reprice a cart.
type CartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *MongoDB) *CartRepository {
	return &CartRepository{collection: db.Carts}
}

// FindCart returns the cart with the given id, or nil if none exists.
func (r *CartRepository) FindCart(ctx context.Context, cartID string) (*model.Cart, error) {
	var doc CartDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": cartID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

// Save inserts or replaces a cart.
func (r *CartRepository) Save(ctx context.Context, cart *model.Cart) error {
	now := time.Now().UTC()
	doc := cartToDocument(cart)
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": doc.ID},
		bson.M{
			"$set": bson.M{
				"customer_id": doc.CustomerID,
				"items":       doc.Items,
				"updated_at":  now,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// ListByCustomer returns the carts owned by customerID, newest first.
func (r *CartRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Cart, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []CartDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	carts := make([]*model.Cart, 0, len(docs))
	for _, d := range docs {
		c, err := d.toModel()
		if err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}
	return carts, nil
}
