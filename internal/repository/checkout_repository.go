package repository

import (
	"context"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CheckoutRepository keeps the audit trail of checkout attempts.
type CheckoutRepository struct {
	collection *mongo.Collection
}

// NewCheckoutRepository creates a new checkout repository.
func NewCheckoutRepository(db *MongoDB) *CheckoutRepository {
	return &CheckoutRepository{collection: db.Checkouts}
}

// Record stores one checkout attempt.
func (r *CheckoutRepository) Record(ctx context.Context, record *model.CheckoutRecord) error {
	_, err := r.collection.InsertOne(ctx, checkoutToDocument(record))
	return err
}

// ListByCart returns the attempts for a cart, newest first.
func (r *CheckoutRepository) ListByCart(ctx context.Context, cartID string, limit int) ([]*model.CheckoutRecord, error) {
	return r.find(ctx, bson.M{"cart_id": cartID}, limit)
}

// ListPendingReconciliation returns attempts whose payment cancellation failed
// or whose authorization outcome is unknown.
func (r *CheckoutRepository) ListPendingReconciliation(ctx context.Context, limit int) ([]*model.CheckoutRecord, error) {
	return r.find(ctx, bson.M{"compensation": bson.M{"$in": bson.A{
		string(model.CompensationFailed),
		string(model.CompensationUnknown),
	}}}, limit)
}

func (r *CheckoutRepository) find(ctx context.Context, filter bson.M, limit int) ([]*model.CheckoutRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []CheckoutDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]*model.CheckoutRecord, 0, len(docs))
	for _, d := range docs {
		rec, err := d.toModel()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
