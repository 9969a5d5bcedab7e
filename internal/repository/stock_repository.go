package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StockRepository keeps per-product stock levels.
type StockRepository struct {
	collection *mongo.Collection
}

// NewStockRepository creates a new stock repository.
func NewStockRepository(db *MongoDB) *StockRepository {
	return &StockRepository{collection: db.Stock}
}

// SetAvailable overwrites the stock level of a product.
func (r *StockRepository) SetAvailable(ctx context.Context, productID string, available int64) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": productID},
		bson.M{"$set": bson.M{"available": available, "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Available returns the stock level of a product and whether it is known.
func (r *StockRepository) Available(ctx context.Context, productID string) (int64, bool, error) {
	var doc StockDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return doc.Available, true, nil
}

// HasStock reports whether every product has at least the requested quantity.
// Unknown products have no stock.
func (r *StockRepository) HasStock(ctx context.Context, productIDs []string, quantities []int64) (bool, error) {
	wanted, order, err := aggregateQuantities(productIDs, quantities)
	if err != nil {
		return false, err
	}
	if len(order) == 0 {
		return true, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": order}})
	if err != nil {
		return false, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []StockDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return false, err
	}

	levels := make(map[string]int64, len(docs))
	for _, d := range docs {
		levels[d.ProductID] = d.Available
	}
	for _, id := range order {
		if available, ok := levels[id]; !ok || available < wanted[id] {
			return false, nil
		}
	}
	return true, nil
}

// Decrement removes the requested quantities. Each product is decremented only
// if enough stock is left; when any product falls short, the products already
// decremented are restored and false is returned.
func (r *StockRepository) Decrement(ctx context.Context, productIDs []string, quantities []int64) (bool, error) {
	wanted, order, err := aggregateQuantities(productIDs, quantities)
	if err != nil {
		return false, err
	}

	done := make([]string, 0, len(order))
	for _, id := range order {
		qty := wanted[id]
		res, err := r.collection.UpdateOne(
			ctx,
			bson.M{"_id": id, "available": bson.M{"$gte": qty}},
			bson.M{
				"$inc": bson.M{"available": -qty},
				"$set": bson.M{"updated_at": time.Now().UTC()},
			},
		)
		if err != nil {
			r.restore(ctx, done, wanted)
			return false, err
		}
		if res.MatchedCount == 0 {
			r.restore(ctx, done, wanted)
			return false, nil
		}
		done = append(done, id)
	}
	return true, nil
}

// restore puts back the quantities of products already decremented.
func (r *StockRepository) restore(ctx context.Context, productIDs []string, wanted map[string]int64) {
	ctx = context.WithoutCancel(ctx)
	for _, id := range productIDs {
		_, err := r.collection.UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{
				"$inc": bson.M{"available": wanted[id]},
				"$set": bson.M{"updated_at": time.Now().UTC()},
			},
		)
		if err != nil {
			log.Error().Err(err).Str("product_id", id).Int64("quantity", wanted[id]).Msg("Failed to restore stock")
		}
	}
}

// aggregateQuantities sums quantities per product, keeping first-seen order.
func aggregateQuantities(productIDs []string, quantities []int64) (map[string]int64, []string, error) {
	if len(productIDs) != len(quantities) {
		return nil, nil, fmt.Errorf("stock: %d product ids but %d quantities", len(productIDs), len(quantities))
	}
	wanted := make(map[string]int64, len(productIDs))
	order := make([]string, 0, len(productIDs))
	for i, id := range productIDs {
		if _, seen := wanted[id]; !seen {
			order = append(order, id)
		}
		wanted[id] += quantities[i]
	}
	return wanted, order, nil
}
