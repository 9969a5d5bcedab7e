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

// CustomerRepository stores customers in MongoDB.
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *MongoDB) *CustomerRepository {
	return &CustomerRepository{collection: db.Customers}
}

// FindCustomer returns the customer with the given id, or nil if none exists.
func (r *CustomerRepository) FindCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	var doc CustomerDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": customerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

// Save inserts or replaces a customer.
func (r *CustomerRepository) Save(ctx context.Context, customer *model.Customer) error {
	now := time.Now().UTC()
	doc := customerToDocument(customer)
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": doc.ID},
		bson.M{
			"$set": bson.M{
				"name":       doc.Name,
				"region":     doc.Region,
				"tier":       doc.Tier,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
