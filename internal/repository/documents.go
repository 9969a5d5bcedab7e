package repository

import (
	"fmt"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Decimal fields are stored as strings so that no precision is lost in BSON doubles.

// CustomerDocument is the stored form of a customer.
type CustomerDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Region    string    `bson:"region"`
	Tier      string    `bson:"tier"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func customerToDocument(c *model.Customer) CustomerDocument {
	return CustomerDocument{
		ID:     c.ID,
		Name:   c.Name,
		Region: string(c.Region),
		Tier:   string(c.Tier),
	}
}

func (d CustomerDocument) toModel() *model.Customer {
	return &model.Customer{
		ID:     d.ID,
		Name:   d.Name,
		Region: model.Region(d.Region),
		Tier:   model.CustomerTier(d.Tier),
	}
}

// CartItemDocument is a line of a stored cart with a snapshot of the product.
type CartItemDocument struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Price     *string `bson:"price,omitempty"`
	Weight    *string `bson:"weight,omitempty"`
	Length    *string `bson:"length,omitempty"`
	Width     *string `bson:"width,omitempty"`
	Height    *string `bson:"height,omitempty"`
	Category  string  `bson:"category"`
	Fragile   bool    `bson:"fragile"`
	Quantity  int64   `bson:"quantity"`
}

// CartDocument is the stored form of a cart.
type CartDocument struct {
	ID         string             `bson:"_id"`
	CustomerID string             `bson:"customer_id"`
	Items      []CartItemDocument `bson:"items"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func cartToDocument(c *model.Cart) CartDocument {
	items := make([]CartItemDocument, len(c.Items))
	for i, it := range c.Items {
		p := it.Product
		items[i] = CartItemDocument{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     decimalString(p.Price),
			Weight:    decimalString(p.Weight),
			Length:    decimalString(p.Length),
			Width:     decimalString(p.Width),
			Height:    decimalString(p.Height),
			Category:  string(p.Category),
			Fragile:   p.Fragile,
			Quantity:  it.Quantity,
		}
	}
	return CartDocument{ID: c.ID, CustomerID: c.CustomerID, Items: items}
}

func (d CartDocument) toModel() (*model.Cart, error) {
	items := make([]model.LineItem, len(d.Items))
	for i, it := range d.Items {
		p := model.Product{
			ID:       it.ProductID,
			Name:     it.Name,
			Category: model.ProductCategory(it.Category),
			Fragile:  it.Fragile,
		}
		fields := []struct {
			name string
			src  *string
			dst  **decimal.Decimal
		}{
			{"price", it.Price, &p.Price},
			{"weight", it.Weight, &p.Weight},
			{"length", it.Length, &p.Length},
			{"width", it.Width, &p.Width},
			{"height", it.Height, &p.Height},
		}
		for _, f := range fields {
			v, err := parseDecimal(f.src)
			if err != nil {
				return nil, fmt.Errorf("cart %s item %d %s: %w", d.ID, i, f.name, err)
			}
			*f.dst = v
		}
		items[i] = model.LineItem{Product: p, Quantity: it.Quantity}
	}
	return &model.Cart{ID: d.ID, CustomerID: d.CustomerID, Items: items}, nil
}

// StockDocument holds the units available for one product.
type StockDocument struct {
	ProductID string    `bson:"_id"`
	Available int64     `bson:"available"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// CheckoutDocument is the audit record of one checkout attempt.
type CheckoutDocument struct {
	CartID            string    `bson:"cart_id"`
	CustomerID        string    `bson:"customer_id"`
	State             string    `bson:"state"`
	Amount            *string   `bson:"amount,omitempty"`
	TransactionID     string    `bson:"transaction_id,omitempty"`
	ErrorKind         string    `bson:"error_kind,omitempty"`
	ErrorMessage      string    `bson:"error_message,omitempty"`
	Compensation      string    `bson:"compensation,omitempty"`
	CompensationError string    `bson:"compensation_error,omitempty"`
	RequestID         string    `bson:"request_id,omitempty"`
	StartedAt         time.Time `bson:"started_at"`
	FinishedAt        time.Time `bson:"finished_at"`
}

func checkoutToDocument(r *model.CheckoutRecord) CheckoutDocument {
	return CheckoutDocument{
		CartID:            r.CartID,
		CustomerID:        r.CustomerID,
		State:             string(r.State),
		Amount:            decimalString(r.Amount),
		TransactionID:     r.TransactionID,
		ErrorKind:         r.ErrorKind,
		ErrorMessage:      r.ErrorMessage,
		Compensation:      string(r.Compensation),
		CompensationError: r.CompensationError,
		RequestID:         r.RequestID,
		StartedAt:         r.StartedAt,
		FinishedAt:        r.FinishedAt,
	}
}

func (d CheckoutDocument) toModel() (*model.CheckoutRecord, error) {
	amount, err := parseDecimal(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("checkout %s amount: %w", d.CartID, err)
	}
	return &model.CheckoutRecord{
		CartID:            d.CartID,
		CustomerID:        d.CustomerID,
		State:             model.CheckoutState(d.State),
		Amount:            amount,
		TransactionID:     d.TransactionID,
		ErrorKind:         d.ErrorKind,
		ErrorMessage:      d.ErrorMessage,
		Compensation:      model.CompensationOutcome(d.Compensation),
		CompensationError: d.CompensationError,
		RequestID:         d.RequestID,
		StartedAt:         d.StartedAt,
		FinishedAt:        d.FinishedAt,
	}, nil
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
