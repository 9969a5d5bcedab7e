package gateway

import (
	"context"
	"fmt"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/guttosm/checkout-service/internal/repository"
	"github.com/guttosm/checkout-service/internal/service"
)

const inventoryGatewayName = "inventory"

var _ service.InventoryGateway = (*StockInventory)(nil)

// StockInventory serves inventory checks and decrements from the stock ledger.
type StockInventory struct {
	stock repository.StockRepositoryInterface
}

// NewStockInventory creates an inventory gateway over a stock repository.
func NewStockInventory(stock repository.StockRepositoryInterface) *StockInventory {
	return &StockInventory{stock: stock}
}

// CheckAvailability implements service.InventoryGateway.
func (i *StockInventory) CheckAvailability(ctx context.Context, productIDs []string, quantities []int64) (model.Availability, error) {
	ok, err := i.stock.HasStock(ctx, productIDs, quantities)
	if err != nil {
		metrics.RecordGatewayRequest(inventoryGatewayName, "check_availability", "error")
		return model.Availability{}, fmt.Errorf("check availability: %w", err)
	}
	metrics.RecordGatewayRequest(inventoryGatewayName, "check_availability", outcome(ok, "available", "unavailable"))
	return model.Availability{Available: ok}, nil
}

// DecrementStock implements service.InventoryGateway.
func (i *StockInventory) DecrementStock(ctx context.Context, productIDs []string, quantities []int64) (model.StockDecrement, error) {
	ok, err := i.stock.Decrement(ctx, productIDs, quantities)
	if err != nil {
		metrics.RecordGatewayRequest(inventoryGatewayName, "decrement", "error")
		return model.StockDecrement{}, fmt.Errorf("decrement stock: %w", err)
	}
	metrics.RecordGatewayRequest(inventoryGatewayName, "decrement", outcome(ok, "decremented", "refused"))
	return model.StockDecrement{Success: ok}, nil
}

func outcome(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
