package interfaces

import (
	"context"

	"iblind_pos/internal/domain/entities"
)

// IInventoryRepository abstracts DynamoDB persistence for InventoryItem.
//
// Stock mutations are server-side atomic updates:
//   - ConsumeOne decrements by exactly 1, floored at 0. consumed=false with a
//     nil error means the item is missing or already at zero.
//   - AddStock applies a signed delta; a delta that would push the stock
//     negative fails the condition and returns a zero-value item.

type IInventoryRepository interface {
	Create(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	Update(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	ListAll(ctx context.Context) ([]entities.InventoryItem, error)
	ConsumeOne(ctx context.Context, id string) (item entities.InventoryItem, consumed bool, err error)
	AddStock(ctx context.Context, id string, delta int) (entities.InventoryItem, error)
}

// IStockMovementRepository journals stock changes. Entries are append-only.
type IStockMovementRepository interface {
	Create(ctx context.Context, m entities.StockMovement) (entities.StockMovement, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.StockMovement, error)
}
