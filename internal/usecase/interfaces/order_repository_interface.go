package interfaces

import (
	"context"
	"wardrobe_pricing/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for confirmed orders.
//
// Lookups return a zero-value Order (empty ID) when nothing matches.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Order, error)
	CountByEmail(ctx context.Context, email string) (int, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
