package interfaces

import (
	"context"
	"wardrobe_pricing/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for OrderPayment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}
