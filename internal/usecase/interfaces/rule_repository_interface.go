package interfaces

import (
	"context"
	"wardrobe_pricing/internal/domain/entities"
)

// IRuleRepository persists pricing rules.
//
// ListEnabled returns enabled rules ordered by priority, then creation time.
// GetByID returns a zero-value Rule when nothing matches.
type IRuleRepository interface {
	Create(ctx context.Context, r entities.Rule) (entities.Rule, error)
	Update(ctx context.Context, r entities.Rule) (entities.Rule, error)
	GetByID(ctx context.Context, id string) (entities.Rule, error)
	List(ctx context.Context) ([]entities.Rule, error)
	ListEnabled(ctx context.Context) ([]entities.Rule, error)
}
