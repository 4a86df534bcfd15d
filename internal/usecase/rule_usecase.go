package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/domain/rules"
	"wardrobe_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrRuleNotFound  = errors.New("rule not found")
	ErrInvalidRuleID = errors.New("invalid rule id")
)

// IRuleUseCase administers pricing rules. Every write is validated against
// the known fields, operators, action types and quantity formulas.

type IRuleUseCase interface {
	Create(ctx context.Context, r entities.Rule) (entities.Rule, error)
	Update(ctx context.Context, id string, r entities.Rule) (entities.Rule, error)
	GetByID(ctx context.Context, id string) (entities.Rule, error)
	List(ctx context.Context) ([]entities.Rule, error)
}

type RuleUseCase struct {
	repo interfaces.IRuleRepository
	log  zerolog.Logger
}

var _ IRuleUseCase = (*RuleUseCase)(nil)

func NewRuleUseCase(repo interfaces.IRuleRepository, logger zerolog.Logger) *RuleUseCase {
	return &RuleUseCase{repo: repo, log: logger}
}

func (u *RuleUseCase) Create(ctx context.Context, r entities.Rule) (entities.Rule, error) {
	if err := rules.ValidateRule(&r); err != nil {
		return entities.Rule{}, err
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		u.log.Error().Err(err).Str("rule_id", r.ID).Msg("[rule][usecase] create failed")
		return entities.Rule{}, err
	}
	u.log.Info().Str("rule_id", created.ID).Str("name", created.Name).Msg("[rule][usecase] rule created")
	return created, nil
}

// Update replaces a rule's definition. ID and CreatedAt are kept from the
// stored rule so its tie-break position does not change.
func (u *RuleUseCase) Update(ctx context.Context, id string, r entities.Rule) (entities.Rule, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Rule{}, err
	}
	if err := rules.ValidateRule(&r); err != nil {
		return entities.Rule{}, err
	}

	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		u.log.Error().Err(err).Str("rule_id", r.ID).Msg("[rule][usecase] update failed")
		return entities.Rule{}, err
	}
	if updated.ID == "" {
		return entities.Rule{}, ErrRuleNotFound
	}
	return updated, nil
}

func (u *RuleUseCase) GetByID(ctx context.Context, id string) (entities.Rule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rule{}, ErrInvalidRuleID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Rule{}, err
	}
	if r.ID == "" {
		return entities.Rule{}, ErrRuleNotFound
	}
	return r, nil
}

func (u *RuleUseCase) List(ctx context.Context) ([]entities.Rule, error) {
	return u.repo.List(ctx)
}
