package postgres

import (
	"context"
	"errors"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type RuleRepo struct{ db *gorm.DB }

var _ interfaces.IRuleRepository = (*RuleRepo)(nil)

func NewRuleRepo(db *gorm.DB) *RuleRepo { return &RuleRepo{db: db} }

func (r *RuleRepo) Create(ctx context.Context, rule entities.Rule) (entities.Rule, error) {
	m := fromRule(rule)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Rule{}, err
	}
	return toRule(m), nil
}

// Update overwrites every column of an existing rule. A missing rule yields
// a zero-value Rule.
func (r *RuleRepo) Update(ctx context.Context, rule entities.Rule) (entities.Rule, error) {
	m := fromRule(rule)
	res := r.db.WithContext(ctx).Model(&ruleModel{}).Where("id = ?", m.ID).Select("*").Updates(&m)
	if res.Error != nil {
		return entities.Rule{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Rule{}, nil
	}
	return toRule(m), nil
}

func (r *RuleRepo) GetByID(ctx context.Context, id string) (entities.Rule, error) {
	var m ruleModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Rule{}, nil
		}
		return entities.Rule{}, err
	}
	return toRule(m), nil
}

func (r *RuleRepo) List(ctx context.Context) ([]entities.Rule, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *RuleRepo) ListEnabled(ctx context.Context) ([]entities.Rule, error) {
	return r.find(r.db.WithContext(ctx).Where("enabled = ?", true))
}

func (r *RuleRepo) find(q *gorm.DB) ([]entities.Rule, error) {
	var list []ruleModel
	if err := q.Order("priority asc").Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Rule, 0, len(list))
	for _, m := range list {
		out = append(out, toRule(m))
	}
	return out, nil
}
