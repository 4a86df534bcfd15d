package postgres

import (
	"time"
	"wardrobe_pricing/internal/domain/entities"
)

type materialModel struct {
	ID          string                      `gorm:"primaryKey;size:64"`
	Name        string                      `gorm:"size:120;not null"`
	Price       float64                     `gorm:"type:decimal(12,2);not null"`
	ThicknessMM float64                     `gorm:"type:decimal(6,2);not null"`
	Categories  []entities.MaterialCategory `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (materialModel) TableName() string { return "materials" }

type handleModel struct {
	ID        string                  `gorm:"primaryKey;size:64"`
	Name      string                  `gorm:"size:120;not null"`
	Price     float64                 `gorm:"type:decimal(12,2);not null"`
	Finishes  []entities.HandleFinish `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (handleModel) TableName() string { return "handles" }

type ruleModel struct {
	ID         string                   `gorm:"primaryKey;size:36"`
	Name       string                   `gorm:"size:200;not null"`
	Enabled    bool                     `gorm:"index;not null"`
	Priority   int                      `gorm:"index;not null"`
	Conditions []entities.RuleCondition `gorm:"type:jsonb;serializer:json"`
	Actions    []entities.RuleAction    `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time                `gorm:"index"`
	UpdatedAt  time.Time
}

func (ruleModel) TableName() string { return "pricing_rules" }

func toMaterial(m materialModel) entities.Material {
	return entities.Material{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		ThicknessMM: m.ThicknessMM,
		Categories:  m.Categories,
	}
}

func fromMaterial(m entities.Material) materialModel {
	return materialModel{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		ThicknessMM: m.ThicknessMM,
		Categories:  m.Categories,
	}
}

func toHandle(m handleModel) entities.Handle {
	return entities.Handle{
		ID:       m.ID,
		Name:     m.Name,
		Price:    m.Price,
		Finishes: m.Finishes,
	}
}

func fromHandle(h entities.Handle) handleModel {
	return handleModel{
		ID:       h.ID,
		Name:     h.Name,
		Price:    h.Price,
		Finishes: h.Finishes,
	}
}

func toRule(m ruleModel) entities.Rule {
	conditions := m.Conditions
	if conditions == nil {
		conditions = []entities.RuleCondition{}
	}
	actions := m.Actions
	if actions == nil {
		actions = []entities.RuleAction{}
	}
	return entities.Rule{
		ID:         m.ID,
		Name:       m.Name,
		Enabled:    m.Enabled,
		Priority:   m.Priority,
		Conditions: conditions,
		Actions:    actions,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func fromRule(r entities.Rule) ruleModel {
	return ruleModel{
		ID:         r.ID,
		Name:       r.Name,
		Enabled:    r.Enabled,
		Priority:   r.Priority,
		Conditions: r.Conditions,
		Actions:    r.Actions,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
