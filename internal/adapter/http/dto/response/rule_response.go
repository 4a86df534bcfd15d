package response

import (
	"time"
	"wardrobe_pricing/internal/domain/entities"
)

type RuleResponse struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Enabled    bool                     `json:"enabled"`
	Priority   int                      `json:"priority"`
	Conditions []entities.RuleCondition `json:"conditions"`
	Actions    []entities.RuleAction    `json:"actions"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

func FromRule(r entities.Rule) RuleResponse {
	conditions := r.Conditions
	if conditions == nil {
		conditions = []entities.RuleCondition{}
	}
	actions := r.Actions
	if actions == nil {
		actions = []entities.RuleAction{}
	}
	return RuleResponse{
		ID:         r.ID,
		Name:       r.Name,
		Enabled:    r.Enabled,
		Priority:   r.Priority,
		Conditions: conditions,
		Actions:    actions,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func FromRules(rs []entities.Rule) []RuleResponse {
	out := make([]RuleResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRule(r))
	}
	return out
}
