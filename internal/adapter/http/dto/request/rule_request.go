package request

import (
	"strings"
	"wardrobe_pricing/internal/domain/entities"
)

type RuleRequest struct {
	Name       string                   `json:"name" binding:"required"`
	Enabled    *bool                    `json:"enabled"`
	Priority   int                      `json:"priority"`
	Conditions []entities.RuleCondition `json:"conditions"`
	Actions    []entities.RuleAction    `json:"actions" binding:"required,min=1"`
}

// ToRule maps the payload to a rule. Rules are enabled unless the payload
// says otherwise.
func (r RuleRequest) ToRule() entities.Rule {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	conditions := r.Conditions
	if conditions == nil {
		conditions = []entities.RuleCondition{}
	}
	return entities.Rule{
		Name:       strings.TrimSpace(r.Name),
		Enabled:    enabled,
		Priority:   r.Priority,
		Conditions: conditions,
		Actions:    r.Actions,
	}
}
