package rules

import (
	"errors"
	"fmt"
	"strings"

	"wardrobe_pricing/internal/domain/entities"
)

var (
	ErrInvalidRule     = errors.New("invalid rule")
	ErrUnknownField    = errors.New("unknown condition field")
	ErrUnknownOperator = errors.New("unknown condition operator")
	ErrUnknownAction   = errors.New("unknown action type")
)

var knownActions = map[entities.ActionType]struct{}{
	entities.ActionAddItem:             {},
	entities.ActionDiscountPercentage:  {},
	entities.ActionDiscountFixed:       {},
	entities.ActionSurchargePercentage: {},
	entities.ActionSurchargeFixed:      {},
}

// ValidateRule rejects rules the engine could only partially evaluate. It is
// run when a rule is created or edited. Field paths are normalised in place.
func ValidateRule(r *entities.Rule) error {
	if r == nil {
		return fmt.Errorf("%w: nil rule", ErrInvalidRule)
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRule)
	}
	if len(r.Actions) == 0 {
		return fmt.Errorf("%w: at least one action is required", ErrInvalidRule)
	}

	for i := range r.Conditions {
		c := &r.Conditions[i]
		f, ok := ParseField(c.Field)
		if !ok {
			return fmt.Errorf("%w: condition %d: %q", ErrUnknownField, i, c.Field)
		}
		c.Field = string(f)
		if !isKnownOperator(c.Operator) {
			return fmt.Errorf("%w: condition %d: %q", ErrUnknownOperator, i, c.Operator)
		}
		switch strings.ToUpper(string(c.LogicOperator)) {
		case "":
		case string(entities.LogicAnd):
			c.LogicOperator = entities.LogicAnd
		case string(entities.LogicOr):
			c.LogicOperator = entities.LogicOr
		default:
			return fmt.Errorf("%w: condition %d: logic operator %q", ErrInvalidRule, i, c.LogicOperator)
		}
	}

	for i, a := range r.Actions {
		if _, ok := knownActions[a.Type]; !ok {
			return fmt.Errorf("%w: action %d: %q", ErrUnknownAction, i, a.Type)
		}
		if a.Config.Value <= 0 || !finiteNumber(a.Config.Value) {
			return fmt.Errorf("%w: action %d: value must be positive", ErrInvalidRule, i)
		}
		if a.Type == entities.ActionAddItem {
			if strings.TrimSpace(a.Config.ItemName) == "" {
				return fmt.Errorf("%w: action %d: item_name is required", ErrInvalidRule, i)
			}
			if _, err := ParseFormula(a.Config.QuantityFormula); err != nil {
				return fmt.Errorf("action %d: %w", i, err)
			}
		}
	}
	return nil
}
