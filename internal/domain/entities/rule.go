package entities

import "time"

// RuleOperator is the comparison a RuleCondition performs.
type RuleOperator string

const (
	OperatorEquals             RuleOperator = "equals"
	OperatorNotEquals          RuleOperator = "not_equals"
	OperatorContains           RuleOperator = "contains"
	OperatorNotContains        RuleOperator = "not_contains"
	OperatorGreaterThan        RuleOperator = "greater_than"
	OperatorLessThan           RuleOperator = "less_than"
	OperatorGreaterThanOrEqual RuleOperator = "greater_than_or_equal"
	OperatorLessThanOrEqual    RuleOperator = "less_than_or_equal"
	OperatorIn                 RuleOperator = "in"
	OperatorNotIn              RuleOperator = "not_in"
	OperatorIsEmpty            RuleOperator = "is_empty"
	OperatorIsNotEmpty         RuleOperator = "is_not_empty"
)

// LogicOperator joins a condition with the next one in the list.
type LogicOperator string

const (
	LogicAnd LogicOperator = "AND"
	LogicOr  LogicOperator = "OR"
)

type ActionType string

const (
	ActionAddItem             ActionType = "add_item"
	ActionDiscountPercentage  ActionType = "discount_percentage"
	ActionDiscountFixed       ActionType = "discount_fixed"
	ActionSurchargePercentage ActionType = "surcharge_percentage"
	ActionSurchargeFixed      ActionType = "surcharge_fixed"
)

// RuleCondition is one predicate. Value is the comparison operand as decoded
// from JSON (string, number, bool or array).
type RuleCondition struct {
	Field         string        `json:"field"`
	Operator      RuleOperator  `json:"operator"`
	Value         any           `json:"value,omitempty"`
	LogicOperator LogicOperator `json:"logic_operator,omitempty"`
}

// ActionConfig carries the parameters of a RuleAction.
//
// ApplyTo is stored and echoed back but percentage actions always apply to
// the running total.
type ActionConfig struct {
	Value           float64 `json:"value"`
	QuantityFormula string  `json:"quantity_formula,omitempty"`
	ItemName        string  `json:"item_name,omitempty"`
	Visible         *bool   `json:"visible,omitempty"`
	Reason          string  `json:"reason,omitempty"`
	ApplyTo         string  `json:"apply_to,omitempty"`
}

type RuleAction struct {
	Type   ActionType   `json:"type"`
	Config ActionConfig `json:"config"`
}

// Rule is one pricing policy. Lower Priority runs first; ties are broken by
// CreatedAt.
type Rule struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Enabled    bool            `json:"enabled"`
	Priority   int             `json:"priority"`
	Conditions []RuleCondition `json:"conditions"`
	Actions    []RuleAction    `json:"actions"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// RuleAdjustment is one applied price effect. Negative amounts are discounts.
type RuleAdjustment struct {
	RuleID      string     `json:"rule_id"`
	RuleName    string     `json:"rule_name"`
	ActionType  ActionType `json:"action_type"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Visible     bool       `json:"visible"`
}
