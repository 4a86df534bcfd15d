package rules

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe_pricing/internal/domain/entities"
)

func boolPtr(v bool) *bool { return &v }

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func rule(id string, priority int, actions ...entities.RuleAction) entities.Rule {
	return entities.Rule{ID: id, Name: id, Enabled: true, Priority: priority, Actions: actions, CreatedAt: t0}
}

func act(typ entities.ActionType, value float64) entities.RuleAction {
	return entities.RuleAction{Type: typ, Config: entities.ActionConfig{Value: value}}
}

func testContext() Context {
	return Context{
		Wardrobe: WardrobeFacts{Width: 200, Height: 250, Depth: 60, DoorCount: 3, ColumnCount: 2, HasBase: true, FrontMaterial: "White Gloss"},
		Customer: &CustomerFacts{Email: "ana@example.com", Tags: []string{"vip", "b2b"}, OrderCount: 4},
		Order:    &OrderFacts{Total: 1000, ShippingCity: "Kraków"},
	}
}

func engine() *Engine { return NewEngine(zerolog.Nop()) }

func TestApply_OrderDependentRunningTotal(t *testing.T) {
	t.Run("fixed surcharge after percentage discount", func(t *testing.T) {
		rs := []entities.Rule{
			rule("surcharge", 2, act(entities.ActionSurchargeFixed, 100)),
			rule("discount", 1, act(entities.ActionDiscountPercentage, 10)),
		}
		res := engine().Apply(rs, testContext(), 1000)
		require.Len(t, res.Adjustments, 2)
		assert.Equal(t, "discount", res.Adjustments[0].RuleID)
		assert.Equal(t, -100.0, res.Adjustments[0].Amount)
		assert.Equal(t, 100.0, res.Adjustments[1].Amount)
		require.NotNil(t, res.AdjustedTotal)
		assert.Equal(t, 1000.0, *res.AdjustedTotal)
	})

	t.Run("percentage surcharge sees the discounted total", func(t *testing.T) {
		rs := []entities.Rule{
			rule("discount", 1, act(entities.ActionDiscountPercentage, 10)),
			rule("surcharge", 2, act(entities.ActionSurchargePercentage, 10)),
		}
		res := engine().Apply(rs, testContext(), 1000)
		require.Len(t, res.Adjustments, 2)
		assert.Equal(t, 90.0, res.Adjustments[1].Amount)
		assert.Equal(t, 990.0, *res.AdjustedTotal)
	})

	t.Run("ties broken by creation time", func(t *testing.T) {
		late := rule("late", 1, act(entities.ActionSurchargeFixed, 5))
		late.CreatedAt = t0.Add(time.Hour)
		early := rule("early", 1, act(entities.ActionSurchargeFixed, 5))
		res := engine().Apply([]entities.Rule{late, early}, testContext(), 10)
		require.Len(t, res.Adjustments, 2)
		assert.Equal(t, "early", res.Adjustments[0].RuleID)
	})
}

func TestApply_Idempotent(t *testing.T) {
	rs := []entities.Rule{
		rule("a", 1, act(entities.ActionDiscountPercentage, 7.5)),
		rule("b", 2, entities.RuleAction{Type: entities.ActionAddItem, Config: entities.ActionConfig{Value: 15, ItemName: "Soft close", QuantityFormula: "door_count * 2"}}),
	}
	first := engine().Apply(rs, testContext(), 1234.56)
	second := engine().Apply(rs, testContext(), 1234.56)
	assert.Equal(t, first, second)
}

func TestApply_NoAdjustments(t *testing.T) {
	disabled := rule("off", 1, act(entities.ActionDiscountFixed, 50))
	disabled.Enabled = false
	res := engine().Apply([]entities.Rule{disabled}, testContext(), 500)
	assert.Empty(t, res.Adjustments)
	assert.Nil(t, res.AdjustedTotal)
}

func TestApply_Actions(t *testing.T) {
	cases := []struct {
		name    string
		action  entities.RuleAction
		amount  float64
		visible bool
		skipped bool
	}{
		{name: "discount rounds half up", action: act(entities.ActionDiscountPercentage, 12.5), amount: -13},
		{name: "fixed discount", action: act(entities.ActionDiscountFixed, 20), amount: -20, visible: true},
		{name: "zero percentage skipped", action: act(entities.ActionSurchargePercentage, 0), skipped: true},
		{name: "negative fixed skipped", action: act(entities.ActionSurchargeFixed, -3), skipped: true},
		{name: "unknown type skipped", action: act("gift_wrap", 3), skipped: true},
		{
			name:   "add item hidden by default",
			action: entities.RuleAction{Type: entities.ActionAddItem, Config: entities.ActionConfig{Value: 10, ItemName: "Hinge", QuantityFormula: "doorCount * 2"}},
			amount: 60,
		},
		{
			name:    "add item explicitly visible",
			action:  entities.RuleAction{Type: entities.ActionAddItem, Config: entities.ActionConfig{Value: 4.5, ItemName: "Clip", QuantityFormula: "2", Visible: boolPtr(true)}},
			amount:  9,
			visible: true,
		},
		{
			name:    "add item with zero quantity skipped",
			action:  entities.RuleAction{Type: entities.ActionAddItem, Config: entities.ActionConfig{Value: 10, ItemName: "Rail", QuantityFormula: "drawer_count"}},
			skipped: true,
		},
		{
			name:    "add item with negative quantity skipped",
			action:  entities.RuleAction{Type: entities.ActionAddItem, Config: entities.ActionConfig{Value: 10, ItemName: "Rail", QuantityFormula: "door_count * -1"}},
			skipped: true,
		},
		{
			name:    "add item with malformed formula skipped",
			action:  entities.RuleAction{Type: entities.ActionAddItem, Config: entities.ActionConfig{Value: 10, ItemName: "Rail", QuantityFormula: "door_count + 1"}},
			skipped: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := engine().Apply([]entities.Rule{rule("r", 1, tc.action)}, testContext(), 100)
			if tc.skipped {
				assert.Empty(t, res.Adjustments)
				assert.Nil(t, res.AdjustedTotal)
				return
			}
			require.Len(t, res.Adjustments, 1)
			got := res.Adjustments[0]
			assert.Equal(t, tc.amount, got.Amount)
			if tc.action.Type != entities.ActionAddItem {
				assert.True(t, got.Visible)
			} else {
				assert.Equal(t, tc.visible, got.Visible)
			}
		})
	}
}

func TestApply_AddItemDescription(t *testing.T) {
	a := entities.RuleAction{Type: entities.ActionAddItem, Config: entities.ActionConfig{Value: 10, ItemName: "Hinge", QuantityFormula: "door_count * 2"}}
	res := engine().Apply([]entities.Rule{rule("r", 1, a)}, testContext(), 100)
	require.Len(t, res.Adjustments, 1)
	assert.Equal(t, "Hinge x6", res.Adjustments[0].Description)
}

func TestApply_Visibility(t *testing.T) {
	hidden := act(entities.ActionDiscountFixed, 10)
	hidden.Config.Visible = boolPtr(false)
	res := engine().Apply([]entities.Rule{rule("r", 1, hidden)}, testContext(), 100)
	require.Len(t, res.Adjustments, 1)
	assert.False(t, res.Adjustments[0].Visible)
	assert.Empty(t, entities.FilterVisible(res.Adjustments))
}

func TestApply_Conditions(t *testing.T) {
	cond := func(field string, op entities.RuleOperator, value any, logic entities.LogicOperator) entities.RuleCondition {
		return entities.RuleCondition{Field: field, Operator: op, Value: value, LogicOperator: logic}
	}
	cases := []struct {
		name       string
		conditions []entities.RuleCondition
		want       bool
	}{
		{name: "empty always matches", want: true},
		{name: "numeric greater", conditions: []entities.RuleCondition{cond("wardrobe.width", entities.OperatorGreaterThan, 150.0, "")}, want: true},
		{name: "numeric from string", conditions: []entities.RuleCondition{cond("wardrobe.height", entities.OperatorGreaterThanOrEqual, "250", "")}, want: true},
		{name: "equals is case insensitive", conditions: []entities.RuleCondition{cond("wardrobe.front_material", entities.OperatorEquals, "white gloss", "")}, want: true},
		{name: "contains substring", conditions: []entities.RuleCondition{cond("customer.email", entities.OperatorContains, "EXAMPLE", "")}, want: true},
		{name: "tags contain", conditions: []entities.RuleCondition{cond("customer.tags", entities.OperatorContains, "vip", "")}, want: true},
		{name: "tags not contain", conditions: []entities.RuleCondition{cond("customer.tags", entities.OperatorNotContains, "vip", "")}, want: false},
		{name: "in array", conditions: []entities.RuleCondition{cond("order.shipping_city", entities.OperatorIn, []any{"Warszawa", "kraków"}, "")}, want: true},
		{name: "in csv", conditions: []entities.RuleCondition{cond("customer.order_count", entities.OperatorIn, "1, 2, 4", "")}, want: true},
		{name: "not in csv", conditions: []entities.RuleCondition{cond("wardrobe.door_count", entities.OperatorNotIn, "1,2", "")}, want: true},
		{name: "bool equals", conditions: []entities.RuleCondition{cond("wardrobe.has_base", entities.OperatorEquals, true, "")}, want: true},
		{name: "unknown field is absent", conditions: []entities.RuleCondition{cond("wardrobe.colour", entities.OperatorNotEquals, "red", "")}, want: false},
		{name: "absent is empty", conditions: []entities.RuleCondition{cond("wardrobe.colour", entities.OperatorIsEmpty, nil, "")}, want: true},
		{name: "empty handle name", conditions: []entities.RuleCondition{cond("wardrobe.handle_name", entities.OperatorIsEmpty, nil, "")}, want: true},
		{name: "unknown operator", conditions: []entities.RuleCondition{cond("wardrobe.width", "between", 5.0, "")}, want: false},
		{
			name: "AND chain",
			conditions: []entities.RuleCondition{
				cond("wardrobe.width", entities.OperatorGreaterThan, 100.0, entities.LogicAnd),
				cond("wardrobe.door_count", entities.OperatorEquals, 2.0, ""),
			},
			want: false,
		},
		{
			name: "OR chain",
			conditions: []entities.RuleCondition{
				cond("wardrobe.width", entities.OperatorLessThan, 100.0, entities.LogicOr),
				cond("wardrobe.door_count", entities.OperatorEquals, 3.0, ""),
			},
			want: true,
		},
		{
			name: "logic operator belongs to the left condition",
			conditions: []entities.RuleCondition{
				cond("wardrobe.width", entities.OperatorLessThan, 100.0, entities.LogicOr),
				cond("wardrobe.door_count", entities.OperatorEquals, 3.0, entities.LogicAnd),
				cond("customer.tags", entities.OperatorContains, "retail", ""),
			},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := rule("r", 1, act(entities.ActionSurchargeFixed, 1))
			r.Conditions = tc.conditions
			res := engine().Apply([]entities.Rule{r}, testContext(), 100)
			assert.Equal(t, tc.want, len(res.Adjustments) == 1)
		})
	}
}

func TestApply_MissingSectionsAreAbsent(t *testing.T) {
	r := rule("r", 1, act(entities.ActionSurchargeFixed, 1))
	r.Conditions = []entities.RuleCondition{{Field: "customer.order_count", Operator: entities.OperatorLessThan, Value: 1.0}}
	res := engine().Apply([]entities.Rule{r}, Context{}, 100)
	assert.Empty(t, res.Adjustments)
}

func TestFinalPrice(t *testing.T) {
	assert.Equal(t, 80.0, FinalPrice(100, []entities.RuleAdjustment{{Amount: -30}, {Amount: 10}}))
	assert.Equal(t, 0.0, FinalPrice(100, []entities.RuleAdjustment{{Amount: -130}}))
	assert.Equal(t, 100.0, FinalPrice(100, nil))
}
