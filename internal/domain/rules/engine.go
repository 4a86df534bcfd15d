// Package rules evaluates declarative pricing rules against the facts of a
// wardrobe order.
package rules

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"wardrobe_pricing/internal/domain/entities"
)

// Result is the outcome of one engine pass. AdjustedTotal is nil when no rule
// produced an adjustment.
type Result struct {
	Adjustments   []entities.RuleAdjustment `json:"adjustments"`
	AdjustedTotal *float64                  `json:"adjusted_total"`
}

type Engine struct {
	log zerolog.Logger
}

func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// Apply runs the enabled rules in (priority, created_at) order. Percentage
// actions are computed on the running total left by the actions before them.
func (e *Engine) Apply(rs []entities.Rule, rctx Context, base float64) Result {
	active := make([]entities.Rule, 0, len(rs))
	for _, r := range rs {
		if r.Enabled {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority < active[j].Priority
		}
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})

	res := Result{Adjustments: []entities.RuleAdjustment{}}
	running := base
	for _, r := range active {
		if !e.matches(r, rctx) {
			continue
		}
		for _, a := range r.Actions {
			adj, ok := e.action(r, a, rctx, running)
			if !ok {
				continue
			}
			res.Adjustments = append(res.Adjustments, adj)
			running += adj.Amount
		}
	}

	if len(res.Adjustments) > 0 {
		total := FinalPrice(base, res.Adjustments)
		res.AdjustedTotal = &total
	}
	return res
}

// FinalPrice is the base plus every adjustment, never below zero.
func FinalPrice(base float64, adjustments []entities.RuleAdjustment) float64 {
	total := base
	for _, a := range adjustments {
		total += a.Amount
	}
	return math.Max(0, roundCents(total))
}

// matches folds the conditions left to right; each condition's logic
// operator joins it with the next one. No conditions always match.
func (e *Engine) matches(r entities.Rule, rctx Context) bool {
	if len(r.Conditions) == 0 {
		return true
	}
	result := e.condition(r, r.Conditions[0], rctx)
	for i := 1; i < len(r.Conditions); i++ {
		next := e.condition(r, r.Conditions[i], rctx)
		if strings.EqualFold(string(r.Conditions[i-1].LogicOperator), string(entities.LogicOr)) {
			result = result || next
		} else {
			result = result && next
		}
	}
	return result
}

func (e *Engine) condition(r entities.Rule, c entities.RuleCondition, rctx Context) bool {
	if _, known := ParseField(c.Field); !known {
		e.log.Warn().Str("rule_id", r.ID).Str("field", c.Field).Msg("[rules][engine] unknown field")
	}
	matched, ok := compare(c.Operator, rctx.Resolve(c.Field), c.Value)
	if !ok {
		e.log.Warn().Str("rule_id", r.ID).Str("operator", string(c.Operator)).Msg("[rules][engine] unknown operator")
		return false
	}
	return matched
}

func (e *Engine) action(r entities.Rule, a entities.RuleAction, rctx Context, running float64) (entities.RuleAdjustment, bool) {
	cfg := a.Config
	adj := entities.RuleAdjustment{
		RuleID:     r.ID,
		RuleName:   r.Name,
		ActionType: a.Type,
		Visible:    cfg.Visible == nil || *cfg.Visible,
	}

	switch a.Type {
	case entities.ActionAddItem:
		f, err := ParseFormula(cfg.QuantityFormula)
		if err != nil {
			e.log.Warn().Err(err).Str("rule_id", r.ID).Msg("[rules][engine] add_item skipped")
			return adj, false
		}
		qty := f.Quantity(rctx.Wardrobe)
		if qty <= 0 || !finiteNumber(qty) {
			return adj, false
		}
		adj.Amount = roundCents(cfg.Value * qty)
		adj.Visible = cfg.Visible != nil && *cfg.Visible
		adj.Description = describe(cfg.Reason, fmt.Sprintf("%s x%s", cfg.ItemName, formatNumber(qty)))

	case entities.ActionDiscountPercentage, entities.ActionSurchargePercentage:
		if cfg.Value <= 0 || !finiteNumber(cfg.Value) {
			return adj, false
		}
		discount := a.Type == entities.ActionDiscountPercentage
		amount := roundHalfUp(running * cfg.Value / 100)
		if discount {
			amount = -amount
		}
		adj.Amount = amount
		adj.Description = describe(cfg.Reason, fmt.Sprintf("%s (%s%%)", r.Name, signed(discount, cfg.Value)))

	case entities.ActionDiscountFixed, entities.ActionSurchargeFixed:
		if cfg.Value <= 0 || !finiteNumber(cfg.Value) {
			return adj, false
		}
		adj.Amount = cfg.Value
		if a.Type == entities.ActionDiscountFixed {
			adj.Amount = -cfg.Value
		}
		adj.Description = describe(cfg.Reason, r.Name)

	default:
		e.log.Warn().Str("rule_id", r.ID).Str("action", string(a.Type)).Msg("[rules][engine] unknown action type")
		return adj, false
	}
	return adj, true
}

func describe(reason, fallback string) string {
	if s := strings.TrimSpace(reason); s != "" {
		return s
	}
	return fallback
}

func signed(negative bool, pct float64) string {
	if negative {
		return "-" + formatNumber(pct)
	}
	return "+" + formatNumber(pct)
}

func roundHalfUp(v float64) float64 { return math.Floor(v + 0.5) }

func roundCents(v float64) float64 { return math.Round(v*100) / 100 }
