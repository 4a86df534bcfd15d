package rules

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidFormula = errors.New("invalid quantity formula")

// formulaFields are the wardrobe metrics a quantity formula may reference.
var formulaFields = map[string]func(WardrobeFacts) float64{
	"door_count":   func(w WardrobeFacts) float64 { return float64(w.DoorCount) },
	"drawer_count": func(w WardrobeFacts) float64 { return float64(w.DrawerCount) },
	"column_count": func(w WardrobeFacts) float64 { return float64(w.ColumnCount) },
	"shelf_count":  func(w WardrobeFacts) float64 { return float64(w.ShelfCount) },
	"handle_count": func(w WardrobeFacts) float64 { return float64(w.HandleCount) },
	"width":        func(w WardrobeFacts) float64 { return w.Width },
	"height":       func(w WardrobeFacts) float64 { return w.Height },
	"depth":        func(w WardrobeFacts) float64 { return w.Depth },
	"area":         func(w WardrobeFacts) float64 { return w.Area },
}

var formulaAliases = map[string]string{
	"doorcount":   "door_count",
	"drawercount": "drawer_count",
	"columncount": "column_count",
	"shelfcount":  "shelf_count",
	"handlecount": "handle_count",
}

// Formula is a parsed quantity expression: a field, a number, or a field
// times a number.
type Formula struct {
	Field  string
	Factor float64
}

// ParseFormula parses a quantity formula. An empty formula means a quantity
// of one.
func ParseFormula(src string) (Formula, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Formula{Factor: 1}, nil
	}

	left, right, hasFactor := strings.Cut(src, "*")
	left = strings.TrimSpace(left)
	if !hasFactor {
		if n, ok := parseNumber(left); ok && finiteNumber(n) {
			return Formula{Factor: n}, nil
		}
		field, ok := formulaField(left)
		if !ok {
			return Formula{}, fmt.Errorf("%w: %q", ErrInvalidFormula, src)
		}
		return Formula{Field: field, Factor: 1}, nil
	}

	field, ok := formulaField(left)
	if !ok {
		return Formula{}, fmt.Errorf("%w: unknown field %q", ErrInvalidFormula, left)
	}
	n, ok := parseNumber(right)
	if !ok || !finiteNumber(n) {
		return Formula{}, fmt.Errorf("%w: %q is not a number", ErrInvalidFormula, strings.TrimSpace(right))
	}
	return Formula{Field: field, Factor: n}, nil
}

func formulaField(name string) (string, bool) {
	key := strings.ToLower(name)
	if alias, ok := formulaAliases[key]; ok {
		key = alias
	}
	_, ok := formulaFields[key]
	return key, ok
}

// Quantity evaluates the formula against the wardrobe facts.
func (f Formula) Quantity(w WardrobeFacts) float64 {
	if f.Field == "" {
		return f.Factor
	}
	return formulaFields[f.Field](w) * f.Factor
}

func finiteNumber(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
