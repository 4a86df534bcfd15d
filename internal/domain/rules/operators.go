package rules

import (
	"fmt"
	"strconv"
	"strings"

	"wardrobe_pricing/internal/domain/entities"
)

var knownOperators = map[entities.RuleOperator]struct{}{
	entities.OperatorEquals:             {},
	entities.OperatorNotEquals:          {},
	entities.OperatorContains:           {},
	entities.OperatorNotContains:        {},
	entities.OperatorGreaterThan:        {},
	entities.OperatorLessThan:           {},
	entities.OperatorGreaterThanOrEqual: {},
	entities.OperatorLessThanOrEqual:    {},
	entities.OperatorIn:                 {},
	entities.OperatorNotIn:              {},
	entities.OperatorIsEmpty:            {},
	entities.OperatorIsNotEmpty:         {},
}

func isKnownOperator(op entities.RuleOperator) bool {
	_, ok := knownOperators[op]
	return ok
}

// compare applies op to the resolved actual value and the rule operand. An
// absent actual value only satisfies is_empty. ok is false for unknown
// operators.
func compare(op entities.RuleOperator, actual Value, operand any) (matched bool, ok bool) {
	if !isKnownOperator(op) {
		return false, false
	}
	switch op {
	case entities.OperatorIsEmpty:
		return isEmpty(actual), true
	case entities.OperatorIsNotEmpty:
		return !isEmpty(actual), true
	}
	if !actual.Present() {
		return false, true
	}

	switch op {
	case entities.OperatorEquals:
		return equals(actual, operand), true
	case entities.OperatorNotEquals:
		return !equals(actual, operand), true
	case entities.OperatorContains:
		return contains(actual, operand), true
	case entities.OperatorNotContains:
		return !contains(actual, operand), true
	case entities.OperatorIn:
		return in(actual, operand), true
	case entities.OperatorNotIn:
		return !in(actual, operand), true
	}

	c, ordered := ordering(actual, operand)
	if !ordered {
		return false, true
	}
	switch op {
	case entities.OperatorGreaterThan:
		return c > 0, true
	case entities.OperatorLessThan:
		return c < 0, true
	case entities.OperatorGreaterThanOrEqual:
		return c >= 0, true
	default:
		return c <= 0, true
	}
}

func isEmpty(v Value) bool {
	switch v.Kind {
	case KindAbsent:
		return true
	case KindString:
		return strings.TrimSpace(v.Str) == ""
	case KindList:
		return len(v.List) == 0
	}
	return false
}

// scalarEquals compares numerically when both sides are numbers and
// case-insensitively as text otherwise.
func scalarEquals(a, b string) bool {
	if x, okA := parseNumber(a); okA {
		if y, okB := parseNumber(b); okB {
			return x == y
		}
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func equals(actual Value, operand any) bool {
	want := operandString(operand)
	if actual.Kind == KindList {
		for _, item := range actual.List {
			if scalarEquals(item, want) {
				return true
			}
		}
		return false
	}
	return scalarEquals(actual.String(), want)
}

func contains(actual Value, operand any) bool {
	want := strings.ToLower(strings.TrimSpace(operandString(operand)))
	if actual.Kind == KindList {
		for _, item := range actual.List {
			if scalarEquals(item, want) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(actual.String()), want)
}

func in(actual Value, operand any) bool {
	set := operandList(operand)
	candidates := []string{actual.String()}
	if actual.Kind == KindList {
		candidates = actual.List
	}
	for _, c := range candidates {
		for _, s := range set {
			if scalarEquals(c, s) {
				return true
			}
		}
	}
	return false
}

// ordering returns -1, 0 or 1. Lists are not ordered.
func ordering(actual Value, operand any) (int, bool) {
	if actual.Kind == KindList {
		return 0, false
	}
	a := actual.String()
	b := operandString(operand)
	if x, okA := parseNumber(a); okA {
		if y, okB := parseNumber(b); okB {
			switch {
			case x < y:
				return -1, true
			case x > y:
				return 1, true
			}
			return 0, true
		}
	}
	return strings.Compare(a, b), true
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func operandString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return formatNumber(t)
	case float32:
		return formatNumber(float64(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		return strings.Join(operandList(t), ",")
	case []string:
		return strings.Join(t, ",")
	}
	return fmt.Sprint(v)
}

// operandList accepts a JSON array or a comma-separated string.
func operandList(v any) []string {
	var raw []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			raw = append(raw, operandString(item))
		}
	case []string:
		raw = t
	case string:
		raw = strings.Split(t, ",")
	default:
		raw = []string{operandString(v)}
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
