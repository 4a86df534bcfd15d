package entities

import "time"

// OrderStatus represents the lifecycle of a confirmed wardrobe order.
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order freezes the configuration and the prices in effect when the customer
// confirmed it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Snapshots:
//   - Config, CutList and Adjustments are written once and never recomputed,
//     so later catalog or rule changes do not alter historical orders.
type Order struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	ShippingCity string           `json:"shipping_city"`
	Status       OrderStatus      `json:"status"`
	Config       WardrobeConfig   `json:"config"`
	CutList      CutList          `json:"cut_list"`
	Adjustments  []RuleAdjustment `json:"adjustments"`
	BaseTotal    float64          `json:"base_total"`
	FinalTotal   float64          `json:"final_total"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// VisibleAdjustments returns the customer-facing adjustments only.
func (o Order) VisibleAdjustments() []RuleAdjustment {
	return FilterVisible(o.Adjustments)
}

func FilterVisible(adjustments []RuleAdjustment) []RuleAdjustment {
	out := make([]RuleAdjustment, 0, len(adjustments))
	for _, a := range adjustments {
		if a.Visible {
			out = append(out, a)
		}
	}
	return out
}
