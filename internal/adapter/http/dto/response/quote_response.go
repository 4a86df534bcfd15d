package response

import (
	"wardrobe_pricing/internal/domain/doors"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/usecase"
)

type AdjustmentResponse struct {
	RuleID      string  `json:"rule_id"`
	RuleName    string  `json:"rule_name"`
	ActionType  string  `json:"action_type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// QuoteResponse is the customer-facing price. AdjustedTotal is null when no
// rule fired; FinalPrice is always set.
type QuoteResponse struct {
	CutList       entities.CutList     `json:"cut_list"`
	DoorMetrics   doors.Metrics        `json:"door_metrics"`
	Adjustments   []AdjustmentResponse `json:"adjustments"`
	AdjustedTotal *float64             `json:"adjusted_total"`
	BaseTotal     float64              `json:"base_total"`
	FinalPrice    float64              `json:"final_price"`
}

// FromAdjustments keeps only visible adjustments.
func FromAdjustments(adjustments []entities.RuleAdjustment) []AdjustmentResponse {
	out := make([]AdjustmentResponse, 0, len(adjustments))
	for _, a := range entities.FilterVisible(adjustments) {
		out = append(out, AdjustmentResponse{
			RuleID:      a.RuleID,
			RuleName:    a.RuleName,
			ActionType:  string(a.ActionType),
			Description: a.Description,
			Amount:      a.Amount,
		})
	}
	return out
}

func FromQuote(q usecase.Quote) QuoteResponse {
	cl := q.CutList
	if cl.Items == nil {
		cl.Items = []entities.CutListItem{}
	}
	return QuoteResponse{
		CutList:       cl,
		DoorMetrics:   q.DoorMetrics,
		Adjustments:   FromAdjustments(q.Adjustments),
		AdjustedTotal: q.AdjustedTotal,
		BaseTotal:     q.BaseTotal,
		FinalPrice:    q.FinalPrice,
	}
}
