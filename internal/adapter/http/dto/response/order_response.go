package response

import (
	"time"
	"wardrobe_pricing/internal/domain/entities"
)

type OrderResponse struct {
	OrderID      string                  `json:"order_id"`
	ID           string                  `json:"id"`
	Email        string                  `json:"email"`
	ShippingCity string                  `json:"shipping_city,omitempty"`
	Status       string                  `json:"status"`
	Config       entities.WardrobeConfig `json:"config"`
	CutList      entities.CutList        `json:"cut_list"`
	Adjustments  []AdjustmentResponse    `json:"adjustments"`
	BaseTotal    float64                 `json:"base_total"`
	FinalTotal   float64                 `json:"final_total"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	cl := o.CutList
	if cl.Items == nil {
		cl.Items = []entities.CutListItem{}
	}
	return OrderResponse{
		OrderID:      o.ID,
		ID:           o.ID,
		Email:        o.Email,
		ShippingCity: o.ShippingCity,
		Status:       string(o.Status),
		Config:       o.Config,
		CutList:      cl,
		Adjustments:  FromAdjustments(o.Adjustments),
		BaseTotal:    o.BaseTotal,
		FinalTotal:   o.FinalTotal,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
