package request

import "strings"

// QuoteRequest prices a wardrobe. Email, tags and city are optional and only
// feed rule conditions.
type QuoteRequest struct {
	Config       WardrobeRequest `json:"config"`
	Email        string          `json:"email"`
	CustomerTags []string        `json:"customer_tags"`
	ShippingCity string          `json:"shipping_city"`
}

// OrderRequest confirms a wardrobe order. ClientTotal is the price the
// customer saw; the server recomputes it.
type OrderRequest struct {
	Config       WardrobeRequest `json:"config"`
	Email        string          `json:"email" binding:"required"`
	CustomerTags []string        `json:"customer_tags"`
	ShippingCity string          `json:"shipping_city"`
	ClientTotal  *float64        `json:"client_total"`
}

// Tags returns the trimmed, non-empty customer tags.
func Tags(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
