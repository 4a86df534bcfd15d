package entities

// CutListItem is one physical panel to cut.
type CutListItem struct {
	Code        string           `json:"code"`
	Description string           `json:"description"`
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	ThicknessMM float64          `json:"thickness_mm"`
	Area        float64          `json:"area"`
	Cost        float64          `json:"cost"`
	Element     string           `json:"element"`
	Column      int              `json:"column"`
	Category    MaterialCategory `json:"category"`
}

// CategoryTotal is the area (m²) and price of one cost category.
type CategoryTotal struct {
	Area  float64 `json:"area"`
	Price float64 `json:"price"`
	Count int     `json:"count,omitempty"`
}

type PriceBreakdown struct {
	Korpus  CategoryTotal `json:"korpus"`
	Front   CategoryTotal `json:"front"`
	Back    CategoryTotal `json:"back"`
	Handles CategoryTotal `json:"handles"`
}

// CutList is the priced panel list of one wardrobe. The shape is persisted
// verbatim on confirmed orders.
type CutList struct {
	Items           []CutListItem  `json:"items"`
	PricePerM2      float64        `json:"price_per_m2"`
	FrontPricePerM2 float64        `json:"front_price_per_m2"`
	BackPricePerM2  float64        `json:"back_price_per_m2"`
	HandlePrice     float64        `json:"handle_price"`
	TotalArea       float64        `json:"total_area"`
	TotalCost       float64        `json:"total_cost"`
	PriceBreakdown  PriceBreakdown `json:"price_breakdown"`
}
