package rules

import (
	"wardrobe_pricing/internal/domain/doors"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/domain/geometry"
)

// WardrobeFacts are the wardrobe metrics a rule can test. Lengths are cm,
// areas m².
type WardrobeFacts struct {
	Width                float64 `json:"width"`
	Height               float64 `json:"height"`
	Depth                float64 `json:"depth"`
	Area                 float64 `json:"area"`
	TotalArea            float64 `json:"total_area"`
	ColumnCount          int     `json:"column_count"`
	ShelfCount           int     `json:"shelf_count"`
	DoorCount            int     `json:"door_count"`
	SingleDoorCount      int     `json:"single_door_count"`
	DoubleDoorCount      int     `json:"double_door_count"`
	MirrorDoorCount      int     `json:"mirror_door_count"`
	DrawerStyleDoorCount int     `json:"drawer_style_door_count"`
	DrawerCount          int     `json:"drawer_count"`
	HandleCount          int     `json:"handle_count"`
	MinDoorHeight        float64 `json:"min_door_height"`
	MaxDoorHeight        float64 `json:"max_door_height"`
	HasBase              bool    `json:"has_base"`
	HasModules           bool    `json:"has_modules"`
	HasMirror            bool    `json:"has_mirror"`
	BodyMaterial         string  `json:"body_material"`
	FrontMaterial        string  `json:"front_material"`
	BackMaterial         string  `json:"back_material"`
	HandleName           string  `json:"handle_name"`
	HandleFinish         string  `json:"handle_finish"`
}

type CustomerFacts struct {
	Email      string   `json:"email"`
	Tags       []string `json:"tags"`
	OrderCount int      `json:"order_count"`
}

type OrderFacts struct {
	Total        float64 `json:"total"`
	ShippingCity string  `json:"shipping_city"`
}

// Context is everything rule conditions are evaluated against. A nil
// Customer or Order makes every field of that section absent.
type Context struct {
	Wardrobe WardrobeFacts  `json:"wardrobe"`
	Customer *CustomerFacts `json:"customer,omitempty"`
	Order    *OrderFacts    `json:"order,omitempty"`
}

// WardrobeFactsFrom derives the wardrobe section of the context from the
// resolved layout, the priced cut list and the door metrics.
func WardrobeFactsFrom(cfg entities.WardrobeConfig, layout geometry.WardrobeLayout, cutList entities.CutList, metrics doors.Metrics, catalog entities.Catalog) WardrobeFacts {
	f := WardrobeFacts{
		Width:                cfg.Width,
		Height:               cfg.Height,
		Depth:                cfg.Depth,
		Area:                 cfg.Width * cfg.Height / 10000,
		TotalArea:            cutList.TotalArea,
		ColumnCount:          len(layout.Columns),
		DoorCount:            metrics.DoorCount,
		SingleDoorCount:      metrics.SingleCount,
		DoubleDoorCount:      metrics.DoubleCount,
		MirrorDoorCount:      metrics.MirrorCount,
		DrawerStyleDoorCount: metrics.DrawerStyleCount,
		HandleCount:          metrics.HandleCount,
		MinDoorHeight:        metrics.MinHeight,
		MaxDoorHeight:        metrics.MaxHeight,
		HasBase:              cfg.EffectiveBaseHeight() > 0,
		HasMirror:            metrics.MirrorCount > 0,
		HandleName:           metrics.HandleName,
		HandleFinish:         metrics.HandleFinish,
	}
	for _, c := range layout.Columns {
		f.ShelfCount += len(c.Shelves)
		if c.Bounds.Split {
			f.HasModules = true
		}
	}
	for _, d := range cfg.Drawers {
		if d.Count > 0 {
			f.DrawerCount += d.Count
		}
	}
	if m, ok := catalog.Material(cfg.SelectedMaterialID); ok {
		f.BodyMaterial = m.Name
	}
	if m, ok := catalog.Material(cfg.SelectedFrontMaterialID); ok {
		f.FrontMaterial = m.Name
	}
	if m, ok := catalog.Material(cfg.SelectedBackMaterialID); ok {
		f.BackMaterial = m.Name
	}
	return f
}
