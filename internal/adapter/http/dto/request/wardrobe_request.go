package request

import (
	"strings"
	"wardrobe_pricing/internal/domain/entities"
)

type DoorGroupRequest struct {
	Type         string   `json:"type" binding:"required"`
	Column       int      `json:"column" binding:"min=0"`
	Compartments []string `json:"compartments"`
}

type DrawerRequest struct {
	Column      int    `json:"column" binding:"min=0"`
	Compartment string `json:"compartment" binding:"required"`
	Count       int    `json:"count"`
}

// WardrobeRequest is the configurator snapshot. Lengths are centimetres,
// boundary positions are metres and panel thickness is millimetres.
type WardrobeRequest struct {
	Width            float64 `json:"width" binding:"required,gt=0"`
	Height           float64 `json:"height" binding:"required,gt=0"`
	Depth            float64 `json:"depth" binding:"required,gt=0"`
	PanelThicknessMM float64 `json:"panel_thickness_mm" binding:"gte=0"`
	HasBase          bool    `json:"has_base"`
	BaseHeight       float64 `json:"base_height" binding:"gte=0"`

	VerticalBoundaries         []float64          `json:"vertical_boundaries"`
	ColumnHeights              map[int]float64    `json:"column_heights"`
	ColumnHorizontalBoundaries map[int][]float64  `json:"column_horizontal_boundaries"`
	ColumnModuleBoundaries     map[int]*float64   `json:"column_module_boundaries"`
	ColumnTopModuleShelves     map[int][]float64  `json:"column_top_module_shelves"`
	DoorGroups                 []DoorGroupRequest `json:"door_groups" binding:"dive"`
	Drawers                    []DrawerRequest    `json:"drawers" binding:"dive"`

	SelectedMaterialID      string `json:"selected_material_id" binding:"required"`
	SelectedFrontMaterialID string `json:"selected_front_material_id"`
	SelectedBackMaterialID  string `json:"selected_back_material_id"`
	SelectedHandleID        string `json:"selected_handle_id"`
	SelectedHandleFinishID  string `json:"selected_handle_finish_id"`
}

// ToConfig converts the payload into the immutable domain snapshot. Material
// ids are trimmed and door types lower-cased.
func (r WardrobeRequest) ToConfig() entities.WardrobeConfig {
	cfg := entities.WardrobeConfig{
		Width:                   r.Width,
		Height:                  r.Height,
		Depth:                   r.Depth,
		PanelThicknessMM:        r.PanelThicknessMM,
		HasBase:                 r.HasBase,
		BaseHeight:              r.BaseHeight,
		VerticalBoundaries:      r.VerticalBoundaries,
		ColumnHeights:           r.ColumnHeights,
		ColumnShelves:           r.ColumnHorizontalBoundaries,
		ColumnModuleBoundaries:  r.ColumnModuleBoundaries,
		ColumnTopModuleShelves:  r.ColumnTopModuleShelves,
		SelectedMaterialID:      strings.TrimSpace(r.SelectedMaterialID),
		SelectedFrontMaterialID: strings.TrimSpace(r.SelectedFrontMaterialID),
		SelectedBackMaterialID:  strings.TrimSpace(r.SelectedBackMaterialID),
		SelectedHandleID:        strings.TrimSpace(r.SelectedHandleID),
		SelectedHandleFinishID:  strings.TrimSpace(r.SelectedHandleFinishID),
	}
	if cfg.PanelThicknessMM == 0 {
		cfg.PanelThicknessMM = entities.DefaultPanelThicknessMM
	}

	for _, d := range r.DoorGroups {
		keys := make([]string, 0, len(d.Compartments))
		for _, k := range d.Compartments {
			if k = strings.ToUpper(strings.TrimSpace(k)); k != "" {
				keys = append(keys, k)
			}
		}
		cfg.DoorGroups = append(cfg.DoorGroups, entities.DoorGroup{
			Type:         entities.DoorType(strings.ToLower(strings.TrimSpace(d.Type))),
			Column:       d.Column,
			Compartments: keys,
		})
	}
	for _, d := range r.Drawers {
		cfg.Drawers = append(cfg.Drawers, entities.DrawerConfig{
			Column:      d.Column,
			Compartment: strings.ToUpper(strings.TrimSpace(d.Compartment)),
			Count:       d.Count,
		})
	}
	return cfg
}
