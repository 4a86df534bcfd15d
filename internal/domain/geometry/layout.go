package geometry

import "wardrobe_pricing/internal/domain/entities"

// ResolvedColumn couples a column block with its resolved compartments.
type ResolvedColumn struct {
	Column
	ColumnLayout
}

// WardrobeLayout is the full geometric decomposition of a wardrobe snapshot.
type WardrobeLayout struct {
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	Depth     float64          `json:"depth"`
	Thickness float64          `json:"thickness"`
	Columns   []ResolvedColumn `json:"columns"`
}

// ColumnInputFromConfig extracts the resolver input of one column.
func ColumnInputFromConfig(cfg entities.WardrobeConfig, index int) ColumnInput {
	return ColumnInput{
		Index:          index,
		Height:         cfg.ColumnHeight(index),
		Thickness:      cfg.ThicknessCm(),
		BaseHeight:     cfg.EffectiveBaseHeight(),
		Shelves:        cfg.ColumnShelves[index],
		ModuleBoundary: cfg.ColumnModuleBoundaries[index],
		TopShelves:     cfg.ColumnTopModuleShelves[index],
	}
}

// LayoutFromConfig runs the column builder and the compartment resolver for
// every column of the snapshot.
func LayoutFromConfig(cfg entities.WardrobeConfig) WardrobeLayout {
	blocks := BuildColumns(cfg.Width, cfg.VerticalBoundaries)
	layout := WardrobeLayout{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Depth:     cfg.Depth,
		Thickness: cfg.ThicknessCm(),
		Columns:   make([]ResolvedColumn, 0, len(blocks)),
	}
	for _, b := range blocks {
		layout.Columns = append(layout.Columns, ResolvedColumn{
			Column:       b,
			ColumnLayout: ResolveCompartments(ColumnInputFromConfig(cfg, b.Index)),
		})
	}
	return layout
}

// Compartment looks up a compartment by key anywhere in the layout.
func (l WardrobeLayout) Compartment(key string) (Compartment, bool) {
	for _, c := range l.Columns {
		for _, comp := range c.Compartments {
			if comp.Key == key {
				return comp, true
			}
		}
	}
	return Compartment{}, false
}

// Keys returns every compartment key in column then bottom-to-top order.
func (l WardrobeLayout) Keys() []string {
	var keys []string
	for _, c := range l.Columns {
		for _, comp := range c.Compartments {
			keys = append(keys, comp.Key)
		}
	}
	return keys
}
