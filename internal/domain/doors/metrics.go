// Package doors derives per-door physical metrics (type counts, heights,
// handles) from a wardrobe snapshot.
package doors

import (
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/domain/geometry"
)

// Metrics summarises the door groups of one wardrobe. Heights are cm and 0
// when no door could be measured.
type Metrics struct {
	DoorCount        int     `json:"door_count"`
	SingleCount      int     `json:"single_count"`
	DoubleCount      int     `json:"double_count"`
	MirrorCount      int     `json:"mirror_count"`
	DrawerStyleCount int     `json:"drawer_style_count"`
	MinHeight        float64 `json:"min_height"`
	MaxHeight        float64 `json:"max_height"`
	HandleCount      int     `json:"handle_count"`
	HandleName       string  `json:"handle_name"`
	HandleFinish     string  `json:"handle_finish"`
}

// Measurer resolves door heights for one snapshot. Column layouts are
// resolved lazily and only for columns that carry a door.
type Measurer struct {
	cfg         entities.WardrobeConfig
	columnCount int
	columns     map[int]geometry.ColumnLayout
}

func NewMeasurer(cfg entities.WardrobeConfig) *Measurer {
	return &Measurer{
		cfg:         cfg,
		columnCount: len(geometry.BuildColumns(cfg.Width, cfg.VerticalBoundaries)),
		columns:     map[int]geometry.ColumnLayout{},
	}
}

func (m *Measurer) column(index int) (geometry.ColumnLayout, bool) {
	if index < 0 || index >= m.columnCount {
		return geometry.ColumnLayout{}, false
	}
	if l, ok := m.columns[index]; ok {
		return l, true
	}
	l := geometry.ResolveCompartments(geometry.ColumnInputFromConfig(m.cfg, index))
	m.columns[index] = l
	return l, true
}

// Height returns the door's height in cm. A door covering one compartment,
// or several sub-compartments of the same compartment, takes that span. A
// door covering several compartments takes the sum of their heights, each
// counted once. ok is false when none of the keys resolves.
func (m *Measurer) Height(g entities.DoorGroup) (float64, bool) {
	layout, ok := m.column(g.Column)
	if !ok {
		return 0, false
	}

	seen := map[string]struct{}{}
	total := 0.0
	found := false
	for _, key := range g.Compartments {
		base := geometry.BaseKey(key)
		if _, dup := seen[base]; dup {
			continue
		}
		seen[base] = struct{}{}
		for _, c := range layout.Compartments {
			if c.Key == base {
				total += c.Height
				found = true
				break
			}
		}
	}
	return total, found
}

// Height measures a single door group against the snapshot.
func Height(cfg entities.WardrobeConfig, g entities.DoorGroup) (float64, bool) {
	return NewMeasurer(cfg).Height(g)
}

// Resolve computes the metrics of every door group of the snapshot.
func Resolve(cfg entities.WardrobeConfig, catalog entities.Catalog) Metrics {
	m := NewMeasurer(cfg)
	out := Metrics{DoorCount: len(cfg.DoorGroups)}

	measured := false
	for _, g := range cfg.DoorGroups {
		switch {
		case g.Type == entities.DoorTypeDrawerStyle:
			out.DrawerStyleCount++
		case g.Type.IsMirror():
			out.MirrorCount++
		case g.Type == entities.DoorTypeDouble:
			out.DoubleCount++
		default:
			out.SingleCount++
		}
		out.HandleCount += g.Type.Leaves()

		h, ok := m.Height(g)
		if !ok {
			continue
		}
		if !measured || h < out.MinHeight {
			out.MinHeight = h
		}
		if !measured || h > out.MaxHeight {
			out.MaxHeight = h
		}
		measured = true
	}

	if h, ok := catalog.Handle(cfg.SelectedHandleID); ok {
		out.HandleName = h.Name
		if f, ok := h.Finish(cfg.SelectedHandleFinishID); ok {
			out.HandleFinish = f.Name
		}
	}
	return out
}
