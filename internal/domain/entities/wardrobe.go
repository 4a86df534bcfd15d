package entities

// DoorType identifies the kind of leaf a door group represents.
type DoorType string

const (
	DoorTypeSingleLeft   DoorType = "single_left"
	DoorTypeSingleRight  DoorType = "single_right"
	DoorTypeDouble       DoorType = "double"
	DoorTypeMirrorLeft   DoorType = "mirror_left"
	DoorTypeMirrorRight  DoorType = "mirror_right"
	DoorTypeDoubleMirror DoorType = "double_mirror"
	DoorTypeDrawerStyle  DoorType = "drawer_style"
)

// IsMirror reports whether the door carries a mirror leaf.
func (t DoorType) IsMirror() bool {
	return t == DoorTypeMirrorLeft || t == DoorTypeMirrorRight || t == DoorTypeDoubleMirror
}

// IsDouble reports whether the door is built from two leaves.
func (t DoorType) IsDouble() bool {
	return t == DoorTypeDouble || t == DoorTypeDoubleMirror
}

// Leaves is the number of physical leaves (and handles) of one door group.
func (t DoorType) Leaves() int {
	switch {
	case t == DoorTypeDrawerStyle:
		return 0
	case t.IsDouble():
		return 2
	default:
		return 1
	}
}

// DoorGroup is one door configured on a column. Compartments holds the
// compartment (or sub-compartment, e.g. "A1.2") keys the door covers.
type DoorGroup struct {
	Type         DoorType `json:"type"`
	Column       int      `json:"column"`
	Compartments []string `json:"compartments"`
}

// DrawerConfig places a stack of Count drawers inside one compartment.
type DrawerConfig struct {
	Column      int    `json:"column"`
	Compartment string `json:"compartment"`
	Count       int    `json:"count"`
}

// WardrobeConfig is the immutable snapshot produced by the configurator.
//
// Units:
//   - Width/Height/Depth/BaseHeight/ColumnHeights: centimetres
//   - PanelThicknessMM: millimetres
//   - VerticalBoundaries: metres, relative to the wardrobe's horizontal centre
//   - ColumnShelves/ColumnModuleBoundaries/ColumnTopModuleShelves: metres from the floor
type WardrobeConfig struct {
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	Depth            float64 `json:"depth"`
	PanelThicknessMM float64 `json:"panel_thickness_mm"`
	HasBase          bool    `json:"has_base"`
	BaseHeight       float64 `json:"base_height"`

	VerticalBoundaries     []float64         `json:"vertical_boundaries"`
	ColumnHeights          map[int]float64   `json:"column_heights,omitempty"`
	ColumnShelves          map[int][]float64 `json:"column_horizontal_boundaries,omitempty"`
	ColumnModuleBoundaries map[int]*float64  `json:"column_module_boundaries,omitempty"`
	ColumnTopModuleShelves map[int][]float64 `json:"column_top_module_shelves,omitempty"`
	DoorGroups             []DoorGroup       `json:"door_groups,omitempty"`
	Drawers                []DrawerConfig    `json:"drawers,omitempty"`

	SelectedMaterialID      string `json:"selected_material_id"`
	SelectedFrontMaterialID string `json:"selected_front_material_id"`
	SelectedBackMaterialID  string `json:"selected_back_material_id"`
	SelectedHandleID        string `json:"selected_handle_id,omitempty"`
	SelectedHandleFinishID  string `json:"selected_handle_finish_id,omitempty"`
}

const DefaultPanelThicknessMM = 18.0

// ThicknessCm returns the panel thickness in centimetres.
func (c WardrobeConfig) ThicknessCm() float64 {
	if c.PanelThicknessMM <= 0 {
		return DefaultPanelThicknessMM / 10
	}
	return c.PanelThicknessMM / 10
}

// EffectiveBaseHeight is the plinth height, or 0 when the wardrobe has no base.
func (c WardrobeConfig) EffectiveBaseHeight() float64 {
	if !c.HasBase || c.BaseHeight < 0 {
		return 0
	}
	return c.BaseHeight
}

// ColumnHeight resolves the per-column height override.
func (c WardrobeConfig) ColumnHeight(index int) float64 {
	if h, ok := c.ColumnHeights[index]; ok && h > 0 {
		return h
	}
	return c.Height
}
