package geometry

import "math"

// CoordinateMapper converts layout centimetres into preview scene metres:
// x is centred on the wardrobe, y grows up from the floor.
type CoordinateMapper struct {
	WidthCm  float64
	HeightCm float64
}

func NewCoordinateMapper(l WardrobeLayout) CoordinateMapper {
	return CoordinateMapper{WidthCm: l.Width, HeightCm: l.Height}
}

// SceneX maps an offset from the left edge (cm) to a centre-relative metre
// position. The input is clamped to [0, width].
func (m CoordinateMapper) SceneX(xCm float64) float64 {
	return clamp(xCm, 0, m.WidthCm)/100 - m.WidthCm/200
}

// SceneY maps a floor-relative height (cm) to metres, clamped to
// [0, wardrobe height].
func (m CoordinateMapper) SceneY(yCm float64) float64 {
	return clamp(yCm, 0, m.HeightCm) / 100
}

// ColumnSceneY is SceneY clamped to one column's own height.
func (m CoordinateMapper) ColumnSceneY(columnHeightCm, yCm float64) float64 {
	return clamp(yCm, 0, columnHeightCm) / 100
}

// OffsetFromSceneX is the inverse of SceneX, clamped to [0, width].
func (m CoordinateMapper) OffsetFromSceneX(xM float64) float64 {
	return clamp(CenterMetersToCm(xM, m.WidthCm), 0, m.WidthCm)
}

// SceneBox is a compartment rectangle in scene metres.
type SceneBox struct {
	Key    string  `json:"key"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// Boxes projects every compartment of the layout into scene coordinates.
func (m CoordinateMapper) Boxes(l WardrobeLayout) []SceneBox {
	var boxes []SceneBox
	for _, c := range l.Columns {
		for _, comp := range c.Compartments {
			boxes = append(boxes, SceneBox{
				Key:    comp.Key,
				Left:   m.SceneX(c.Start),
				Right:  m.SceneX(c.End),
				Bottom: m.ColumnSceneY(c.Bounds.Height, comp.BottomY),
				Top:    m.ColumnSceneY(c.Bounds.Height, comp.TopY),
			})
		}
	}
	return boxes
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if hi < lo {
		hi = lo
	}
	return math.Min(math.Max(v, lo), hi)
}
