// Package cutlist turns a resolved wardrobe layout into a priced list of
// panels to cut.
package cutlist

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"wardrobe_pricing/internal/domain/doors"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/domain/geometry"
)

var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrHandleNotFound   = errors.New("handle not found")
	ErrInvalidPanel     = errors.New("invalid panel dimensions")
	ErrInvalidPrice     = errors.New("invalid price")
)

// DrawerClearance is taken off the depth for drawer bottoms and sides, and
// DrawerSideInset off the front height for drawer sides (cm).
const (
	DrawerClearance = 5.0
	DrawerSideInset = 4.0
)

const (
	ElementSide         = "side"
	ElementTop          = "top"
	ElementBottom       = "bottom"
	ElementPlinth       = "plinth"
	ElementModule       = "module"
	ElementShelf        = "shelf"
	ElementDivider      = "divider"
	ElementBack         = "back"
	ElementDoor         = "door"
	ElementDrawerFront  = "drawer_front"
	ElementDrawerBottom = "drawer_bottom"
	ElementDrawerSide   = "drawer_side"
)

type Builder struct {
	log zerolog.Logger
}

func NewBuilder(log zerolog.Logger) *Builder {
	return &Builder{log: log}
}

type material struct {
	entities.Material
	category entities.MaterialCategory
	prefix   string
}

type run struct {
	cfg       entities.WardrobeConfig
	layout    geometry.WardrobeLayout
	body      material
	front     material
	back      material
	items     []entities.CutListItem
	sequences map[string]int
}

// Build prices every panel implied by the layout. The output depends only on
// the inputs.
func (b *Builder) Build(cfg entities.WardrobeConfig, layout geometry.WardrobeLayout, catalog entities.Catalog) (entities.CutList, error) {
	body, err := resolveMaterial(catalog, cfg.SelectedMaterialID, entities.MaterialCategoryBody, "K")
	if err != nil {
		return entities.CutList{}, err
	}
	front, err := resolveMaterial(catalog, cfg.SelectedFrontMaterialID, entities.MaterialCategoryFront, "F")
	if err != nil {
		return entities.CutList{}, err
	}
	back, err := resolveMaterial(catalog, cfg.SelectedBackMaterialID, entities.MaterialCategoryBack, "B")
	if err != nil {
		return entities.CutList{}, err
	}

	r := &run{
		cfg:       cfg,
		layout:    layout,
		body:      body,
		front:     front,
		back:      back,
		sequences: map[string]int{},
	}

	if err := r.carcass(); err != nil {
		return entities.CutList{}, err
	}
	handleCount, err := r.doorLeaves(b.log)
	if err != nil {
		return entities.CutList{}, err
	}
	if err := r.drawers(b.log); err != nil {
		return entities.CutList{}, err
	}

	handleUnit := 0.0
	if cfg.SelectedHandleID != "" {
		h, ok := catalog.Handle(cfg.SelectedHandleID)
		if !ok {
			return entities.CutList{}, fmt.Errorf("%w: %s", ErrHandleNotFound, cfg.SelectedHandleID)
		}
		handleUnit = h.UnitPrice(cfg.SelectedHandleFinishID)
		if handleUnit < 0 || !finite(handleUnit) {
			return entities.CutList{}, fmt.Errorf("%w: handle %s", ErrInvalidPrice, h.ID)
		}
	}

	return r.summarise(handleCount, handleUnit)
}

func resolveMaterial(catalog entities.Catalog, id string, category entities.MaterialCategory, prefix string) (material, error) {
	m, ok := catalog.Material(id)
	if !ok {
		return material{}, fmt.Errorf("%w: %s material %q", ErrMaterialNotFound, category, id)
	}
	if m.Price < 0 || !finite(m.Price) {
		return material{}, fmt.Errorf("%w: material %s", ErrInvalidPrice, m.ID)
	}
	return material{Material: m, category: category, prefix: prefix}, nil
}

func (r *run) add(m material, element, description string, column int, width, height float64) error {
	area := round4(width * height / 10000)
	if !finite(width) || !finite(height) || width <= 0 || height <= 0 || area <= 0 {
		return fmt.Errorf("%w: %s %.2fx%.2f", ErrInvalidPanel, description, width, height)
	}
	cost := round2(area * m.Price)
	if !finite(cost) {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, description)
	}

	thickness := m.ThicknessMM
	if thickness <= 0 {
		thickness = r.cfg.ThicknessCm() * 10
	}

	r.sequences[m.prefix]++
	r.items = append(r.items, entities.CutListItem{
		Code:        m.prefix + strconv.Itoa(r.sequences[m.prefix]),
		Description: description,
		Width:       round2(width),
		Height:      round2(height),
		ThicknessMM: thickness,
		Area:        area,
		Cost:        cost,
		Element:     element,
		Column:      column,
		Category:    m.category,
	})
	return nil
}

// innerWidth is the clear width between the column's side panels. Outer
// sides take a full thickness, shared dividers half of one.
func (r *run) innerWidth(i int) float64 {
	cols := r.layout.Columns
	t := r.layout.Thickness
	left, right := t/2, t/2
	if i == 0 {
		left = t
	}
	if i == len(cols)-1 {
		right = t
	}
	return cols[i].Width - left - right
}

func (r *run) carcass() error {
	cols := r.layout.Columns
	depth := r.cfg.Depth
	base := r.cfg.EffectiveBaseHeight()

	for i, col := range cols {
		letter := geometry.ColumnLetter(col.Index)
		h := col.Bounds.Height
		w := r.innerWidth(i)

		if i == 0 {
			if err := r.add(r.body, ElementSide, "Left side", col.Index, depth, h); err != nil {
				return err
			}
		}
		if err := r.add(r.body, ElementTop, "Top "+letter, col.Index, w, depth); err != nil {
			return err
		}
		if err := r.add(r.body, ElementBottom, "Bottom "+letter, col.Index, w, depth); err != nil {
			return err
		}
		if base > 0 {
			if err := r.add(r.body, ElementPlinth, "Plinth "+letter, col.Index, w, base); err != nil {
				return err
			}
		}
		if col.Bounds.Split {
			for _, d := range []string{"lower", "upper"} {
				if err := r.add(r.body, ElementModule, fmt.Sprintf("Module panel %s %s", letter, d), col.Index, w, depth); err != nil {
					return err
				}
			}
		}
		for n := range col.Shelves {
			if err := r.add(r.body, ElementShelf, fmt.Sprintf("Shelf %s%d", letter, n+1), col.Index, w, depth); err != nil {
				return err
			}
		}
		if i < len(cols)-1 {
			next := cols[i+1]
			dh := math.Max(h, next.Bounds.Height)
			desc := fmt.Sprintf("Divider %s/%s", letter, geometry.ColumnLetter(next.Index))
			if err := r.add(r.body, ElementDivider, desc, col.Index, depth, dh); err != nil {
				return err
			}
		} else {
			if err := r.add(r.body, ElementSide, "Right side", col.Index, depth, h); err != nil {
				return err
			}
		}
		if err := r.add(r.back, ElementBack, "Back "+letter, col.Index, col.Width, h-base); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) column(index int) (geometry.ResolvedColumn, int, bool) {
	for i, c := range r.layout.Columns {
		if c.Index == index {
			return c, i, true
		}
	}
	return geometry.ResolvedColumn{}, 0, false
}

// doorLeaves emits the front panels of every door group and returns the
// number of handles they carry.
func (r *run) doorLeaves(log zerolog.Logger) (int, error) {
	measurer := doors.NewMeasurer(r.cfg)
	handles := 0
	for n, g := range r.cfg.DoorGroups {
		handles += g.Type.Leaves()

		col, _, ok := r.column(g.Column)
		if !ok {
			log.Warn().Int("door", n).Int("column", g.Column).Msg("[cutlist] door on unknown column skipped")
			continue
		}
		h, ok := measurer.Height(g)
		if !ok {
			log.Warn().Int("door", n).Strs("compartments", g.Compartments).Msg("[cutlist] door without resolvable compartments skipped")
			continue
		}

		letter := geometry.ColumnLetter(col.Index)
		if g.Type.IsDouble() {
			for _, side := range []string{"left", "right"} {
				desc := fmt.Sprintf("Door %s %d %s leaf", letter, n+1, side)
				if err := r.add(r.front, ElementDoor, desc, col.Index, col.Width/2, h); err != nil {
					return 0, err
				}
			}
			continue
		}
		if err := r.add(r.front, ElementDoor, fmt.Sprintf("Door %s %d", letter, n+1), col.Index, col.Width, h); err != nil {
			return 0, err
		}
	}
	return handles, nil
}

func (r *run) drawers(log zerolog.Logger) error {
	depth := r.cfg.Depth - DrawerClearance
	for _, d := range r.cfg.Drawers {
		col, i, ok := r.column(d.Column)
		if !ok {
			log.Warn().Int("column", d.Column).Msg("[cutlist] drawer on unknown column skipped")
			continue
		}
		key := geometry.BaseKey(d.Compartment)
		var comp geometry.Compartment
		found := false
		for _, c := range col.Compartments {
			if c.Key == key {
				comp, found = c, true
				break
			}
		}
		if !found || d.Count <= 0 {
			log.Warn().Str("compartment", d.Compartment).Int("count", d.Count).Msg("[cutlist] drawer skipped")
			continue
		}

		w := r.innerWidth(i)
		frontH := comp.Height / float64(d.Count)
		for k := 1; k <= d.Count; k++ {
			label := fmt.Sprintf("%s drawer %d", key, k)
			if err := r.add(r.front, ElementDrawerFront, label+" front", col.Index, w, frontH); err != nil {
				return err
			}
			if err := r.add(r.body, ElementDrawerBottom, label+" bottom", col.Index, w, depth); err != nil {
				return err
			}
			for s := 0; s < 2; s++ {
				if err := r.add(r.body, ElementDrawerSide, label+" side", col.Index, depth, frontH-DrawerSideInset); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *run) summarise(handleCount int, handleUnit float64) (entities.CutList, error) {
	var breakdown entities.PriceBreakdown
	totalArea := 0.0
	for _, it := range r.items {
		var ct *entities.CategoryTotal
		switch it.Category {
		case entities.MaterialCategoryFront:
			ct = &breakdown.Front
		case entities.MaterialCategoryBack:
			ct = &breakdown.Back
		default:
			ct = &breakdown.Korpus
		}
		ct.Area += it.Area
		ct.Price += it.Cost
		ct.Count++
		totalArea += it.Area
	}
	for _, ct := range []*entities.CategoryTotal{&breakdown.Korpus, &breakdown.Front, &breakdown.Back} {
		ct.Area = round4(ct.Area)
		ct.Price = round2(ct.Price)
	}
	breakdown.Handles = entities.CategoryTotal{
		Price: round2(float64(handleCount) * handleUnit),
		Count: handleCount,
	}

	total := round2(breakdown.Korpus.Price + breakdown.Front.Price + breakdown.Back.Price + breakdown.Handles.Price)
	if !finite(total) {
		return entities.CutList{}, fmt.Errorf("%w: total %v", ErrInvalidPrice, total)
	}

	items := r.items
	if items == nil {
		items = []entities.CutListItem{}
	}
	return entities.CutList{
		Items:           items,
		PricePerM2:      r.body.Price,
		FrontPricePerM2: r.front.Price,
		BackPricePerM2:  r.back.Price,
		HandlePrice:     handleUnit,
		TotalArea:       round4(totalArea),
		TotalCost:       total,
		PriceBreakdown:  breakdown,
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
