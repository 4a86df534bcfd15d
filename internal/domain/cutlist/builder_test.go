package cutlist

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/domain/geometry"
)

func ptr(v float64) *float64 { return &v }

func testCatalog() entities.Catalog {
	return entities.Catalog{
		Materials: []entities.Material{
			{ID: "body", Name: "Oak 18", Price: 20, ThicknessMM: 18},
			{ID: "front", Name: "White gloss", Price: 30, ThicknessMM: 18},
			{ID: "back", Name: "HDF", Price: 10, ThicknessMM: 3},
		},
		Handles: []entities.Handle{
			{ID: "h-1", Name: "Bar", Price: 12, Finishes: []entities.HandleFinish{{ID: "gold", Name: "Gold", Price: 18}}},
		},
	}
}

func singleColumn() entities.WardrobeConfig {
	return entities.WardrobeConfig{
		Width:                   100,
		Height:                  200,
		Depth:                   60,
		PanelThicknessMM:        18,
		SelectedMaterialID:      "body",
		SelectedFrontMaterialID: "front",
		SelectedBackMaterialID:  "back",
	}
}

func build(t *testing.T, cfg entities.WardrobeConfig) (entities.CutList, error) {
	t.Helper()
	return NewBuilder(zerolog.Nop()).Build(cfg, geometry.LayoutFromConfig(cfg), testCatalog())
}

func TestBuild_SingleColumnCarcass(t *testing.T) {
	got, err := build(t, singleColumn())
	require.NoError(t, err)
	require.Len(t, got.Items, 5)

	codes := []string{}
	for _, it := range got.Items {
		codes = append(codes, it.Code)
	}
	assert.Equal(t, []string{"K1", "K2", "K3", "K4", "B1"}, codes)

	top := got.Items[1]
	assert.Equal(t, ElementTop, top.Element)
	assert.InDelta(t, 96.4, top.Width, 1e-9)
	assert.InDelta(t, 0.5784, top.Area, 1e-9)
	assert.InDelta(t, 11.57, top.Cost, 1e-9)

	back := got.Items[4]
	assert.Equal(t, entities.MaterialCategoryBack, back.Category)
	assert.Equal(t, 3.0, back.ThicknessMM)
	assert.InDelta(t, 2.0, back.Area, 1e-9)

	assert.InDelta(t, 3.5568, got.PriceBreakdown.Korpus.Area, 1e-9)
	assert.InDelta(t, 71.14, got.PriceBreakdown.Korpus.Price, 1e-9)
	assert.InDelta(t, 20.0, got.PriceBreakdown.Back.Price, 1e-9)
	assert.Zero(t, got.PriceBreakdown.Front.Price)
	assert.Zero(t, got.PriceBreakdown.Handles.Price)
	assert.InDelta(t, 5.5568, got.TotalArea, 1e-9)
	assert.InDelta(t, 91.14, got.TotalCost, 1e-9)
	assert.Equal(t, 20.0, got.PricePerM2)
	assert.Equal(t, 30.0, got.FrontPricePerM2)
	assert.Equal(t, 10.0, got.BackPricePerM2)
}

func TestBuild_PanelOrder(t *testing.T) {
	cfg := singleColumn()
	cfg.Width = 200
	cfg.Height = 250
	cfg.HasBase = true
	cfg.BaseHeight = 10
	cfg.VerticalBoundaries = []float64{0}
	cfg.ColumnShelves = map[int][]float64{0: {1.0}}
	cfg.ColumnModuleBoundaries = map[int]*float64{1: ptr(2.0)}

	got, err := build(t, cfg)
	require.NoError(t, err)

	elements := []string{}
	for _, it := range got.Items {
		elements = append(elements, it.Element)
	}
	assert.Equal(t, []string{
		ElementSide, ElementTop, ElementBottom, ElementPlinth, ElementShelf, ElementDivider, ElementBack,
		ElementTop, ElementBottom, ElementPlinth, ElementModule, ElementModule, ElementSide, ElementBack,
	}, elements)

	assert.Equal(t, "B1", got.Items[6].Code)
	assert.Equal(t, "K12", got.Items[12].Code)
	assert.Equal(t, "B2", got.Items[13].Code)
	assert.InDelta(t, 97.3, got.Items[1].Width, 1e-9)
	assert.InDelta(t, 240.0, got.Items[6].Height, 1e-9)
	assert.Equal(t, 1, got.Items[7].Column)
}

func TestBuild_DividerTakesTallerNeighbour(t *testing.T) {
	cfg := singleColumn()
	cfg.Width = 200
	cfg.VerticalBoundaries = []float64{0}
	cfg.ColumnHeights = map[int]float64{1: 230}

	got, err := build(t, cfg)
	require.NoError(t, err)
	for _, it := range got.Items {
		if it.Element == ElementDivider {
			assert.Equal(t, 230.0, it.Height)
			return
		}
	}
	t.Fatalf("expected a divider panel")
}

func TestBuild_DoorsAndHandles(t *testing.T) {
	cfg := singleColumn()
	cfg.SelectedHandleID = "h-1"
	cfg.DoorGroups = []entities.DoorGroup{{Type: entities.DoorTypeSingleLeft, Column: 0, Compartments: []string{"A1"}}}

	t.Run("single door", func(t *testing.T) {
		got, err := build(t, cfg)
		require.NoError(t, err)
		door := got.Items[len(got.Items)-1]
		assert.Equal(t, "F1", door.Code)
		assert.Equal(t, ElementDoor, door.Element)
		assert.InDelta(t, 100.0, door.Width, 1e-9)
		assert.InDelta(t, 196.4, door.Height, 1e-9)
		assert.InDelta(t, 58.92, got.PriceBreakdown.Front.Price, 1e-9)
		assert.Equal(t, 1, got.PriceBreakdown.Handles.Count)
		assert.InDelta(t, 12.0, got.PriceBreakdown.Handles.Price, 1e-9)
		assert.InDelta(t, 91.14+58.92+12, got.TotalCost, 1e-9)
	})

	t.Run("double door with finish", func(t *testing.T) {
		c := cfg
		c.SelectedHandleFinishID = "gold"
		c.DoorGroups = []entities.DoorGroup{{Type: entities.DoorTypeDouble, Column: 0, Compartments: []string{"A1"}}}
		got, err := build(t, c)
		require.NoError(t, err)
		require.Len(t, got.Items, 7)
		assert.Equal(t, "F2", got.Items[6].Code)
		assert.InDelta(t, 50.0, got.Items[6].Width, 1e-9)
		assert.Equal(t, 2, got.PriceBreakdown.Handles.Count)
		assert.InDelta(t, 36.0, got.PriceBreakdown.Handles.Price, 1e-9)
		assert.Equal(t, 18.0, got.HandlePrice)
	})

	t.Run("unresolved door keeps its handle", func(t *testing.T) {
		c := cfg
		c.DoorGroups = []entities.DoorGroup{{Type: entities.DoorTypeSingleRight, Column: 0, Compartments: []string{"Q7"}}}
		got, err := build(t, c)
		require.NoError(t, err)
		assert.Len(t, got.Items, 5)
		assert.Equal(t, 1, got.PriceBreakdown.Handles.Count)
	})

	t.Run("unknown handle", func(t *testing.T) {
		c := cfg
		c.SelectedHandleID = "nope"
		_, err := build(t, c)
		assert.ErrorIs(t, err, ErrHandleNotFound)
	})
}

func TestBuild_Drawers(t *testing.T) {
	cfg := singleColumn()
	cfg.Drawers = []entities.DrawerConfig{
		{Column: 0, Compartment: "A1", Count: 2},
		{Column: 0, Compartment: "A9", Count: 1},
	}

	got, err := build(t, cfg)
	require.NoError(t, err)
	require.Len(t, got.Items, 5+2*4)

	front := got.Items[5]
	assert.Equal(t, "F1", front.Code)
	assert.Equal(t, ElementDrawerFront, front.Element)
	assert.InDelta(t, 96.4, front.Width, 1e-9)
	assert.InDelta(t, 98.2, front.Height, 1e-9)

	bottom := got.Items[6]
	assert.Equal(t, "K5", bottom.Code)
	assert.InDelta(t, 55.0, bottom.Height, 1e-9)

	side := got.Items[7]
	assert.Equal(t, ElementDrawerSide, side.Element)
	assert.InDelta(t, 55.0, side.Width, 1e-9)
	assert.InDelta(t, 94.2, side.Height, 1e-9)
}

func TestBuild_Errors(t *testing.T) {
	t.Run("missing material", func(t *testing.T) {
		for _, mutate := range []func(*entities.WardrobeConfig){
			func(c *entities.WardrobeConfig) { c.SelectedMaterialID = "" },
			func(c *entities.WardrobeConfig) { c.SelectedFrontMaterialID = "ghost" },
			func(c *entities.WardrobeConfig) { c.SelectedBackMaterialID = "ghost" },
		} {
			cfg := singleColumn()
			mutate(&cfg)
			_, err := build(t, cfg)
			assert.ErrorIs(t, err, ErrMaterialNotFound)
		}
	})

	t.Run("zero depth", func(t *testing.T) {
		cfg := singleColumn()
		cfg.Depth = 0
		_, err := build(t, cfg)
		assert.ErrorIs(t, err, ErrInvalidPanel)
	})

	t.Run("negative price", func(t *testing.T) {
		cfg := singleColumn()
		catalog := testCatalog()
		catalog.Materials[0].Price = -1
		_, err := NewBuilder(zerolog.Nop()).Build(cfg, geometry.LayoutFromConfig(cfg), catalog)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := singleColumn()
	cfg.Width = 300
	cfg.VerticalBoundaries = []float64{0.5, -0.5}
	cfg.ColumnShelves = map[int][]float64{0: {0.8, 1.4}, 2: {1.0}}
	cfg.DoorGroups = []entities.DoorGroup{{Type: entities.DoorTypeDouble, Column: 1, Compartments: []string{"B1"}}}

	first, err := build(t, cfg)
	require.NoError(t, err)
	second, err := build(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
