package xlsx

import (
	"bytes"
	"testing"
	"time"

	"wardrobe_pricing/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testOrder() entities.Order {
	return entities.Order{
		ID:        "ord-1",
		Email:     "ana@example.com",
		CreatedAt: time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC),
		CutList: entities.CutList{
			Items: []entities.CutListItem{
				{Code: "K1", Description: "Left side", Element: "side", Column: 0, Category: entities.MaterialCategoryBody, Width: 60, Height: 200, ThicknessMM: 18, Area: 1.2, Cost: 24},
				{Code: "B1", Description: "Back", Element: "back", Column: 0, Category: entities.MaterialCategoryBack, Width: 100, Height: 200, ThicknessMM: 3, Area: 2, Cost: 20},
			},
			TotalArea: 3.2,
			TotalCost: 44,
			PriceBreakdown: entities.PriceBreakdown{
				Korpus: entities.CategoryTotal{Area: 1.2, Price: 24},
				Back:   entities.CategoryTotal{Area: 2, Price: 20},
			},
		},
		Adjustments: []entities.RuleAdjustment{
			{RuleName: "Promo", Description: "Promo (-10%)", Amount: -4, Visible: true},
			{RuleName: "Margin", Description: "Margin", Amount: 5, Visible: false},
		},
		BaseTotal:  44,
		FinalTotal: 45,
	}
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestCutListExporter_Sheets(t *testing.T) {
	data, err := NewCutListExporter().Export(testOrder())
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{SheetCutList, SheetSummary}, f.GetSheetList())
}

func TestCutListExporter_CutListRows(t *testing.T) {
	data, err := NewCutListExporter().Export(testOrder())
	require.NoError(t, err)

	rows, err := openWorkbook(t, data).GetRows(SheetCutList)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Code", rows[0][0])
	assert.Equal(t, []string{"K1", "Left side", "side", "1", "body", "60", "200", "18", "1.2", "24"}, rows[1])
	assert.Equal(t, "B1", rows[2][0])
	assert.Equal(t, "back", rows[2][4])
}

func TestCutListExporter_SummaryHidesInternalAdjustments(t *testing.T) {
	data, err := NewCutListExporter().Export(testOrder())
	require.NoError(t, err)

	rows, err := openWorkbook(t, data).GetRows(SheetSummary)
	require.NoError(t, err)

	labels := map[string]string{}
	for _, r := range rows {
		if len(r) >= 2 {
			labels[r[0]] = r[1]
		}
	}
	assert.Equal(t, "ord-1", labels["Order"])
	assert.Equal(t, "2026-05-04 10:30", labels["Confirmed at"])
	assert.Equal(t, "44", labels["Base total"])
	assert.Equal(t, "-4", labels["Promo (-10%)"])
	assert.Equal(t, "45", labels["Final total"])
	_, hasMargin := labels["Margin"]
	assert.False(t, hasMargin)
}

func TestCutListExporter_EmptyCutList(t *testing.T) {
	data, err := NewCutListExporter().Export(entities.Order{ID: "ord-2"})
	require.NoError(t, err)

	rows, err := openWorkbook(t, data).GetRows(SheetCutList)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
