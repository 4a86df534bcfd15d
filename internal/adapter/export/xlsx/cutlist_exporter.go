// Package xlsx renders frozen order cut lists as Excel workbooks.
package xlsx

import (
	"fmt"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	SheetCutList = "Cut list"
	SheetSummary = "Summary"
)

var cutListHeader = []interface{}{
	"Code", "Description", "Element", "Column", "Category",
	"Width (cm)", "Height (cm)", "Thickness (mm)", "Area (m²)", "Cost",
}

type CutListExporter struct{}

var _ interfaces.ICutListExporter = (*CutListExporter)(nil)

func NewCutListExporter() *CutListExporter { return &CutListExporter{} }

// Export writes one row per panel to the "Cut list" sheet and the category
// breakdown plus order totals to the "Summary" sheet.
func (e *CutListExporter) Export(o entities.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCutList); err != nil {
		return nil, err
	}
	if err := writeCutList(f, o.CutList); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return nil, err
	}
	if err := writeSummary(f, o); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCutList(f *excelize.File, cl entities.CutList) error {
	if err := setRow(f, SheetCutList, 1, cutListHeader); err != nil {
		return err
	}
	for i, it := range cl.Items {
		row := []interface{}{
			it.Code, it.Description, it.Element, it.Column + 1, string(it.Category),
			it.Width, it.Height, it.ThicknessMM, it.Area, it.Cost,
		}
		if err := setRow(f, SheetCutList, i+2, row); err != nil {
			return err
		}
	}
	return f.SetPanes(SheetCutList, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummary(f *excelize.File, o entities.Order) error {
	pb := o.CutList.PriceBreakdown
	rows := [][]interface{}{
		{"Order", o.ID},
		{"Email", o.Email},
		{"Confirmed at", o.CreatedAt.UTC().Format("2006-01-02 15:04")},
		{},
		{"Category", "Area (m²)", "Count", "Price"},
		{"Korpus", pb.Korpus.Area, "", pb.Korpus.Price},
		{"Front", pb.Front.Area, "", pb.Front.Price},
		{"Back", pb.Back.Area, "", pb.Back.Price},
		{"Handles", "", pb.Handles.Count, pb.Handles.Price},
		{},
		{"Total area (m²)", o.CutList.TotalArea},
		{"Base total", o.BaseTotal},
	}
	for _, a := range o.VisibleAdjustments() {
		rows = append(rows, []interface{}{a.Description, a.Amount})
	}
	rows = append(rows, []interface{}{"Final total", o.FinalTotal})

	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		if err := setRow(f, SheetSummary, i+1, r); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	return nil
}
