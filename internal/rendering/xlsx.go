package rendering

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/croberts/resume-builder/internal/types"
)

// MatchSheet is the worksheet name used by RenderMatchXLSX
const MatchSheet = "Match"

// matchTableRow is the first row of the match table header
const matchTableRow = 7

// RenderMatchXLSX writes a match result as a single-sheet workbook
func RenderMatchXLSX(result *types.MatchResult) ([]byte, error) {
	if result == nil {
		return nil, &RenderError{Format: FormatXLSX, Message: "match result is nil"}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MatchSheet); err != nil {
		return nil, &RenderError{Format: FormatXLSX, Message: "failed to name sheet", Cause: err}
	}
	if err := writeMatchSheet(f, result); err != nil {
		return nil, &RenderError{Format: FormatXLSX, Message: "failed to build match sheet", Cause: err}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, &RenderError{Format: FormatXLSX, Message: "failed to serialize xlsx", Cause: err}
	}
	return buf.Bytes(), nil
}

func writeMatchSheet(f *excelize.File, result *types.MatchResult) error {
	sheet := MatchSheet

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F3864"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	widths := map[string]float64{"A": 24, "B": 28, "C": 70, "D": 30}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	cells := []struct {
		cell  string
		value any
	}{
		{"A1", "Keyword Match"},
		{"A3", "Job Description:"},
		{"B3", result.JobDescription},
		{"A4", "Keywords:"},
		{"B4", strings.Join(result.Keywords, ", ")},
		{"A5", "Matched Bullets:"},
		{"B5", len(result.MatchedBullets)},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheet, c.cell, c.value); err != nil {
			return err
		}
	}
	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A3", "A5", labelStyle); err != nil {
		return err
	}

	header := []string{"Company", "Job Title", "Accomplishment", "Matched Keywords"}
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, matchTableRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", matchTableRow), fmt.Sprintf("D%d", matchTableRow), labelStyle); err != nil {
		return err
	}

	row := matchTableRow + 1
	for _, m := range result.Matches {
		values := []any{m.Company, m.JobTitle, m.Accomplishment, strings.Join(m.Keywords, ", ")}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), wrapStyle); err != nil {
			return err
		}
		row++
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      matchTableRow,
		TopLeftCell: fmt.Sprintf("A%d", matchTableRow+1),
		ActivePane:  "bottomLeft",
	})
}
