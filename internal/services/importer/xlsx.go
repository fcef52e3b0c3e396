package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/promoforge/promoforge-backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// ParseRosterXLSX parses an .xlsx roster upload. Each row runs through the
// same shape-based field classifier as the CSV path, so a spreadsheet export
// re-imports without a declared schema.
func ParseRosterXLSX(r io.Reader) ([]models.Customer, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	customers := make([]models.Customer, 0, len(rows))
	for i, row := range rows {
		fields := make([]string, 0, len(row))
		empty := true
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				empty = false
			}
			fields = append(fields, cell)
		}
		if empty {
			continue
		}
		if i == 0 && looksLikeHeader(strings.Join(fields, ",")) {
			continue
		}
		if customer, ok := classifyFields(fields); ok {
			customers = append(customers, customer)
		}
	}

	return customers, nil
}

// ExportRosterXLSX writes the roster to an .xlsx workbook with a styled
// header row, one customer per row.
func ExportRosterXLSX(customers []models.Customer) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Customers"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	columns := []string{
		"name", "email", "phone", "purchase_history",
		"segment", "segment_reason", "total_spent", "last_purchase_date",
	}

	for i, col := range columns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", columnToLetter(len(columns))+"1", headerStyle)
	}

	widths := map[string]float64{
		"name":               25.0,
		"email":              30.0,
		"phone":              18.0,
		"purchase_history":   50.0,
		"segment":            15.0,
		"segment_reason":     40.0,
		"total_spent":        12.0,
		"last_purchase_date": 18.0,
	}
	for i, col := range columns {
		colLetter := columnToLetter(i + 1)
		width := 20.0
		if w, ok := widths[col]; ok {
			width = w
		}
		f.SetColWidth(sheetName, colLetter, colLetter, width)
	}

	for j, customer := range customers {
		rowNum := j + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), customer.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), customer.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), customer.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), customer.PurchaseHistory)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), string(customer.Segment))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), customer.SegmentReason)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), customer.TotalSpent)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowNum), customer.LastPurchaseDate)
	}

	return f, nil
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
