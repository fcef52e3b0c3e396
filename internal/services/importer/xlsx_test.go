package importer

import (
	"bytes"
	"testing"

	"github.com/promoforge/promoforge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseRosterXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Name"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Email"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Jane Doe"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "jane@x.com"))
	require.NoError(t, f.SetCellValue(sheet, "C2", "$620 total"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "Bob Smith"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	customers, err := ParseRosterXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	assert.Equal(t, "Jane Doe", customers[0].Name)
	assert.Equal(t, "jane@x.com", customers[0].Email)
	assert.Equal(t, models.SegmentVIP, customers[0].Segment)

	assert.Equal(t, "Bob Smith", customers[1].Name)
	assert.Equal(t, models.SegmentNew, customers[1].Segment)
}

func TestParseRosterXLSXRejectsGarbage(t *testing.T) {
	_, err := ParseRosterXLSX(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func TestExportRosterXLSXRoundTrip(t *testing.T) {
	customers := []models.Customer{
		{
			Name:             "Jane Doe",
			Email:            "jane@x.com",
			Phone:            "555-111-2222",
			PurchaseHistory:  "Loyal regular, weekly visits",
			Segment:          models.SegmentReturning,
			SegmentReason:    `Purchase history mentions "regular"`,
			TotalSpent:       80,
			LastPurchaseDate: "2026-08-01",
		},
	}

	f, err := ExportRosterXLSX(customers)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Customers")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "name", rows[0][0])
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "jane@x.com", rows[1][1])
	assert.Equal(t, "returning", rows[1][4])
}

func TestColumnToLetter(t *testing.T) {
	assert.Equal(t, "A", columnToLetter(1))
	assert.Equal(t, "H", columnToLetter(8))
	assert.Equal(t, "Z", columnToLetter(26))
	assert.Equal(t, "AA", columnToLetter(27))
}
