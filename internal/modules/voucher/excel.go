package voucher

import (
	"fmt"

	"karting/internal/domain"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Voucher"

var columns = []string{
	"Attendee",
	"Base Price",
	"Discount Type",
	"Discounted Price",
	"Tax %",
	"Price With Tax",
}

// buildWorkbook renders the payment breakdown as a spreadsheet: one header
// block with the booking facts, one row per attendee, one total row.
func buildWorkbook(b *domain.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	head := [][]interface{}{
		{"Booking", b.ID},
		{"Date", b.Date},
		{"Time", b.StartTime + " - " + b.EndTime},
		{"Tier", fmt.Sprintf("%d laps", b.Tier)},
		{"People", b.NumOfPeople},
	}
	for i, row := range head {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	headerRow := len(head) + 2
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	cols := make([]interface{}, len(columns))
	for i, c := range columns {
		cols[i] = c
	}
	if err := f.SetSheetRow(sheetName, cell, &cols); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), headerRow)
	if err := f.SetCellStyle(sheetName, cell, last, bold); err != nil {
		return nil, err
	}

	for i, a := range b.Attendees {
		cell, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		row := []interface{}{a.Name, b.BasePrice, a.DiscountType, a.Price, b.TaxPct, a.PriceWithTax}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	totalRow := headerRow + len(b.Attendees) + 1
	cell, _ = excelize.CoordinatesToCellName(1, totalRow)
	row := []interface{}{"TOTAL", "", "", "", "", b.TotalAmount}
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return nil, err
	}
	last, _ = excelize.CoordinatesToCellName(len(columns), totalRow)
	if err := f.SetCellStyle(sheetName, cell, last, bold); err != nil {
		return nil, err
	}

	return f, nil
}
