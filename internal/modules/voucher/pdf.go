package voucher

import (
	"bytes"
	"fmt"

	"karting/internal/domain"

	"github.com/go-pdf/fpdf"
)

// buildPDF renders the same breakdown as the spreadsheet in a printable A4
// layout.
func buildPDF(b *domain.Booking) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "KartingRM Payment Voucher", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Booking #%d", b.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s, %s - %s", b.Date, b.StartTime, b.EndTime), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Tier: %d laps, %d people", b.Tier, b.NumOfPeople), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{50, 26, 28, 30, 16, 30}
	pdf.SetFont("Helvetica", "B", 10)
	for i, col := range columns {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, a := range b.Attendees {
		cells := []string{
			a.Name,
			fmt.Sprintf("%d", b.BasePrice),
			a.DiscountType,
			fmt.Sprintf("%d", a.Price),
			fmt.Sprintf("%d", b.TaxPct),
			fmt.Sprintf("%d", a.PriceWithTax),
		}
		for i, cell := range cells {
			align := "R"
			if i == 0 || i == 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 8, "TOTAL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[5], 8, fmt.Sprintf("%d", b.TotalAmount), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
