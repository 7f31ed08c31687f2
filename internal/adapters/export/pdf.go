package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/phenrril/customerbook/internal/domain"
)

// ZapfDingbats codes for the status glyphs, check mark and ballot X.
const (
	glyphCheck = "3"
	glyphCross = "7"
)

// PDF renders the fixed column subset of the customer list as an A4 table.
func PDF(customers []domain.Customer) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 15.0
	marginY := 15.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, "Customer List")
	pdf.Ln(14)

	headers := []string{"Full Name", "Phone Number", "TIN", "VAT Reg No", "Address", "Status"}
	colWidths := []float64{40, 25, 25, 28, 50, 12}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	for _, c := range customers {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(colWidths[0], 7, clip(c.FullName, 26), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, c.PhoneNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, clip(c.TIN, 16), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, clip(c.VATRegNo, 18), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, clip(c.Address, 33), "1", 0, "L", false, 0, "")

		glyph := glyphCross
		if c.Status {
			glyph = glyphCheck
		}
		pdf.SetFont("ZapfDingbats", "", 9)
		pdf.CellFormat(colWidths[5], 7, glyph, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
