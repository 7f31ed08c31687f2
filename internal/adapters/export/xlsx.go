// Package export renders a loaded set of customer records as downloadable
// documents: an xlsx workbook and a PDF table.
package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/customerbook/internal/domain"
)

const sheetName = "Customers"

var workbookHeaders = []string{
	"ID", "Full Name", "Phone Number", "TIN", "VAT Reg No",
	"Registration Date", "Address", "Status",
}

// Workbook builds a single-sheet workbook with one row per record.
func Workbook(customers []domain.Customer) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, h := range workbookHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for n, c := range customers {
		values := []any{
			c.ID,
			c.FullName,
			c.PhoneNumber,
			c.TIN,
			c.VATRegNo,
			c.RegistrationDate.String(),
			c.Address,
			string(domain.StatusFromBool(c.Status)),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, n+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
