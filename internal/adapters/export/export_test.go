package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/phenrril/customerbook/internal/domain"
)

func sampleCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: 1, FullName: "Juan Dela Cruz", PhoneNumber: "0912345678", TIN: "100-200", VATRegNo: "VAT1001", RegistrationDate: domain.NewDate(2025, time.January, 1), Address: "Manila", Status: true},
		{ID: 2, FullName: "Maria Santos", PhoneNumber: "0998765432", TIN: "", VATRegNo: "", RegistrationDate: domain.NewDate(2025, time.February, 14), Address: "Cebu City", Status: false},
	}
}

func TestWorkbook(t *testing.T) {
	f, err := Workbook(sampleCustomers())
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	check := map[string]string{
		"A1": "ID",
		"B1": "Full Name",
		"H1": "Status",
		"B2": "Juan Dela Cruz",
		"C2": "0912345678",
		"F2": "2025-01-01",
		"H2": "enabled",
		"B3": "Maria Santos",
		"H3": "disabled",
	}
	for cell, want := range check {
		got, err := f.GetCellValue(sheetName, cell)
		if err != nil {
			t.Fatalf("cell %s: %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s: got %q want %q", cell, got, want)
		}
	}
}

func TestWorkbookEmpty(t *testing.T) {
	f, err := Workbook(nil)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	got, err := f.GetCellValue(sheetName, "A1")
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if got != "ID" {
		t.Fatalf("header row missing: %q", got)
	}
}

func TestPDF(t *testing.T) {
	buf, err := PDF(sampleCustomers())
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if buf.Len() < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestPDFEmpty(t *testing.T) {
	buf, err := PDF(nil)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestClip(t *testing.T) {
	if got := clip("short", 10); got != "short" {
		t.Fatalf("clip short: %q", got)
	}
	long := "a very long address line that will not fit in the column"
	got := clip(long, 10)
	if len([]rune(got)) != 12 { // 9 runes + "..."
		t.Fatalf("clip long: %q", got)
	}
}
