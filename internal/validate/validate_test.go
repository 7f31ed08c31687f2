package validate

import (
	"strings"
	"testing"

	"github.com/phenrril/customerbook/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func validInput() domain.CustomerInput {
	return domain.CustomerInput{
		FullName:         "Juan Dela Cruz",
		PhoneNumber:      "0912345678",
		TIN:              "123-456-789",
		VATRegNo:         "VAT1001",
		RegistrationDate: "2025-01-01",
		Address:          "Manila",
		Status:           boolPtr(true),
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("abc0912345678"); got != "0912345678" {
		t.Fatalf("expected 0912345678 got %q", got)
	}
	if got := NormalizePhone("(09) 123-456 78"); got != "0912345678" {
		t.Fatalf("expected 0912345678 got %q", got)
	}
}

func TestCheckPhone(t *testing.T) {
	if msg := CheckPhone("0912345678"); msg != "" {
		t.Fatalf("valid number rejected: %s", msg)
	}
	if msg := CheckPhone("081234"); msg == "" || !strings.Contains(msg, "09") {
		t.Fatalf("expected start-with-09 error, got %q", msg)
	}
	if msg := CheckPhone("091234567"); msg == "" {
		t.Fatal("expected length error for 9 digits")
	}
	if msg := CheckPhone("09123456789"); msg == "" {
		t.Fatal("expected length error for 11 digits")
	}
}

func TestNormalizeVAT(t *testing.T) {
	cases := map[string]string{
		"123":     "VAT123",
		"VAT1234": "VAT1234",
		"vat55":   "VAT55",
		"":        "",
	}
	for in, want := range cases {
		if got := NormalizeVAT(in); got != want {
			t.Errorf("NormalizeVAT(%q) = %q, want %q", in, got, want)
		}
	}
	// typing "VAT123" then "4" arrives as "VAT1234", no doubled prefix
	if got := NormalizeVAT(NormalizeVAT("VAT123") + "4"); got != "VAT1234" {
		t.Fatalf("expected VAT1234 got %q", got)
	}
}

func TestCustomerValid(t *testing.T) {
	var c domain.Customer
	v := Customer(validInput(), &c)
	if !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	if c.FullName != "Juan Dela Cruz" || c.PhoneNumber != "0912345678" {
		t.Fatalf("normalized values not applied: %+v", c)
	}
	if c.RegistrationDate.String() != "2025-01-01" {
		t.Fatalf("bad date: %s", c.RegistrationDate)
	}
	if !c.Status {
		t.Fatal("status not applied")
	}
}

func TestCustomerNormalizesInput(t *testing.T) {
	in := validInput()
	in.PhoneNumber = "abc0912345678"
	in.VATRegNo = "vat123"
	var c domain.Customer
	if v := Customer(in, &c); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	if c.PhoneNumber != "0912345678" {
		t.Fatalf("phone not normalized: %q", c.PhoneNumber)
	}
	if c.VATRegNo != "VAT123" {
		t.Fatalf("vat not normalized: %q", c.VATRegNo)
	}
}

func TestCustomerRequiredFields(t *testing.T) {
	var c domain.Customer
	v := Customer(domain.CustomerInput{}, &c)
	for _, field := range []string{"full_name", "phone_number", "registration_date", "address", "status"} {
		if len(v[field]) == 0 {
			t.Errorf("expected violation for %s", field)
		}
	}
	if len(v["tin"]) != 0 || len(v["vat_reg_no"]) != 0 {
		t.Fatalf("optional fields must not be required: %v", v)
	}
}

func TestCustomerMaxLengths(t *testing.T) {
	in := validInput()
	in.FullName = strings.Repeat("a", 256)
	in.TIN = strings.Repeat("1", 51)
	var c domain.Customer
	v := Customer(in, &c)
	if len(v["full_name"]) == 0 {
		t.Error("expected full_name length violation")
	}
	if len(v["tin"]) == 0 {
		t.Error("expected tin length violation")
	}
}

func TestCustomerBadDate(t *testing.T) {
	in := validInput()
	in.RegistrationDate = "01/02/2025"
	var c domain.Customer
	if v := Customer(in, &c); len(v["registration_date"]) == 0 {
		t.Fatal("expected registration_date violation")
	}
}

func TestCustomerRejectsBadPhone(t *testing.T) {
	in := validInput()
	in.PhoneNumber = "081234"
	var c domain.Customer
	if v := Customer(in, &c); len(v["phone_number"]) == 0 {
		t.Fatal("expected phone_number violation")
	}
}
