// Package validate is the single authoritative gate for customer input.
// The admin forms mirror these rules in the browser for immediate feedback,
// but nothing reaches the store without passing this package first.
package validate

import (
	"fmt"
	"strings"

	"github.com/phenrril/customerbook/internal/domain"
)

type Violations map[string][]string

func (v Violations) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

func (v Violations) Empty() bool { return len(v) == 0 }

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
}

func MaxLen(field, value string, max int, v Violations) {
	if len(value) > max {
		v.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, max))
	}
}

// NormalizePhone strips everything that is not a digit.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckPhone returns an empty string when digits is a valid local mobile
// number: exactly 10 digits starting with "09".
func CheckPhone(digits string) string {
	if !strings.HasPrefix(digits, "09") {
		return "The phone_number must start with 09."
	}
	if len(digits) != 10 {
		return "The phone_number must be exactly 10 digits."
	}
	return ""
}

// NormalizeVAT strips one leading "VAT" (any case) and prepends exactly one.
// Empty input stays empty, the field is optional.
func NormalizeVAT(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if len(s) >= 3 && strings.EqualFold(s[:3], "VAT") {
		s = s[3:]
	}
	return "VAT" + s
}

// Customer validates in and, when clean, fills c with the normalized
// values. The returned Violations is empty on success.
func Customer(in domain.CustomerInput, c *domain.Customer) Violations {
	v := Violations{}

	Required("full_name", in.FullName, v)
	MaxLen("full_name", in.FullName, 255, v)

	phone := NormalizePhone(in.PhoneNumber)
	Required("phone_number", phone, v)
	MaxLen("phone_number", phone, 20, v)
	if phone != "" {
		if msg := CheckPhone(phone); msg != "" {
			v.Add("phone_number", msg)
		}
	}

	MaxLen("tin", in.TIN, 50, v)

	vat := NormalizeVAT(in.VATRegNo)
	MaxLen("vat_reg_no", vat, 50, v)

	Required("registration_date", in.RegistrationDate, v)
	var regDate domain.Date
	if strings.TrimSpace(in.RegistrationDate) != "" {
		d, err := domain.ParseDate(in.RegistrationDate)
		if err != nil {
			v.Add("registration_date", "The registration_date is not a valid date.")
		} else {
			regDate = d
		}
	}

	Required("address", in.Address, v)

	if in.Status == nil {
		v.Add("status", "The status field is required.")
	}

	if !v.Empty() {
		return v
	}

	c.FullName = strings.TrimSpace(in.FullName)
	c.PhoneNumber = phone
	c.TIN = strings.TrimSpace(in.TIN)
	c.VATRegNo = vat
	c.RegistrationDate = regDate
	c.Address = strings.TrimSpace(in.Address)
	c.Status = *in.Status
	return v
}
