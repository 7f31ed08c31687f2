package domain

import (
	"context"
	"time"
)

type Customer struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FullName         string    `gorm:"size:255;not null" json:"full_name"`
	PhoneNumber      string    `gorm:"size:20;not null" json:"phone_number"`
	TIN              string    `gorm:"size:50" json:"tin"`
	VATRegNo         string    `gorm:"size:50" json:"vat_reg_no"`
	RegistrationDate Date      `gorm:"type:date;not null" json:"registration_date"`
	Address          string    `gorm:"type:text;not null" json:"address"`
	Status           bool      `gorm:"not null;default:true" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CustomerInput is the wire shape of a create or update request. The date
// travels as a plain string and status as a pointer so a missing field
// surfaces as a validation error instead of a silent zero value.
type CustomerInput struct {
	FullName         string `json:"full_name"`
	PhoneNumber      string `json:"phone_number"`
	TIN              string `json:"tin"`
	VATRegNo         string `json:"vat_reg_no"`
	RegistrationDate string `json:"registration_date"`
	Address          string `json:"address"`
	Status           *bool  `json:"status"`
}

type CustomerFilter struct {
	Search string

	// per-column substring filters, AND-combined with Search and each other
	FullName         string
	PhoneNumber      string
	TIN              string
	VATRegNo         string
	RegistrationDate string
	Address          string
	Status           string

	Page    int
	PerPage int
}

type PageMeta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
}

func NewPageMeta(total int64, page, perPage int) PageMeta {
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	return PageMeta{Total: total, CurrentPage: page, PerPage: perPage, LastPage: last}
}

type CustomerRepo interface {
	List(ctx context.Context, f CustomerFilter) ([]Customer, int64, error)
	FindByID(ctx context.Context, id uint) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) error
}
