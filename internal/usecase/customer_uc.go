package usecase

import (
	"context"

	"github.com/phenrril/customerbook/internal/domain"
	"github.com/phenrril/customerbook/internal/validate"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

func (uc *CustomerUC) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, domain.PageMeta, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}
	list, total, err := uc.Customers.List(ctx, f)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return list, domain.NewPageMeta(total, f.Page, f.PerPage), nil
}

func (uc *CustomerUC) Get(ctx context.Context, id uint) (*domain.Customer, error) {
	return uc.Customers.FindByID(ctx, id)
}

func (uc *CustomerUC) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	var c domain.Customer
	if v := validate.Customer(in, &c); !v.Empty() {
		return nil, &domain.ValidationError{Fields: v}
	}
	if err := uc.Customers.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update replaces the editable fields of an existing record. Existence
// is checked before validation, a bad payload against a missing id is a 404.
func (uc *CustomerUC) Update(ctx context.Context, id uint, in domain.CustomerInput) (*domain.Customer, error) {
	existing, err := uc.Customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var c domain.Customer
	if v := validate.Customer(in, &c); !v.Empty() {
		return nil, &domain.ValidationError{Fields: v}
	}
	existing.FullName = c.FullName
	existing.PhoneNumber = c.PhoneNumber
	existing.TIN = c.TIN
	existing.VATRegNo = c.VATRegNo
	existing.RegistrationDate = c.RegistrationDate
	existing.Address = c.Address
	existing.Status = c.Status
	if err := uc.Customers.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *CustomerUC) Delete(ctx context.Context, id uint) error {
	return uc.Customers.Delete(ctx, id)
}
