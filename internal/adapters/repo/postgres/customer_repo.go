package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/phenrril/customerbook/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// statusLabel turns the boolean column into its boundary labels so that
// text search against status has defined semantics on any backend.
const statusLabel = "CASE WHEN status THEN 'enabled' ELSE 'disabled' END"

func like(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

func (r *CustomerRepo) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Customer{})

	if strings.TrimSpace(f.Search) != "" {
		lk := like(f.Search)
		q = q.Where(
			"LOWER(full_name) LIKE ? OR LOWER(phone_number) LIKE ? OR LOWER(tin) LIKE ? OR LOWER(vat_reg_no) LIKE ?"+
				" OR CAST(registration_date AS TEXT) LIKE ? OR LOWER(address) LIKE ? OR "+statusLabel+" LIKE ?",
			lk, lk, lk, lk, lk, lk, lk)
	}
	if f.FullName != "" {
		q = q.Where("LOWER(full_name) LIKE ?", like(f.FullName))
	}
	if f.PhoneNumber != "" {
		q = q.Where("LOWER(phone_number) LIKE ?", like(f.PhoneNumber))
	}
	if f.TIN != "" {
		q = q.Where("LOWER(tin) LIKE ?", like(f.TIN))
	}
	if f.VATRegNo != "" {
		q = q.Where("LOWER(vat_reg_no) LIKE ?", like(f.VATRegNo))
	}
	if f.RegistrationDate != "" {
		q = q.Where("CAST(registration_date AS TEXT) LIKE ?", like(f.RegistrationDate))
	}
	if f.Address != "" {
		q = q.Where("LOWER(address) LIKE ?", like(f.Address))
	}
	if f.Status != "" {
		q = q.Where(statusLabel+" LIKE ?", like(f.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = 10
	}
	offset := (f.Page - 1) * f.PerPage

	var list []domain.Customer
	if err := q.Order("id asc").Offset(offset).Limit(f.PerPage).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *CustomerRepo) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
