package organization

import (
	"context"
	"time"

	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, orgID string) (*Organization, error)
	FindAllActive(ctx context.Context) ([]Organization, error)
	IsHoliday(ctx context.Context, orgID string, date time.Time) (bool, error)
	CreateHoliday(ctx context.Context, h *Holiday) error
	ListHolidays(ctx context.Context, orgID string, from, to time.Time) ([]Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, orgID string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", orgID).Error
	return &org, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&orgs).Error
	return orgs, err
}

func (r *repository) IsHoliday(ctx context.Context, orgID string, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Holiday{}).
		Scopes(tenant.Scope(orgID)).
		Where("holiday_date = ?", civildate.Format(date)).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateHoliday(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) ListHolidays(ctx context.Context, orgID string, from, to time.Time) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("holiday_date BETWEEN ? AND ?", civildate.Format(from), civildate.Format(to)).
		Order("holiday_date ASC").
		Find(&rows).Error
	return rows, err
}
