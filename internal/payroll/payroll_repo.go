package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/dbtx"
	"go-workforce/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreatePeriod(ctx context.Context, p *Period) error
	FindPeriod(ctx context.Context, orgID, id string) (*Period, error)
	ListPeriods(ctx context.Context, orgID string) ([]Period, error)
	HasOverlap(ctx context.Context, orgID string, start, end time.Time) (bool, error)
	UpdatePeriod(ctx context.Context, p *Period) error

	ReplaceLines(ctx context.Context, periodID uuid.UUID, lines []Line) error
	ListLines(ctx context.Context, periodID, memberID string) ([]Line, error)
	ApproveLines(ctx context.Context, periodID string, memberIDs []string, approver uuid.UUID, at time.Time) (int64, error)
	CountLines(ctx context.Context, periodID string, approved bool) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) CreatePeriod(ctx context.Context, p *Period) error {
	return r.conn(ctx).Create(p).Error
}

// FindPeriod locks the period row when called inside a transaction so state
// transitions on one period serialize.
func (r *repository) FindPeriod(ctx context.Context, orgID, id string) (*Period, error) {
	var p Period
	q := r.conn(ctx)
	if r.tx != nil {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.Scopes(tenant.Scope(orgID)).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) ListPeriods(ctx context.Context, orgID string) ([]Period, error) {
	var rows []Period
	err := r.conn(ctx).
		Scopes(tenant.Scope(orgID)).
		Order("period_start DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) HasOverlap(ctx context.Context, orgID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Period{}).
		Scopes(tenant.Scope(orgID)).
		Where("NOT (period_end < ? OR period_start > ?)", civildate.Format(start), civildate.Format(end)).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdatePeriod(ctx context.Context, p *Period) error {
	return r.conn(ctx).Save(p).Error
}

func (r *repository) ReplaceLines(ctx context.Context, periodID uuid.UUID, lines []Line) error {
	db := r.conn(ctx)
	if err := db.Where("payroll_period_id = ?", periodID).Delete(&Line{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	return db.Omit("Member").CreateInBatches(lines, 200).Error
}

func (r *repository) ListLines(ctx context.Context, periodID, memberID string) ([]Line, error) {
	var rows []Line
	q := r.conn(ctx).
		Preload("Member").
		Where("payroll_period_id = ?", periodID)
	if memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}
	err := q.Order("member_id ASC").Find(&rows).Error
	return rows, err
}

// ApproveLines marks unapproved lines approved; nil memberIDs means every
// line in the period.
func (r *repository) ApproveLines(ctx context.Context, periodID string, memberIDs []string, approver uuid.UUID, at time.Time) (int64, error) {
	q := r.conn(ctx).
		Model(&Line{}).
		Where("payroll_period_id = ?", periodID).
		Where("approved = ?", false)
	if memberIDs != nil {
		q = q.Where("member_id IN ?", memberIDs)
	}
	res := q.Updates(map[string]any{
		"approved":    true,
		"approved_by": approver,
		"approved_at": at,
	})
	return res.RowsAffected, res.Error
}

func (r *repository) CountLines(ctx context.Context, periodID string, approved bool) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Line{}).
		Where("payroll_period_id = ?", periodID).
		Where("approved = ?", approved).
		Count(&count).Error
	return count, err
}
