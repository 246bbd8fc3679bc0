package shift

import (
	"context"
	"database/sql"
	"time"

	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/dbtx"
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateShift(ctx context.Context, s *Shift) error
	UpdateShift(ctx context.Context, s *Shift) error
	FindShift(ctx context.Context, orgID, id string) (*Shift, error)
	ListShifts(ctx context.Context, orgID string) ([]Shift, error)

	ListAssignments(ctx context.Context, orgID, memberID string) ([]Assignment, error)
	LockMemberAssignments(ctx context.Context, orgID, memberID string) error
	CreateAssignment(ctx context.Context, a *Assignment) error
	EndAssignment(ctx context.Context, id string, effectiveTo time.Time) error

	CreateBreakRule(ctx context.Context, r *BreakRule) error
	FindBreakRule(ctx context.Context, orgID, id string) (*BreakRule, error)
	ListBreakRules(ctx context.Context, orgID string) ([]BreakRule, error)
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

func (r *repository) CreateShift(ctx context.Context, s *Shift) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) UpdateShift(ctx context.Context, s *Shift) error {
	return r.conn(ctx).Save(s).Error
}

func (r *repository) FindShift(ctx context.Context, orgID, id string) (*Shift, error) {
	var s Shift
	err := r.conn(ctx).Scopes(tenant.Scope(orgID)).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) ListShifts(ctx context.Context, orgID string) ([]Shift, error) {
	var rows []Shift
	err := r.conn(ctx).Scopes(tenant.Scope(orgID)).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListAssignments(ctx context.Context, orgID, memberID string) ([]Assignment, error) {
	var rows []Assignment
	err := r.conn(ctx).
		Preload("Shift").
		Scopes(tenant.Scope(orgID)).
		Where("member_id = ?", memberID).
		Order("effective_from DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) LockMemberAssignments(ctx context.Context, orgID, memberID string) error {
	return r.conn(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "assign:"+orgID+":"+memberID).Error
}

func (r *repository) CreateAssignment(ctx context.Context, a *Assignment) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) EndAssignment(ctx context.Context, id string, effectiveTo time.Time) error {
	return r.conn(ctx).
		Model(&Assignment{}).
		Where("id = ?", id).
		Update("effective_to", civildate.Format(effectiveTo)).Error
}

func (r *repository) CreateBreakRule(ctx context.Context, br *BreakRule) error {
	return r.conn(ctx).Create(br).Error
}

func (r *repository) FindBreakRule(ctx context.Context, orgID, id string) (*BreakRule, error) {
	var br BreakRule
	err := r.conn(ctx).Scopes(tenant.Scope(orgID)).First(&br, "id = ?", id).Error
	return &br, err
}

func (r *repository) ListBreakRules(ctx context.Context, orgID string) ([]BreakRule, error) {
	var rows []BreakRule
	err := r.conn(ctx).Scopes(tenant.Scope(orgID)).Order("name ASC").Find(&rows).Error
	return rows, err
}
