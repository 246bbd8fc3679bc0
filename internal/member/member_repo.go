package member

import (
	"context"
	"database/sql"

	"go-workforce/internal/shared/dbtx"
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=member_repo.go -destination=mock/member_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *Member) error
	FindByID(ctx context.Context, id string) (*Member, error)
	ListActive(ctx context.Context, orgID string) ([]Member, error)
	ReportingEdges(ctx context.Context, orgID string) ([]ReportingEdge, error)
	LockReportingGraph(ctx context.Context, orgID string) error
	UpdateManager(ctx context.Context, orgID, memberID string, managerID *string) error
	UpdateStatus(ctx context.Context, orgID, memberID, status string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	return r.conn(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Member, error) {
	var m Member
	err := r.conn(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) ListActive(ctx context.Context, orgID string) ([]Member, error) {
	var rows []Member
	err := r.conn(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("status = ?", StatusActive).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ReportingEdges(ctx context.Context, orgID string) ([]ReportingEdge, error) {
	var edges []ReportingEdge
	err := r.conn(ctx).
		Table("members").
		Select("id AS member_id, manager_id").
		Where("org_id = ?", orgID).
		Where("manager_id IS NOT NULL").
		Where("deleted_at IS NULL").
		Scan(&edges).Error
	return edges, err
}

// LockReportingGraph serializes manager changes within an org for the rest of
// the surrounding transaction.
func (r *repository) LockReportingGraph(ctx context.Context, orgID string) error {
	return r.conn(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "reporting:"+orgID).Error
}

func (r *repository) UpdateManager(ctx context.Context, orgID, memberID string, managerID *string) error {
	return r.conn(ctx).
		Model(&Member{}).
		Scopes(tenant.Scope(orgID)).
		Where("id = ?", memberID).
		Update("manager_id", managerID).Error
}

func (r *repository) UpdateStatus(ctx context.Context, orgID, memberID, status string) error {
	return r.conn(ctx).
		Model(&Member{}).
		Scopes(tenant.Scope(orgID)).
		Where("id = ?", memberID).
		Update("status", status).Error
}
