package timesession

import (
	"context"
	"database/sql"
	"time"

	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/dbtx"
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=timesession_repo.go -destination=mock/timesession_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateSession(ctx context.Context, s *Session) error
	FindOpenSession(ctx context.Context, orgID, memberID string) (*Session, error)
	FindSession(ctx context.Context, orgID, id string) (*Session, error)
	CloseSession(ctx context.Context, s *Session) error
	ListSessions(ctx context.Context, orgID, memberID string, from, to time.Time) ([]Session, error)

	CreateBreak(ctx context.Context, b *Break) error
	FindOpenBreak(ctx context.Context, sessionID string) (*Break, error)
	CloseBreak(ctx context.Context, b *Break) error
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

// conn locks selected rows when running inside a transaction so that
// check-then-write sequences on the same member serialize.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := dbtx.Conn(ctx, r.db, r.tx)
	if r.tx != nil {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (r *repository) CreateSession(ctx context.Context, s *Session) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(s).Error
}

func (r *repository) FindOpenSession(ctx context.Context, orgID, memberID string) (*Session, error) {
	var s Session
	err := r.conn(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("member_id = ?", memberID).
		Where("end_time IS NULL").
		First(&s).Error
	return &s, err
}

func (r *repository) FindSession(ctx context.Context, orgID, id string) (*Session, error) {
	var s Session
	err := r.conn(ctx).
		Scopes(tenant.Scope(orgID)).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) CloseSession(ctx context.Context, s *Session) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&Session{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"end_time":      s.EndTime,
			"total_minutes": s.TotalMinutes,
			"updated_at":    time.Now().UTC(),
		}).Error
}

// ListSessions returns sessions whose civil date falls in [from, to] with their
// breaks. An empty memberID lists every member of the org.
func (r *repository) ListSessions(ctx context.Context, orgID, memberID string, from, to time.Time) ([]Session, error) {
	var rows []Session
	q := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Breaks", func(db *gorm.DB) *gorm.DB { return db.Order("start_time ASC") }).
		Scopes(tenant.Scope(orgID)).
		Where("session_date BETWEEN ? AND ?", civildate.Format(from), civildate.Format(to))
	if memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}
	err := q.Order("member_id ASC, start_time ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) CreateBreak(ctx context.Context, b *Break) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(b).Error
}

func (r *repository) FindOpenBreak(ctx context.Context, sessionID string) (*Break, error) {
	var b Break
	err := r.conn(ctx).
		Where("time_session_id = ?", sessionID).
		Where("end_time IS NULL").
		First(&b).Error
	return &b, err
}

func (r *repository) CloseBreak(ctx context.Context, b *Break) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Model(&Break{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"end_time":      b.EndTime,
			"total_minutes": b.TotalMinutes,
			"updated_at":    time.Now().UTC(),
		}).Error
}
