package ledger

import (
	"context"
	"time"

	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListRange(ctx context.Context, orgID, memberID string, from, to time.Time) ([]Entry, error)
	TotalsByMember(ctx context.Context, orgID string, from, to time.Time) (map[uuid.UUID]Totals, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListRange(ctx context.Context, orgID, memberID string, from, to time.Time) ([]Entry, error) {
	var rows []Entry
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("entry_date BETWEEN ? AND ?", civildate.Format(from), civildate.Format(to))
	if memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}
	err := q.Order("entry_date ASC, created_at ASC, id ASC").Find(&rows).Error
	return rows, err
}

type totalsRow struct {
	MemberID uuid.UUID
	Kind     string
	Total    decimal.Decimal
}

func (r *repository) TotalsByMember(ctx context.Context, orgID string, from, to time.Time) (map[uuid.UUID]Totals, error) {
	var rows []totalsRow
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Select("member_id, kind, COALESCE(SUM(amount), 0) AS total").
		Scopes(tenant.Scope(orgID)).
		Where("entry_date BETWEEN ? AND ?", civildate.Format(from), civildate.Format(to)).
		Group("member_id, kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]Totals)
	for _, row := range rows {
		t := out[row.MemberID]
		switch row.Kind {
		case KindFine:
			t.Fines = t.Fines.Add(row.Total)
		case KindAdjustment:
			t.Adjustments = t.Adjustments.Add(row.Total)
		}
		out[row.MemberID] = t
	}
	return out, nil
}
