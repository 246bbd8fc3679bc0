package dailysummary

import (
	"context"
	"time"

	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(ctx context.Context, row *DailySummary) error
	ListRange(ctx context.Context, orgID, memberID string, from, to time.Time) ([]DailySummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert overwrites the row for (org, member, date).
func (r *repository) Upsert(ctx context.Context, row *DailySummary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "org_id"}, {Name: "member_id"}, {Name: "summary_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"worked_minutes", "extra_minutes", "short_minutes",
				"scheduled_minutes", "status", "computed_at",
			}),
		}).
		Create(row).Error
}

// ListRange returns persisted summaries in [from, to]; an empty memberID
// covers the whole org.
func (r *repository) ListRange(ctx context.Context, orgID, memberID string, from, to time.Time) ([]DailySummary, error) {
	var rows []DailySummary
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("summary_date BETWEEN ? AND ?", civildate.Format(from), civildate.Format(to))
	if memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}
	err := q.Order("member_id ASC, summary_date ASC").Find(&rows).Error
	return rows, err
}
