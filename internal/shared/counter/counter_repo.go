// Package counter issues per-org human-readable document codes.
package counter

import (
	"context"
	"database/sql"
	"fmt"

	"go-workforce/internal/shared/dbtx"

	"gorm.io/gorm"
)

// Sequence names one per-org series and how its values render.
type Sequence struct {
	Name   string
	Prefix string
	Width  int
}

var PayrollPeriod = Sequence{Name: "payroll_period", Prefix: "PAY", Width: 6}

func (s Sequence) Format(n int64) string {
	return fmt.Sprintf("%s-%0*d", s.Prefix, s.Width, n)
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// Next bumps the org's sequence and returns the formatted code. Inside a
	// transaction the row lock serializes concurrent callers until commit.
	Next(ctx context.Context, orgID string, seq Sequence) (string, error)
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

const bumpSQL = `INSERT INTO org_counters AS oc (org_id, counter_type, last_value, updated_at)
VALUES (?, ?, 1, now())
ON CONFLICT (org_id, counter_type)
DO UPDATE SET last_value = oc.last_value + 1, updated_at = now()
RETURNING last_value`

func (r *repository) Next(ctx context.Context, orgID string, seq Sequence) (string, error) {
	var n int64
	if err := dbtx.Conn(ctx, r.db, r.tx).Raw(bumpSQL, orgID, seq.Name).Scan(&n).Error; err != nil {
		return "", fmt.Errorf("bump %s counter: %w", seq.Name, err)
	}
	return seq.Format(n), nil
}
