package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	KindFine       = "fine"
	KindAdjustment = "adjustment"
)

// Entry is an immutable fine or adjustment. Fines are stored positive and
// reduce pay; adjustments carry their own sign.
type Entry struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID     uuid.UUID       `gorm:"column:org_id;type:uuid;not null"`
	MemberID  uuid.UUID       `gorm:"column:member_id;type:uuid;not null"`
	Kind      string          `gorm:"column:kind;type:varchar(20);not null"`
	EntryDate time.Time       `gorm:"column:entry_date;type:date;not null"`
	Reason    string          `gorm:"column:reason;not null"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(20,2);not null"`
	Currency  string          `gorm:"column:currency;type:char(3);not null"`
	CreatedBy uuid.UUID       `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time       `gorm:"column:created_at"`
}

func (Entry) TableName() string {
	return "payroll_ledger_entries"
}

// Totals are one member's summed ledger amounts over a date range.
type Totals struct {
	Fines       decimal.Decimal
	Adjustments decimal.Decimal
}
