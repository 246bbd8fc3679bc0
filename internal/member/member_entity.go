package member

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Member struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	FullName            string          `gorm:"type:varchar(150);not null"`
	Email               string          `gorm:"type:varchar(255);not null"`
	Status              string          `gorm:"type:varchar(20);not null;default:active"`
	ManagerID           *uuid.UUID      `gorm:"type:uuid"`
	BaseSalary          decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	WorkingHoursPerDay  int             `gorm:"not null"`
	WorkingDaysPerMonth int             `gorm:"not null"`
	WorkingWeekdays     string          `gorm:"type:varchar(20);not null;default:'1,2,3,4,5'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (Member) TableName() string {
	return "members"
}

func (m Member) IsActive() bool {
	return m.Status == StatusActive
}

// WorksOn reports whether date's weekday is in the member's working set.
// Weekdays are stored ISO style, 1 = Monday through 7 = Sunday. An empty set
// means every day is a working day.
func (m Member) WorksOn(date time.Time) bool {
	set := strings.TrimSpace(m.WorkingWeekdays)
	if set == "" {
		return true
	}
	iso := int(date.Weekday())
	if iso == 0 {
		iso = 7
	}
	for _, part := range strings.Split(set, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && n == iso {
			return true
		}
	}
	return false
}

// ReportingEdge is one member -> manager link in an org's reporting graph.
type ReportingEdge struct {
	MemberID  string
	ManagerID string
}
