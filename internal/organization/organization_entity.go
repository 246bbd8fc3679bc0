package organization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string         `gorm:"type:varchar(150);not null"`
	Timezone       string         `gorm:"type:varchar(64);not null;default:UTC"`
	LedgerCurrency string         `gorm:"type:char(3);not null;default:USD"`
	IsActive       bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time      `gorm:"not null;default:now()"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Organization) TableName() string {
	return "organizations"
}

// Location resolves the org timezone, falling back to UTC for unknown zones.
func (o Organization) Location() *time.Location {
	if o.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index"`
	HolidayDate time.Time `gorm:"type:date;not null"`
	Name        string    `gorm:"type:varchar(120);not null"`
	CreatedAt   time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
