package tenant

import "gorm.io/gorm"

func Scope(orgID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("org_id = ?", orgID)
	}
}

// TableScope qualifies the org column with a table name or alias for joins.
func TableScope(table, orgID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".org_id = ?", orgID)
	}
}
