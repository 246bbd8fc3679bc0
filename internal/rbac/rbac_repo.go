package rbac

import (
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	// Policy returns the grouping and permission rows of one org.
	Policy(orgID string) (Policy, error)
	RoleByName(orgID, name string) (*Role, error)
	AssignRole(memberID, roleID string) error
}

type Role struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrgID       string `gorm:"type:uuid"`
	Name        string
	Description string
}

func (Role) TableName() string { return "roles" }

// Grant gives a role one action on one resource.
type Grant struct {
	RoleID   string
	Resource string
	Action   string
}

// Binding puts a member in a role.
type Binding struct {
	MemberID string
	RoleID   string
}

type Policy struct {
	Bindings []Binding
	Grants   []Grant
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Policy(orgID string) (Policy, error) {
	var p Policy
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("member_roles mr").
			Select("mr.member_id, mr.role_id").
			Joins("JOIN roles ro ON ro.id = mr.role_id").
			Scopes(tenant.TableScope("ro", orgID)).
			Scan(&p.Bindings).Error; err != nil {
			return err
		}
		return tx.Table("role_permissions rp").
			Select("rp.role_id, pe.resource, pe.action").
			Joins("JOIN roles ro ON ro.id = rp.role_id").
			Joins("JOIN permissions pe ON pe.id = rp.permission_id").
			Scopes(tenant.TableScope("ro", orgID)).
			Scan(&p.Grants).Error
	})
	return p, err
}

func (r *repository) RoleByName(orgID, name string) (*Role, error) {
	var role Role
	if err := r.db.Scopes(tenant.Scope(orgID)).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) AssignRole(memberID, roleID string) error {
	return r.db.Exec(
		"INSERT INTO member_roles (member_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		memberID, roleID,
	).Error
}
