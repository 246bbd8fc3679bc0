package rbac

import (
	"errors"
	"sync"

	"go-workforce/internal/domain"
	"go-workforce/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrRoleNotFound = apperror.New(apperror.CodeNotFound, "role not found", 404)

type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	AssignRole(orgID, memberID, roleName string) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) loadOrgPolicyUnlocked(orgID string) error {
	s.enforcer.ClearPolicy()

	p, err := s.repo.Policy(orgID)
	if err != nil {
		return err
	}
	for _, b := range p.Bindings {
		if _, err := s.enforcer.AddGroupingPolicy(b.MemberID, b.RoleID, orgID); err != nil {
			return err
		}
	}
	for _, g := range p.Grants {
		if _, err := s.enforcer.AddPolicy(g.RoleID, orgID, g.Resource, g.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("org_id", orgID),
		zap.Int("bindings", len(p.Bindings)),
		zap.Int("grants", len(p.Grants)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadOrgPolicyUnlocked(req.OrgID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.MemberID, req.OrgID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("member_id", req.MemberID),
			zap.String("org_id", req.OrgID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("member_id", req.MemberID),
		zap.String("org_id", req.OrgID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) AssignRole(orgID, memberID, roleName string) error {
	role, err := s.repo.RoleByName(orgID, roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}
	return s.repo.AssignRole(memberID, role.ID)
}
