package member

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strconv"
	"strings"

	"go-workforce/internal/audit"
	membererrors "go-workforce/internal/member/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=member_service.go -destination=mock/member_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID string, req CreateMemberRequest) (MemberResponse, error)
	Get(ctx context.Context, orgID, memberID string) (Member, error)
	ListActive(ctx context.Context, orgID string) ([]Member, error)
	SetManager(ctx context.Context, orgID, actorID, memberID string, managerID *string) error
	SetStatus(ctx context.Context, orgID, actorID, memberID, status string) error
	ListTeamMemberIDs(ctx context.Context, orgID, managerID string) ([]string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  audit.Sink
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, sink audit.Sink, logger ...*zap.Logger) Service {
	l := zap.L().Named("member.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("member.service")
	}
	if sink == nil {
		sink = audit.NewZapSink(l)
	}
	return &service{db: db, repo: repo, audit: sink, logger: l}
}

func (s *service) Create(ctx context.Context, orgID string, req CreateMemberRequest) (MemberResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return MemberResponse{}, apperror.InvalidField("org_id")
	}
	salary, err := decimal.NewFromString(req.BaseSalary)
	if err != nil || salary.IsNegative() {
		return MemberResponse{}, membererrors.ErrInvalidSalary
	}
	weekdays, err := formatWeekdays(req.WorkingWeekdays)
	if err != nil {
		return MemberResponse{}, err
	}

	m := &Member{
		ID:                  uuid.New(),
		OrgID:               orgUUID,
		FullName:            strings.TrimSpace(req.FullName),
		Email:               strings.ToLower(strings.TrimSpace(req.Email)),
		Status:              StatusActive,
		BaseSalary:          salary.Round(2),
		WorkingHoursPerDay:  req.WorkingHoursPerDay,
		WorkingDaysPerMonth: req.WorkingDaysPerMonth,
		WorkingWeekdays:     weekdays,
	}
	if req.ManagerID != nil && *req.ManagerID != "" {
		if _, err := s.Get(ctx, orgID, *req.ManagerID); err != nil {
			return MemberResponse{}, err
		}
		mid := uuid.MustParse(*req.ManagerID)
		m.ManagerID = &mid
	}

	if err := s.repo.Create(ctx, m); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return MemberResponse{}, membererrors.ErrMemberExists
		}
		s.logger.Error("create member persist failed", zap.String("org_id", orgID), zap.Error(err))
		return MemberResponse{}, apperror.Integrity(err)
	}
	return ToResponse(*m), nil
}

// Get returns the member only when it belongs to orgID and is active.
func (s *service) Get(ctx context.Context, orgID, memberID string) (Member, error) {
	if _, err := uuid.Parse(memberID); err != nil {
		return Member{}, membererrors.ErrUserNotInOrg
	}
	m, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Member{}, membererrors.ErrUserNotInOrg
		}
		return Member{}, apperror.Integrity(err)
	}
	if m.OrgID.String() != orgID {
		return Member{}, membererrors.ErrUserNotInOrg
	}
	if !m.IsActive() {
		return Member{}, membererrors.ErrUserInactive
	}
	return *m, nil
}

func (s *service) ListActive(ctx context.Context, orgID string) ([]Member, error) {
	rows, err := s.repo.ListActive(ctx, orgID)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	return rows, nil
}

// SetManager changes (or clears) a member's manager. Self-management and any
// assignment that would make the graph cyclic are rejected.
func (s *service) SetManager(ctx context.Context, orgID, actorID, memberID string, managerID *string) error {
	rid := contextutil.GetRequestID(ctx)
	if managerID != nil && *managerID == "" {
		managerID = nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.LockReportingGraph(ctx, orgID); err != nil {
		return apperror.Integrity(err)
	}
	if err := s.belongs(ctx, qtx, orgID, memberID); err != nil {
		return err
	}

	if managerID != nil {
		if *managerID == memberID {
			return membererrors.ErrManagerCycle
		}
		mgr, err := qtx.FindByID(ctx, *managerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return membererrors.ErrUserNotInOrg
			}
			return apperror.Integrity(err)
		}
		if mgr.OrgID.String() != orgID {
			return membererrors.ErrUserNotInOrg
		}
		if !mgr.IsActive() {
			return membererrors.ErrUserInactive
		}

		edges, err := qtx.ReportingEdges(ctx, orgID)
		if err != nil {
			return apperror.Integrity(err)
		}
		if createsCycle(edges, memberID, *managerID) {
			s.logger.Warn("set manager rejected: cycle",
				zap.String("request_id", rid),
				zap.String("member_id", memberID),
				zap.String("manager_id", *managerID),
			)
			return membererrors.ErrManagerCycle
		}
	}

	if err := qtx.UpdateManager(ctx, orgID, memberID, managerID); err != nil {
		return apperror.Integrity(err)
	}
	if err := tx.Commit(); err != nil {
		return apperror.Integrity(err)
	}

	target := ""
	if managerID != nil {
		target = *managerID
	}
	s.audit.Log(ctx, audit.Entry{
		OrgID:      orgID,
		ActorID:    actorID,
		Action:     "member.manager_changed",
		EntityType: "member",
		EntityID:   memberID,
		Message:    "manager updated",
		Meta:       map[string]any{"manager_id": target},
	})
	return nil
}

func (s *service) SetStatus(ctx context.Context, orgID, actorID, memberID, status string) error {
	if status != StatusActive && status != StatusInactive {
		return apperror.InvalidField("status")
	}
	if err := s.belongs(ctx, s.repo, orgID, memberID); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, orgID, memberID, status); err != nil {
		return apperror.Integrity(err)
	}
	s.audit.Log(ctx, audit.Entry{
		OrgID:      orgID,
		ActorID:    actorID,
		Action:     "member.status_changed",
		EntityType: "member",
		EntityID:   memberID,
		Meta:       map[string]any{"status": status},
	})
	return nil
}

// ListTeamMemberIDs resolves the transitive reports of managerID.
func (s *service) ListTeamMemberIDs(ctx context.Context, orgID, managerID string) ([]string, error) {
	edges, err := s.repo.ReportingEdges(ctx, orgID)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	return TeamOf(edges, managerID, MaxReportingDepth), nil
}

// belongs checks org membership without regard to status.
func (s *service) belongs(ctx context.Context, repo Repository, orgID, memberID string) error {
	if _, err := uuid.Parse(memberID); err != nil {
		return membererrors.ErrUserNotInOrg
	}
	m, err := repo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return membererrors.ErrUserNotInOrg
		}
		return apperror.Integrity(err)
	}
	if m.OrgID.String() != orgID {
		return membererrors.ErrUserNotInOrg
	}
	return nil
}

func formatWeekdays(days []int) (string, error) {
	if len(days) == 0 {
		return "1,2,3,4,5", nil
	}
	uniq := map[int]bool{}
	for _, d := range days {
		if d < 1 || d > 7 {
			return "", membererrors.ErrInvalidWeekdays
		}
		uniq[d] = true
	}
	sorted := make([]int, 0, len(uniq))
	for d := range uniq {
		sorted = append(sorted, d)
	}
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ","), nil
}

func ToResponse(m Member) MemberResponse {
	res := MemberResponse{
		ID:                  m.ID.String(),
		OrgID:               m.OrgID.String(),
		FullName:            m.FullName,
		Email:               m.Email,
		Status:              m.Status,
		BaseSalary:          m.BaseSalary.StringFixed(2),
		WorkingHoursPerDay:  m.WorkingHoursPerDay,
		WorkingDaysPerMonth: m.WorkingDaysPerMonth,
		WorkingWeekdays:     m.WorkingWeekdays,
	}
	if m.ManagerID != nil {
		id := m.ManagerID.String()
		res.ManagerID = &id
	}
	return res
}
