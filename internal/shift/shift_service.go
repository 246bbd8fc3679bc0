package shift

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-workforce/internal/audit"
	"go-workforce/internal/member"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"
	shifterrors "go-workforce/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MemberDirectory resolves active members of an org.
type MemberDirectory interface {
	Get(ctx context.Context, orgID, memberID string) (member.Member, error)
}

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	CreateShift(ctx context.Context, orgID string, req ShiftRequest) (ShiftResponse, error)
	UpdateShift(ctx context.Context, orgID, id string, req ShiftRequest) (ShiftResponse, error)
	ListShifts(ctx context.Context, orgID string) ([]ShiftResponse, error)
	AssignShift(ctx context.Context, orgID, actorID string, req AssignShiftRequest) (AssignmentResponse, error)
	ResolveActive(ctx context.Context, orgID, memberID string, date time.Time) (*Shift, error)

	CreateBreakRule(ctx context.Context, orgID string, req BreakRuleRequest) (BreakRuleResponse, error)
	GetBreakRule(ctx context.Context, orgID, id string) (BreakRule, error)
	ListBreakRules(ctx context.Context, orgID string) ([]BreakRuleResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	members MemberDirectory
	audit   audit.Sink
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, members MemberDirectory, sink audit.Sink, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	if sink == nil {
		sink = audit.NewZapSink(l)
	}
	return &service{db: db, repo: repo, members: members, audit: sink, logger: l}
}

func validateWindow(req ShiftRequest) error {
	start, err := ParseClock(req.StartTime)
	if err != nil {
		return shifterrors.ErrInvalidClockTime
	}
	end, err := ParseClock(req.EndTime)
	if err != nil {
		return shifterrors.ErrInvalidClockTime
	}
	if req.IsOvernight != (end <= start) {
		return shifterrors.ErrInvalidShiftWindow
	}
	return nil
}

func (s *service) CreateShift(ctx context.Context, orgID string, req ShiftRequest) (ShiftResponse, error) {
	if err := validateWindow(req); err != nil {
		return ShiftResponse{}, err
	}
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return ShiftResponse{}, apperror.InvalidField("org_id")
	}
	row := &Shift{
		ID:           uuid.New(),
		OrgID:        orgUUID,
		Name:         strings.TrimSpace(req.Name),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsOvernight:  req.IsOvernight,
		GraceMinutes: req.GraceMinutes,
		BreakMinutes: req.BreakMinutes,
	}
	if err := s.repo.CreateShift(ctx, row); err != nil {
		s.logger.Error("create shift failed", zap.String("org_id", orgID), zap.Error(err))
		return ShiftResponse{}, apperror.Integrity(err)
	}
	return toShiftResponse(*row), nil
}

func (s *service) UpdateShift(ctx context.Context, orgID, id string, req ShiftRequest) (ShiftResponse, error) {
	if err := validateWindow(req); err != nil {
		return ShiftResponse{}, err
	}
	row, err := s.findShift(ctx, s.repo, orgID, id)
	if err != nil {
		return ShiftResponse{}, err
	}
	row.Name = strings.TrimSpace(req.Name)
	row.StartTime = req.StartTime
	row.EndTime = req.EndTime
	row.IsOvernight = req.IsOvernight
	row.GraceMinutes = req.GraceMinutes
	row.BreakMinutes = req.BreakMinutes
	if err := s.repo.UpdateShift(ctx, row); err != nil {
		return ShiftResponse{}, apperror.Integrity(err)
	}
	return toShiftResponse(*row), nil
}

func (s *service) ListShifts(ctx context.Context, orgID string) ([]ShiftResponse, error) {
	rows, err := s.repo.ListShifts(ctx, orgID)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	res := make([]ShiftResponse, len(rows))
	for i, r := range rows {
		res[i] = toShiftResponse(r)
	}
	return res, nil
}

// AssignShift gives a member a shift from EffectiveFrom onward. An open-ended
// assignment that started earlier is closed the day before; any other overlap
// is rejected so at most one assignment is active per date.
func (s *service) AssignShift(ctx context.Context, orgID, actorID string, req AssignShiftRequest) (AssignmentResponse, error) {
	from, err := civildate.Parse(req.EffectiveFrom)
	if err != nil {
		return AssignmentResponse{}, shifterrors.ErrInvalidDate
	}
	var to *time.Time
	if req.EffectiveTo != nil && *req.EffectiveTo != "" {
		t, err := civildate.Parse(*req.EffectiveTo)
		if err != nil || t.Before(from) {
			return AssignmentResponse{}, shifterrors.ErrInvalidDate
		}
		to = &t
	}

	m, err := s.members.Get(ctx, orgID, req.MemberID)
	if err != nil {
		return AssignmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sh, err := s.findShift(ctx, qtx, orgID, req.ShiftID)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if err := qtx.LockMemberAssignments(ctx, orgID, req.MemberID); err != nil {
		return AssignmentResponse{}, apperror.Integrity(err)
	}
	existing, err := qtx.ListAssignments(ctx, orgID, req.MemberID)
	if err != nil {
		return AssignmentResponse{}, apperror.Integrity(err)
	}

	for _, a := range existing {
		if !rangesOverlap(a.EffectiveFrom, a.EffectiveTo, from, to) {
			continue
		}
		if a.EffectiveTo == nil && a.EffectiveFrom.Before(from) {
			if err := qtx.EndAssignment(ctx, a.ID.String(), civildate.AddDays(from, -1)); err != nil {
				return AssignmentResponse{}, apperror.Integrity(err)
			}
			continue
		}
		return AssignmentResponse{}, shifterrors.ErrAssignmentOverlap
	}

	row := &Assignment{
		ID:            uuid.New(),
		OrgID:         m.OrgID,
		MemberID:      m.ID,
		ShiftID:       sh.ID,
		EffectiveFrom: from,
		EffectiveTo:   to,
	}
	if err := qtx.CreateAssignment(ctx, row); err != nil {
		return AssignmentResponse{}, apperror.Integrity(err)
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, apperror.Integrity(err)
	}

	s.audit.Log(ctx, audit.Entry{
		OrgID:      orgID,
		ActorID:    actorID,
		Action:     "shift.assigned",
		EntityType: "member",
		EntityID:   req.MemberID,
		Meta:       map[string]any{"shift_id": req.ShiftID, "effective_from": req.EffectiveFrom},
	})
	return toAssignmentResponse(*row), nil
}

// ResolveActive returns the shift in effect for the member on date, or nil
// when the member has no assignment covering it.
func (s *service) ResolveActive(ctx context.Context, orgID, memberID string, date time.Time) (*Shift, error) {
	rows, err := s.repo.ListAssignments(ctx, orgID, memberID)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	a := ActiveAssignment(rows, date)
	if a == nil {
		return nil, nil
	}
	if a.Shift != nil {
		return a.Shift, nil
	}
	return s.findShift(ctx, s.repo, orgID, a.ShiftID.String())
}

func (s *service) CreateBreakRule(ctx context.Context, orgID string, req BreakRuleRequest) (BreakRuleResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return BreakRuleResponse{}, apperror.InvalidField("org_id")
	}
	row := &BreakRule{
		ID:         uuid.New(),
		OrgID:      orgUUID,
		Name:       strings.TrimSpace(req.Name),
		IsPaid:     req.IsPaid,
		MaxMinutes: req.MaxMinutes,
	}
	if err := s.repo.CreateBreakRule(ctx, row); err != nil {
		return BreakRuleResponse{}, apperror.Integrity(err)
	}
	return toBreakRuleResponse(*row), nil
}

func (s *service) GetBreakRule(ctx context.Context, orgID, id string) (BreakRule, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BreakRule{}, shifterrors.ErrBreakRuleNotFound
	}
	row, err := s.repo.FindBreakRule(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BreakRule{}, shifterrors.ErrBreakRuleNotFound
		}
		return BreakRule{}, apperror.Integrity(err)
	}
	return *row, nil
}

func (s *service) ListBreakRules(ctx context.Context, orgID string) ([]BreakRuleResponse, error) {
	rows, err := s.repo.ListBreakRules(ctx, orgID)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	res := make([]BreakRuleResponse, len(rows))
	for i, r := range rows {
		res[i] = toBreakRuleResponse(r)
	}
	return res, nil
}

func (s *service) findShift(ctx context.Context, repo Repository, orgID, id string) (*Shift, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, shifterrors.ErrShiftNotFound
	}
	row, err := repo.FindShift(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shifterrors.ErrShiftNotFound
		}
		return nil, apperror.Integrity(err)
	}
	return row, nil
}

func rangesOverlap(aFrom time.Time, aTo *time.Time, bFrom time.Time, bTo *time.Time) bool {
	if aTo != nil && aTo.Before(bFrom) {
		return false
	}
	if bTo != nil && bTo.Before(aFrom) {
		return false
	}
	return true
}

func toShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		IsOvernight:      s.IsOvernight,
		GraceMinutes:     s.GraceMinutes,
		BreakMinutes:     s.BreakMinutes,
		ScheduledMinutes: s.ScheduledMinutes(),
	}
}

func toAssignmentResponse(a Assignment) AssignmentResponse {
	res := AssignmentResponse{
		ID:            a.ID.String(),
		MemberID:      a.MemberID.String(),
		ShiftID:       a.ShiftID.String(),
		EffectiveFrom: civildate.Format(a.EffectiveFrom),
	}
	if a.EffectiveTo != nil {
		t := civildate.Format(*a.EffectiveTo)
		res.EffectiveTo = &t
	}
	return res
}

func toBreakRuleResponse(b BreakRule) BreakRuleResponse {
	return BreakRuleResponse{ID: b.ID.String(), Name: b.Name, IsPaid: b.IsPaid, MaxMinutes: b.MaxMinutes}
}
