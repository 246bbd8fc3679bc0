package timesession

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/member"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/organization"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shift"
	timesessionerrors "go-workforce/internal/timesession/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	constraintOpenSession = "uq_time_sessions_open"
	constraintOpenBreak   = "uq_break_sessions_open"
)

type MemberDirectory interface {
	Get(ctx context.Context, orgID, memberID string) (member.Member, error)
}

type OrgDirectory interface {
	Get(ctx context.Context, orgID string) (organization.Organization, error)
}

type ShiftDirectory interface {
	ResolveActive(ctx context.Context, orgID, memberID string, date time.Time) (*shift.Shift, error)
	GetBreakRule(ctx context.Context, orgID, id string) (shift.BreakRule, error)
}

// Directories are the read-only collaborators the clock ledger consults.
type Directories struct {
	Members MemberDirectory
	Orgs    OrgDirectory
	Shifts  ShiftDirectory
}

//go:generate mockgen -source=timesession_service.go -destination=mock/timesession_service_mock.go -package=mock
type Service interface {
	StartSession(ctx context.Context, orgID, memberID string, req StartSessionRequest) (SessionResponse, error)
	StopSession(ctx context.Context, orgID, memberID string) (SessionResponse, error)
	StartBreak(ctx context.Context, orgID, memberID string, req StartBreakRequest) (BreakResponse, error)
	StopBreak(ctx context.Context, orgID, memberID string, req StopBreakRequest) (BreakResponse, error)
	GetOpenSession(ctx context.Context, orgID, memberID string) (SessionResponse, error)
	ListSessions(ctx context.Context, orgID string, q ListSessionsQuery) ([]SessionResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	dirs   Directories
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, dirs Directories, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, dirs, outbox, time.Now, logger...)
}

func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	dirs Directories,
	outbox kafka.OutboxRepository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesession.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesession.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{db: db, repo: repo, dirs: dirs, outbox: outbox, now: now, logger: l}
}

func (s *service) StartSession(ctx context.Context, orgID, memberID string, req StartSessionRequest) (SessionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	m, err := s.dirs.Members.Get(ctx, orgID, memberID)
	if err != nil {
		return SessionResponse{}, err
	}
	org, err := s.dirs.Orgs.Get(ctx, orgID)
	if err != nil {
		return SessionResponse{}, err
	}

	now := s.now().UTC()
	date, err := s.anchorDate(ctx, orgID, memberID, now.In(org.Location()))
	if err != nil {
		return SessionResponse{}, err
	}

	source := req.Source
	if source == "" {
		source = SourceManual
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SessionResponse{}, apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	_, err = qtx.FindOpenSession(ctx, orgID, memberID)
	if err == nil {
		return SessionResponse{}, timesessionerrors.ErrSessionAlreadyOpen
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return SessionResponse{}, apperror.Integrity(err)
	}

	row := &Session{
		ID:          uuid.New(),
		OrgID:       m.OrgID,
		MemberID:    m.ID,
		SessionDate: date,
		StartTime:   now,
		Source:      source,
	}
	if err := qtx.CreateSession(ctx, row); err != nil {
		if isConstraint(err, constraintOpenSession) {
			return SessionResponse{}, timesessionerrors.ErrSessionAlreadyOpen
		}
		log.Error("start session persist failed", zap.String("request_id", rid), zap.Error(err))
		return SessionResponse{}, apperror.Integrity(err)
	}
	if err := tx.Commit(); err != nil {
		if isConstraint(err, constraintOpenSession) {
			return SessionResponse{}, timesessionerrors.ErrSessionAlreadyOpen
		}
		return SessionResponse{}, apperror.Integrity(err)
	}

	log.Info("session started",
		zap.String("request_id", rid),
		zap.String("session_id", row.ID.String()),
		zap.String("member_id", memberID),
		zap.String("date", civildate.Format(date)),
	)
	return ToSessionResponse(*row), nil
}

// anchorDate picks the civil date a clock-in belongs to. Clocking in after
// midnight but before the end of yesterday's overnight shift counts toward yesterday.
func (s *service) anchorDate(ctx context.Context, orgID, memberID string, local time.Time) (time.Time, error) {
	today := civildate.Of(local, local.Location())
	yesterday := civildate.AddDays(today, -1)

	prev, err := s.dirs.Shifts.ResolveActive(ctx, orgID, memberID, yesterday)
	if err != nil {
		return time.Time{}, err
	}
	if prev != nil && prev.IsOvernight {
		return prev.AnchorDate(local), nil
	}
	return today, nil
}

func (s *service) StopSession(ctx context.Context, orgID, memberID string) (SessionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SessionResponse{}, apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sess, err := qtx.FindOpenSession(ctx, orgID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionResponse{}, timesessionerrors.ErrNoOpenSession
		}
		return SessionResponse{}, apperror.Integrity(err)
	}

	now := s.now().UTC()

	// an open break ends with the session
	br, err := qtx.FindOpenBreak(ctx, sess.ID.String())
	switch {
	case err == nil:
		closeBreak(br, now)
		if err := qtx.CloseBreak(ctx, br); err != nil {
			return SessionResponse{}, apperror.Integrity(err)
		}
		sess.Breaks = append(sess.Breaks, *br)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return SessionResponse{}, apperror.Integrity(err)
	}

	total := ElapsedMinutes(sess.StartTime, now)
	sess.EndTime = &now
	sess.TotalMinutes = &total
	if err := qtx.CloseSession(ctx, sess); err != nil {
		return SessionResponse{}, apperror.Integrity(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, "time_session", sess.ID.String(),
			events.EventTimeSessionClosed, events.TimeSessionClosedTopic,
			events.SessionClosedEvent{
				EventType:    events.EventTimeSessionClosed,
				RequestID:    rid,
				SessionID:    sess.ID.String(),
				OrgID:        orgID,
				MemberID:     memberID,
				Date:         civildate.Format(sess.SessionDate),
				TotalMinutes: total,
				OccurredAt:   now,
			})
		if err != nil {
			return SessionResponse{}, apperror.Integrity(err)
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("stop session outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return SessionResponse{}, apperror.Integrity(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return SessionResponse{}, apperror.Integrity(err)
	}

	log.Info("session stopped",
		zap.String("request_id", rid),
		zap.String("session_id", sess.ID.String()),
		zap.Int("total_minutes", total),
	)
	return ToSessionResponse(*sess), nil
}

func (s *service) StartBreak(ctx context.Context, orgID, memberID string, req StartBreakRequest) (BreakResponse, error) {
	isPaid := req.IsPaid != nil && *req.IsPaid
	label := req.Label
	var ruleID *uuid.UUID
	if req.BreakRuleID != nil && *req.BreakRuleID != "" {
		rule, err := s.dirs.Shifts.GetBreakRule(ctx, orgID, *req.BreakRuleID)
		if err != nil {
			return BreakResponse{}, err
		}
		isPaid = rule.IsPaid
		ruleID = &rule.ID
		if label == nil {
			name := rule.Name
			label = &name
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BreakResponse{}, apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sess, err := s.resolveSession(ctx, qtx, orgID, memberID, req.SessionID)
	if err != nil {
		return BreakResponse{}, err
	}
	if !sess.IsOpen() {
		return BreakResponse{}, timesessionerrors.ErrSessionNotOpen
	}

	_, err = qtx.FindOpenBreak(ctx, sess.ID.String())
	if err == nil {
		return BreakResponse{}, timesessionerrors.ErrBreakAlreadyOpen
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return BreakResponse{}, apperror.Integrity(err)
	}

	row := &Break{
		ID:            uuid.New(),
		TimeSessionID: sess.ID,
		BreakRuleID:   ruleID,
		Label:         label,
		StartTime:     s.now().UTC(),
		IsPaid:        isPaid,
	}
	if err := qtx.CreateBreak(ctx, row); err != nil {
		if isConstraint(err, constraintOpenBreak) {
			return BreakResponse{}, timesessionerrors.ErrBreakAlreadyOpen
		}
		return BreakResponse{}, apperror.Integrity(err)
	}
	if err := tx.Commit(); err != nil {
		return BreakResponse{}, apperror.Integrity(err)
	}
	return ToBreakResponse(*row), nil
}

func (s *service) StopBreak(ctx context.Context, orgID, memberID string, req StopBreakRequest) (BreakResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BreakResponse{}, apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sess, err := s.resolveSession(ctx, qtx, orgID, memberID, req.SessionID)
	if err != nil {
		return BreakResponse{}, err
	}

	br, err := qtx.FindOpenBreak(ctx, sess.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BreakResponse{}, timesessionerrors.ErrNoOpenBreak
		}
		return BreakResponse{}, apperror.Integrity(err)
	}

	closeBreak(br, s.now().UTC())
	if err := qtx.CloseBreak(ctx, br); err != nil {
		return BreakResponse{}, apperror.Integrity(err)
	}
	if err := tx.Commit(); err != nil {
		return BreakResponse{}, apperror.Integrity(err)
	}

	resp := ToBreakResponse(*br)
	resp.OverLimitMinutes = s.overLimit(ctx, orgID, memberID, br)
	return resp, nil
}

// overLimit reports how far a closed break ran past its rule's MaxMinutes.
// The break is already stored, so a failed rule lookup is only logged.
func (s *service) overLimit(ctx context.Context, orgID, memberID string, br *Break) *int {
	if br.BreakRuleID == nil || br.TotalMinutes == nil {
		return nil
	}
	log := contextutil.GetLogger(ctx, s.logger)
	rule, err := s.dirs.Shifts.GetBreakRule(ctx, orgID, br.BreakRuleID.String())
	if err != nil {
		log.Warn("break rule lookup failed", zap.String("break_id", br.ID.String()), zap.Error(err))
		return nil
	}
	if rule.MaxMinutes <= 0 || *br.TotalMinutes <= rule.MaxMinutes {
		return nil
	}
	over := *br.TotalMinutes - rule.MaxMinutes
	log.Warn("break ran over its limit",
		zap.String("member_id", memberID),
		zap.String("break_id", br.ID.String()),
		zap.String("rule", rule.Name),
		zap.Int("max_minutes", rule.MaxMinutes),
		zap.Int("over_minutes", over),
	)
	return &over
}

func (s *service) GetOpenSession(ctx context.Context, orgID, memberID string) (SessionResponse, error) {
	sess, err := s.repo.FindOpenSession(ctx, orgID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionResponse{}, timesessionerrors.ErrNoOpenSession
		}
		return SessionResponse{}, apperror.Integrity(err)
	}
	return ToSessionResponse(*sess), nil
}

func (s *service) ListSessions(ctx context.Context, orgID string, q ListSessionsQuery) ([]SessionResponse, error) {
	from, err := civildate.Parse(q.From)
	if err != nil {
		return nil, timesessionerrors.ErrInvalidRange
	}
	to, err := civildate.Parse(q.To)
	if err != nil || to.Before(from) {
		return nil, timesessionerrors.ErrInvalidRange
	}
	rows, err := s.repo.ListSessions(ctx, orgID, q.MemberID, from, to)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	res := make([]SessionResponse, len(rows))
	for i, r := range rows {
		res[i] = ToSessionResponse(r)
	}
	return res, nil
}

// resolveSession finds the session a break call targets: the given id, or the
// member's open session.
func (s *service) resolveSession(ctx context.Context, repo Repository, orgID, memberID string, sessionID *string) (*Session, error) {
	if sessionID == nil || *sessionID == "" {
		sess, err := repo.FindOpenSession(ctx, orgID, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, timesessionerrors.ErrNoOpenSession
			}
			return nil, apperror.Integrity(err)
		}
		return sess, nil
	}

	sess, err := repo.FindSession(ctx, orgID, *sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timesessionerrors.ErrNoOpenSession
		}
		return nil, apperror.Integrity(err)
	}
	if sess.MemberID.String() != memberID {
		return nil, timesessionerrors.ErrNoOpenSession
	}
	return sess, nil
}

func closeBreak(b *Break, at time.Time) {
	mins := ElapsedMinutes(b.StartTime, at)
	b.EndTime = &at
	b.TotalMinutes = &mins
}

func isConstraint(err error, name string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == name
}

func ToSessionResponse(s Session) SessionResponse {
	res := SessionResponse{
		ID:           s.ID.String(),
		OrgID:        s.OrgID.String(),
		MemberID:     s.MemberID.String(),
		Date:         civildate.Format(s.SessionDate),
		StartTime:    s.StartTime.Format(time.RFC3339),
		TotalMinutes: s.TotalMinutes,
		Source:       s.Source,
	}
	if s.EndTime != nil {
		end := s.EndTime.Format(time.RFC3339)
		res.EndTime = &end
	}
	for _, b := range s.Breaks {
		res.Breaks = append(res.Breaks, ToBreakResponse(b))
	}
	return res
}

func ToBreakResponse(b Break) BreakResponse {
	res := BreakResponse{
		ID:            b.ID.String(),
		TimeSessionID: b.TimeSessionID.String(),
		Label:         b.Label,
		StartTime:     b.StartTime.Format(time.RFC3339),
		TotalMinutes:  b.TotalMinutes,
		IsPaid:        b.IsPaid,
	}
	if b.BreakRuleID != nil {
		id := b.BreakRuleID.String()
		res.BreakRuleID = &id
	}
	if b.EndTime != nil {
		end := b.EndTime.Format(time.RFC3339)
		res.EndTime = &end
	}
	return res
}
