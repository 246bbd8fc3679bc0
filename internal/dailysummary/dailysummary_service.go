package dailysummary

import (
	"context"
	"fmt"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/member"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/organization"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shift"
	"go-workforce/internal/timesession"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultBatchLockTTL = 30 * time.Minute

type SessionReader interface {
	ListSessions(ctx context.Context, orgID, memberID string, from, to time.Time) ([]timesession.Session, error)
}

type MemberDirectory interface {
	Get(ctx context.Context, orgID, memberID string) (member.Member, error)
	ListActive(ctx context.Context, orgID string) ([]member.Member, error)
}

type OrgDirectory interface {
	Get(ctx context.Context, orgID string) (organization.Organization, error)
	ListActive(ctx context.Context) ([]organization.Organization, error)
	IsHoliday(ctx context.Context, orgID string, date time.Time) (bool, error)
}

type ShiftResolver interface {
	ResolveActive(ctx context.Context, orgID, memberID string, date time.Time) (*shift.Shift, error)
}

type Deps struct {
	Sessions SessionReader
	Members  MemberDirectory
	Orgs     OrgDirectory
	Shifts   ShiftResolver
}

type Options struct {
	// LockTTL bounds the nightly per-org lock in case a worker dies holding it.
	LockTTL time.Duration
	Now     func() time.Time
}

//go:generate mockgen -source=dailysummary_service.go -destination=mock/dailysummary_service_mock.go -package=mock
type Service interface {
	GetDailySummary(ctx context.Context, orgID, memberID string, date time.Time) (SummaryResponse, error)
	GetTodaySummary(ctx context.Context, orgID, memberID string) (SummaryResponse, error)
	ListDailyLogs(ctx context.Context, orgID string, date time.Time, memberID string) ([]SummaryResponse, error)
	ApplyShiftRulesToDay(ctx context.Context, orgID, memberID string, date time.Time) error
	RunNightly(ctx context.Context, date time.Time) (NightlyReport, error)
	ListForRange(ctx context.Context, orgID, memberID string, from, to time.Time) ([]DailySummary, error)
}

type service struct {
	repo    Repository
	deps    Deps
	rdb     *redis.Client
	outbox  kafka.OutboxRepository
	sf      *singleflight.Group
	lockTTL time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(repo Repository, deps Deps, rdb *redis.Client, outbox kafka.OutboxRepository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("dailysummary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailysummary.service")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultBatchLockTTL
	}
	return &service{
		repo:    repo,
		deps:    deps,
		rdb:     rdb,
		outbox:  outbox,
		sf:      &singleflight.Group{},
		lockTTL: opts.LockTTL,
		now:     opts.Now,
		logger:  l,
	}
}

func (s *service) GetDailySummary(ctx context.Context, orgID, memberID string, date time.Time) (SummaryResponse, error) {
	org, err := s.deps.Orgs.Get(ctx, orgID)
	if err != nil {
		return SummaryResponse{}, err
	}
	m, err := s.deps.Members.Get(ctx, orgID, memberID)
	if err != nil {
		return SummaryResponse{}, err
	}
	sessions, err := s.deps.Sessions.ListSessions(ctx, orgID, memberID, date, date)
	if err != nil {
		return SummaryResponse{}, apperror.Integrity(err)
	}
	row, err := s.summarize(ctx, org, m, date, sessions, s.now())
	if err != nil {
		return SummaryResponse{}, err
	}
	return ToResponse(row), nil
}

// GetTodaySummary collapses concurrent polls for the same member into one
// computation. A caller that goes away stops waiting without failing the
// others.
func (s *service) GetTodaySummary(ctx context.Context, orgID, memberID string) (SummaryResponse, error) {
	org, err := s.deps.Orgs.Get(ctx, orgID)
	if err != nil {
		return SummaryResponse{}, err
	}
	today := civildate.Of(s.now(), org.Location())
	key := fmt.Sprintf("today:%s:%s:%s", orgID, memberID, civildate.Format(today))

	// The shared computation must outlive whichever caller started it.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(key, func() (interface{}, error) {
		return s.GetDailySummary(flightCtx, orgID, memberID, today)
	})
	select {
	case <-ctx.Done():
		return SummaryResponse{}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return SummaryResponse{}, r.Err
		}
		return r.Val.(SummaryResponse), nil
	}
}

func (s *service) ListDailyLogs(ctx context.Context, orgID string, date time.Time, memberID string) ([]SummaryResponse, error) {
	org, err := s.deps.Orgs.Get(ctx, orgID)
	if err != nil {
		return nil, err
	}

	var members []member.Member
	if memberID != "" {
		m, err := s.deps.Members.Get(ctx, orgID, memberID)
		if err != nil {
			return nil, err
		}
		members = []member.Member{m}
	} else {
		members, err = s.deps.Members.ListActive(ctx, orgID)
		if err != nil {
			return nil, err
		}
	}

	sessions, err := s.deps.Sessions.ListSessions(ctx, orgID, memberID, date, date)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	byMember := make(map[uuid.UUID][]timesession.Session)
	for _, sess := range sessions {
		byMember[sess.MemberID] = append(byMember[sess.MemberID], sess)
	}

	now := s.now()
	out := make([]SummaryResponse, 0, len(members))
	for _, m := range members {
		row, err := s.summarize(ctx, org, m, date, byMember[m.ID], now)
		if err != nil {
			return nil, err
		}
		out = append(out, ToResponse(row))
	}
	return out, nil
}

// ApplyShiftRulesToDay recomputes and overwrites the persisted summary from
// closed sessions only. Running it twice yields the same row.
func (s *service) ApplyShiftRulesToDay(ctx context.Context, orgID, memberID string, date time.Time) error {
	org, err := s.deps.Orgs.Get(ctx, orgID)
	if err != nil {
		return err
	}
	m, err := s.deps.Members.Get(ctx, orgID, memberID)
	if err != nil {
		return err
	}
	return s.apply(ctx, org, m, date)
}

func (s *service) apply(ctx context.Context, org organization.Organization, m member.Member, date time.Time) error {
	sessions, err := s.deps.Sessions.ListSessions(ctx, org.ID.String(), m.ID.String(), date, date)
	if err != nil {
		return apperror.Integrity(err)
	}
	row, err := s.summarize(ctx, org, m, date, sessions, time.Time{})
	if err != nil {
		return err
	}
	row.ComputedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, &row); err != nil {
		return apperror.Integrity(err)
	}
	return nil
}

func (s *service) summarize(
	ctx context.Context,
	org organization.Organization,
	m member.Member,
	date time.Time,
	sessions []timesession.Session,
	now time.Time,
) (DailySummary, error) {
	in := DayInput{Sessions: sessions, Now: now}

	sh, err := s.deps.Shifts.ResolveActive(ctx, org.ID.String(), m.ID.String(), date)
	if err != nil {
		return DailySummary{}, err
	}
	if sh != nil && m.WorksOn(date) {
		in.ScheduledMinutes = sh.ScheduledMinutes()
		in.GraceMinutes = sh.GraceMinutes
		in.BreakAllowanceMinutes = sh.BreakMinutes
	}
	if in.ScheduledMinutes > 0 {
		in.Holiday, err = s.deps.Orgs.IsHoliday(ctx, org.ID.String(), date)
		if err != nil {
			return DailySummary{}, err
		}
	}

	res := Summarize(in)
	return DailySummary{
		OrgID:            org.ID,
		MemberID:         m.ID,
		SummaryDate:      civildate.New(date.Date()),
		WorkedMinutes:    res.WorkedMinutes,
		ExtraMinutes:     res.ExtraMinutes,
		ShortMinutes:     res.ShortMinutes,
		ScheduledMinutes: res.ScheduledMinutes,
		Status:           res.Status,
	}, nil
}

// RunNightly applies shift rules for every active member of every active org.
// A zero date means yesterday in each org's timezone. Member failures are
// counted and logged; they do not stop the batch.
func (s *service) RunNightly(ctx context.Context, date time.Time) (NightlyReport, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	orgs, err := s.deps.Orgs.ListActive(ctx)
	if err != nil {
		return NightlyReport{}, err
	}

	var report NightlyReport
	for _, org := range orgs {
		day := date
		if day.IsZero() {
			day = civildate.AddDays(civildate.Of(s.now(), org.Location()), -1)
		}

		unlock, ok, err := s.acquire(ctx, org.ID.String(), day)
		if err != nil {
			return report, err
		}
		if !ok {
			log.Info("nightly batch already running",
				zap.String("org_id", org.ID.String()),
				zap.String("date", civildate.Format(day)),
			)
			report.Skipped = append(report.Skipped, org.ID.String())
			continue
		}

		applied, failed := s.runOrg(ctx, org, day)
		unlock()

		report.Orgs++
		report.Applied += applied
		report.Failed += failed
		s.publishDailyClosed(ctx, org.ID.String(), day, applied, failed)
	}

	log.Info("nightly batch finished",
		zap.Int("orgs", report.Orgs),
		zap.Int("applied", report.Applied),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *service) runOrg(ctx context.Context, org organization.Organization, day time.Time) (applied, failed int) {
	log := contextutil.GetLogger(ctx, s.logger)

	members, err := s.deps.Members.ListActive(ctx, org.ID.String())
	if err != nil {
		log.Error("nightly list members failed", zap.String("org_id", org.ID.String()), zap.Error(err))
		return 0, 1
	}
	for _, m := range members {
		if err := s.apply(ctx, org, m, day); err != nil {
			failed++
			log.Error("apply shift rules failed",
				zap.String("org_id", org.ID.String()),
				zap.String("member_id", m.ID.String()),
				zap.String("date", civildate.Format(day)),
				zap.Error(err),
			)
			continue
		}
		applied++
	}
	return applied, failed
}

func batchLockKey(orgID string, day time.Time) string {
	return fmt.Sprintf("dailysummary:nightly:%s:%s", orgID, civildate.Format(day))
}

// acquire takes the per-org, per-day batch lock. Without redis every caller
// gets the lock.
func (s *service) acquire(ctx context.Context, orgID string, day time.Time) (func(), bool, error) {
	if s.rdb == nil {
		return func() {}, true, nil
	}
	key := batchLockKey(orgID, day)
	ok, err := s.rdb.SetNX(ctx, key, "1", s.lockTTL).Result()
	if err != nil {
		return nil, false, apperror.Integrity(err)
	}
	if !ok {
		return nil, false, nil
	}
	return func() {
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			s.logger.Warn("release batch lock failed", zap.String("key", key), zap.Error(err))
		}
	}, true, nil
}

func (s *service) publishDailyClosed(ctx context.Context, orgID string, day time.Time, applied, failed int) {
	if s.outbox == nil {
		return
	}
	log := contextutil.GetLogger(ctx, s.logger)
	date := civildate.Format(day)

	event, err := kafka.NewOutboxEvent(contextutil.GetRequestID(ctx), "organization", orgID,
		events.EventTimeDailyClosed, events.TimeDailyClosedTopic,
		events.DailyClosedEvent{
			EventType:  events.EventTimeDailyClosed,
			OrgID:      orgID,
			Date:       date,
			Applied:    applied,
			Failed:     failed,
			OccurredAt: s.now().UTC(),
		})
	if err == nil {
		err = s.outbox.Create(ctx, event)
	}
	if err != nil {
		log.Error("daily closed outbox persist failed",
			zap.String("org_id", orgID),
			zap.String("date", date),
			zap.Error(err),
		)
	}
}

func (s *service) ListForRange(ctx context.Context, orgID, memberID string, from, to time.Time) ([]DailySummary, error) {
	rows, err := s.repo.ListRange(ctx, orgID, memberID, from, to)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	return rows, nil
}

func ToResponse(row DailySummary) SummaryResponse {
	return SummaryResponse{
		OrgID:            row.OrgID.String(),
		MemberID:         row.MemberID.String(),
		Date:             civildate.Format(row.SummaryDate),
		WorkedMinutes:    row.WorkedMinutes,
		ExtraMinutes:     row.ExtraMinutes,
		ShortMinutes:     row.ShortMinutes,
		ScheduledMinutes: row.ScheduledMinutes,
		Status:           row.Status,
	}
}
