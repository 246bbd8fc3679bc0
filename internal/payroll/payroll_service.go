package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-workforce/internal/audit"
	"go-workforce/internal/dailysummary"
	"go-workforce/internal/events"
	"go-workforce/internal/ledger"
	"go-workforce/internal/member"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/organization"
	payrollerrors "go-workforce/internal/payroll/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	constraintPeriodOverlap = "ex_payroll_periods_overlap"
	constraintPeriodCode    = "uq_payroll_period_code"

	defaultLeaseTTL = 5 * time.Minute
)

type MemberDirectory interface {
	ListActive(ctx context.Context, orgID string) ([]member.Member, error)
	ListTeamMemberIDs(ctx context.Context, orgID, managerID string) ([]string, error)
}

type OrgDirectory interface {
	Get(ctx context.Context, orgID string) (organization.Organization, error)
}

type SummarySource interface {
	ListForRange(ctx context.Context, orgID, memberID string, from, to time.Time) ([]dailysummary.DailySummary, error)
}

type LedgerSource interface {
	TotalsForRange(ctx context.Context, orgID string, from, to time.Time) (map[uuid.UUID]ledger.Totals, error)
}

type Deps struct {
	Members   MemberDirectory
	Orgs      OrgDirectory
	Summaries SummarySource
	Ledger    LedgerSource
}

type Options struct {
	// LeaseTTL is how long a processing period stays reserved for the
	// generation that claimed it.
	LeaseTTL                   time.Duration
	DefaultWorkingHoursPerDay  int
	DefaultWorkingDaysPerMonth int
	Now                        func() time.Time
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreatePeriod(ctx context.Context, orgID, actorID string, req CreatePeriodRequest) (PeriodResponse, error)
	Generate(ctx context.Context, orgID, actorID, periodID string) (PeriodResponse, error)
	Approve(ctx context.Context, orgID, actorID, periodID string, req ApproveRequest) (ApproveResponse, error)
	Lock(ctx context.Context, orgID, actorID, periodID string) (PeriodResponse, error)
	GetPeriod(ctx context.Context, orgID, periodID string) (PeriodResponse, error)
	ListPeriods(ctx context.Context, orgID string) ([]PeriodResponse, error)
	ListLines(ctx context.Context, orgID, periodID string, q ListLinesQuery) ([]LineResponse, error)
	Export(ctx context.Context, orgID, periodID, format string) (ExportFile, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	deps     Deps
	outbox   kafka.OutboxRepository
	audit    audit.Sink
	opts     Options
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counters counter.Repository,
	deps Deps,
	outbox kafka.OutboxRepository,
	sink audit.Sink,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if sink == nil {
		sink = audit.NewZapSink(l)
	}
	if opts.LeaseTTL <= 0 {
		opts.LeaseTTL = defaultLeaseTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:       db,
		repo:     repo,
		counters: counters,
		deps:     deps,
		outbox:   outbox,
		audit:    sink,
		opts:     opts,
		logger:   l,
	}
}

// now is truncated to what timestamptz stores so lease comparisons survive
// a round trip through the database.
func (s *service) now() time.Time {
	return s.opts.Now().UTC().Truncate(time.Microsecond)
}

func (s *service) CreatePeriod(ctx context.Context, orgID, actorID string, req CreatePeriodRequest) (PeriodResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return PeriodResponse{}, apperror.InvalidField("org_id")
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return PeriodResponse{}, apperror.InvalidField("actor_id")
	}
	start, err := civildate.Parse(req.PeriodStart)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	end, err := civildate.Parse(req.PeriodEnd)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return PeriodResponse{}, payrollerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	overlap, err := qtx.HasOverlap(ctx, orgID, start, end)
	if err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}
	if overlap {
		return PeriodResponse{}, payrollerrors.ErrPeriodOverlap
	}

	code, err := s.counters.WithTx(tx).Next(ctx, orgID, counter.PayrollPeriod)
	if err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}

	p := &Period{
		ID:          uuid.New(),
		OrgID:       orgUUID,
		Code:        code,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      StatusDraft,
		CreatedBy:   actor,
	}
	if err := qtx.CreatePeriod(ctx, p); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == constraintPeriodOverlap {
			return PeriodResponse{}, payrollerrors.ErrPeriodOverlap
		}
		if errors.As(err, &pgErr) && pgErr.ConstraintName == constraintPeriodCode {
			log.Error("payroll period code collision", zap.String("code", p.Code))
		}
		return PeriodResponse{}, apperror.Integrity(err)
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}

	s.audit.Log(ctx, audit.Entry{
		OrgID:      orgID,
		ActorID:    actorID,
		Action:     "payroll.period_created",
		EntityType: "payroll_period",
		EntityID:   p.ID.String(),
		Meta: map[string]any{
			"code":         p.Code,
			"period_start": req.PeriodStart,
			"period_end":   req.PeriodEnd,
		},
	})
	log.Info("payroll period created", zap.String("period_id", p.ID.String()), zap.String("code", p.Code))
	return ToPeriodResponse(*p), nil
}

// Generate recomputes every line of the period from daily summaries and the
// fines/adjustments ledger. The period's processing status acts as a lease:
// a concurrent call fails fast while the lease is fresh, and a stale lease
// left behind by a crash is reclaimed.
func (s *service) Generate(ctx context.Context, orgID, actorID, periodID string) (PeriodResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	org, err := s.deps.Orgs.Get(ctx, orgID)
	if err != nil {
		return PeriodResponse{}, err
	}

	period, prior, err := s.acquireLease(ctx, orgID, periodID)
	if err != nil {
		return PeriodResponse{}, err
	}

	lines, err := s.buildLines(ctx, org, *period)
	if err == nil {
		err = s.storeLines(ctx, orgID, period, lines)
	}
	if err != nil {
		log.Error("payroll generation failed",
			zap.String("request_id", rid),
			zap.String("period_id", periodID),
			zap.Error(err),
		)
		s.releaseLease(ctx, orgID, period, prior)
		return PeriodResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		OrgID:      orgID,
		ActorID:    actorID,
		Action:     "payroll.generated",
		EntityType: "payroll_period",
		EntityID:   periodID,
		Meta:       map[string]any{"lines": len(lines)},
	})
	log.Info("payroll generated",
		zap.String("request_id", rid),
		zap.String("period_id", periodID),
		zap.Int("lines", len(lines)),
	)
	return ToPeriodResponse(*period), nil
}

func (s *service) acquireLease(ctx context.Context, orgID, periodID string) (*Period, string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := s.findPeriod(ctx, qtx, orgID, periodID)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	switch p.Status {
	case StatusLocked:
		return nil, "", payrollerrors.ErrPeriodLocked
	case StatusApproved:
		return nil, "", payrollerrors.ErrPeriodApproved
	case StatusProcessing:
		if p.leaseHeld(now, s.opts.LeaseTTL) {
			return nil, "", payrollerrors.ErrGenerationInProgress
		}
	}

	approved, err := qtx.CountLines(ctx, periodID, true)
	if err != nil {
		return nil, "", apperror.Integrity(err)
	}
	if approved > 0 {
		return nil, "", payrollerrors.ErrPeriodApproved
	}

	prior := p.Status
	if prior == StatusProcessing {
		prior = StatusDraft
		pending, err := qtx.CountLines(ctx, periodID, false)
		if err != nil {
			return nil, "", apperror.Integrity(err)
		}
		if pending > 0 {
			prior = StatusGenerated
		}
		contextutil.GetLogger(ctx, s.logger).Warn("reclaiming stale generation lease",
			zap.String("period_id", periodID),
			zap.Timep("processing_started_at", p.ProcessingStartedAt),
		)
	}

	p.Status = StatusProcessing
	p.ProcessingStartedAt = &now
	if err := qtx.UpdatePeriod(ctx, p); err != nil {
		return nil, "", apperror.Integrity(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, "", apperror.Integrity(err)
	}
	return p, prior, nil
}

func (s *service) buildLines(ctx context.Context, org organization.Organization, p Period) ([]Line, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	orgID := org.ID.String()

	members, err := s.deps.Members.ListActive(ctx, orgID)
	if err != nil {
		return nil, err
	}
	summaries, err := s.deps.Summaries.ListForRange(ctx, orgID, "", p.PeriodStart, p.PeriodEnd)
	if err != nil {
		return nil, err
	}
	totals, err := s.deps.Ledger.TotalsForRange(ctx, orgID, p.PeriodStart, p.PeriodEnd)
	if err != nil {
		return nil, err
	}

	type minutes struct{ worked, scheduled, extra, short int }
	byMember := make(map[uuid.UUID]minutes)
	for _, d := range summaries {
		m := byMember[d.MemberID]
		m.worked += d.WorkedMinutes
		m.scheduled += d.ScheduledMinutes
		m.extra += d.ExtraMinutes
		m.short += d.ShortMinutes
		byMember[d.MemberID] = m
	}

	lines := make([]Line, 0, len(members))
	for _, m := range members {
		mins := byMember[m.ID]
		t := totals[m.ID]
		basis := RateBasisMinutes(
			m.WorkingHoursPerDay, m.WorkingDaysPerMonth,
			s.opts.DefaultWorkingHoursPerDay, s.opts.DefaultWorkingDaysPerMonth,
			mins.scheduled,
		)
		amounts := GenerateLine(LineInput{
			BaseSalary:       m.BaseSalary,
			WorkedMinutes:    mins.worked,
			ScheduledMinutes: mins.scheduled,
			ExtraMinutes:     mins.extra,
			ShortMinutes:     mins.short,
			RateBasisMinutes: basis,
			Fines:            []decimal.Decimal{t.Fines},
			Adjustments:      []decimal.Decimal{t.Adjustments},
		})
		if amounts.NegativeNet {
			log.Warn("payroll line has negative net salary",
				zap.String("period_id", p.ID.String()),
				zap.String("member_id", m.ID.String()),
				zap.String("net_salary", amounts.NetSalary.StringFixed(2)),
			)
		}

		lines = append(lines, Line{
			ID:               lineID(p.ID, m.ID),
			PayrollPeriodID:  p.ID,
			OrgID:            org.ID,
			MemberID:         m.ID,
			Currency:         org.LedgerCurrency,
			BaseSalary:       m.BaseSalary.Round(2),
			WorkedMinutes:    mins.worked,
			ScheduledMinutes: mins.scheduled,
			ExtraMinutes:     mins.extra,
			ShortMinutes:     mins.short,
			RateBasisMinutes: basis,
			OvertimeAmount:   amounts.OvertimeAmount,
			ShortDeduction:   amounts.ShortDeduction,
			FinesTotal:       amounts.FinesTotal,
			AdjustmentsTotal: amounts.AdjustmentsTotal,
			NetSalary:        amounts.NetSalary,
			NegativeNet:      amounts.NegativeNet,
		})
	}
	return lines, nil
}

// lineID is stable per (period, member) so regeneration on unchanged input
// reproduces the same rows.
func lineID(periodID, memberID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(periodID, memberID[:])
}

func (s *service) storeLines(ctx context.Context, orgID string, lease *Period, lines []Line) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := s.findPeriod(ctx, qtx, orgID, lease.ID.String())
	if err != nil {
		return err
	}
	if !sameLease(p, lease) {
		return payrollerrors.ErrGenerationInProgress
	}

	if err := qtx.ReplaceLines(ctx, p.ID, lines); err != nil {
		return apperror.Integrity(err)
	}

	now := s.now()
	p.Status = StatusGenerated
	p.GeneratedAt = &now
	p.ProcessingStartedAt = nil
	if err := qtx.UpdatePeriod(ctx, p); err != nil {
		return apperror.Integrity(err)
	}
	if err := tx.Commit(); err != nil {
		return apperror.Integrity(err)
	}
	*lease = *p
	return nil
}

func sameLease(current, lease *Period) bool {
	return current.Status == StatusProcessing &&
		current.ProcessingStartedAt != nil &&
		lease.ProcessingStartedAt != nil &&
		current.ProcessingStartedAt.Equal(*lease.ProcessingStartedAt)
}

// releaseLease puts a failed generation's period back where it was, unless
// another caller has since reclaimed it.
func (s *service) releaseLease(ctx context.Context, orgID string, lease *Period, prior string) {
	log := contextutil.GetLogger(ctx, s.logger)
	ctx = context.WithoutCancel(ctx)

	err := func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		qtx := s.repo.WithTx(tx)
		p, err := qtx.FindPeriod(ctx, orgID, lease.ID.String())
		if err != nil {
			return err
		}
		if !sameLease(p, lease) {
			return nil
		}
		p.Status = prior
		p.ProcessingStartedAt = nil
		if err := qtx.UpdatePeriod(ctx, p); err != nil {
			return err
		}
		return tx.Commit()
	}()
	if err != nil {
		log.Error("release generation lease failed", zap.String("period_id", lease.ID.String()), zap.Error(err))
	}
}

// Approve marks lines approved for the whole period or for the actor's
// team. The period only becomes approved once no unapproved line is left.
func (s *service) Approve(ctx context.Context, orgID, actorID, periodID string, req ApproveRequest) (ApproveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return ApproveResponse{}, apperror.InvalidField("actor_id")
	}

	var memberIDs []string
	switch req.Scope {
	case ScopeAll:
	case ScopeTeam:
		memberIDs, err = s.deps.Members.ListTeamMemberIDs(ctx, orgID, actorID)
		if err != nil {
			return ApproveResponse{}, err
		}
		if memberIDs == nil {
			memberIDs = []string{}
		}
	default:
		return ApproveResponse{}, payrollerrors.ErrInvalidScope
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ApproveResponse{}, apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := s.findPeriod(ctx, qtx, orgID, periodID)
	if err != nil {
		return ApproveResponse{}, err
	}
	switch p.Status {
	case StatusLocked:
		return ApproveResponse{}, payrollerrors.ErrPeriodLocked
	case StatusProcessing:
		return ApproveResponse{}, payrollerrors.ErrGenerationInProgress
	case StatusDraft:
		return ApproveResponse{}, payrollerrors.ErrPeriodNotGenerated
	}

	now := s.now()
	var approved int64
	if memberIDs == nil || len(memberIDs) > 0 {
		approved, err = qtx.ApproveLines(ctx, periodID, memberIDs, actor, now)
		if err != nil {
			return ApproveResponse{}, apperror.Integrity(err)
		}
	}
	pending, err := qtx.CountLines(ctx, periodID, false)
	if err != nil {
		return ApproveResponse{}, apperror.Integrity(err)
	}

	advanced := false
	if pending == 0 && p.Status == StatusGenerated {
		total, err := qtx.CountLines(ctx, periodID, true)
		if err != nil {
			return ApproveResponse{}, apperror.Integrity(err)
		}
		p.Status = StatusApproved
		p.ApprovedAt = &now
		if err := qtx.UpdatePeriod(ctx, p); err != nil {
			return ApproveResponse{}, apperror.Integrity(err)
		}
		if err := s.enqueue(ctx, tx, p.ID.String(), events.EventPayrollApproved, events.PayrollApprovedTopic,
			events.PayrollApprovedEvent{
				EventType:  events.EventPayrollApproved,
				RequestID:  rid,
				PeriodID:   p.ID.String(),
				PeriodCode: p.Code,
				OrgID:      orgID,
				ApprovedBy: actorID,
				LineCount:  int(total),
				OccurredAt: now,
			}); err != nil {
			return ApproveResponse{}, err
		}
		advanced = true
	}

	if err := tx.Commit(); err != nil {
		return ApproveResponse{}, apperror.Integrity(err)
	}

	s.audit.Log(ctx, audit.Entry{
		OrgID:      orgID,
		ActorID:    actorID,
		Action:     "payroll.approved",
		EntityType: "payroll_period",
		EntityID:   periodID,
		Meta: map[string]any{
			"scope":    req.Scope,
			"approved": approved,
			"pending":  pending,
			"advanced": advanced,
		},
	})
	log.Info("payroll lines approved",
		zap.String("request_id", rid),
		zap.String("period_id", periodID),
		zap.String("scope", req.Scope),
		zap.Int64("approved", approved),
		zap.Int64("pending", pending),
	)
	return ApproveResponse{
		Period:   ToPeriodResponse(*p),
		Scope:    req.Scope,
		Approved: approved,
		Pending:  pending,
	}, nil
}

func (s *service) Lock(ctx context.Context, orgID, actorID, periodID string) (PeriodResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return PeriodResponse{}, apperror.InvalidField("actor_id")
	}
	org, err := s.deps.Orgs.Get(ctx, orgID)
	if err != nil {
		return PeriodResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := s.findPeriod(ctx, qtx, orgID, periodID)
	if err != nil {
		return PeriodResponse{}, err
	}
	switch p.Status {
	case StatusLocked:
		return PeriodResponse{}, payrollerrors.ErrPeriodLocked
	case StatusDraft, StatusProcessing:
		return PeriodResponse{}, payrollerrors.ErrPeriodNotGenerated
	}

	pending, err := qtx.CountLines(ctx, periodID, false)
	if err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}
	if pending > 0 || p.Status != StatusApproved {
		return PeriodResponse{}, payrollerrors.ErrUnapprovedLines
	}

	lines, err := qtx.ListLines(ctx, periodID, "")
	if err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}
	net := decimal.Zero
	for _, l := range lines {
		net = net.Add(l.NetSalary)
	}

	now := s.now()
	p.Status = StatusLocked
	p.LockedAt = &now
	p.LockedBy = &actor
	if err := qtx.UpdatePeriod(ctx, p); err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}
	if err := s.enqueue(ctx, tx, p.ID.String(), events.EventPayrollLocked, events.PayrollLockedTopic,
		events.PayrollLockedEvent{
			EventType:  events.EventPayrollLocked,
			RequestID:  rid,
			PeriodID:   p.ID.String(),
			PeriodCode: p.Code,
			OrgID:      orgID,
			LockedBy:   actorID,
			NetTotal:   net.StringFixed(2),
			Currency:   org.LedgerCurrency,
			OccurredAt: now,
		}); err != nil {
		return PeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, apperror.Integrity(err)
	}

	s.audit.Log(ctx, audit.Entry{
		OrgID:      orgID,
		ActorID:    actorID,
		Action:     "payroll.locked",
		EntityType: "payroll_period",
		EntityID:   periodID,
		Meta:       map[string]any{"lines": len(lines), "net_total": net.StringFixed(2)},
	})
	log.Info("payroll period locked", zap.String("request_id", rid), zap.String("period_id", periodID))
	return ToPeriodResponse(*p), nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, aggregateID, eventType, topic string, payload any) error {
	if s.outbox == nil {
		return nil
	}
	event, err := kafka.NewOutboxEvent(contextutil.GetRequestID(ctx), "payroll_period", aggregateID, eventType, topic, payload)
	if err != nil {
		return apperror.Integrity(err)
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("payroll outbox persist failed",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return apperror.Integrity(err)
	}
	return nil
}

func (s *service) GetPeriod(ctx context.Context, orgID, periodID string) (PeriodResponse, error) {
	p, err := s.findPeriod(ctx, s.repo, orgID, periodID)
	if err != nil {
		return PeriodResponse{}, err
	}
	return ToPeriodResponse(*p), nil
}

func (s *service) ListPeriods(ctx context.Context, orgID string) ([]PeriodResponse, error) {
	rows, err := s.repo.ListPeriods(ctx, orgID)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	out := make([]PeriodResponse, len(rows))
	for i, p := range rows {
		out[i] = ToPeriodResponse(p)
	}
	return out, nil
}

func (s *service) ListLines(ctx context.Context, orgID, periodID string, q ListLinesQuery) ([]LineResponse, error) {
	if _, err := s.findPeriod(ctx, s.repo, orgID, periodID); err != nil {
		return nil, err
	}
	lines, err := s.repo.ListLines(ctx, periodID, q.MemberID)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	out := make([]LineResponse, len(lines))
	for i, l := range lines {
		out[i] = ToLineResponse(l)
	}
	return out, nil
}

func (s *service) findPeriod(ctx context.Context, repo Repository, orgID, periodID string) (*Period, error) {
	if _, err := uuid.Parse(periodID); err != nil {
		return nil, payrollerrors.ErrPeriodNotFound
	}
	p, err := repo.FindPeriod(ctx, orgID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPeriodNotFound
		}
		return nil, apperror.Integrity(err)
	}
	return p, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func ToPeriodResponse(p Period) PeriodResponse {
	resp := PeriodResponse{
		ID:          p.ID.String(),
		OrgID:       p.OrgID.String(),
		Code:        p.Code,
		PeriodStart: civildate.Format(p.PeriodStart),
		PeriodEnd:   civildate.Format(p.PeriodEnd),
		Status:      p.Status,
		CreatedBy:   p.CreatedBy.String(),
		GeneratedAt: formatTime(p.GeneratedAt),
		ApprovedAt:  formatTime(p.ApprovedAt),
		LockedAt:    formatTime(p.LockedAt),
	}
	if p.LockedBy != nil {
		v := p.LockedBy.String()
		resp.LockedBy = &v
	}
	return resp
}

func ToLineResponse(l Line) LineResponse {
	resp := LineResponse{
		ID:               l.ID.String(),
		PayrollPeriodID:  l.PayrollPeriodID.String(),
		MemberID:         l.MemberID.String(),
		Currency:         l.Currency,
		BaseSalary:       l.BaseSalary.StringFixed(2),
		WorkedMinutes:    l.WorkedMinutes,
		ScheduledMinutes: l.ScheduledMinutes,
		ExtraMinutes:     l.ExtraMinutes,
		ShortMinutes:     l.ShortMinutes,
		RateBasisMinutes: l.RateBasisMinutes,
		OvertimeAmount:   l.OvertimeAmount.StringFixed(2),
		ShortDeduction:   l.ShortDeduction.StringFixed(2),
		FinesTotal:       l.FinesTotal.StringFixed(2),
		AdjustmentsTotal: l.AdjustmentsTotal.StringFixed(2),
		NetSalary:        l.NetSalary.StringFixed(2),
		NegativeNet:      l.NegativeNet,
		Approved:         l.Approved,
	}
	if l.Member != nil {
		resp.MemberName = l.Member.FullName
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}
