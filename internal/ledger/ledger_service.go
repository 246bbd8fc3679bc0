package ledger

import (
	"context"
	"strings"
	"time"

	"go-workforce/internal/audit"
	ledgererrors "go-workforce/internal/ledger/errors"
	"go-workforce/internal/member"
	"go-workforce/internal/organization"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type MemberDirectory interface {
	Get(ctx context.Context, orgID, memberID string) (member.Member, error)
}

type OrgDirectory interface {
	Get(ctx context.Context, orgID string) (organization.Organization, error)
}

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	AddFine(ctx context.Context, orgID, actorID string, req CreateEntryRequest) (EntryResponse, error)
	AddAdjustment(ctx context.Context, orgID, actorID string, req CreateEntryRequest) (EntryResponse, error)
	ListEntries(ctx context.Context, orgID string, q ListEntriesQuery) ([]EntryResponse, error)
	TotalsForRange(ctx context.Context, orgID string, from, to time.Time) (map[uuid.UUID]Totals, error)
}

type service struct {
	repo    Repository
	members MemberDirectory
	orgs    OrgDirectory
	audit   audit.Sink
	logger  *zap.Logger
}

func NewService(repo Repository, members MemberDirectory, orgs OrgDirectory, sink audit.Sink, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	if sink == nil {
		sink = audit.NewZapSink(l)
	}
	return &service{repo: repo, members: members, orgs: orgs, audit: sink, logger: l}
}

func (s *service) AddFine(ctx context.Context, orgID, actorID string, req CreateEntryRequest) (EntryResponse, error) {
	return s.add(ctx, orgID, actorID, KindFine, req)
}

func (s *service) AddAdjustment(ctx context.Context, orgID, actorID string, req CreateEntryRequest) (EntryResponse, error) {
	return s.add(ctx, orgID, actorID, KindAdjustment, req)
}

func (s *service) add(ctx context.Context, orgID, actorID, kind string, req CreateEntryRequest) (EntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return EntryResponse{}, apperror.InvalidField("actor_id")
	}
	date, err := civildate.Parse(req.Date)
	if err != nil {
		return EntryResponse{}, ledgererrors.ErrInvalidDate
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return EntryResponse{}, ledgererrors.ErrInvalidAmount
	}
	amount = amount.Round(2)
	switch {
	case kind == KindFine && !amount.IsPositive():
		return EntryResponse{}, ledgererrors.ErrFineNotPositive
	case kind == KindAdjustment && amount.IsZero():
		return EntryResponse{}, ledgererrors.ErrZeroAdjustment
	}

	org, err := s.orgs.Get(ctx, orgID)
	if err != nil {
		return EntryResponse{}, err
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency != org.LedgerCurrency {
		return EntryResponse{}, ledgererrors.ErrCurrencyMismatch
	}
	m, err := s.members.Get(ctx, orgID, req.MemberID)
	if err != nil {
		return EntryResponse{}, err
	}

	e := &Entry{
		ID:        uuid.New(),
		OrgID:     org.ID,
		MemberID:  m.ID,
		Kind:      kind,
		EntryDate: date,
		Reason:    strings.TrimSpace(req.Reason),
		Amount:    amount,
		Currency:  currency,
		CreatedBy: actor,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		log.Error("ledger entry persist failed", zap.String("kind", kind), zap.Error(err))
		return EntryResponse{}, apperror.Integrity(err)
	}

	s.audit.Log(ctx, audit.Entry{
		OrgID:      orgID,
		ActorID:    actorID,
		Action:     "ledger." + kind + "_added",
		EntityType: "ledger_entry",
		EntityID:   e.ID.String(),
		Meta: map[string]any{
			"member_id": m.ID.String(),
			"amount":    amount.StringFixed(2),
			"currency":  currency,
			"date":      req.Date,
		},
	})
	return ToResponse(*e), nil
}

func (s *service) ListEntries(ctx context.Context, orgID string, q ListEntriesQuery) ([]EntryResponse, error) {
	from, to, err := parseRange(q.From, q.To)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListRange(ctx, orgID, q.MemberID, from, to)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	out := make([]EntryResponse, len(rows))
	for i, e := range rows {
		out[i] = ToResponse(e)
	}
	return out, nil
}

// TotalsForRange sums fines and adjustments per member for payroll generation.
func (s *service) TotalsForRange(ctx context.Context, orgID string, from, to time.Time) (map[uuid.UUID]Totals, error) {
	totals, err := s.repo.TotalsByMember(ctx, orgID, from, to)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	return totals, nil
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := civildate.Parse(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, ledgererrors.ErrInvalidDate
	}
	to, err := civildate.Parse(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, ledgererrors.ErrInvalidDate
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, ledgererrors.ErrInvalidRange
	}
	return from, to, nil
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID.String(),
		MemberID:  e.MemberID.String(),
		Kind:      e.Kind,
		Date:      civildate.Format(e.EntryDate),
		Reason:    e.Reason,
		Amount:    e.Amount.StringFixed(2),
		Currency:  e.Currency,
		CreatedBy: e.CreatedBy.String(),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
