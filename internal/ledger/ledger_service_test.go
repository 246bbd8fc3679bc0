package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/audit"
	"go-workforce/internal/ledger"
	ledgererrors "go-workforce/internal/ledger/errors"
	"go-workforce/internal/member"
	membererrors "go-workforce/internal/member/errors"
	"go-workforce/internal/organization"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	createFn func(ctx context.Context, e *ledger.Entry) error
	created  []ledger.Entry
	totals   map[uuid.UUID]ledger.Totals
}

func (f *fakeRepo) Create(ctx context.Context, e *ledger.Entry) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, e); err != nil {
			return err
		}
	}
	f.created = append(f.created, *e)
	return nil
}

func (f *fakeRepo) ListRange(_ context.Context, _, memberID string, from, to time.Time) ([]ledger.Entry, error) {
	var out []ledger.Entry
	for _, e := range f.created {
		if memberID != "" && e.MemberID.String() != memberID {
			continue
		}
		if civildate.Within(e.EntryDate, from, to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) TotalsByMember(context.Context, string, time.Time, time.Time) (map[uuid.UUID]ledger.Totals, error) {
	return f.totals, nil
}

type fakeMembers struct {
	active uuid.UUID
}

func (f fakeMembers) Get(_ context.Context, _ string, memberID string) (member.Member, error) {
	if memberID != f.active.String() {
		return member.Member{}, membererrors.ErrUserNotInOrg
	}
	return member.Member{ID: f.active, Status: member.StatusActive}, nil
}

type fakeOrgs struct {
	org organization.Organization
}

func (f fakeOrgs) Get(context.Context, string) (organization.Organization, error) {
	return f.org, nil
}

func setup() (ledger.Service, *fakeRepo, *audit.Recorder, organization.Organization, uuid.UUID) {
	org := organization.Organization{ID: uuid.New(), LedgerCurrency: "USD", IsActive: true}
	memberID := uuid.New()
	repo := &fakeRepo{}
	rec := &audit.Recorder{}
	svc := ledger.NewService(repo, fakeMembers{active: memberID}, fakeOrgs{org: org}, rec)
	return svc, repo, rec, org, memberID
}

func TestAddFine(t *testing.T) {
	actor := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc, repo, rec, org, memberID := setup()
		resp, err := svc.AddFine(context.Background(), org.ID.String(), actor, ledger.CreateEntryRequest{
			MemberID: memberID.String(),
			Date:     "2026-03-04",
			Reason:   "late badge return",
			Amount:   "25.5",
			Currency: "usd",
		})
		require.NoError(t, err)
		assert.Equal(t, "25.50", resp.Amount)
		assert.Equal(t, ledger.KindFine, resp.Kind)
		assert.Equal(t, "USD", resp.Currency)
		require.Len(t, repo.created, 1)
		require.Len(t, rec.Entries, 1)
		assert.Equal(t, "ledger.fine_added", rec.Entries[0].Action)
	})

	t.Run("negative fine rejected", func(t *testing.T) {
		svc, repo, _, org, memberID := setup()
		_, err := svc.AddFine(context.Background(), org.ID.String(), actor, ledger.CreateEntryRequest{
			MemberID: memberID.String(), Date: "2026-03-04", Reason: "x", Amount: "-5", Currency: "USD",
		})
		assert.ErrorIs(t, err, ledgererrors.ErrFineNotPositive)
		assert.Empty(t, repo.created)
	})

	t.Run("currency mismatch", func(t *testing.T) {
		svc, repo, _, org, memberID := setup()
		_, err := svc.AddFine(context.Background(), org.ID.String(), actor, ledger.CreateEntryRequest{
			MemberID: memberID.String(), Date: "2026-03-04", Reason: "x", Amount: "5", Currency: "EUR",
		})
		assert.ErrorIs(t, err, ledgererrors.ErrCurrencyMismatch)
		assert.Equal(t, apperror.KindPrecondition, apperror.KindOf(err))
		assert.Empty(t, repo.created)
	})

	t.Run("member outside org", func(t *testing.T) {
		svc, _, _, org, _ := setup()
		_, err := svc.AddFine(context.Background(), org.ID.String(), actor, ledger.CreateEntryRequest{
			MemberID: uuid.New().String(), Date: "2026-03-04", Reason: "x", Amount: "5", Currency: "USD",
		})
		assert.ErrorIs(t, err, membererrors.ErrUserNotInOrg)
	})

	t.Run("store failure is integrity", func(t *testing.T) {
		svc, repo, _, org, memberID := setup()
		repo.createFn = func(context.Context, *ledger.Entry) error { return errors.New("conn reset") }
		_, err := svc.AddFine(context.Background(), org.ID.String(), actor, ledger.CreateEntryRequest{
			MemberID: memberID.String(), Date: "2026-03-04", Reason: "x", Amount: "5", Currency: "USD",
		})
		assert.Equal(t, apperror.KindIntegrity, apperror.KindOf(err))
	})
}

func TestAddAdjustment_SignedAmounts(t *testing.T) {
	svc, repo, _, org, memberID := setup()
	actor := uuid.New().String()
	ctx := context.Background()

	_, err := svc.AddAdjustment(ctx, org.ID.String(), actor, ledger.CreateEntryRequest{
		MemberID: memberID.String(), Date: "2026-03-05", Reason: "equipment reimbursement", Amount: "120", Currency: "USD",
	})
	require.NoError(t, err)
	_, err = svc.AddAdjustment(ctx, org.ID.String(), actor, ledger.CreateEntryRequest{
		MemberID: memberID.String(), Date: "2026-03-06", Reason: "advance recovery", Amount: "-40.25", Currency: "USD",
	})
	require.NoError(t, err)

	_, err = svc.AddAdjustment(ctx, org.ID.String(), actor, ledger.CreateEntryRequest{
		MemberID: memberID.String(), Date: "2026-03-06", Reason: "noop", Amount: "0", Currency: "USD",
	})
	assert.ErrorIs(t, err, ledgererrors.ErrZeroAdjustment)

	require.Len(t, repo.created, 2)
	assert.True(t, repo.created[1].Amount.Equal(decimal.RequireFromString("-40.25")))

	list, err := svc.ListEntries(ctx, org.ID.String(), ledger.ListEntriesQuery{From: "2026-03-06", To: "2026-03-31"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "-40.25", list[0].Amount)

	_, err = svc.ListEntries(ctx, org.ID.String(), ledger.ListEntriesQuery{From: "2026-04-01", To: "2026-03-01"})
	assert.ErrorIs(t, err, ledgererrors.ErrInvalidRange)
}
