package shift

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/audit"
	"go-workforce/internal/member"
	membererrors "go-workforce/internal/member/errors"
	"go-workforce/internal/shared/civildate"
	shifterrors "go-workforce/internal/shift/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	shifts      map[string]*Shift
	assignments []Assignment
	ended       map[string]time.Time
	created     []Assignment
	listErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{shifts: map[string]*Shift{}, ended: map[string]time.Time{}}
}

func (f *fakeRepo) WithTx(*sql.Tx) Repository { return f }

func (f *fakeRepo) CreateShift(_ context.Context, s *Shift) error {
	f.shifts[s.ID.String()] = s
	return nil
}

func (f *fakeRepo) UpdateShift(_ context.Context, s *Shift) error {
	f.shifts[s.ID.String()] = s
	return nil
}

func (f *fakeRepo) FindShift(_ context.Context, _ string, id string) (*Shift, error) {
	if s, ok := f.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListShifts(context.Context, string) ([]Shift, error) {
	var out []Shift
	for _, s := range f.shifts {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepo) ListAssignments(context.Context, string, string) ([]Assignment, error) {
	return f.assignments, f.listErr
}

func (f *fakeRepo) LockMemberAssignments(context.Context, string, string) error { return nil }

func (f *fakeRepo) CreateAssignment(_ context.Context, a *Assignment) error {
	f.created = append(f.created, *a)
	return nil
}

func (f *fakeRepo) EndAssignment(_ context.Context, id string, to time.Time) error {
	f.ended[id] = to
	return nil
}

func (f *fakeRepo) CreateBreakRule(context.Context, *BreakRule) error { return nil }

func (f *fakeRepo) FindBreakRule(context.Context, string, string) (*BreakRule, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBreakRules(context.Context, string) ([]BreakRule, error) { return nil, nil }

type fakeDirectory struct {
	get func(ctx context.Context, orgID, memberID string) (member.Member, error)
}

func (f fakeDirectory) Get(ctx context.Context, orgID, memberID string) (member.Member, error) {
	return f.get(ctx, orgID, memberID)
}

func activeDirectory(orgID uuid.UUID) fakeDirectory {
	return fakeDirectory{get: func(_ context.Context, _ string, memberID string) (member.Member, error) {
		return member.Member{ID: uuid.MustParse(memberID), OrgID: orgID, Status: member.StatusActive}, nil
	}}
}

func TestShiftService_CreateShift_Validation(t *testing.T) {
	svc := NewService(nil, newFakeRepo(), nil, &audit.Recorder{})
	ctx := context.Background()
	orgID := uuid.NewString()

	_, err := svc.CreateShift(ctx, orgID, ShiftRequest{Name: "night", StartTime: "22:00", EndTime: "06:00"})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidShiftWindow)

	_, err = svc.CreateShift(ctx, orgID, ShiftRequest{Name: "bad", StartTime: "25:00", EndTime: "06:00"})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidClockTime)

	resp, err := svc.CreateShift(ctx, orgID, ShiftRequest{Name: "night", StartTime: "22:00", EndTime: "06:00", IsOvernight: true})
	assert.NoError(t, err)
	assert.Equal(t, 480, resp.ScheduledMinutes)
}

func TestShiftService_AssignShift(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	memberID := uuid.NewString()
	sh := &Shift{ID: uuid.New(), OrgID: orgID, StartTime: "09:00", EndTime: "17:00"}

	t.Run("closes previous open-ended assignment", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := newFakeRepo()
		repo.shifts[sh.ID.String()] = sh
		prev := Assignment{ID: uuid.New(), EffectiveFrom: civildate.New(2026, 1, 1)}
		repo.assignments = []Assignment{prev}
		rec := &audit.Recorder{}

		svc := NewService(db, repo, activeDirectory(orgID), rec)
		resp, err := svc.AssignShift(ctx, orgID.String(), "actor", AssignShiftRequest{
			MemberID: memberID, ShiftID: sh.ID.String(), EffectiveFrom: "2026-03-01",
		})
		assert.NoError(t, err)
		assert.Equal(t, "2026-03-01", resp.EffectiveFrom)
		assert.Equal(t, civildate.New(2026, 2, 28), repo.ended[prev.ID.String()])
		assert.Len(t, repo.created, 1)
		assert.Len(t, rec.Entries, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects overlap with bounded assignment", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := newFakeRepo()
		repo.shifts[sh.ID.String()] = sh
		end := civildate.New(2026, 3, 31)
		repo.assignments = []Assignment{{ID: uuid.New(), EffectiveFrom: civildate.New(2026, 3, 1), EffectiveTo: &end}}

		svc := NewService(db, repo, activeDirectory(orgID), nil)
		_, err = svc.AssignShift(ctx, orgID.String(), "actor", AssignShiftRequest{
			MemberID: memberID, ShiftID: sh.ID.String(), EffectiveFrom: "2026-03-15",
		})
		assert.ErrorIs(t, err, shifterrors.ErrAssignmentOverlap)
		assert.Empty(t, repo.created)
	})

	t.Run("inactive member", func(t *testing.T) {
		dir := fakeDirectory{get: func(context.Context, string, string) (member.Member, error) {
			return member.Member{}, membererrors.ErrUserInactive
		}}
		svc := NewService(nil, newFakeRepo(), dir, nil)
		_, err := svc.AssignShift(ctx, orgID.String(), "actor", AssignShiftRequest{
			MemberID: memberID, ShiftID: sh.ID.String(), EffectiveFrom: "2026-03-15",
		})
		assert.ErrorIs(t, err, membererrors.ErrUserInactive)
	})

	t.Run("end before start", func(t *testing.T) {
		svc := NewService(nil, newFakeRepo(), activeDirectory(orgID), nil)
		to := "2026-03-01"
		_, err := svc.AssignShift(ctx, orgID.String(), "actor", AssignShiftRequest{
			MemberID: memberID, ShiftID: sh.ID.String(), EffectiveFrom: "2026-03-15", EffectiveTo: &to,
		})
		assert.ErrorIs(t, err, shifterrors.ErrInvalidDate)
	})
}

func TestShiftService_ResolveActive(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	sh := &Shift{ID: uuid.New(), OrgID: orgID, StartTime: "09:00", EndTime: "17:00"}

	repo := newFakeRepo()
	repo.shifts[sh.ID.String()] = sh
	repo.assignments = []Assignment{{ID: uuid.New(), ShiftID: sh.ID, EffectiveFrom: civildate.New(2026, 1, 1)}}
	svc := NewService(nil, repo, nil, nil)

	got, err := svc.ResolveActive(ctx, orgID.String(), uuid.NewString(), civildate.New(2026, 2, 1))
	assert.NoError(t, err)
	assert.Equal(t, sh.ID, got.ID)

	got, err = svc.ResolveActive(ctx, orgID.String(), uuid.NewString(), civildate.New(2025, 2, 1))
	assert.NoError(t, err)
	assert.Nil(t, got)

	repo.listErr = errors.New("timeout")
	_, err = svc.ResolveActive(ctx, orgID.String(), uuid.NewString(), civildate.New(2026, 2, 1))
	assert.Error(t, err)
}
