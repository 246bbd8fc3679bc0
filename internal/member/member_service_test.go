package member_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-workforce/internal/audit"
	"go-workforce/internal/member"
	membererrors "go-workforce/internal/member/errors"
	memberMock "go-workforce/internal/member/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service member.Service
	repo    *memberMock.MockRepository
	audit   *audit.Recorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := memberMock.NewMockRepository(ctrl)
	rec := &audit.Recorder{}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: member.NewService(db, repo, rec),
		repo:    repo,
		audit:   rec,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func newMember(orgID uuid.UUID, managerID *uuid.UUID) *member.Member {
	return &member.Member{
		ID:         uuid.New(),
		OrgID:      orgID,
		Status:     member.StatusActive,
		ManagerID:  managerID,
		BaseSalary: decimal.NewFromInt(4000),
	}
}

func TestMemberService_Get(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	orgID := uuid.New()

	t.Run("active member", func(t *testing.T) {
		m := newMember(orgID, nil)
		deps.repo.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)

		got, err := deps.service.Get(ctx, orgID.String(), m.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, m.ID, got.ID)
	})

	t.Run("other org", func(t *testing.T) {
		m := newMember(uuid.New(), nil)
		deps.repo.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)

		_, err := deps.service.Get(ctx, orgID.String(), m.ID.String())
		assert.ErrorIs(t, err, membererrors.ErrUserNotInOrg)
	})

	t.Run("missing", func(t *testing.T) {
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Get(ctx, orgID.String(), id)
		assert.ErrorIs(t, err, membererrors.ErrUserNotInOrg)
	})

	t.Run("inactive", func(t *testing.T) {
		m := newMember(orgID, nil)
		m.Status = member.StatusInactive
		deps.repo.EXPECT().FindByID(ctx, m.ID.String()).Return(m, nil)

		_, err := deps.service.Get(ctx, orgID.String(), m.ID.String())
		assert.ErrorIs(t, err, membererrors.ErrUserInactive)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := deps.service.Get(ctx, orgID.String(), "not-a-uuid")
		assert.ErrorIs(t, err, membererrors.ErrUserNotInOrg)
	})
}

func TestMemberService_SetManager(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		boss := newMember(orgID, nil)
		worker := newMember(orgID, nil)
		managerID := boss.ID.String()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockReportingGraph(ctx, orgID.String()).Return(nil)
		deps.repo.EXPECT().FindByID(ctx, worker.ID.String()).Return(worker, nil)
		deps.repo.EXPECT().FindByID(ctx, managerID).Return(boss, nil)
		deps.repo.EXPECT().ReportingEdges(ctx, orgID.String()).Return(nil, nil)
		deps.repo.EXPECT().UpdateManager(ctx, orgID.String(), worker.ID.String(), &managerID).Return(nil)

		err := deps.service.SetManager(ctx, orgID.String(), "actor", worker.ID.String(), &managerID)
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		if assert.Len(t, deps.audit.Entries, 1) {
			assert.Equal(t, "member.manager_changed", deps.audit.Entries[0].Action)
		}
	})

	t.Run("self management rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		m := newMember(orgID, nil)
		self := m.ID.String()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockReportingGraph(ctx, orgID.String()).Return(nil)
		deps.repo.EXPECT().FindByID(ctx, self).Return(m, nil)

		err := deps.service.SetManager(ctx, orgID.String(), "actor", self, &self)
		assert.ErrorIs(t, err, membererrors.ErrManagerCycle)
		assert.Empty(t, deps.audit.Entries)
	})

	t.Run("cycle rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		// top <- mid <- leaf; making leaf the manager of top closes the loop
		top := newMember(orgID, nil)
		mid := newMember(orgID, &top.ID)
		leaf := newMember(orgID, &mid.ID)
		leafID := leaf.ID.String()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockReportingGraph(ctx, orgID.String()).Return(nil)
		deps.repo.EXPECT().FindByID(ctx, top.ID.String()).Return(top, nil)
		deps.repo.EXPECT().FindByID(ctx, leafID).Return(leaf, nil)
		deps.repo.EXPECT().ReportingEdges(ctx, orgID.String()).Return([]member.ReportingEdge{
			{MemberID: mid.ID.String(), ManagerID: top.ID.String()},
			{MemberID: leafID, ManagerID: mid.ID.String()},
		}, nil)

		err := deps.service.SetManager(ctx, orgID.String(), "actor", top.ID.String(), &leafID)
		assert.ErrorIs(t, err, membererrors.ErrManagerCycle)
	})

	t.Run("store failure is integrity", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockReportingGraph(ctx, orgID.String()).Return(errors.New("conn reset"))

		id := uuid.NewString()
		err := deps.service.SetManager(ctx, orgID.String(), "actor", id, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "conn reset")
	})
}

func TestMemberService_ListTeamMemberIDs(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	deps.repo.EXPECT().ReportingEdges(ctx, "org-1").Return([]member.ReportingEdge{
		{MemberID: "b", ManagerID: "a"},
		{MemberID: "c", ManagerID: "b"},
		{MemberID: "x", ManagerID: "y"},
	}, nil)

	ids, err := deps.service.ListTeamMemberIDs(ctx, "org-1", "a")
	assert.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids)
}
