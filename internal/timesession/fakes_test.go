package timesession_test

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"go-workforce/internal/member"
	"go-workforce/internal/organization"
	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shift"
	shifterrors "go-workforce/internal/shift/errors"
	"go-workforce/internal/timesession"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type fakeMembers struct {
	orgID uuid.UUID
	err   error
}

func (f fakeMembers) Get(_ context.Context, _ string, memberID string) (member.Member, error) {
	if f.err != nil {
		return member.Member{}, f.err
	}
	return member.Member{ID: uuid.MustParse(memberID), OrgID: f.orgID, Status: member.StatusActive}, nil
}

type fakeOrgs struct {
	org organization.Organization
}

func (f fakeOrgs) Get(context.Context, string) (organization.Organization, error) {
	return f.org, nil
}

type fakeShifts struct {
	byDate map[string]*shift.Shift
	rules  map[string]shift.BreakRule
}

func (f fakeShifts) ResolveActive(_ context.Context, _, _ string, date time.Time) (*shift.Shift, error) {
	return f.byDate[civildate.Format(date)], nil
}

func (f fakeShifts) GetBreakRule(_ context.Context, _ string, id string) (shift.BreakRule, error) {
	if r, ok := f.rules[id]; ok {
		return r, nil
	}
	return shift.BreakRule{}, shifterrors.ErrBreakRuleNotFound
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memStore mimics the partial unique indexes on open sessions and breaks.
type memStore struct {
	mu       sync.Mutex
	sessions []*timesession.Session
	breaks   []*timesession.Break
}

func (m *memStore) WithTx(*sql.Tx) timesession.Repository { return m }

func (m *memStore) CreateSession(_ context.Context, s *timesession.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.sessions {
		if x.OrgID == s.OrgID && x.MemberID == s.MemberID && x.EndTime == nil {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_time_sessions_open"}
		}
	}
	cp := *s
	m.sessions = append(m.sessions, &cp)
	return nil
}

func (m *memStore) FindOpenSession(_ context.Context, orgID, memberID string) (*timesession.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.sessions {
		if x.OrgID.String() == orgID && x.MemberID.String() == memberID && x.EndTime == nil {
			cp := *x
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) FindSession(_ context.Context, orgID, id string) (*timesession.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.sessions {
		if x.OrgID.String() == orgID && x.ID.String() == id {
			cp := *x
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) CloseSession(_ context.Context, s *timesession.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.sessions {
		if x.ID == s.ID {
			x.EndTime = s.EndTime
			x.TotalMinutes = s.TotalMinutes
		}
	}
	return nil
}

func (m *memStore) ListSessions(_ context.Context, orgID, memberID string, from, to time.Time) ([]timesession.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []timesession.Session
	for _, x := range m.sessions {
		if x.OrgID.String() != orgID || (memberID != "" && x.MemberID.String() != memberID) {
			continue
		}
		if !civildate.Within(x.SessionDate, from, to) {
			continue
		}
		cp := *x
		for _, b := range m.breaks {
			if b.TimeSessionID == x.ID {
				cp.Breaks = append(cp.Breaks, *b)
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *memStore) CreateBreak(_ context.Context, b *timesession.Break) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.breaks {
		if x.TimeSessionID == b.TimeSessionID && x.EndTime == nil {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_break_sessions_open"}
		}
	}
	cp := *b
	m.breaks = append(m.breaks, &cp)
	return nil
}

func (m *memStore) FindOpenBreak(_ context.Context, sessionID string) (*timesession.Break, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.breaks {
		if x.TimeSessionID.String() == sessionID && x.EndTime == nil {
			cp := *x
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) CloseBreak(_ context.Context, b *timesession.Break) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.breaks {
		if x.ID == b.ID {
			x.EndTime = b.EndTime
			x.TotalMinutes = b.TotalMinutes
		}
	}
	return nil
}

func (m *memStore) openSessions(memberID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, x := range m.sessions {
		if x.MemberID == memberID && x.EndTime == nil {
			n++
		}
	}
	return n
}
