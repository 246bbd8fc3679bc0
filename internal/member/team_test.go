package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeamOf(t *testing.T) {
	// ceo -> (vp1 -> (lead -> dev1, dev2), vp2 with no reports), loner
	edges := []ReportingEdge{
		{MemberID: "vp1", ManagerID: "ceo"},
		{MemberID: "vp2", ManagerID: "ceo"},
		{MemberID: "lead", ManagerID: "vp1"},
		{MemberID: "dev1", ManagerID: "lead"},
		{MemberID: "dev2", ManagerID: "lead"},
	}

	assert.Equal(t, []string{"dev1", "dev2", "lead", "vp1", "vp2"}, TeamOf(edges, "ceo", MaxReportingDepth))
	assert.Equal(t, []string{"dev1", "dev2", "lead"}, TeamOf(edges, "vp1", MaxReportingDepth))
	assert.Empty(t, TeamOf(edges, "vp2", MaxReportingDepth))
	assert.Empty(t, TeamOf(edges, "loner", MaxReportingDepth))
}

func TestTeamOf_TerminatesOnCycle(t *testing.T) {
	edges := []ReportingEdge{
		{MemberID: "b", ManagerID: "a"},
		{MemberID: "c", ManagerID: "b"},
		{MemberID: "a", ManagerID: "c"},
	}
	assert.Equal(t, []string{"b", "c"}, TeamOf(edges, "a", MaxReportingDepth))
}

func TestTeamOf_DepthBound(t *testing.T) {
	edges := []ReportingEdge{
		{MemberID: "l1", ManagerID: "root"},
		{MemberID: "l2", ManagerID: "l1"},
		{MemberID: "l3", ManagerID: "l2"},
	}
	assert.Equal(t, []string{"l1", "l2"}, TeamOf(edges, "root", 2))
}

func TestCreatesCycle(t *testing.T) {
	edges := []ReportingEdge{
		{MemberID: "b", ManagerID: "a"},
		{MemberID: "c", ManagerID: "b"},
	}
	assert.True(t, createsCycle(edges, "a", "c"))
	assert.True(t, createsCycle(edges, "a", "a"))
	assert.False(t, createsCycle(edges, "c", "a"))
	assert.False(t, createsCycle(edges, "d", "c"))
}

func TestMember_WorksOn(t *testing.T) {
	m := Member{WorkingWeekdays: "1,2,3,4,5"}
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	assert.True(t, m.WorksOn(monday))
	assert.False(t, m.WorksOn(sunday))

	m.WorkingWeekdays = "7"
	assert.True(t, m.WorksOn(sunday))

	m.WorkingWeekdays = ""
	assert.True(t, m.WorksOn(sunday))
}
