package member

import "sort"

// MaxReportingDepth bounds team traversal so a corrupted reporting graph
// still terminates.
const MaxReportingDepth = 64

// TeamOf returns the sorted transitive reports of managerID, excluding the
// manager. Cycles and over-deep chains are cut by a visited set and depth bound.
func TeamOf(edges []ReportingEdge, managerID string, maxDepth int) []string {
	reports := make(map[string][]string, len(edges))
	for _, e := range edges {
		if e.ManagerID == "" || e.MemberID == "" {
			continue
		}
		reports[e.ManagerID] = append(reports[e.ManagerID], e.MemberID)
	}

	visited := map[string]bool{managerID: true}
	frontier := []string{managerID}
	team := []string{}
	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			for _, child := range reports[id] {
				if visited[child] {
					continue
				}
				visited[child] = true
				team = append(team, child)
				next = append(next, child)
			}
		}
		frontier = next
	}

	sort.Strings(team)
	return team
}

// createsCycle reports whether making managerID the manager of memberID would
// close a loop, i.e. memberID already sits on managerID's chain of managers.
func createsCycle(edges []ReportingEdge, memberID, managerID string) bool {
	if memberID == managerID {
		return true
	}
	managerOf := make(map[string]string, len(edges))
	for _, e := range edges {
		managerOf[e.MemberID] = e.ManagerID
	}

	seen := map[string]bool{}
	cur := managerID
	for steps := 0; cur != "" && steps <= len(edges); steps++ {
		if cur == memberID {
			return true
		}
		if seen[cur] {
			// pre-existing loop that does not pass through memberID
			return false
		}
		seen[cur] = true
		cur = managerOf[cur]
	}
	return false
}
