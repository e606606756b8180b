package dashboard

import (
	"sort"

	"pulseboard/internal/notion"
)

// PortfolioStatuses is the fixed bucket order of the portfolio panel.
var PortfolioStatuses = []string{
	notion.StatusBacklog,
	notion.StatusPlanning,
	notion.StatusInProgress,
	notion.StatusPaused,
	notion.StatusDone,
	notion.StatusCanceled,
}

// StatusCount is one bucket of the portfolio partition.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// WorklistEntry is one ranked project with its urgency badge.
type WorklistEntry struct {
	notion.Project
	Urgency Urgency `json:"urgency,omitempty"`
}

// PortfolioReport is the portfolio health panel: per-status counts plus
// the ranked worklist of active projects.
type PortfolioReport struct {
	StatusCounts []StatusCount   `json:"status_counts"`
	Worklist     []WorklistEntry `json:"worklist"`
}

const worklistLimit = 10

// PortfolioHealth partitions projects into the six fixed status buckets
// and ranks the active ones (In Progress, Planning, Paused) ascending by
// days until due, projects without a due date last, truncated to the top
// ten.
func PortfolioHealth(projects []notion.Project) PortfolioReport {
	counts := make([]StatusCount, len(PortfolioStatuses))
	for i, status := range PortfolioStatuses {
		counts[i].Status = status
	}
	for _, p := range projects {
		for i, status := range PortfolioStatuses {
			if p.Status == status {
				counts[i].Count++
				break
			}
		}
	}

	var active []notion.Project
	for _, p := range projects {
		switch p.Status {
		case notion.StatusInProgress, notion.StatusPlanning, notion.StatusPaused:
			active = append(active, p)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return worklistRank(active[i]) < worklistRank(active[j])
	})
	if len(active) > worklistLimit {
		active = active[:worklistLimit]
	}

	worklist := make([]WorklistEntry, 0, len(active))
	for _, p := range active {
		worklist = append(worklist, WorklistEntry{
			Project: p,
			Urgency: ClassifyUrgency(p.DaysUntilDue),
		})
	}

	return PortfolioReport{StatusCounts: counts, Worklist: worklist}
}

// worklistRank treats a missing due date as infinitely far out.
func worklistRank(p notion.Project) int {
	if p.DaysUntilDue == nil {
		return int(^uint(0) >> 1)
	}
	return *p.DaysUntilDue
}
