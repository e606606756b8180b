package dashboard

import (
	"fmt"

	"pulseboard/internal/notion"
)

// Alert severities.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

// Alert is one active command-center condition.
type Alert struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

// AlertsReport is the command-center panel. AllClear distinguishes "no
// alert fired" from an empty list.
type AlertsReport struct {
	Alerts   []Alert `json:"alerts"`
	AllClear bool    `json:"all_clear"`
}

// CommandCenter evaluates the four alert conditions over the snapshot
// collections. Each alert appears only when its count is positive.
func CommandCenter(projects []notion.Project, tasks []notion.Task) AlertsReport {
	dueSoon := 0
	stalled := 0
	for _, p := range projects {
		if p.DaysUntilDue == nil {
			continue
		}
		if p.Status != notion.StatusDone && *p.DaysUntilDue <= 7 {
			dueSoon++
		}
		// Due date stands in for last activity here: the source data has
		// no last-modified signal, so "overdue by more than two weeks"
		// approximates "no progress in two weeks".
		if p.Status == notion.StatusInProgress && *p.DaysUntilDue < -14 {
			stalled++
		}
	}

	blocked := 0
	for _, t := range tasks {
		if IsBlocked(t.Status) {
			blocked++
		}
	}

	overloaded := 0
	for _, c := range CapacityLoad(tasks) {
		if c.Total > fullCapacityTasks {
			overloaded++
		}
	}

	var alerts []Alert
	if dueSoon > 0 {
		alerts = append(alerts, Alert{
			Severity: SeverityHigh,
			Count:    dueSoon,
			Message:  fmt.Sprintf("%d projects due within 7 days", dueSoon),
		})
	}
	if blocked > 0 {
		alerts = append(alerts, Alert{
			Severity: SeverityCritical,
			Count:    blocked,
			Message:  fmt.Sprintf("%d tasks blocked", blocked),
		})
	}
	if stalled > 0 {
		alerts = append(alerts, Alert{
			Severity: SeverityMedium,
			Count:    stalled,
			Message:  fmt.Sprintf("%d projects with no movement for 14 days", stalled),
		})
	}
	if overloaded > 0 {
		alerts = append(alerts, Alert{
			Severity: SeverityMedium,
			Count:    overloaded,
			Message:  fmt.Sprintf("%d people over capacity", overloaded),
		})
	}

	return AlertsReport{Alerts: alerts, AllClear: len(alerts) == 0}
}
