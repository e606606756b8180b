package dashboard

import (
	"math"
	"time"

	"pulseboard/internal/notion"
)

const draggedNamesLimit = 3

// DraggedSummary lists carry-over work: open tasks in the current sprint
// that were created before the sprint began.
type DraggedSummary struct {
	Total int      `json:"total"`
	Names []string `json:"names"` // first three by fetch order
	More  int      `json:"more"`  // remainder beyond the named ones
}

// SprintReport is the sprint health panel. Active is false when no sprint
// carries the current flag; the rest of the report is zero in that case.
type SprintReport struct {
	Active         bool           `json:"active"`
	ID             string         `json:"id,omitempty"`
	Name           string         `json:"name,omitempty"`
	StartDate      time.Time      `json:"start_date,omitzero"`
	EndDate        time.Time      `json:"end_date,omitzero"`
	DaysRemaining  int            `json:"days_remaining"`
	NotStarted     int            `json:"not_started"`
	InProgress     int            `json:"in_progress"`
	Done           int            `json:"done"`
	CompletionRate int            `json:"completion_rate"` // percent
	Dragged        DraggedSummary `json:"dragged"`
}

// SprintHealth reports on the sprint flagged current, partitioning its
// tasks by status and surfacing carry-over work. Tasks are matched to the
// sprint through their weak sprint reference, not the task-level current
// flag, which is sourced independently and may disagree.
func SprintHealth(tasks []notion.Task, sprints []notion.Sprint, now time.Time) SprintReport {
	var current *notion.Sprint
	for i := range sprints {
		if sprints[i].IsCurrent {
			current = &sprints[i]
			break
		}
	}
	if current == nil {
		return SprintReport{Active: false}
	}

	report := SprintReport{
		Active:        true,
		ID:            current.ID,
		Name:          current.Name,
		StartDate:     current.StartDate,
		EndDate:       current.EndDate,
		DaysRemaining: notion.DaysBetween(now, current.EndDate),
	}

	total := 0
	for _, t := range tasks {
		if t.Sprint != current.ID {
			continue
		}
		total++
		switch t.Status {
		case notion.StatusNotStarted:
			report.NotStarted++
		case notion.StatusInProgress:
			report.InProgress++
		case notion.StatusDone:
			report.Done++
		}

		if t.Status != notion.StatusDone && !t.CreatedAt.IsZero() && t.CreatedAt.Before(current.StartDate) {
			report.Dragged.Total++
			if len(report.Dragged.Names) < draggedNamesLimit {
				report.Dragged.Names = append(report.Dragged.Names, t.Name)
			}
		}
	}
	report.Dragged.More = report.Dragged.Total - len(report.Dragged.Names)

	if total > 0 {
		report.CompletionRate = int(math.Round(float64(report.Done) / float64(total) * 100))
	}

	return report
}
