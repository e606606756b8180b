package notion

import "time"

// Project status values as configured in the workspace. Upstream statuses
// are free text, so these are the canonical set rather than a closed enum;
// anything unrecognized passes through verbatim.
const (
	StatusBacklog    = "Backlog"
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusPaused     = "Paused"
	StatusDone       = "Done"
	StatusCanceled   = "Canceled"
	StatusNotStarted = "Not Started"
	StatusArchived   = "Archived"
	StatusUnknown    = "Unknown"
)

// Project is the canonical form of one project record.
type Project struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Owners       []string   `json:"owner"`
	Status       string     `json:"status"`
	Completion   int        `json:"completion"`
	DueDate      *time.Time `json:"due_date"`
	TasksCount   int        `json:"tasks_count"`
	DaysUntilDue *int       `json:"days_until_due"`
}

// Task is the canonical form of one task record.
//
// Sprint and Project are weak references: the identifier may point at a
// record absent from the fetched collections, so lookups must go through
// the fallible snapshot accessors.
type Task struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Assignees       []string   `json:"assignee"`
	Status          string     `json:"status"`
	DueDate         *time.Time `json:"due_date"`
	Sprint          string     `json:"sprint"`
	Project         string     `json:"project"`
	InCurrentSprint bool       `json:"is_current_sprint"`
	DaysUntilDue    *int       `json:"days_until_due"`
	// CreatedAt is zero when the record's creation timestamp failed to
	// parse; trend and weekly-window routines skip such tasks.
	CreatedAt time.Time `json:"created_at"`
}

// Sprint is the canonical form of one sprint record. InCurrentSprint on
// Task and IsCurrent here come from different upstream computed fields and
// may disagree; they are intentionally not reconciled.
type Sprint struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TasksCount int       `json:"tasks_count"`
	IsCurrent  bool      `json:"is_current"`
}
