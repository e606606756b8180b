package notion

import (
	"math"
	"time"
)

// Property names as configured in the upstream databases.
const (
	propProjectName   = "Project name"
	propTaskName      = "Task name"
	propSprintName    = "Sprint name"
	propPeople        = "People"
	propAssign        = "Assign"
	propStatus        = "Status"
	propCompletion    = "Completion"
	propDates         = "Dates"
	propDue           = "Due"
	propTasks         = "Tasks"
	propSprint        = "Sprint"
	propProject       = "Project"
	propCurrentSprint = "Is Current Sprint"
)

// MapProject transforms one raw record into a canonical Project. Every
// missing or mistyped field degrades to its documented default; mapping
// never fails. The project's due date is the END of its date range.
func MapProject(page PageDTO, now time.Time) Project {
	props := page.Properties

	var due *time.Time
	if d := props[propDates].Date; d != nil && d.End != "" {
		if t, err := ParseDate(d.End); err == nil {
			due = &t
		}
	}

	return Project{
		ID:           page.ID,
		Name:         plainText(props[propProjectName].Title),
		Owners:       personNames(props[propPeople].People),
		Status:       statusName(props[propStatus].Status),
		Completion:   CompletionFromRollup(props[propCompletion].Rollup),
		DueDate:      due,
		TasksCount:   len(props[propTasks].Relation),
		DaysUntilDue: DaysUntilDue(due, now),
	}
}

// MapTask transforms one raw record into a canonical Task. The task's due
// date is the START of its date range, and its creation instant comes from
// record metadata (zero if unparseable).
func MapTask(page PageDTO, now time.Time) Task {
	props := page.Properties

	var due *time.Time
	if d := props[propDue].Date; d != nil && d.Start != "" {
		if t, err := ParseDate(d.Start); err == nil {
			due = &t
		}
	}

	var created time.Time
	if t, err := ParseTimestamp(page.CreatedTime); err == nil {
		created = t
	}

	return Task{
		ID:              page.ID,
		Name:            plainText(props[propTaskName].Title),
		Assignees:       personNames(props[propAssign].People),
		Status:          statusName(props[propStatus].Status),
		DueDate:         due,
		Sprint:          firstRelation(props[propSprint].Relation),
		Project:         firstRelation(props[propProject].Relation),
		InCurrentSprint: rollupBool(props[propCurrentSprint].Rollup),
		DaysUntilDue:    DaysUntilDue(due, now),
		CreatedAt:       created,
	}
}

// MapSprint transforms one raw record into a canonical Sprint. Absent
// range bounds default to the composition instant; the raw absence is not
// preserved, which can make an unset sprint look zero-length and ending
// today. Kept as upstream behaves.
func MapSprint(page PageDTO, now time.Time) Sprint {
	props := page.Properties

	start, end := now, now
	if d := props[propDates].Date; d != nil {
		if t, err := ParseDate(d.Start); d.Start != "" && err == nil {
			start = t
		}
		if t, err := ParseDate(d.End); d.End != "" && err == nil {
			end = t
		}
	}

	return Sprint{
		ID:         page.ID,
		Name:       plainText(props[propSprintName].Title),
		StartDate:  start,
		EndDate:    end,
		TasksCount: len(props[propTasks].Relation),
		IsCurrent:  formulaBool(props[propCurrentSprint].Formula),
	}
}

// DaysUntilDue returns the signed calendar-day difference between the due
// date and now: positive future, negative past, zero today, nil for nil.
// Both instants are truncated to their civil date before differencing so
// DST shifts cannot skew the count.
func DaysUntilDue(due *time.Time, now time.Time) *int {
	if due == nil {
		return nil
	}
	days := DaysBetween(now, *due)
	return &days
}

// DaysBetween returns the calendar-day count from a's date to b's date.
func DaysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CompletionFromRollup extracts a completion percentage from either rollup
// encoding: a direct number used as-is, or an array of statuses where
// completion is the share of "Done" entries. Anything else yields 0. The
// result is always rounded and clamped to [0, 100].
func CompletionFromRollup(rollup *RollupDTO) int {
	if rollup == nil {
		return 0
	}
	switch rollup.Type {
	case "number":
		if rollup.Number == nil {
			return 0
		}
		return clampPercent(*rollup.Number)
	case "array":
		if len(rollup.Array) == 0 {
			return 0
		}
		done := 0
		for _, item := range rollup.Array {
			if item.Type == "status" && item.Status != nil && item.Status.Name == StatusDone {
				done++
			}
		}
		return clampPercent(float64(done) / float64(len(rollup.Array)) * 100)
	default:
		return 0
	}
}

func clampPercent(v float64) int {
	rounded := int(math.Round(v))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// plainText takes the first text run's plain content, or empty.
func plainText(title []RichTextDTO) string {
	if len(title) == 0 {
		return ""
	}
	return title[0].PlainText
}

// personNames maps referenced people to display names. A person without a
// display name yields the "Unassigned" placeholder; an absent list yields
// an empty list, not a list of placeholders.
func personNames(people []PersonDTO) []string {
	if len(people) == 0 {
		return nil
	}
	names := make([]string, 0, len(people))
	for _, p := range people {
		if p.Name == "" {
			names = append(names, "Unassigned")
			continue
		}
		names = append(names, p.Name)
	}
	return names
}

func statusName(status *StatusDTO) string {
	if status == nil || status.Name == "" {
		return StatusUnknown
	}
	return status.Name
}

func firstRelation(relation []RelationDTO) string {
	if len(relation) == 0 {
		return ""
	}
	return relation[0].ID
}

// rollupBool trusts the nested boolean only when the wrapper declares a
// boolean type.
func rollupBool(rollup *RollupDTO) bool {
	if rollup == nil || rollup.Type != "boolean" || rollup.Boolean == nil {
		return false
	}
	return *rollup.Boolean
}

// formulaBool is the formula-wrapper counterpart of rollupBool.
func formulaBool(formula *FormulaDTO) bool {
	if formula == nil || formula.Type != "boolean" || formula.Boolean == nil {
		return false
	}
	return *formula.Boolean
}
