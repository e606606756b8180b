package dashboard

import (
	"math"
	"time"

	"pulseboard/internal/notion"
)

// WeeklyGoal is the fixed WIG target: tasks to close per week.
const WeeklyGoal = 40

// Pace labels, graduated by goal progress.
const (
	PaceGoalReached   = "Goal reached"
	PaceOnTrack       = "On track"
	PaceAccelerate    = "Accelerate"
	PaceFallingBehind = "Falling behind"
)

// WeeklyReport is the weekly scoreboard panel.
type WeeklyReport struct {
	WeekStart    time.Time `json:"week_start"`
	WeekEnd      time.Time `json:"week_end"`
	NewTasks     int       `json:"new_tasks"`
	InProgress   int       `json:"in_progress"`
	Completed    int       `json:"completed"`
	GoalTarget   int       `json:"goal_target"`
	GoalProgress int       `json:"goal_progress"` // percent, not capped
	Pace         string    `json:"pace"`
}

// WeeklyScoreboard selects the tasks created inside the Monday-to-Sunday
// week containing now and reports the lead measures plus progress toward
// the weekly goal. Tasks with an unparseable creation timestamp never
// enter the window.
func WeeklyScoreboard(tasks []notion.Task, now time.Time) WeeklyReport {
	weekStart := StartOfWeek(now)
	weekEnd := EndOfWeek(now)

	report := WeeklyReport{
		WeekStart:  weekStart,
		WeekEnd:    weekEnd,
		GoalTarget: WeeklyGoal,
	}

	for _, t := range tasks {
		if t.CreatedAt.IsZero() || t.CreatedAt.Before(weekStart) || t.CreatedAt.After(weekEnd) {
			continue
		}
		report.NewTasks++
		switch t.Status {
		case notion.StatusInProgress:
			report.InProgress++
		case notion.StatusDone:
			report.Completed++
		}
	}

	progress := float64(report.Completed) / WeeklyGoal * 100
	report.GoalProgress = int(math.Round(progress))

	switch {
	case progress >= 100:
		report.Pace = PaceGoalReached
	case progress >= 75:
		report.Pace = PaceOnTrack
	case progress >= 50:
		report.Pace = PaceAccelerate
	default:
		report.Pace = PaceFallingBehind
	}

	return report
}
