package dashboard

import (
	"testing"
	"time"

	"pulseboard/internal/notion"
)

func TestSprintHealth_NoCurrentSprint(t *testing.T) {
	sprints := []notion.Sprint{
		{ID: "s1", Name: "Past sprint"},
	}

	report := SprintHealth(nil, sprints, time.Now())
	if report.Active {
		t.Errorf("no flagged sprint should yield the empty state, got %+v", report)
	}
}

func TestSprintHealth_Partition(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	sprints := []notion.Sprint{
		{ID: "old", Name: "Sprint 8"},
		{ID: "cur", Name: "Sprint 9", StartDate: start, EndDate: end, IsCurrent: true},
	}
	inSprint := func(id, status string, created time.Time) notion.Task {
		return notion.Task{ID: id, Name: id, Status: status, Sprint: "cur", CreatedAt: created}
	}
	tasks := []notion.Task{
		inSprint("a", notion.StatusNotStarted, start.Add(time.Hour)),
		inSprint("b", notion.StatusInProgress, start.Add(time.Hour)),
		inSprint("c", notion.StatusDone, start.Add(time.Hour)),
		inSprint("d", notion.StatusDone, start.Add(time.Hour)),
		{ID: "other", Status: notion.StatusDone, Sprint: "old"}, // different sprint
		{ID: "loose", Status: notion.StatusDone},                // no sprint ref
	}

	report := SprintHealth(tasks, sprints, now)

	if !report.Active || report.Name != "Sprint 9" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.NotStarted != 1 || report.InProgress != 1 || report.Done != 2 {
		t.Errorf("partition = %d/%d/%d, want 1/1/2", report.NotStarted, report.InProgress, report.Done)
	}
	if report.CompletionRate != 50 {
		t.Errorf("completion = %d, want 50", report.CompletionRate)
	}
	if report.DaysRemaining != 4 {
		t.Errorf("days remaining = %d, want 4", report.DaysRemaining)
	}
}

func TestSprintHealth_Dragged(t *testing.T) {
	now := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sprints := []notion.Sprint{{ID: "cur", StartDate: start, EndDate: start.AddDate(0, 0, 14), IsCurrent: true}}

	before := start.AddDate(0, 0, -5)
	tasks := []notion.Task{
		{ID: "d1", Name: "one", Status: notion.StatusInProgress, Sprint: "cur", CreatedAt: before},
		{ID: "d2", Name: "two", Status: notion.StatusNotStarted, Sprint: "cur", CreatedAt: before},
		{ID: "d3", Name: "three", Status: notion.StatusInProgress, Sprint: "cur", CreatedAt: before},
		{ID: "d4", Name: "four", Status: notion.StatusInProgress, Sprint: "cur", CreatedAt: before},
		{ID: "done-early", Status: notion.StatusDone, Sprint: "cur", CreatedAt: before}, // done, not dragged
		{ID: "fresh", Status: notion.StatusInProgress, Sprint: "cur", CreatedAt: start.Add(time.Hour)},
		{ID: "no-ts", Status: notion.StatusInProgress, Sprint: "cur"}, // unparseable created
	}

	report := SprintHealth(tasks, sprints, now)

	if report.Dragged.Total != 4 {
		t.Errorf("dragged total = %d, want 4", report.Dragged.Total)
	}
	if len(report.Dragged.Names) != 3 || report.Dragged.More != 1 {
		t.Errorf("dragged summary = %+v, want 3 names and 1 more", report.Dragged)
	}
}

func TestSprintHealth_OverdueSprint(t *testing.T) {
	now := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	sprints := []notion.Sprint{{
		ID:        "cur",
		StartDate: now.AddDate(0, 0, -20),
		EndDate:   now.AddDate(0, 0, -3),
		IsCurrent: true,
	}}

	report := SprintHealth(nil, sprints, now)
	if report.DaysRemaining != -3 {
		t.Errorf("days remaining = %d, want -3 for an overdue sprint", report.DaysRemaining)
	}
	if report.CompletionRate != 0 {
		t.Errorf("completion with no tasks = %d, want 0", report.CompletionRate)
	}
}
