package dashboard

import (
	"fmt"
	"testing"

	"pulseboard/internal/notion"
)

func assignedTasks(person string, n int) []notion.Task {
	tasks := make([]notion.Task, n)
	for i := range tasks {
		tasks[i] = notion.Task{ID: fmt.Sprintf("%s-%d", person, i), Assignees: []string{person}}
	}
	return tasks
}

func TestCapacityLoad_Clamping(t *testing.T) {
	tests := []struct {
		total int
		want  float64
	}{
		{5, 50},
		{10, 100},
		{15, 100}, // capped, not 150
	}

	for _, tt := range tests {
		got := CapacityLoad(assignedTasks("ada", tt.total))
		if len(got) != 1 {
			t.Fatalf("total %d: got %d people, want 1", tt.total, len(got))
		}
		if got[0].Total != tt.total || got[0].Load != tt.want {
			t.Errorf("total %d: load = %v (total %d), want %v", tt.total, got[0].Load, got[0].Total, tt.want)
		}
	}
}

func TestCapacityLoad_FanOut(t *testing.T) {
	tasks := []notion.Task{
		{ID: "shared", Assignees: []string{"ada", "bea"}},
		{ID: "solo", Assignees: []string{"ada"}},
		{ID: "nobody"},
	}

	got := CapacityLoad(tasks)
	if len(got) != 2 {
		t.Fatalf("got %d people, want 2 (unassigned tasks attribute to no one)", len(got))
	}

	byName := map[string]PersonCapacity{}
	for _, c := range got {
		byName[c.Name] = c
	}
	// The shared task counts once for each assignee.
	if byName["ada"].Total != 2 {
		t.Errorf("ada total = %d, want 2", byName["ada"].Total)
	}
	if byName["bea"].Total != 1 {
		t.Errorf("bea total = %d, want 1", byName["bea"].Total)
	}
}

func TestCapacityLoad_CriticalAndBlocked(t *testing.T) {
	tasks := []notion.Task{
		{ID: "t1", Assignees: []string{"ada"}, DaysUntilDue: intPtr(5)},
		{ID: "t2", Assignees: []string{"ada"}, DaysUntilDue: intPtr(6)},
		{ID: "t3", Assignees: []string{"ada"}, DaysUntilDue: intPtr(-1), Status: "Blocked by infra"},
		{ID: "t4", Assignees: []string{"ada"}}, // no due date, not critical
	}

	got := CapacityLoad(tasks)
	if got[0].Critical != 2 {
		t.Errorf("critical = %d, want 2 (due within 5 days, overdue included)", got[0].Critical)
	}
	if got[0].Blocked != 1 {
		t.Errorf("blocked = %d, want 1", got[0].Blocked)
	}
}

func TestCapacityLoad_SortedByLoadDescending(t *testing.T) {
	tasks := append(assignedTasks("light", 2), assignedTasks("heavy", 8)...)

	got := CapacityLoad(tasks)
	if got[0].Name != "heavy" || got[1].Name != "light" {
		t.Errorf("order = %s, %s; want heavy first", got[0].Name, got[1].Name)
	}
}
