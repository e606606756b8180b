package dashboard

import (
	"math"
	"sort"

	"pulseboard/internal/notion"
)

// fullCapacityTasks is the task count treated as 100% load.
const fullCapacityTasks = 10

// PersonCapacity summarizes one assignee's load.
type PersonCapacity struct {
	Name     string  `json:"name"`
	Total    int     `json:"total"`
	Critical int     `json:"critical"` // due within 5 days
	Blocked  int     `json:"blocked"`
	Load     float64 `json:"load"` // percent, capped at 100
}

// CapacityLoad attributes every task to each of its assignees (a task
// with N assignees counts once for each of the N people) and accumulates
// totals, critical counts, and blocked counts per person. People are
// returned descending by load, then by name for a stable order.
func CapacityLoad(tasks []notion.Task) []PersonCapacity {
	byPerson := make(map[string]*PersonCapacity)

	for _, task := range tasks {
		for _, person := range task.Assignees {
			c, ok := byPerson[person]
			if !ok {
				c = &PersonCapacity{Name: person}
				byPerson[person] = c
			}
			c.Total++
			if task.DaysUntilDue != nil && *task.DaysUntilDue <= 5 {
				c.Critical++
			}
			if IsBlocked(task.Status) {
				c.Blocked++
			}
		}
	}

	capacities := make([]PersonCapacity, 0, len(byPerson))
	for _, c := range byPerson {
		c.Load = math.Min(float64(c.Total)/fullCapacityTasks*100, 100)
		capacities = append(capacities, *c)
	}

	sort.Slice(capacities, func(i, j int) bool {
		if capacities[i].Load != capacities[j].Load {
			return capacities[i].Load > capacities[j].Load
		}
		return capacities[i].Name < capacities[j].Name
	})

	return capacities
}
