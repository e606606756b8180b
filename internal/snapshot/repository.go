package snapshot

import (
	"time"

	"pulseboard/internal/notion"

	"github.com/rs/zerolog/log"
)

// Databases holds the upstream database identifiers, one per record kind.
type Databases struct {
	Projects string
	Tasks    string
	Sprints  string
}

// Repository issues the kind-specific queries and normalizes the results.
// Every fetch is fail-soft: a query or decode failure is logged and
// degrades that kind to an empty collection, so one broken kind never
// blocks the other two from reporting.
type Repository struct {
	client notion.Client
	dbs    Databases
}

// NewRepository creates a repository over the given client.
func NewRepository(client notion.Client, dbs Databases) *Repository {
	return &Repository{client: client, dbs: dbs}
}

// FetchProjects returns all non-archived projects, normalized against the
// given composition instant.
func (r *Repository) FetchProjects(now time.Time) []notion.Project {
	pages, err := r.client.QueryDatabase(r.dbs.Projects, notion.Query{
		Filter: notion.ExcludeArchived(),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch projects")
		return nil
	}

	projects := make([]notion.Project, 0, len(pages))
	for _, page := range pages {
		projects = append(projects, notion.MapProject(page, now))
	}
	return projects
}

// FetchTasks returns all non-archived tasks sorted by due date ascending.
func (r *Repository) FetchTasks(now time.Time) []notion.Task {
	pages, err := r.client.QueryDatabase(r.dbs.Tasks, notion.Query{
		Filter: notion.ExcludeArchived(),
		Sorts:  []notion.SortDTO{{Property: "Due", Direction: "ascending"}},
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch tasks")
		return nil
	}

	tasks := make([]notion.Task, 0, len(pages))
	for _, page := range pages {
		tasks = append(tasks, notion.MapTask(page, now))
	}
	return tasks
}

// FetchSprints returns all non-archived sprints sorted by date range
// descending.
func (r *Repository) FetchSprints(now time.Time) []notion.Sprint {
	pages, err := r.client.QueryDatabase(r.dbs.Sprints, notion.Query{
		Filter: notion.ExcludeArchived(),
		Sorts:  []notion.SortDTO{{Property: "Dates", Direction: "descending"}},
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch sprints")
		return nil
	}

	sprints := make([]notion.Sprint, 0, len(pages))
	for _, page := range pages {
		sprints = append(sprints, notion.MapSprint(page, now))
	}
	return sprints
}
