package snapshot

import (
	"time"

	"pulseboard/internal/notion"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one immutable, timestamped bundle of all three entity
// collections. Entities are constructed fresh on every composition and
// never mutated afterwards.
type Snapshot struct {
	Projects   []notion.Project `json:"projects"`
	Tasks      []notion.Task    `json:"tasks"`
	Sprints    []notion.Sprint  `json:"sprints"`
	ComposedAt time.Time        `json:"last_update"`
}

// ProjectByID resolves a weak project reference. The boolean is false when
// the identifier is empty or absent from the fetched collection.
func (s *Snapshot) ProjectByID(id string) (*notion.Project, bool) {
	if id == "" {
		return nil, false
	}
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i], true
		}
	}
	return nil, false
}

// SprintByID resolves a weak sprint reference.
func (s *Snapshot) SprintByID(id string) (*notion.Sprint, bool) {
	if id == "" {
		return nil, false
	}
	for i := range s.Sprints {
		if s.Sprints[i].ID == id {
			return &s.Sprints[i], true
		}
	}
	return nil, false
}

// Composer is the sole public entry point of the ingestion pipeline.
type Composer struct {
	repo *Repository
}

// NewComposer creates a composer over the given repository.
func NewComposer(repo *Repository) *Composer {
	return &Composer{repo: repo}
}

// Compose runs the three fetches concurrently, waits for all of them
// regardless of individual outcome, and assembles the snapshot. A single
// instant is captured up front and threaded through every derived-field
// computation so that all day counts in one snapshot agree with its
// ComposedAt stamp. Capturing before the fetches rather than after they
// settle keeps that instant available to the mappers; only the one shared
// instant matters for consistency, not which side of the fetches it is
// taken on.
func (c *Composer) Compose() (*Snapshot, error) {
	now := time.Now()

	var (
		projects []notion.Project
		tasks    []notion.Task
		sprints  []notion.Sprint
	)

	// The fetches are individually fail-soft, so no goroutine ever
	// returns an error and a broken kind cannot cancel its siblings.
	var g errgroup.Group
	g.Go(func() error {
		projects = c.repo.FetchProjects(now)
		return nil
	})
	g.Go(func() error {
		tasks = c.repo.FetchTasks(now)
		return nil
	})
	g.Go(func() error {
		sprints = c.repo.FetchSprints(now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("projects", len(projects)).
		Int("tasks", len(tasks)).
		Int("sprints", len(sprints)).
		Time("composed_at", now).
		Msg("Snapshot composed")

	return &Snapshot{
		Projects:   projects,
		Tasks:      tasks,
		Sprints:    sprints,
		ComposedAt: now,
	}, nil
}
