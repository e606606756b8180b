package dashboard

import (
	"time"

	"pulseboard/internal/snapshot"
)

// Report bundles every panel computed from one snapshot.
type Report struct {
	Portfolio  PortfolioReport  `json:"portfolio"`
	Capacity   []PersonCapacity `json:"capacity"`
	Alerts     AlertsReport     `json:"alerts"`
	Sprint     SprintReport     `json:"sprint"`
	Weekly     WeeklyReport     `json:"weekly"`
	BurnUp     BurnUpSeries     `json:"burn_up"`
	ComposedAt time.Time        `json:"composed_at"`
}

// BuildReport runs every aggregation routine over the snapshot, reusing
// its ComposedAt instant so all day counts agree with the entities'
// derived fields.
func BuildReport(snap *snapshot.Snapshot, r Range) Report {
	now := snap.ComposedAt
	return Report{
		Portfolio:  PortfolioHealth(snap.Projects),
		Capacity:   CapacityLoad(snap.Tasks),
		Alerts:     CommandCenter(snap.Projects, snap.Tasks),
		Sprint:     SprintHealth(snap.Tasks, snap.Sprints, now),
		Weekly:     WeeklyScoreboard(snap.Tasks, now),
		BurnUp:     BurnUp(snap.Tasks, r, now),
		ComposedAt: now,
	}
}
