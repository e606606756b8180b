// Package dashboard derives the report panels from one snapshot's entity
// collections. Every routine is a pure function of its inputs and the
// composition instant; nothing here touches the clock or mutates a
// collection.
package dashboard

import "strings"

// Urgency classifies a days-until-due value for badge display. The
// classification is shared by the project worklist and task views.
type Urgency string

const (
	UrgencyOverdue Urgency = "OVERDUE"
	UrgencyUrgent  Urgency = "URGENT"
	UrgencySoon    Urgency = "SOON"
	UrgencyNone    Urgency = ""
)

// ClassifyUrgency buckets a days-until-due value: negative is overdue,
// 0-2 urgent, 3-7 soon, anything later or unset carries no badge.
func ClassifyUrgency(daysUntilDue *int) Urgency {
	if daysUntilDue == nil {
		return UrgencyNone
	}
	switch d := *daysUntilDue; {
	case d < 0:
		return UrgencyOverdue
	case d <= 2:
		return UrgencyUrgent
	case d <= 7:
		return UrgencySoon
	default:
		return UrgencyNone
	}
}

// IsBlocked reports whether a status text marks a blocked item. Statuses
// are free text upstream, so this is a case-insensitive substring match
// rather than an equality check against the canonical set.
func IsBlocked(status string) bool {
	return strings.Contains(strings.ToLower(status), "blocked")
}
