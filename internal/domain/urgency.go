package domain

import "strings"

// Urgency is the reorder priority tier for an ingredient.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencySoon     Urgency = "soon"
	UrgencyMonitor  Urgency = "monitor"
)

var urgencyRanks = map[Urgency]int{
	UrgencyCritical: 0,
	UrgencySoon:     1,
	UrgencyMonitor:  2,
}

// Rank returns the sort position of an urgency tier (lower is more urgent).
func (u Urgency) Rank() int {
	if rank, ok := urgencyRanks[u]; ok {
		return rank
	}

	return urgencyRanks[UrgencyMonitor]
}

// ParseUrgency returns the tier for a given label (case-insensitive).
func ParseUrgency(label string) (Urgency, bool) {
	u := Urgency(strings.ToLower(strings.TrimSpace(label)))
	_, ok := urgencyRanks[u]

	return u, ok
}
