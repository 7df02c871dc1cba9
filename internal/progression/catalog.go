package progression

import (
	"github.com/limbo/palseverance/pkg/entity"
)

// Badge identifiers known to the progression paths.
const (
	BadgeHabitStreak   = "habitStreak"
	BadgeWealthBuilder = "wealthBuilder"
	BadgeCollector     = "collector"
)

// Catalog is the in-memory badge reference data, loaded once at process
// start. Keyed by badge id, tiers ascending by tier and threshold.
type Catalog map[string]entity.Badge

// HighestTier returns the number of the highest tier whose threshold the
// metric meets or exceeds. Returns 0 when no tier is reached or the badge
// is unknown.
func (c Catalog) HighestTier(badgeID string, metric float64) int {
	badge, ok := c[badgeID]
	if !ok {
		return 0
	}
	for i := len(badge.Tiers) - 1; i >= 0; i-- {
		if metric >= badge.Tiers[i].Threshold {
			return badge.Tiers[i].Tier
		}
	}
	return 0
}

// Get looks up a badge definition.
func (c Catalog) Get(badgeID string) (entity.Badge, bool) {
	badge, ok := c[badgeID]
	return badge, ok
}
