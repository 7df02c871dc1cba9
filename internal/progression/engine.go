// Package progression holds the pure habit progression rules: streak
// accumulation, currency reward, happiness meter and badge tier promotion
// on completion, plus the nightly decay/reset computation. All I/O is the
// caller's responsibility.
package progression

import (
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/pkg/entity"
)

const (
	// Reward per completion is 10 coins per streak day.
	rewardPerStreakDay = 10
	happinessBonus     = 5
	happinessPenalty   = 10
	happinessMax       = 100
)

// HabitUpdate is the full habit patch produced by a completion.
type HabitUpdate struct {
	ID          uuid.UUID
	Streak      int
	Status      entity.HabitStatus
	LastUpdated time.Time
}

// UserUpdate is the full user patch produced by a completion.
type UserUpdate struct {
	Currency              int
	TotalCurrencyEarned   int
	HappinessMeter        float64
	LongestCurrentStreak  int
	LongestObtainedStreak int
	Badges                []entity.UserBadge
}

type CompletionResult struct {
	Habit  HabitUpdate
	User   UserUpdate
	Reward int
}

// ComputeCompletion derives the next habit and user state for one
// completion. It does not check that the previous completion was yesterday:
// a streak only breaks through the nightly reset.
func ComputeCompletion(user *entity.User, habit *entity.Habit, catalog Catalog, now time.Time) (*CompletionResult, error) {
	if user == nil || habit == nil || habit.LastUpdated.IsZero() {
		return nil, errorvalues.ErrMalformedRecord
	}
	if habit.Status == entity.HabitComplete && now.Sub(habit.LastUpdated) < 24*time.Hour {
		return nil, errorvalues.ErrHabitAlreadyCompleted
	}

	newStreak := habit.Streak + 1
	reward := rewardPerStreakDay * newStreak
	newTotal := user.TotalCurrencyEarned + reward

	badges := cloneBadges(user.Badges)
	badges = Promote(badges, BadgeHabitStreak, catalog.HighestTier(BadgeHabitStreak, float64(newStreak)))
	badges = Promote(badges, BadgeWealthBuilder, catalog.HighestTier(BadgeWealthBuilder, float64(newTotal)))

	return &CompletionResult{
		Habit: HabitUpdate{
			ID:          habit.ID,
			Streak:      newStreak,
			Status:      entity.HabitComplete,
			LastUpdated: now,
		},
		User: UserUpdate{
			Currency:              user.Currency + reward,
			TotalCurrencyEarned:   newTotal,
			HappinessMeter:        min(user.HappinessMeter+happinessBonus, happinessMax),
			LongestCurrentStreak:  max(user.LongestCurrentStreak, newStreak),
			LongestObtainedStreak: max(user.LongestObtainedStreak, newStreak),
			Badges:                badges,
		},
		Reward: reward,
	}, nil
}

// Promote raises the recorded tier for badgeID to tier when that is an
// improvement. Tiers are never demoted; an unknown badge is appended, which
// covers users created before the badge existed.
func Promote(badges []entity.UserBadge, badgeID string, tier int) []entity.UserBadge {
	if tier <= 0 {
		return badges
	}
	for i := range badges {
		if badges[i].BadgeID == badgeID {
			if tier > badges[i].HighestTierAchieved {
				badges[i].HighestTierAchieved = tier
			}
			return badges
		}
	}
	return append(badges, entity.UserBadge{BadgeID: badgeID, HighestTierAchieved: tier})
}

func cloneBadges(badges []entity.UserBadge) []entity.UserBadge {
	out := make([]entity.UserBadge, len(badges))
	copy(out, badges)
	return out
}
