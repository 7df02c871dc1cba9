package progression_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = progression.Catalog{
	progression.BadgeHabitStreak: {
		ID: progression.BadgeHabitStreak,
		Tiers: []entity.BadgeTier{
			{Tier: 1, Threshold: 5},
			{Tier: 2, Threshold: 10},
			{Tier: 3, Threshold: 20},
		},
	},
	progression.BadgeWealthBuilder: {
		ID: progression.BadgeWealthBuilder,
		Tiers: []entity.BadgeTier{
			{Tier: 1, Threshold: 100},
			{Tier: 2, Threshold: 500},
			{Tier: 3, Threshold: 2000},
		},
	},
}

func seededBadges() []entity.UserBadge {
	return []entity.UserBadge{
		{BadgeID: progression.BadgeHabitStreak, HighestTierAchieved: 0},
		{BadgeID: progression.BadgeWealthBuilder, HighestTierAchieved: 0},
		{BadgeID: progression.BadgeCollector, HighestTierAchieved: 0},
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:             uuid.New(),
		Name:           "test_user",
		HappinessMeter: 100,
		Badges:         seededBadges(),
	}
}

func testHabit(streak int, status entity.HabitStatus, lastUpdated time.Time) *entity.Habit {
	return &entity.Habit{
		ID:          uuid.New(),
		Title:       "test_habit",
		Streak:      streak,
		Status:      status,
		LastUpdated: lastUpdated,
		CreatedAt:   lastUpdated,
	}
}

func badgeTier(t *testing.T, badges []entity.UserBadge, badgeID string) int {
	t.Helper()
	for _, b := range badges {
		if b.BadgeID == badgeID {
			return b.HighestTierAchieved
		}
	}
	t.Fatalf("badge %s not found", badgeID)
	return 0
}

func TestComputeCompletion(t *testing.T) {
	now := time.Date(2024, time.March, 10, 18, 30, 0, 0, time.UTC)
	t.Run("pending habit completes", func(t *testing.T) {
		user := testUser()
		habit := testHabit(2, entity.HabitPending, now.Add(-20*time.Hour))
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Habit.Streak)
		assert.Equal(t, entity.HabitComplete, res.Habit.Status)
		assert.Equal(t, now, res.Habit.LastUpdated)
		assert.Equal(t, 30, res.Reward)
		assert.Equal(t, 30, res.User.Currency)
		assert.Equal(t, 30, res.User.TotalCurrencyEarned)
		// Happiness is capped at 100.
		assert.Equal(t, float64(100), res.User.HappinessMeter)
		assert.Equal(t, 3, res.User.LongestCurrentStreak)
		assert.Equal(t, 3, res.User.LongestObtainedStreak)
	})
	t.Run("already completed within a day", func(t *testing.T) {
		user := testUser()
		habit := testHabit(3, entity.HabitComplete, now.Add(-2*time.Hour))
		_, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		assert.ErrorIs(t, err, errorvalues.ErrHabitAlreadyCompleted)
	})
	t.Run("complete habit older than a day completes again", func(t *testing.T) {
		user := testUser()
		habit := testHabit(3, entity.HabitComplete, now.Add(-25*time.Hour))
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		require.NoError(t, err)
		assert.Equal(t, 4, res.Habit.Streak)
	})
	t.Run("happiness bonus below cap", func(t *testing.T) {
		user := testUser()
		user.HappinessMeter = 40
		habit := testHabit(0, entity.HabitPending, now.Add(-time.Hour))
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		require.NoError(t, err)
		assert.Equal(t, float64(45), res.User.HappinessMeter)
	})
	t.Run("missing last updated", func(t *testing.T) {
		user := testUser()
		habit := testHabit(0, entity.HabitPending, time.Time{})
		_, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		assert.ErrorIs(t, err, errorvalues.ErrMalformedRecord)
	})
	t.Run("nil records", func(t *testing.T) {
		_, err := progression.ComputeCompletion(nil, testHabit(0, entity.HabitPending, now), testCatalog, now)
		assert.ErrorIs(t, err, errorvalues.ErrMalformedRecord)
		_, err = progression.ComputeCompletion(testUser(), nil, testCatalog, now)
		assert.ErrorIs(t, err, errorvalues.ErrMalformedRecord)
	})
	t.Run("input is not mutated", func(t *testing.T) {
		user := testUser()
		user.Badges[0].HighestTierAchieved = 1
		habit := testHabit(9, entity.HabitPending, now.Add(-time.Hour))
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		require.NoError(t, err)
		assert.Equal(t, 2, badgeTier(t, res.User.Badges, progression.BadgeHabitStreak))
		assert.Equal(t, 1, badgeTier(t, user.Badges, progression.BadgeHabitStreak))
		assert.Equal(t, 9, habit.Streak)
	})
}

func TestConsecutiveCompletions(t *testing.T) {
	// N daily completions with a nightly rollback in between: streak reaches
	// N and the currency total is 10 * sum(1..N) = 5N(N+1).
	const n = 7
	now := time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)
	boundary := progression.NewDayBoundary(time.UTC)
	user := testUser()
	habit := testHabit(0, entity.HabitPending, now.Add(-time.Hour))
	for day := 0; day < n; day++ {
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now.AddDate(0, 0, day))
		require.NoError(t, err)
		habit.Streak = res.Habit.Streak
		habit.Status = res.Habit.Status
		habit.LastUpdated = res.Habit.LastUpdated
		user.Currency = res.User.Currency
		user.TotalCurrencyEarned = res.User.TotalCurrencyEarned
		user.HappinessMeter = res.User.HappinessMeter
		user.LongestCurrentStreak = res.User.LongestCurrentStreak
		user.LongestObtainedStreak = res.User.LongestObtainedStreak
		user.Badges = res.User.Badges

		reset, err := progression.ComputeReset(user, []*entity.Habit{habit}, habit.LastUpdated.Add(time.Hour), boundary)
		require.NoError(t, err)
		require.Len(t, reset.Habits, 1)
		habit.Streak = reset.Habits[0].Streak
		habit.Status = reset.Habits[0].Status
		user.HappinessMeter = reset.HappinessMeter
		user.LongestCurrentStreak = reset.LongestCurrentStreak
	}
	assert.Equal(t, n, user.LongestObtainedStreak)
	assert.Equal(t, 5*n*(n+1), user.TotalCurrencyEarned)
	assert.Equal(t, 5*n*(n+1), user.Currency)
}

func TestBadgePromotion(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	t.Run("streak of 12 reaches tier 2 on thresholds 5/10/20", func(t *testing.T) {
		user := testUser()
		habit := testHabit(11, entity.HabitPending, now.Add(-time.Hour))
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		require.NoError(t, err)
		assert.Equal(t, 2, badgeTier(t, res.User.Badges, progression.BadgeHabitStreak))
	})
	t.Run("tiers are never demoted", func(t *testing.T) {
		user := testUser()
		user.Badges[0].HighestTierAchieved = 2
		// Streak dropped back to zero after a reset; the recorded tier stays.
		habit := testHabit(0, entity.HabitPending, now.Add(-time.Hour))
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		require.NoError(t, err)
		assert.Equal(t, 2, badgeTier(t, res.User.Badges, progression.BadgeHabitStreak))
	})
	t.Run("wealth builder follows lifetime earnings", func(t *testing.T) {
		user := testUser()
		user.TotalCurrencyEarned = 95
		habit := testHabit(0, entity.HabitPending, now.Add(-time.Hour))
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		require.NoError(t, err)
		assert.Equal(t, 105, res.User.TotalCurrencyEarned)
		assert.Equal(t, 1, badgeTier(t, res.User.Badges, progression.BadgeWealthBuilder))
	})
	t.Run("unknown badge in catalog is appended", func(t *testing.T) {
		user := testUser()
		user.Badges = nil
		habit := testHabit(4, entity.HabitPending, now.Add(-time.Hour))
		res, err := progression.ComputeCompletion(user, habit, testCatalog, now)
		require.NoError(t, err)
		assert.Equal(t, 1, badgeTier(t, res.User.Badges, progression.BadgeHabitStreak))
	})
}

func TestHighestTier(t *testing.T) {
	assert.Equal(t, 0, testCatalog.HighestTier(progression.BadgeHabitStreak, 4))
	assert.Equal(t, 1, testCatalog.HighestTier(progression.BadgeHabitStreak, 5))
	assert.Equal(t, 2, testCatalog.HighestTier(progression.BadgeHabitStreak, 12))
	assert.Equal(t, 3, testCatalog.HighestTier(progression.BadgeHabitStreak, 500))
	assert.Equal(t, 0, testCatalog.HighestTier("unknown", 500))
}
