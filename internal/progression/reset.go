package progression

import (
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/pkg/entity"
)

// HabitPatch is a partial habit update emitted by the reset computation.
// LastUpdated is deliberately not part of it: the reset never touches the
// completion timestamp.
type HabitPatch struct {
	ID     uuid.UUID
	Streak int
	Status entity.HabitStatus
}

// ResetResult is the per-user outcome of one nightly pass.
type ResetResult struct {
	Habits               []HabitPatch
	HappinessMeter       float64
	LongestCurrentStreak int
	PendingCount         int
	CompletedToday       int
}

// ComputeReset walks one user's habits at the end of a day. Habits left
// pending lose their streak and cost happiness; completed habits roll back
// to pending with their streak kept. The longest-current-streak aggregate is
// recomputed from habits completed on the snapshot's calendar day, so a
// completion committed after the snapshot counts toward the next day.
func ComputeReset(user *entity.User, habits []*entity.Habit, snapshot time.Time, boundary DayBoundary) (*ResetResult, error) {
	if user == nil {
		return nil, errorvalues.ErrMalformedRecord
	}

	res := &ResetResult{
		Habits: make([]HabitPatch, 0, len(habits)),
	}
	for _, h := range habits {
		if h == nil || h.LastUpdated.IsZero() {
			return nil, errorvalues.ErrMalformedRecord
		}
		switch h.Status {
		case entity.HabitPending:
			res.PendingCount++
			if h.Streak != 0 {
				res.Habits = append(res.Habits, HabitPatch{ID: h.ID, Streak: 0, Status: entity.HabitPending})
			}
		case entity.HabitComplete:
			if boundary.SameDay(h.LastUpdated, snapshot) {
				res.CompletedToday++
				if h.Streak > res.LongestCurrentStreak {
					res.LongestCurrentStreak = h.Streak
				}
			}
			res.Habits = append(res.Habits, HabitPatch{ID: h.ID, Streak: h.Streak, Status: entity.HabitPending})
		default:
			return nil, errorvalues.ErrMalformedRecord
		}
	}

	res.HappinessMeter = max(user.HappinessMeter-float64(happinessPenalty*res.PendingCount), 0)
	if res.CompletedToday == 0 {
		res.LongestCurrentStreak = 0
	}
	return res, nil
}
