package reset

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
)

// usersRepoMock keeps users and their habits under one lock the way the
// real reset transaction does: compute always sees the rows as they are at
// apply time, and the patches land on those same rows.
type usersRepoMock struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*entity.User
	habits  map[uuid.UUID][]*entity.Habit
	applied map[uuid.UUID]*progression.ResetResult
	failOn  map[uuid.UUID]error
	// Runs under the lock right before compute, standing in for a
	// transaction that commits just before the reset takes its row locks.
	beforeApply func(uid uuid.UUID)
}

func newUsersRepoMock() *usersRepoMock {
	return &usersRepoMock{
		users:   make(map[uuid.UUID]*entity.User),
		habits:  make(map[uuid.UUID][]*entity.Habit),
		applied: make(map[uuid.UUID]*progression.ResetResult),
		failOn:  make(map[uuid.UUID]error),
	}
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User, seedBadges []string, equipment entity.Equipment) error {
	panic("not implemented")
}

func (m *usersRepoMock) FindByName(ctx context.Context, name string) (*entity.User, error) {
	panic("not implemented")
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	panic("not implemented")
}

func (m *usersRepoMock) UpdateSettings(ctx context.Context, uid uuid.UUID, name, petName string) error {
	panic("not implemented")
}

func (m *usersRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	panic("not implemented")
}

func (m *usersRepoMock) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *usersRepoMock) ApplyReset(ctx context.Context, uid uuid.UUID, snapshot time.Time, compute repository.ResetFunc) (*progression.ResetResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failOn[uid]; ok {
		return nil, err
	}
	u, ok := m.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	if m.beforeApply != nil {
		m.beforeApply(uid)
	}
	userCopy := *u
	habitsCopy := make([]*entity.Habit, 0, len(m.habits[uid]))
	for _, h := range m.habits[uid] {
		copied := *h
		habitsCopy = append(habitsCopy, &copied)
	}
	res, err := compute(&userCopy, habitsCopy)
	if err != nil {
		return nil, err
	}
	for _, patch := range res.Habits {
		for _, h := range m.habits[uid] {
			if h.ID == patch.ID {
				h.Streak = patch.Streak
				h.Status = patch.Status
			}
		}
	}
	u.HappinessMeter = res.HappinessMeter
	u.LongestCurrentStreak = res.LongestCurrentStreak
	u.LastResetAt = snapshot
	m.applied[uid] = res
	return res, nil
}

func (m *usersRepoMock) TopByStat(ctx context.Context, stat string, limit int) ([]entity.LeaderboardEntry, error) {
	panic("not implemented")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRunResetsUsers(t *testing.T) {
	users := newUsersRepoMock()
	boundary := progression.NewDayBoundary(time.UTC)
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	uid := uuid.New()
	users.users[uid] = &entity.User{ID: uid, HappinessMeter: 90, LastResetAt: yesterday}
	users.habits[uid] = []*entity.Habit{
		{ID: uuid.New(), UserID: uid, Title: "run", Streak: 4, Status: entity.HabitComplete, LastUpdated: now},
		{ID: uuid.New(), UserID: uid, Title: "read", Streak: 2, Status: entity.HabitPending, LastUpdated: yesterday},
	}

	job := NewJob(users, boundary, 2, quietLogger())
	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Reset)
	assert.Zero(t, summary.Skipped)
	assert.Zero(t, summary.Failed)

	u := users.users[uid]
	assert.Equal(t, float64(80), u.HappinessMeter)
	assert.Equal(t, 4, u.LongestCurrentStreak)
	assert.False(t, u.LastResetAt.Equal(yesterday))

	res := users.applied[uid]
	require.NotNil(t, res)
	assert.Len(t, res.Habits, 2)
}

func TestRunSkipsAlreadyResetUsers(t *testing.T) {
	users := newUsersRepoMock()
	boundary := progression.NewDayBoundary(time.UTC)

	uid := uuid.New()
	users.users[uid] = &entity.User{ID: uid, HappinessMeter: 40, LastResetAt: time.Now()}
	users.habits[uid] = []*entity.Habit{
		{ID: uuid.New(), UserID: uid, Title: "run", Streak: 0, Status: entity.HabitPending, LastUpdated: time.Now()},
	}

	job := NewJob(users, boundary, 2, quietLogger())
	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Reset)
	assert.Empty(t, users.applied)
	assert.Equal(t, float64(40), users.users[uid].HappinessMeter)
}

func TestRunIsolatesUserFailures(t *testing.T) {
	users := newUsersRepoMock()
	boundary := progression.NewDayBoundary(time.UTC)
	yesterday := time.Now().AddDate(0, 0, -1)

	badUID := uuid.New()
	users.users[badUID] = &entity.User{ID: badUID, LastResetAt: yesterday}
	users.failOn[badUID] = errors.New("connection reset")

	goodUID := uuid.New()
	users.users[goodUID] = &entity.User{ID: goodUID, HappinessMeter: 100, LastResetAt: yesterday}
	users.habits[goodUID] = []*entity.Habit{
		{ID: uuid.New(), UserID: goodUID, Title: "water", Streak: 1, Status: entity.HabitPending, LastUpdated: yesterday},
	}

	job := NewJob(users, boundary, 2, quietLogger())
	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Reset)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, users.applied, goodUID)
	assert.NotContains(t, users.applied, badUID)
}

func TestSecondRunSameDayIsNoop(t *testing.T) {
	users := newUsersRepoMock()
	boundary := progression.NewDayBoundary(time.UTC)
	yesterday := time.Now().AddDate(0, 0, -1)

	uid := uuid.New()
	users.users[uid] = &entity.User{ID: uid, HappinessMeter: 100, LastResetAt: yesterday}
	users.habits[uid] = []*entity.Habit{
		{ID: uuid.New(), UserID: uid, Title: "stretch", Streak: 3, Status: entity.HabitPending, LastUpdated: yesterday},
	}

	job := NewJob(users, boundary, 1, quietLogger())
	first, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Reset)
	happinessAfterFirst := users.users[uid].HappinessMeter
	assert.Equal(t, float64(90), happinessAfterFirst)

	second, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second.Skipped)
	assert.Zero(t, second.Reset)
	assert.Equal(t, happinessAfterFirst, users.users[uid].HappinessMeter)
}

// A completion that commits right before the reset locks the user's rows
// must be honored: the reset computes from the committed state, never from
// anything read earlier, so the fresh streak survives the rollover.
func TestRunHonorsCompletionCommittedBeforeReset(t *testing.T) {
	users := newUsersRepoMock()
	boundary := progression.NewDayBoundary(time.UTC)
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	uid := uuid.New()
	habitID := uuid.New()
	users.users[uid] = &entity.User{ID: uid, HappinessMeter: 90, LastResetAt: yesterday}
	users.habits[uid] = []*entity.Habit{
		{ID: habitID, UserID: uid, Title: "run", Streak: 4, Status: entity.HabitPending, LastUpdated: yesterday},
	}
	users.beforeApply = func(id uuid.UUID) {
		// A 23:59 completion landing first: streak bumped, marked complete.
		h := users.habits[id][0]
		h.Streak = 5
		h.Status = entity.HabitComplete
		h.LastUpdated = now
	}

	job := NewJob(users, boundary, 1, quietLogger())
	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Reset)

	h := users.habits[uid][0]
	assert.Equal(t, 5, h.Streak)
	assert.Equal(t, entity.HabitPending, h.Status)
	assert.Equal(t, 5, users.users[uid].LongestCurrentStreak)
	// Completed today, so no happiness penalty.
	assert.Equal(t, float64(90), users.users[uid].HappinessMeter)
}
