package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/palseverance/internal/cache"
	"github.com/limbo/palseverance/internal/repository/mocks"
	"github.com/limbo/palseverance/internal/service"
	"github.com/limbo/palseverance/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheFake struct {
	store  map[string][]entity.LeaderboardEntry
	getErr error
	setErr error
	gets   int
	sets   int
}

func newCacheFake() *cacheFake {
	return &cacheFake{store: make(map[string][]entity.LeaderboardEntry)}
}

func (c *cacheFake) Get(ctx context.Context, key string, dest any) error {
	c.gets++
	if c.getErr != nil {
		return c.getErr
	}
	entries, ok := c.store[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	*dest.(*[]entity.LeaderboardEntry) = entries
	return nil
}

func (c *cacheFake) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.store[key] = value.([]entity.LeaderboardEntry)
	return nil
}

func (c *cacheFake) Close() error {
	return nil
}

func TestLeaderboardTop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	entries := []entity.LeaderboardEntry{
		{UserID: uuid.New(), Name: "alice", PetName: "Rex", Value: 42},
		{UserID: uuid.New(), Name: "bob", PetName: "Pal", Value: 17},
	}

	t.Run("cache miss reads the database and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		c := newCacheFake()
		serv := service.NewLeaderboardService(usersRepo, c)
		usersRepo.EXPECT().TopByStat(gomock.Any(), "longestCurrentStreak", 20).Return(entries, nil)
		got, err := serv.Top(ctx, "longestCurrentStreak", 0)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
		assert.Equal(t, 1, c.sets)
		assert.Contains(t, c.store, "leaderboard:longestCurrentStreak:20")
	})
	t.Run("cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		c := newCacheFake()
		c.store["leaderboard:totalCurrencyEarned:20"] = entries
		serv := service.NewLeaderboardService(usersRepo, c)
		got, err := serv.Top(ctx, "totalCurrencyEarned", 20)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})
	t.Run("cache failure degrades to the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		c := newCacheFake()
		c.getErr = errors.New("connection refused")
		c.setErr = errors.New("connection refused")
		serv := service.NewLeaderboardService(usersRepo, c)
		usersRepo.EXPECT().TopByStat(gomock.Any(), "longestObtainedStreak", 20).Return(entries, nil)
		got, err := serv.Top(ctx, "longestObtainedStreak", 20)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})
	t.Run("nil cache reads the database directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewLeaderboardService(usersRepo, nil)
		usersRepo.EXPECT().TopByStat(gomock.Any(), "longestCurrentStreak", 20).Return(entries, nil)
		got, err := serv.Top(ctx, "longestCurrentStreak", 20)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})
	t.Run("limit clamped to the maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewLeaderboardService(usersRepo, nil)
		usersRepo.EXPECT().TopByStat(gomock.Any(), "longestCurrentStreak", 100).Return(entries, nil)
		_, err := serv.Top(ctx, "longestCurrentStreak", 500)
		assert.NoError(t, err)
	})
	t.Run("unknown stat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewLeaderboardService(usersRepo, nil)
		_, err := serv.Top(ctx, "happinessMeter", 20)
		assert.ErrorContains(t, err, "validation error")
	})
}
