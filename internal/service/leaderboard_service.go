package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/palseverance/internal/cache"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
)

const (
	leaderboardTTL     = time.Minute
	defaultLimit       = 20
	maxLeaderboardSize = 100
)

// Stats the leaderboard accepts; anything else is a validation error before
// the repository ever sees it.
var allowedStats = map[string]struct{}{
	"longestCurrentStreak":  {},
	"longestObtainedStreak": {},
	"totalCurrencyEarned":   {},
}

type LeaderboardService struct {
	usersRepo repository.UsersRepositoryI
	cache     cache.Cache
}

// NewLeaderboardService wires the ranking reads with an optional cache.
// A nil cache disables caching, every read goes to the database.
func NewLeaderboardService(usersRepo repository.UsersRepositoryI, c cache.Cache) *LeaderboardService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &LeaderboardService{
		usersRepo: usersRepo,
		cache:     c,
	}
}

func (ls *LeaderboardService) Top(ctx context.Context, stat string, limit int) ([]entity.LeaderboardEntry, error) {
	if _, ok := allowedStats[stat]; !ok {
		return nil, errors.New("validation error: unknown leaderboard stat " + stat)
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}
	key := fmt.Sprintf("leaderboard:%s:%d", stat, limit)
	if ls.cache != nil {
		var cached []entity.LeaderboardEntry
		err := ls.cache.Get(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.WarnContext(ctx, "leaderboard cache read failed", slog.Any("error", err))
		}
	}
	entries, err := ls.usersRepo.TopByStat(ctx, stat, limit)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	if ls.cache != nil {
		if err := ls.cache.Set(ctx, key, entries, leaderboardTTL); err != nil {
			slog.WarnContext(ctx, "leaderboard cache write failed", slog.Any("error", err))
		}
	}
	return entries, nil
}
