// Package reset runs the nightly pass that rolls every user's habits over
// to the next day: pending habits lose their streak and cost happiness,
// completed habits go back to pending with their streak kept.
package reset

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
)

const defaultWorkers = 8

type Job struct {
	users    repository.UsersRepositoryI
	boundary progression.DayBoundary
	workers  int
	logger   *slog.Logger
}

// Summary is one run's outcome. Failed counts users whose reset errored;
// their state is untouched and the next run picks them up.
type Summary struct {
	Total   int
	Reset   int
	Skipped int
	Failed  int
}

func NewJob(users repository.UsersRepositoryI, boundary progression.DayBoundary, workers int, logger *slog.Logger) *Job {
	if users == nil {
		log.Fatal("provided nil repository")
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{
		users:    users,
		boundary: boundary,
		workers:  workers,
		logger:   logger,
	}
}

// Run executes one nightly pass over every user. The snapshot is taken once
// at the start so every user is judged against the same day. One user's
// failure never blocks the rest; the run only errors when the user listing
// itself fails or the context is cancelled.
func (j *Job) Run(ctx context.Context) (*Summary, error) {
	snapshot := time.Now()
	ids, err := j.users.ListIDs(ctx)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}

	summary := &Summary{Total: len(ids)}
	results := make(chan outcome, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.workers)
	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o := j.resetUser(gctx, id, snapshot)
			if o.err != nil {
				j.logger.ErrorContext(gctx, "user reset failed",
					slog.String("uid", id.String()),
					slog.Any("error", o.err))
			}
			results <- o
			return nil
		})
	}
	err = g.Wait()
	close(results)
	for o := range results {
		switch {
		case o.err != nil:
			summary.Failed++
		case o.skipped:
			summary.Skipped++
		default:
			summary.Reset++
		}
	}
	if err != nil {
		return summary, err
	}

	j.logger.InfoContext(ctx, "nightly reset finished",
		slog.Int("total", summary.Total),
		slog.Int("reset", summary.Reset),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed))
	return summary, nil
}

type outcome struct {
	skipped bool
	err     error
}

// resetUser hands the whole decision to the reset transaction: the user
// and habit rows it locks are the ones the outcome is computed from, so a
// completion committing around the boundary is never overwritten by a
// stale patch.
func (j *Job) resetUser(ctx context.Context, uid uuid.UUID, snapshot time.Time) outcome {
	_, err := j.users.ApplyReset(ctx, uid, snapshot, func(user *entity.User, habits []*entity.Habit) (*progression.ResetResult, error) {
		// Already rolled over today; a repeated run must not double-penalize.
		if j.boundary.SameDay(user.LastResetAt, snapshot) {
			return nil, errorvalues.ErrResetAlreadyApplied
		}
		return progression.ComputeReset(user, habits, snapshot, j.boundary)
	})
	if errors.Is(err, errorvalues.ErrResetAlreadyApplied) {
		return outcome{skipped: true}
	}
	if err != nil {
		return outcome{err: err}
	}
	return outcome{}
}
