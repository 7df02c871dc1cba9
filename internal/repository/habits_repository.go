package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/pkg/cleanup"
	"github.com/limbo/palseverance/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing habitsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitsRepository{
		conn: pool,
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, title, streak, status, last_updated) VALUES ($1, $2, 0, $3, NOW()) RETURNING id;`,
		habit.UserID,
		habit.Title,
		entity.HabitPending,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrUserHasHabit
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habit entity.Habit
	habit.ID = id
	row := hr.conn.QueryRow(ctx, `SELECT user_id, title, streak, status, last_updated, created_at FROM habits WHERE id = $1;`, id)
	if err := row.Scan(&habit.UserID, &habit.Title, &habit.Streak, &habit.Status, &habit.LastUpdated, &habit.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT id, user_id, title, streak, status, last_updated, created_at
		FROM habits WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		err = rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Streak, &h.Status, &h.LastUpdated, &h.CreatedAt)
		if err != nil {
			return nil, errors.New("scanning habit error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning habits: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

// CompleteHabit is the atomic read-modify-write around the progression
// engine. Row locks are taken on the user first, then the habit, so
// concurrent completions of the same (user, habit) pair serialize and
// never interleave with the nightly reset of that user. A compute error
// (including the benign already-completed guard) rolls back with nothing
// written. Serialization failures rerun the whole transaction.
func (hr *HabitsRepository) CompleteHabit(ctx context.Context, userID, habitID uuid.UUID, compute CompletionFunc) (*progression.CompletionResult, error) {
	var res *progression.CompletionResult
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		res, err = hr.completeHabitTx(ctx, userID, habitID, compute)
		return err
	})
	return res, err
}

func (hr *HabitsRepository) completeHabitTx(ctx context.Context, userID, habitID uuid.UUID, compute CompletionFunc) (*progression.CompletionResult, error) {
	tx, err := hr.conn.BeginTx(ctx, txOptions)
	if err != nil {
		return nil, errors.New("beginning completion tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var user entity.User
	user.ID = userID
	row := tx.QueryRow(ctx, `SELECT name, pet_name, currency, total_currency_earned, happiness_meter, longest_current_streak, longest_obtained_streak FROM users WHERE id = $1 FOR UPDATE;`, userID)
	if err = row.Scan(
		&user.Name,
		&user.PetName,
		&user.Currency,
		&user.TotalCurrencyEarned,
		&user.HappinessMeter,
		&user.LongestCurrentStreak,
		&user.LongestObtainedStreak,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, txError("reading user in completion tx error", err)
	}
	user.Badges, err = scanUserBadges(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	var habit entity.Habit
	habit.ID = habitID
	row = tx.QueryRow(ctx, `SELECT user_id, title, streak, status, last_updated, created_at FROM habits WHERE id = $1 FOR UPDATE;`, habitID)
	if err = row.Scan(&habit.UserID, &habit.Title, &habit.Streak, &habit.Status, &habit.LastUpdated, &habit.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, txError("reading habit in completion tx error", err)
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}

	res, err := compute(&user, &habit)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `UPDATE habits SET streak = $1, status = $2, last_updated = $3 WHERE id = $4;`,
		res.Habit.Streak, res.Habit.Status, res.Habit.LastUpdated, res.Habit.ID)
	if err != nil {
		return nil, txError("writing habit in completion tx error", err)
	}
	_, err = tx.Exec(ctx, `UPDATE users SET currency = $1, total_currency_earned = $2, happiness_meter = $3, longest_current_streak = $4, longest_obtained_streak = $5 WHERE id = $6;`,
		res.User.Currency,
		res.User.TotalCurrencyEarned,
		res.User.HappinessMeter,
		res.User.LongestCurrentStreak,
		res.User.LongestObtainedStreak,
		userID)
	if err != nil {
		return nil, txError("writing user in completion tx error", err)
	}
	if err = upsertUserBadges(ctx, tx, userID, res.User.Badges); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, txError("committing completion tx error", err)
	}
	return res, nil
}

// Tier promotions only ever raise the stored tier.
func upsertUserBadges(ctx context.Context, tx pgx.Tx, uid uuid.UUID, badges []entity.UserBadge) error {
	for _, b := range badges {
		_, err := tx.Exec(ctx, `INSERT INTO user_badges (user_id, badge_id, highest_tier) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, badge_id) DO UPDATE SET highest_tier = EXCLUDED.highest_tier
		WHERE user_badges.highest_tier < EXCLUDED.highest_tier;`,
			uid, b.BadgeID, b.HighestTierAchieved)
		if err != nil {
			return txError("upserting user badge error", err)
		}
	}
	return nil
}
