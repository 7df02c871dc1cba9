package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	insertUserQuery    = regexp.QuoteMeta(`INSERT INTO users (name, password_hash, pet_name) VALUES ($1, $2, $3) RETURNING id;`)
	seedBadgeQuery     = regexp.QuoteMeta(`INSERT INTO user_badges (user_id, badge_id, highest_tier) VALUES ($1, $2, 0);`)
	seedEquipmentQuery = regexp.QuoteMeta(`INSERT INTO user_equipment (user_id, slot, item_name) VALUES ($1, $2, $3);`)
	userBadgesQuery    = regexp.QuoteMeta(`SELECT badge_id, highest_tier FROM user_badges WHERE user_id = $1 ORDER BY badge_id;`)
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		PetName:      "Pal",
	}
	uid := uuid.New()
	seedBadges := []string{"habitStreak"}
	equipment := entity.Equipment{"hat": "none"}

	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertUserQuery).
			WithArgs(user.Name, user.PasswordHash, user.PetName).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uid))
		conn.ExpectExec(seedBadgeQuery).
			WithArgs(uid, "habitStreak").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectExec(seedEquipmentQuery).
			WithArgs(uid, "hat", "none").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		u := user
		err := repo.Create(ctx, &u, seedBadges, equipment)
		assert.NoError(t, err)
		assert.Equal(t, uid, u.ID)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertUserQuery).
			WithArgs(user.Name, user.PasswordHash, user.PetName).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		conn.ExpectRollback()
		u := user
		err := repo.Create(ctx, &u, seedBadges, equipment)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertUserQuery).
			WithArgs(user.Name, user.PasswordHash, user.PetName).
			WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		u := user
		err := repo.Create(ctx, &u, seedBadges, equipment)
		assert.Error(t, err)
	})
}

func TestFindByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		PetName:      "Pal",
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash, pet_name FROM users WHERE name = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash", "pet_name"}).
				AddRow(user.ID, user.Name, user.PasswordHash, user.PetName))
		result, err := repo.FindByName(ctx, user.Name)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, user.Name)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	lastReset := time.Now().Add(-24 * time.Hour)
	user := entity.User{
		ID:                    uuid.New(),
		Name:                  "test_user",
		PasswordHash:          "test_password_hash",
		PetName:               "Pal",
		Currency:              30,
		TotalCurrencyEarned:   60,
		HappinessMeter:        90,
		LongestCurrentStreak:  3,
		LongestObtainedStreak: 6,
		LastResetAt:           lastReset,
		Badges:                []entity.UserBadge{{BadgeID: "habitStreak", HighestTierAchieved: 1}},
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash, pet_name, currency, total_currency_earned, happiness_meter, longest_current_streak, longest_obtained_streak, last_reset_at FROM users WHERE id = $1;`)
	t.Run("found with badges", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash", "pet_name", "currency", "total_currency_earned", "happiness_meter", "longest_current_streak", "longest_obtained_streak", "last_reset_at"}).
				AddRow(user.ID, user.Name, user.PasswordHash, user.PetName, user.Currency, user.TotalCurrencyEarned, user.HappinessMeter, user.LongestCurrentStreak, user.LongestObtainedStreak, lastReset))
		conn.ExpectQuery(userBadgesQuery).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"badge_id", "highest_tier"}).
				AddRow("habitStreak", 1))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateSettings(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`UPDATE users SET name = $1, pet_name = $2 WHERE id = $3;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("new_name", "Biscuit", uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateSettings(ctx, uid, "new_name", "Biscuit")
		assert.NoError(t, err)
	})
	t.Run("name taken", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("new_name", "Biscuit", uid).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.UpdateSettings(ctx, uid, "new_name", "Biscuit")
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("user not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("new_name", "Biscuit", uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateSettings(ctx, uid, "new_name", "Biscuit")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestApplyReset(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	habitID := uuid.New()
	snapshot := time.Now()
	yesterday := snapshot.AddDate(0, 0, -1)
	txOpts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead}
	userQuery := regexp.QuoteMeta(`SELECT name, pet_name, currency, total_currency_earned, happiness_meter, longest_current_streak, longest_obtained_streak, last_reset_at FROM users WHERE id = $1 FOR UPDATE;`)
	habitsQuery := regexp.QuoteMeta(`SELECT id, user_id, title, streak, status, last_updated, created_at
		FROM habits WHERE user_id = $1 ORDER BY created_at FOR UPDATE;`)
	habitWrite := regexp.QuoteMeta(`UPDATE habits SET streak = $1, status = $2 WHERE id = $3;`)
	userWrite := regexp.QuoteMeta(`UPDATE users SET happiness_meter = $1, longest_current_streak = $2, last_reset_at = $3 WHERE id = $4;`)

	expectLockedReads := func(streak int, status entity.HabitStatus, lastUpdated time.Time) {
		conn.ExpectQuery(userQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"name", "pet_name", "currency", "total_currency_earned", "happiness_meter", "longest_current_streak", "longest_obtained_streak", "last_reset_at"}).
				AddRow("test_user", "Pal", 30, 60, float64(90), 2, 6, yesterday))
		conn.ExpectQuery(habitsQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "streak", "status", "last_updated", "created_at"}).
				AddRow(habitID, uid, "morning run", streak, status, lastUpdated, yesterday))
	}

	// The outcome must be computed from the rows the transaction itself
	// locked, so a completion committed moments earlier is never clobbered
	// by a stale patch.
	t.Run("applies the outcome computed from locked rows", func(t *testing.T) {
		conn.ExpectBeginTx(txOpts)
		expectLockedReads(5, entity.HabitComplete, snapshot.Add(-time.Minute))
		conn.ExpectExec(habitWrite).
			WithArgs(5, entity.HabitPending, habitID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectExec(userWrite).
			WithArgs(float64(90), 5, snapshot, uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()

		res, err := repo.ApplyReset(ctx, uid, snapshot, func(user *entity.User, habits []*entity.Habit) (*progression.ResetResult, error) {
			require.Len(t, habits, 1)
			require.Equal(t, 5, habits[0].Streak)
			require.Equal(t, entity.HabitComplete, habits[0].Status)
			require.True(t, user.LastResetAt.Equal(yesterday))
			return &progression.ResetResult{
				Habits:               []progression.HabitPatch{{ID: habitID, Streak: 5, Status: entity.HabitPending}},
				HappinessMeter:       90,
				LongestCurrentStreak: 5,
				CompletedToday:       1,
			}, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.CompletedToday)
	})

	t.Run("already reset rolls back untouched", func(t *testing.T) {
		conn.ExpectBeginTx(txOpts)
		expectLockedReads(0, entity.HabitPending, yesterday)
		conn.ExpectRollback()
		_, err := repo.ApplyReset(ctx, uid, snapshot, func(user *entity.User, habits []*entity.Habit) (*progression.ResetResult, error) {
			return nil, errorvalues.ErrResetAlreadyApplied
		})
		assert.ErrorIs(t, err, errorvalues.ErrResetAlreadyApplied)
	})

	t.Run("user vanished mid-run", func(t *testing.T) {
		conn.ExpectBeginTx(txOpts)
		conn.ExpectQuery(userQuery).
			WithArgs(uid).
			WillReturnError(pgx.ErrNoRows)
		conn.ExpectRollback()
		_, err := repo.ApplyReset(ctx, uid, snapshot, func(user *entity.User, habits []*entity.Habit) (*progression.ResetResult, error) {
			t.Fatal("compute must not run for a vanished user")
			return nil, nil
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestTopByStat(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("unknown stat rejected", func(t *testing.T) {
		_, err := repo.TopByStat(ctx, "passwordHash", 10)
		assert.Error(t, err)
	})
	t.Run("ranked", func(t *testing.T) {
		uid := uuid.New()
		query := regexp.QuoteMeta(`SELECT id, name, pet_name, longest_current_streak FROM users ORDER BY longest_current_streak DESC, name ASC LIMIT $1;`)
		conn.ExpectQuery(query).
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "pet_name", "longest_current_streak"}).
				AddRow(uid, "test_user", "Pal", int64(7)))
		entries, err := repo.TopByStat(ctx, "longestCurrentStreak", 10)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, int64(7), entries[0].Value)
		assert.Equal(t, uid, entries[0].UserID)
	})
}
