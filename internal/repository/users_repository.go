package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/pkg/cleanup"
	"github.com/limbo/palseverance/pkg/entity"
)

// Columns of users that leaderboards may order by.
var leaderboardStats = map[string]string{
	"longestCurrentStreak":  "longest_current_streak",
	"longestObtainedStreak": "longest_obtained_streak",
	"totalCurrencyEarned":   "total_currency_earned",
}

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing usersRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User, seedBadges []string, equipment entity.Equipment) error {
	if user == nil {
		return errors.New("user is nil")
	}
	tx, err := ur.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning create user tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `INSERT INTO users (name, password_hash, pet_name) VALUES ($1, $2, $3) RETURNING id;`,
		user.Name, user.PasswordHash, user.PetName)
	if err := row.Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	for _, badgeID := range seedBadges {
		_, err = tx.Exec(ctx, `INSERT INTO user_badges (user_id, badge_id, highest_tier) VALUES ($1, $2, 0);`,
			user.ID, badgeID)
		if err != nil {
			return errors.New("seeding user badges error: " + err.Error())
		}
	}
	for slot, itemName := range equipment {
		_, err = tx.Exec(ctx, `INSERT INTO user_equipment (user_id, slot, item_name) VALUES ($1, $2, $3);`,
			user.ID, slot, itemName)
		if err != nil {
			return errors.New("seeding user equipment error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing create user tx error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, pet_name FROM users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.PetName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, pet_name, currency, total_currency_earned, happiness_meter, longest_current_streak, longest_obtained_streak, last_reset_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.PetName,
		&user.Currency,
		&user.TotalCurrencyEarned,
		&user.HappinessMeter,
		&user.LongestCurrentStreak,
		&user.LongestObtainedStreak,
		&user.LastResetAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	badges, err := scanUserBadges(ctx, ur.conn, uid)
	if err != nil {
		return nil, err
	}
	user.Badges = badges
	return &user, nil
}

func (ur *UsersRepository) UpdateSettings(ctx context.Context, uid uuid.UUID, name, petName string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET name = $1, pet_name = $2 WHERE id = $3;`,
		name,
		petName,
		uid,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrUserExists
		}
		return errors.New("updating user settings error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id FROM users ORDER BY id;`)
	if err != nil {
		return nil, errors.New("listing user ids error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("scanning user id error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning user ids: " + rows.Err().Error())
	}
	return ids, nil
}

// ApplyReset runs one user's nightly rollover as a single transaction. The
// user row and every habit row are read under FOR UPDATE, so a completion
// committing around midnight is either fully visible to compute or blocked
// until the reset commits; the patches and the last_reset_at marker that
// makes a duplicate run a no-op are then written atomically.
func (ur *UsersRepository) ApplyReset(ctx context.Context, uid uuid.UUID, snapshot time.Time, compute ResetFunc) (*progression.ResetResult, error) {
	var res *progression.ResetResult
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		res, err = ur.applyResetTx(ctx, uid, snapshot, compute)
		return err
	})
	return res, err
}

func (ur *UsersRepository) applyResetTx(ctx context.Context, uid uuid.UUID, snapshot time.Time, compute ResetFunc) (*progression.ResetResult, error) {
	tx, err := ur.conn.BeginTx(ctx, txOptions)
	if err != nil {
		return nil, errors.New("beginning reset tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var user entity.User
	user.ID = uid
	row := tx.QueryRow(ctx, `SELECT name, pet_name, currency, total_currency_earned, happiness_meter, longest_current_streak, longest_obtained_streak, last_reset_at FROM users WHERE id = $1 FOR UPDATE;`, uid)
	if err = row.Scan(
		&user.Name,
		&user.PetName,
		&user.Currency,
		&user.TotalCurrencyEarned,
		&user.HappinessMeter,
		&user.LongestCurrentStreak,
		&user.LongestObtainedStreak,
		&user.LastResetAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, txError("reading user in reset tx error", err)
	}

	rows, err := tx.Query(ctx, `SELECT id, user_id, title, streak, status, last_updated, created_at
		FROM habits WHERE user_id = $1 ORDER BY created_at FOR UPDATE;`, uid)
	if err != nil {
		return nil, txError("reading habits in reset tx error", err)
	}
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h := entity.Habit{}
		err = rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Streak, &h.Status, &h.LastUpdated, &h.CreatedAt)
		if err != nil {
			rows.Close()
			return nil, errors.New("scanning habit in reset tx error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, txError("unexpected error after scanning habits in reset tx", rows.Err())
	}

	res, err := compute(&user, habits)
	if err != nil {
		return nil, err
	}

	for _, patch := range res.Habits {
		_, err = tx.Exec(ctx, `UPDATE habits SET streak = $1, status = $2 WHERE id = $3;`,
			patch.Streak, patch.Status, patch.ID)
		if err != nil {
			return nil, txError("resetting habit error", err)
		}
	}
	_, err = tx.Exec(ctx, `UPDATE users SET happiness_meter = $1, longest_current_streak = $2, last_reset_at = $3 WHERE id = $4;`,
		res.HappinessMeter, res.LongestCurrentStreak, snapshot, uid)
	if err != nil {
		return nil, txError("updating user on reset error", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, txError("committing reset tx error", err)
	}
	return res, nil
}

func (ur *UsersRepository) TopByStat(ctx context.Context, stat string, limit int) ([]entity.LeaderboardEntry, error) {
	column, ok := leaderboardStats[stat]
	if !ok {
		return nil, errors.New("unknown leaderboard stat: " + stat)
	}
	rows, err := ur.conn.Query(ctx, `SELECT id, name, pet_name, `+column+` FROM users ORDER BY `+column+` DESC, name ASC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("querying leaderboard error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e entity.LeaderboardEntry
		if err = rows.Scan(&e.UserID, &e.Name, &e.PetName, &e.Value); err != nil {
			return nil, errors.New("scanning leaderboard row error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning leaderboard: " + rows.Err().Error())
	}
	return entries, nil
}

// Shared between FindByID and the completion transaction.
func scanUserBadges(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, uid uuid.UUID) ([]entity.UserBadge, error) {
	rows, err := q.Query(ctx, `SELECT badge_id, highest_tier FROM user_badges WHERE user_id = $1 ORDER BY badge_id;`, uid)
	if err != nil {
		return nil, errors.New("querying user badges error: " + err.Error())
	}
	defer rows.Close()
	badges := make([]entity.UserBadge, 0, 3)
	for rows.Next() {
		var b entity.UserBadge
		if err = rows.Scan(&b.BadgeID, &b.HighestTierAchieved); err != nil {
			return nil, errors.New("scanning user badge error: " + err.Error())
		}
		badges = append(badges, b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning user badges: " + rows.Err().Error())
	}
	return badges, nil
}
