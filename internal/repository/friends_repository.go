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
	"github.com/limbo/palseverance/pkg/cleanup"
	"github.com/limbo/palseverance/pkg/entity"
)

type FriendsRepository struct {
	conn PgConnection
}

func NewFriendsRepo(cfg DBConfig) *FriendsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for friendsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for friendsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing friendsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FriendsRepository{
		conn: pool,
	}
}

func NewFriendsRepoWithConn(conn PgConnection) *FriendsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for friendsRepo: " + err.Error())
	}
	return &FriendsRepository{
		conn: conn,
	}
}

func (fr *FriendsRepository) CreateRequest(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	_, err := fr.conn.Exec(ctx, `INSERT INTO friend_requests (requester_id, recipient_id) VALUES ($1, $2);`,
		requesterID, recipientID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrRequestExists
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating friend request error: " + err.Error())
	}
	return nil
}

func (fr *FriendsRepository) DeleteRequest(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	ct, err := fr.conn.Exec(ctx, `DELETE FROM friend_requests WHERE requester_id = $1 AND recipient_id = $2;`,
		requesterID, recipientID)
	if err != nil {
		return errors.New("deleting friend request error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRequestNotFound
	}
	return nil
}

// Accept turns the directional request edge into the symmetric friendship
// and opens the pair's chat, all in one transaction: either both sides see
// each other as friends and the chat exists, or nothing happened.
func (fr *FriendsRepository) Accept(ctx context.Context, requesterID, recipientID uuid.UUID) (uuid.UUID, error) {
	var chatID uuid.UUID
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		chatID, err = fr.acceptTx(ctx, requesterID, recipientID)
		return err
	})
	return chatID, err
}

func (fr *FriendsRepository) acceptTx(ctx context.Context, requesterID, recipientID uuid.UUID) (uuid.UUID, error) {
	tx, err := fr.conn.BeginTx(ctx, txOptions)
	if err != nil {
		return uuid.UUID{}, errors.New("beginning accept tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `DELETE FROM friend_requests WHERE requester_id = $1 AND recipient_id = $2;`,
		requesterID, recipientID)
	if err != nil {
		return uuid.UUID{}, txError("deleting request in accept tx error", err)
	}
	if ct.RowsAffected() == 0 {
		return uuid.UUID{}, errorvalues.ErrRequestNotFound
	}
	_, err = tx.Exec(ctx, `INSERT INTO friends (user_id, friend_id) VALUES ($1, $2), ($2, $1);`,
		requesterID, recipientID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return uuid.UUID{}, errorvalues.ErrAlreadyFriends
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, txError("inserting friendship error", err)
	}
	chatID := uuid.New()
	_, err = tx.Exec(ctx, `INSERT INTO chats (id, user_a, user_b) VALUES ($1, $2, $3);`,
		chatID, requesterID, recipientID)
	if err != nil {
		return uuid.UUID{}, txError("creating chat in accept tx error", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, txError("committing accept tx error", err)
	}
	return chatID, nil
}

// RemoveFriendship deletes both friendship sides and the pair's chat with
// its messages in one transaction.
func (fr *FriendsRepository) RemoveFriendship(ctx context.Context, uid, friendID uuid.UUID) error {
	tx, err := fr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning remove friendship tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `DELETE FROM friends WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1);`,
		uid, friendID)
	if err != nil {
		return errors.New("deleting friendship error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotFriends
	}
	// Messages go through the chat's FK cascade.
	_, err = tx.Exec(ctx, `DELETE FROM chats WHERE (user_a = $1 AND user_b = $2) OR (user_a = $2 AND user_b = $1);`,
		uid, friendID)
	if err != nil {
		return errors.New("deleting chat on friendship removal error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing remove friendship tx error: " + err.Error())
	}
	return nil
}

func (fr *FriendsRepository) AreFriends(ctx context.Context, uid, otherID uuid.UUID) (bool, error) {
	var exists bool
	row := fr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM friends WHERE user_id = $1 AND friend_id = $2);`,
		uid, otherID)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting friendship error: " + err.Error())
	}
	return exists, nil
}

func (fr *FriendsRepository) HasPendingRequest(ctx context.Context, uid, otherID uuid.UUID) (bool, error) {
	var exists bool
	row := fr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM friend_requests WHERE (requester_id = $1 AND recipient_id = $2) OR (requester_id = $2 AND recipient_id = $1));`,
		uid, otherID)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting pending request error: " + err.Error())
	}
	return exists, nil
}

func (fr *FriendsRepository) ListFriends(ctx context.Context, uid uuid.UUID) ([]*entity.User, error) {
	return fr.listUsers(ctx, `SELECT u.id, u.name, u.pet_name FROM friends f JOIN users u ON u.id = f.friend_id WHERE f.user_id = $1 ORDER BY u.name;`, uid)
}

func (fr *FriendsRepository) ListIncoming(ctx context.Context, uid uuid.UUID) ([]*entity.User, error) {
	return fr.listUsers(ctx, `SELECT u.id, u.name, u.pet_name FROM friend_requests r JOIN users u ON u.id = r.requester_id WHERE r.recipient_id = $1 ORDER BY r.created_at;`, uid)
}

func (fr *FriendsRepository) ListOutgoing(ctx context.Context, uid uuid.UUID) ([]*entity.User, error) {
	return fr.listUsers(ctx, `SELECT u.id, u.name, u.pet_name FROM friend_requests r JOIN users u ON u.id = r.recipient_id WHERE r.requester_id = $1 ORDER BY r.created_at;`, uid)
}

func (fr *FriendsRepository) listUsers(ctx context.Context, query string, uid uuid.UUID) ([]*entity.User, error) {
	rows, err := fr.conn.Query(ctx, query, uid)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	defer rows.Close()
	users := make([]*entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err = rows.Scan(&u.ID, &u.Name, &u.PetName); err != nil {
			return nil, errors.New("scanning user row error: " + err.Error())
		}
		users = append(users, &u)
	}
	if rows.Err() != nil {
		if errors.Is(rows.Err(), pgx.ErrNoRows) {
			return users, nil
		}
		return nil, errors.New("unexpected error after scanning users: " + rows.Err().Error())
	}
	return users, nil
}
