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

type ChatsRepository struct {
	conn PgConnection
}

func NewChatsRepo(cfg DBConfig) *ChatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for chatsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for chatsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing chatsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChatsRepository{
		conn: pool,
	}
}

func NewChatsRepoWithConn(conn PgConnection) *ChatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for chatsRepo: " + err.Error())
	}
	return &ChatsRepository{
		conn: conn,
	}
}

func (cr *ChatsRepository) GetByID(ctx context.Context, chatID uuid.UUID) (*entity.Chat, error) {
	var chat entity.Chat
	chat.ID = chatID
	row := cr.conn.QueryRow(ctx, `SELECT user_a, user_b, created_at FROM chats WHERE id = $1;`, chatID)
	if err := row.Scan(&chat.UserA, &chat.UserB, &chat.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChatNotFound
		}
		return nil, errors.New("getting chat by id error: " + err.Error())
	}
	return &chat, nil
}

func (cr *ChatsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Chat, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, user_a, user_b, created_at FROM chats WHERE user_a = $1 OR user_b = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing chats error: " + err.Error())
	}
	defer rows.Close()
	chats := make([]*entity.Chat, 0)
	for rows.Next() {
		var c entity.Chat
		if err = rows.Scan(&c.ID, &c.UserA, &c.UserB, &c.CreatedAt); err != nil {
			return nil, errors.New("scanning chat error: " + err.Error())
		}
		chats = append(chats, &c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning chats: " + rows.Err().Error())
	}
	return chats, nil
}

func (cr *ChatsRepository) CreateMessage(ctx context.Context, msg *entity.Message) error {
	if msg == nil {
		return errors.New("message is nil")
	}
	row := cr.conn.QueryRow(ctx, `INSERT INTO messages (chat_id, sender_id, body) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		msg.ChatID, msg.SenderID, msg.Body)
	if err := row.Scan(&msg.ID, &msg.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrChatNotFound
		}
		return errors.New("creating message error: " + err.Error())
	}
	return nil
}

func (cr *ChatsRepository) ListMessages(ctx context.Context, chatID uuid.UUID) ([]entity.Message, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, chat_id, sender_id, body, created_at FROM messages WHERE chat_id = $1 ORDER BY created_at, id;`, chatID)
	if err != nil {
		return nil, errors.New("listing messages error: " + err.Error())
	}
	defer rows.Close()
	msgs := make([]entity.Message, 0)
	for rows.Next() {
		var m entity.Message
		if err = rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, errors.New("scanning message error: " + err.Error())
		}
		msgs = append(msgs, m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning messages: " + rows.Err().Error())
	}
	return msgs, nil
}
