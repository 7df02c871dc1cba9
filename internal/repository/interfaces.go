package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/pkg/entity"
)

// CompletionFunc computes the progression outcome for a loaded user/habit
// pair inside the completion transaction.
type CompletionFunc func(user *entity.User, habit *entity.Habit) (*progression.CompletionResult, error)

// PromoteFunc recomputes the badge set from the new owned-item count inside
// the purchase transaction.
type PromoteFunc func(ownedCount int, badges []entity.UserBadge) []entity.UserBadge

// ResetFunc computes one user's nightly outcome from the rows locked inside
// the reset transaction. Returning ErrResetAlreadyApplied rolls back with
// nothing written.
type ResetFunc func(user *entity.User, habits []*entity.Habit) (*progression.ResetResult, error)

type UsersRepositoryI interface {
	// Creates new user with the first-sign-in seed: zeroed counters, full
	// happiness, tier-0 badge rows and default pet equipment
	Create(ctx context.Context, user *entity.User, seedBadges []string, equipment entity.Equipment) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid, badges included
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's name and pet name
	UpdateSettings(ctx context.Context, uid uuid.UUID, name, petName string) error
	// Deletes user with everything owned (habits, badges, items cascade)
	Delete(ctx context.Context, uid uuid.UUID) error
	// Lists every user id, for the nightly job
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	// Runs one user's nightly reset transaction: locks the user and habit
	// rows, invokes compute, persists the patches and the last_reset_at
	// marker atomically
	ApplyReset(ctx context.Context, uid uuid.UUID, snapshot time.Time, compute ResetFunc) (*progression.ResetResult, error)
	// Ranks users by a whitelisted stat column
	TopByStat(ctx context.Context, stat string, limit int) ([]entity.LeaderboardEntry, error)
}

type HabitsRepositoryI interface {
	// Creates new habit seeded pending with zero streak. Title unique per
	// user case-insensitively
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid, stable order by creation time
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Runs the completion transaction: reads user and habit, invokes
	// compute, persists both patches atomically. No partial update is ever
	// observable
	CompleteHabit(ctx context.Context, userID, habitID uuid.UUID, compute CompletionFunc) (*progression.CompletionResult, error)
}

type BadgesRepositoryI interface {
	// Loads the whole badge catalog; called once at process start
	LoadCatalog(ctx context.Context) (progression.Catalog, error)
}

type FriendsRepositoryI interface {
	// Records a directional request edge
	CreateRequest(ctx context.Context, requesterID, recipientID uuid.UUID) error
	// Removes the request edge without befriending
	DeleteRequest(ctx context.Context, requesterID, recipientID uuid.UUID) error
	// Atomically removes the request, writes both friendship sides and
	// opens the pair's chat
	Accept(ctx context.Context, requesterID, recipientID uuid.UUID) (uuid.UUID, error)
	// Atomically removes both friendship sides and the pair's chat with
	// its messages
	RemoveFriendship(ctx context.Context, uid, friendID uuid.UUID) error
	AreFriends(ctx context.Context, uid, otherID uuid.UUID) (bool, error)
	// Reports a pending request in either direction
	HasPendingRequest(ctx context.Context, uid, otherID uuid.UUID) (bool, error)
	ListFriends(ctx context.Context, uid uuid.UUID) ([]*entity.User, error)
	ListIncoming(ctx context.Context, uid uuid.UUID) ([]*entity.User, error)
	ListOutgoing(ctx context.Context, uid uuid.UUID) ([]*entity.User, error)
}

type ChatsRepositoryI interface {
	GetByID(ctx context.Context, chatID uuid.UUID) (*entity.Chat, error)
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Chat, error)
	// Appends a message; ID and CreatedAt are filled from the database
	CreateMessage(ctx context.Context, msg *entity.Message) error
	ListMessages(ctx context.Context, chatID uuid.UUID) ([]entity.Message, error)
}

type ShopRepositoryI interface {
	ListItems(ctx context.Context) ([]entity.ShopItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*entity.ShopItem, error)
	// Runs the purchase transaction: currency check, deduction, ownership
	// row and collector badge promotion in one atomic unit
	Purchase(ctx context.Context, uid uuid.UUID, item *entity.ShopItem, promote PromoteFunc) error
	ListOwnedItemIDs(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error)
	OwnsItem(ctx context.Context, uid, itemID uuid.UUID) (bool, error)
	GetEquipment(ctx context.Context, uid uuid.UUID) (entity.Equipment, error)
	SetEquipment(ctx context.Context, uid uuid.UUID, slot, itemName string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
