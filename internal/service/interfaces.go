package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
	PetName  string `validate:"omitempty,printable_text,max=50"`
}

type UpdateSettingsRequest struct {
	Name    string `validate:"required,alphanum_underscore,min=3,max=100"`
	PetName string `validate:"required,printable_text,min=1,max=50"`
}

type CreateHabitRequest struct {
	Title string `validate:"required,printable_text,min=1,max=100"`
}

// Profile is the aggregate the profile and home screens render from.
type Profile struct {
	User       *entity.User
	Equipment  entity.Equipment
	OwnedItems []uuid.UUID
}

// CompletionOutcome is what a completion attempt yields. AlreadyCompleted
// marks the benign no-op path: the habit was completed within the last day
// and nothing was written.
type CompletionOutcome struct {
	AlreadyCompleted bool
	Result           *progression.CompletionResult
}

// BadgeView is one badge joined with the user's achieved tier, description
// and image resolved from the catalog.
type BadgeView struct {
	BadgeID             string `json:"badge_id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	ImageURL            string `json:"image_url,omitempty"`
	HighestTierAchieved int    `json:"highest_tier_achieved"`
}

type UserServiceI interface {
	// Validates credentials, stores the user with the first-sign-in seed.
	// Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, req *UpdateSettingsRequest) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
	// Runs the completion transaction for today
	CompleteHabit(ctx context.Context, habitID, userID uuid.UUID) (*CompletionOutcome, error)
}

type FriendsServiceI interface {
	// Sends a request addressed by username
	SendRequest(ctx context.Context, uid uuid.UUID, recipientName string) error
	// Accepts a pending request and returns the created chat id
	AcceptRequest(ctx context.Context, uid, requesterID uuid.UUID) (uuid.UUID, error)
	RejectRequest(ctx context.Context, uid, requesterID uuid.UUID) error
	RemoveFriend(ctx context.Context, uid, friendID uuid.UUID) error
	ListFriends(ctx context.Context, uid uuid.UUID) ([]*entity.User, error)
	ListIncoming(ctx context.Context, uid uuid.UUID) ([]*entity.User, error)
	ListOutgoing(ctx context.Context, uid uuid.UUID) ([]*entity.User, error)
}

type ChatServiceI interface {
	ListChats(ctx context.Context, uid uuid.UUID) ([]*entity.Chat, error)
	GetMessages(ctx context.Context, chatID, uid uuid.UUID) ([]entity.Message, error)
	SendMessage(ctx context.Context, chatID, uid uuid.UUID, body string) (*entity.Message, error)
}

type ShopServiceI interface {
	// Items grouped by slot type for the shop screen
	ListItems(ctx context.Context) (map[string][]entity.ShopItem, error)
	BuyItem(ctx context.Context, uid, itemID uuid.UUID) error
	EquipItem(ctx context.Context, uid, itemID uuid.UUID) error
	UnequipItem(ctx context.Context, uid uuid.UUID, slot string) error
}

type BadgesServiceI interface {
	GetUserBadges(ctx context.Context, uid uuid.UUID) ([]BadgeView, error)
}

type LeaderboardServiceI interface {
	Top(ctx context.Context, stat string, limit int) ([]entity.LeaderboardEntry, error)
}
