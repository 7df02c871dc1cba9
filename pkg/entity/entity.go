package entity

import (
	"time"

	"github.com/google/uuid"
)

type HabitStatus string

const (
	HabitPending  HabitStatus = "pending"
	HabitComplete HabitStatus = "complete"
)

type User struct {
	ID                    uuid.UUID
	Name                  string
	PasswordHash          string
	PetName               string
	Currency              int
	TotalCurrencyEarned   int
	HappinessMeter        float64
	LongestCurrentStreak  int
	LongestObtainedStreak int
	// LastResetAt is the snapshot time of the last nightly reset applied to
	// this user; the job skips users already reset on the same day.
	LastResetAt time.Time
	Badges      []UserBadge
}

type Habit struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"uid"`
	Title       string      `json:"title"`
	Streak      int         `json:"streak"`
	Status      HabitStatus `json:"status"`
	LastUpdated time.Time   `json:"last_updated"`
	CreatedAt   time.Time   `json:"created_at"`
}

// UserBadge is the per-user progression record for one badge.
// Tier 0 means seeded but not earned yet.
type UserBadge struct {
	BadgeID             string `json:"badge_id"`
	HighestTierAchieved int    `json:"highest_tier_achieved"`
}

type Badge struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	BaseDescription string      `json:"base_description"`
	Tiers           []BadgeTier `json:"tiers"`
}

// BadgeTier rows are stored ascending by tier and by threshold.
type BadgeTier struct {
	Tier            int     `json:"tier"`
	Threshold       float64 `json:"threshold"`
	TierDescription string  `json:"tier_description"`
	ImageURL        string  `json:"image_url"`
}

type FriendRequest struct {
	RequesterID uuid.UUID `json:"requester_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Chat struct {
	ID        uuid.UUID `json:"id"`
	UserA     uuid.UUID `json:"user_a"`
	UserB     uuid.UUID `json:"user_b"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID        int64     `json:"id"`
	ChatID    uuid.UUID `json:"chat_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type ShopItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
	Cost int       `json:"cost"`
}

// Equipment maps a slot (petColour, backgroundColour, hat, glasses) to the
// equipped item name.
type Equipment map[string]string

// DefaultEquipment mirrors the slots a fresh account starts with.
func DefaultEquipment() Equipment {
	return Equipment{
		"backgroundColour": "lightgrey",
		"petColour":        "grey",
		"glasses":          "none",
		"hat":              "none",
	}
}

type LeaderboardEntry struct {
	UserID  uuid.UUID `json:"uid"`
	Name    string    `json:"username"`
	PetName string    `json:"pet_name"`
	Value   int64     `json:"value"`
}
