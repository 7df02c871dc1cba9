// Package notify publishes social events (friend requests, chat messages)
// to a message queue for downstream push delivery. Delivery itself is out
// of scope: events stop at the queue.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	KindFriendRequested = "friend.requested"
	KindFriendAccepted  = "friend.accepted"
	KindChatMessage     = "chat.message"
)

type Event struct {
	Kind     string    `json:"kind"`
	ActorID  uuid.UUID `json:"actor_id"`
	TargetID uuid.UUID `json:"target_id"`
	ChatID   uuid.UUID `json:"chat_id,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher is fire-and-forget: services log a failed publish and carry on,
// the user operation never depends on the queue.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher is used when no queue is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
