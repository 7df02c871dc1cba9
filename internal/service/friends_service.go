package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/notify"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
)

type FriendsService struct {
	repo      repository.FriendsRepositoryI
	usersRepo repository.UsersRepositoryI
	notifier  notify.Publisher
}

func NewFriendsService(friendsRepo repository.FriendsRepositoryI, usersRepo repository.UsersRepositoryI, notifier notify.Publisher) *FriendsService {
	if friendsRepo == nil || usersRepo == nil {
		log.Fatal("provided nil repository")
	}
	if notifier == nil {
		notifier = notify.NopPublisher{}
	}
	return &FriendsService{
		repo:      friendsRepo,
		usersRepo: usersRepo,
		notifier:  notifier,
	}
}

// SendRequest addresses the recipient by username, the way the add-friend
// form does.
func (fs *FriendsService) SendRequest(ctx context.Context, uid uuid.UUID, recipientName string) error {
	recipient, err := fs.usersRepo.FindByName(ctx, recipientName)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	if recipient.ID == uid {
		return errorvalues.ErrSelfRequest
	}
	friends, err := fs.repo.AreFriends(ctx, uid, recipient.ID)
	if err != nil {
		return errors.New("friends repository error: " + err.Error())
	}
	if friends {
		return errorvalues.ErrAlreadyFriends
	}
	pending, err := fs.repo.HasPendingRequest(ctx, uid, recipient.ID)
	if err != nil {
		return errors.New("friends repository error: " + err.Error())
	}
	if pending {
		return errorvalues.ErrRequestExists
	}
	err = fs.repo.CreateRequest(ctx, uid, recipient.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("friends repository error: " + err.Error())
	}
	fs.publish(ctx, notify.Event{
		Kind:     notify.KindFriendRequested,
		ActorID:  uid,
		TargetID: recipient.ID,
		At:       time.Now(),
	})
	return nil
}

func (fs *FriendsService) AcceptRequest(ctx context.Context, uid, requesterID uuid.UUID) (uuid.UUID, error) {
	chatID, err := fs.repo.Accept(ctx, requesterID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			return uuid.Nil, err
		}
		return uuid.Nil, errors.New("friends repository error: " + err.Error())
	}
	fs.publish(ctx, notify.Event{
		Kind:     notify.KindFriendAccepted,
		ActorID:  uid,
		TargetID: requesterID,
		ChatID:   chatID,
		At:       time.Now(),
	})
	return chatID, nil
}

func (fs *FriendsService) RejectRequest(ctx context.Context, uid, requesterID uuid.UUID) error {
	err := fs.repo.DeleteRequest(ctx, requesterID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			return err
		}
		return errors.New("friends repository error: " + err.Error())
	}
	return nil
}

func (fs *FriendsService) RemoveFriend(ctx context.Context, uid, friendID uuid.UUID) error {
	err := fs.repo.RemoveFriendship(ctx, uid, friendID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFriends) {
			return err
		}
		return errors.New("friends repository error: " + err.Error())
	}
	return nil
}

func (fs *FriendsService) ListFriends(ctx context.Context, uid uuid.UUID) ([]*entity.User, error) {
	friends, err := fs.repo.ListFriends(ctx, uid)
	if err != nil {
		return nil, errors.New("friends repository error: " + err.Error())
	}
	return friends, nil
}

func (fs *FriendsService) ListIncoming(ctx context.Context, uid uuid.UUID) ([]*entity.User, error) {
	requests, err := fs.repo.ListIncoming(ctx, uid)
	if err != nil {
		return nil, errors.New("friends repository error: " + err.Error())
	}
	return requests, nil
}

func (fs *FriendsService) ListOutgoing(ctx context.Context, uid uuid.UUID) ([]*entity.User, error) {
	requests, err := fs.repo.ListOutgoing(ctx, uid)
	if err != nil {
		return nil, errors.New("friends repository error: " + err.Error())
	}
	return requests, nil
}

func (fs *FriendsService) publish(ctx context.Context, event notify.Event) {
	if err := fs.notifier.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "event publish failed", slog.String("kind", event.Kind), slog.Any("error", err))
	}
}
