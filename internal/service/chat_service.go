package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/notify"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
)

const maxMessageLen = 1000

type ChatService struct {
	repo     repository.ChatsRepositoryI
	notifier notify.Publisher
}

func NewChatService(chatsRepo repository.ChatsRepositoryI, notifier notify.Publisher) *ChatService {
	if chatsRepo == nil {
		log.Fatal("provided nil chatsRepo")
	}
	if notifier == nil {
		notifier = notify.NopPublisher{}
	}
	return &ChatService{
		repo:     chatsRepo,
		notifier: notifier,
	}
}

func (cs *ChatService) ListChats(ctx context.Context, uid uuid.UUID) ([]*entity.Chat, error) {
	chats, err := cs.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("chats repository error: " + err.Error())
	}
	return chats, nil
}

func (cs *ChatService) GetMessages(ctx context.Context, chatID, uid uuid.UUID) ([]entity.Message, error) {
	chat, err := cs.getParticipantChat(ctx, chatID, uid)
	if err != nil {
		return nil, err
	}
	messages, err := cs.repo.ListMessages(ctx, chat.ID)
	if err != nil {
		return nil, errors.New("chats repository error: " + err.Error())
	}
	return messages, nil
}

func (cs *ChatService) SendMessage(ctx context.Context, chatID, uid uuid.UUID, body string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" || utf8.RuneCountInString(body) > maxMessageLen {
		return nil, errors.New("validation error: message body must be 1-1000 characters")
	}
	chat, err := cs.getParticipantChat(ctx, chatID, uid)
	if err != nil {
		return nil, err
	}
	msg := entity.Message{
		ChatID:   chat.ID,
		SenderID: uid,
		Body:     body,
	}
	err = cs.repo.CreateMessage(ctx, &msg)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChatNotFound) {
			return nil, err
		}
		return nil, errors.New("chats repository error: " + err.Error())
	}
	recipient := chat.UserA
	if recipient == uid {
		recipient = chat.UserB
	}
	event := notify.Event{
		Kind:     notify.KindChatMessage,
		ActorID:  uid,
		TargetID: recipient,
		ChatID:   chat.ID,
		At:       time.Now(),
	}
	if err := cs.notifier.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "event publish failed", slog.String("kind", event.Kind), slog.Any("error", err))
	}
	return &msg, nil
}

func (cs *ChatService) getParticipantChat(ctx context.Context, chatID, uid uuid.UUID) (*entity.Chat, error) {
	chat, err := cs.repo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChatNotFound) {
			return nil, err
		}
		return nil, errors.New("chats repository error: " + err.Error())
	}
	if chat.UserA != uid && chat.UserB != uid {
		return nil, errorvalues.ErrNotParticipant
	}
	return chat, nil
}
