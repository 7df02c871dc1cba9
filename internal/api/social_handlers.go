package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/pkg/entity"
	"github.com/limbo/palseverance/pkg/httputil"
)

type SendFriendRequestRequest struct {
	Name string `json:"name"`
}

type SendMessageRequest struct {
	Body string `json:"body"`
}

// UserSummary is the public projection of a user shown in social lists.
type UserSummary struct {
	UserID  string `json:"uid"`
	Name    string `json:"name"`
	PetName string `json:"pet_name"`
}

type GetFriendRequestsResponse struct {
	Incoming []UserSummary `json:"incoming"`
	Outgoing []UserSummary `json:"outgoing"`
}

func toUserSummaries(users []*entity.User) []UserSummary {
	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{
			UserID:  u.ID.String(),
			Name:    u.Name,
			PetName: u.PetName,
		})
	}
	return summaries
}

func (s *Server) GetFriends(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get friends error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	friends, err := s.friendsService.ListFriends(ctx, uid)
	if err != nil {
		logger.Error("get friends error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting friends", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"friends": toUserSummaries(friends)})
	logger.Info("friends provided")
}

func (s *Server) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("friend request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SendFriendRequestRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("friend request error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.friendsService.SendRequest(ctx, uid, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("friend request error: unexist recipient")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrSelfRequest):
			logger.Error("friend request error: self request")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "can't send friend request to yourself", nil)
		case errors.Is(err, errorvalues.ErrAlreadyFriends):
			logger.Error("friend request error: already friends")
			httputil.WriteErrorResponse(w, http.StatusConflict, "already friends with this user", nil)
		case errors.Is(err, errorvalues.ErrRequestExists):
			logger.Error("friend request error: request exists")
			httputil.WriteErrorResponse(w, http.StatusConflict, "friend request already pending", nil)
		default:
			logger.Error("friend request error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sending friend request", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"status": "pending"})
	logger.Info("friend request sent")
}

func (s *Server) GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get friend requests error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	incoming, err := s.friendsService.ListIncoming(ctx, uid)
	if err != nil {
		logger.Error("get friend requests error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting friend requests", nil)
		return
	}
	outgoing, err := s.friendsService.ListOutgoing(ctx, uid)
	if err != nil {
		logger.Error("get friend requests error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting friend requests", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetFriendRequestsResponse{
		Incoming: toUserSummaries(incoming),
		Outgoing: toUserSummaries(outgoing),
	})
	logger.Info("friend requests provided")
}

func (s *Server) AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("accept request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	requesterID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("accept request error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	chatID, err := s.friendsService.AcceptRequest(ctx, uid, requesterID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			logger.Error("accept request error: unexist request")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "friend request doesn't exist", nil)
			return
		}
		logger.Error("accept request error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while accepting friend request", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"chat_id": chatID.String()})
	logger.Info("friend request accepted")
}

func (s *Server) RejectFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reject request error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	requesterID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("reject request error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.friendsService.RejectRequest(ctx, uid, requesterID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			logger.Error("reject request error: unexist request")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "friend request doesn't exist", nil)
			return
		}
		logger.Error("reject request error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while rejecting friend request", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("friend request rejected")
}

func (s *Server) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("remove friend error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	friendID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("remove friend error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.friendsService.RemoveFriend(ctx, uid, friendID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFriends) {
			logger.Error("remove friend error: not friends")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "not friends with this user", nil)
			return
		}
		logger.Error("remove friend error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while removing friend", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("friend removed")
}

func (s *Server) GetChats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get chats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	chats, err := s.chatService.ListChats(ctx, uid)
	if err != nil {
		logger.Error("get chats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting chats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"chats": chats})
	logger.Info("chats provided")
}

func (s *Server) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get messages error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	chatID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get messages error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid chat id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	messages, err := s.chatService.GetMessages(ctx, chatID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChatNotFound):
			logger.Error("get messages error: unexist chat")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "chat doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotParticipant):
			logger.Error("get messages error: not a participant")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not a participant of this chat", nil)
		default:
			logger.Error("get messages error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting messages", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"messages": messages})
	logger.Info("messages provided")
}

func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("send message error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	chatID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("send message error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid chat id in path value", nil)
		return
	}
	var req SendMessageRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("send message error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	msg, err := s.chatService.SendMessage(ctx, chatID, uid, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChatNotFound):
			logger.Error("send message error: unexist chat")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "chat doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotParticipant):
			logger.Error("send message error: not a participant")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not a participant of this chat", nil)
		case isValidationError(err):
			logger.Error("send message error: invalid body text")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid message body", err)
		default:
			logger.Error("send message error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sending message", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, msg)
	logger.Info("message sent")
}
