package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/pkg/httputil"
)

func (s *Server) GetShopItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	items, err := s.shopService.ListItems(ctx)
	if err != nil {
		logger.Error("get shop items error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting shop items", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"items": items})
	logger.Info("shop items provided")
}

func (s *Server) BuyItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("buy item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("buy item error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.shopService.BuyItem(ctx, uid, itemID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrItemNotFound):
			logger.Error("buy item error: unexist item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrItemOwned):
			logger.Error("buy item error: item already owned")
			httputil.WriteErrorResponse(w, http.StatusConflict, "item already owned", nil)
		case errors.Is(err, errorvalues.ErrInsufficientFunds):
			logger.Error("buy item error: insufficient funds")
			httputil.WriteErrorResponse(w, http.StatusPaymentRequired, "not enough currency", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("buy item error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("buy item error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while buying item", nil)
		}
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("item bought")
}

func (s *Server) EquipItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("equip item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("equip item error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.shopService.EquipItem(ctx, uid, itemID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrItemNotFound):
			logger.Error("equip item error: unexist item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrItemNotOwned):
			logger.Error("equip item error: item not owned")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "item not owned", nil)
		default:
			logger.Error("equip item error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while equipping item", nil)
		}
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("item equipped")
}

func (s *Server) UnequipItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unequip item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	slot := r.PathValue("slot")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.shopService.UnequipItem(ctx, uid, slot)
	if err != nil {
		if isValidationError(err) {
			logger.Error("unequip item error: unknown slot")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown equipment slot", nil)
			return
		}
		logger.Error("unequip item error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while unequipping item", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("item unequipped")
}

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	badges, err := s.badgesService.GetUserBadges(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get badges error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get badges error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting badges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"badges": badges})
	logger.Info("badges provided")
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	stat := r.PathValue("stat")
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entries, err := s.leaderboardService.Top(ctx, stat, limit)
	if err != nil {
		if isValidationError(err) {
			logger.Error("get leaderboard error: unknown stat")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown leaderboard stat", nil)
			return
		}
		logger.Error("get leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"stat":    stat,
		"entries": entries,
	})
	logger.Info("leaderboard provided")
}
