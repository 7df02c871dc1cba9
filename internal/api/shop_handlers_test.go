package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/palseverance/internal/api"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/service"
	"github.com/limbo/palseverance/internal/service/mocks"
	"github.com/limbo/palseverance/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShopItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockShopServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ShopService: sService,
	})
	sService.EXPECT().ListItems(gomock.Any()).Return(map[string][]entity.ShopItem{
		"petColour": {{ID: uuid.New(), Name: "red", Type: "petColour", Cost: 50}},
		"hat":       {{ID: uuid.New(), Name: "top hat", Type: "hat", Cost: 200}},
	}, nil)
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/shop/items", nil)
	serv.GetShopItems(rr, r)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
}

func TestBuyItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockShopServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ShopService: sService,
	})
	itemID := uuid.New()

	testCases := []struct {
		ExpectedCode int
		MockErr      error
	}{
		{ExpectedCode: http.StatusNoContent, MockErr: nil},
		{ExpectedCode: http.StatusNotFound, MockErr: errorvalues.ErrItemNotFound},
		{ExpectedCode: http.StatusConflict, MockErr: errorvalues.ErrItemOwned},
		{ExpectedCode: http.StatusPaymentRequired, MockErr: errorvalues.ErrInsufficientFunds},
		{ExpectedCode: http.StatusInternalServerError, MockErr: errors.New("service error")},
	}
	for _, tc := range testCases {
		sService.EXPECT().BuyItem(gomock.Any(), userID, itemID).Return(tc.MockErr)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/shop/items/"+itemID.String()+"/buy", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", itemID.String())
		serv.BuyItem(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestEquipItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockShopServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ShopService: sService,
	})
	itemID := uuid.New()

	testCases := []struct {
		ExpectedCode int
		MockErr      error
	}{
		{ExpectedCode: http.StatusNoContent, MockErr: nil},
		{ExpectedCode: http.StatusNotFound, MockErr: errorvalues.ErrItemNotFound},
		{ExpectedCode: http.StatusForbidden, MockErr: errorvalues.ErrItemNotOwned},
	}
	for _, tc := range testCases {
		sService.EXPECT().EquipItem(gomock.Any(), userID, itemID).Return(tc.MockErr)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/shop/items/"+itemID.String()+"/equip", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", itemID.String())
		serv.EquipItem(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestUnequipItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockShopServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ShopService: sService,
	})

	t.Run("unequipped", func(t *testing.T) {
		sService.EXPECT().UnequipItem(gomock.Any(), userID, "hat").Return(nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/shop/unequip/hat", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("slot", "hat")
		serv.UnequipItem(rr, r)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("unknown slot", func(t *testing.T) {
		sService.EXPECT().UnequipItem(gomock.Any(), userID, "shoes").
			Return(errors.New("validation error: unknown equipment slot shoes"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/shop/unequip/shoes", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("slot", "shoes")
		serv.UnequipItem(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetBadges(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBadgesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BadgesService: bService,
	})

	bService.EXPECT().GetUserBadges(gomock.Any(), userID).Return([]service.BadgeView{
		{BadgeID: "habitStreak", Title: "Streak Keeper", Description: "Kept a habit for 5 days", HighestTierAchieved: 1},
	}, nil)
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/badges", nil)
	r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
	serv.GetBadges(rr, r)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
}

func TestGetLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLeaderboardServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LeaderboardService: lService,
	})

	t.Run("leaderboard provided", func(t *testing.T) {
		lService.EXPECT().Top(gomock.Any(), "longestCurrentStreak", 5).Return([]entity.LeaderboardEntry{
			{UserID: uuid.New(), Name: "alice", PetName: "Rex", Value: 42},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard/longestCurrentStreak?limit=5", nil)
		r.SetPathValue("stat", "longestCurrentStreak")
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, "longestCurrentStreak", result["stat"])
	})
	t.Run("unknown stat", func(t *testing.T) {
		lService.EXPECT().Top(gomock.Any(), "happinessMeter", 0).
			Return(nil, errors.New("validation error: unknown leaderboard stat happinessMeter"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard/happinessMeter", nil)
		r.SetPathValue("stat", "happinessMeter")
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}
