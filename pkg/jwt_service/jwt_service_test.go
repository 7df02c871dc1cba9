package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/palseverance/pkg/entity"
	jwtservice "github.com/limbo/palseverance/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := jwtservice.New("test_secret")
	user := &entity.User{
		ID:   uuid.New(),
		Name: "test_user",
	}

	token, err := service.GenerateToken(user)
	require.NoError(t, err)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Username)

	// Tokens live for an hour.
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	service := jwtservice.New("test_secret")
	user := &entity.User{
		ID:   uuid.New(),
		Name: "test_user",
	}

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ParseToken("not.a.token")
		assert.Error(t, err)
	})
	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwtservice.New("other_secret").GenerateToken(user)
		require.NoError(t, err)
		_, err = service.ParseToken(token)
		assert.Error(t, err)
	})
}
