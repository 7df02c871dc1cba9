package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/palseverance/internal/api"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/service"
	"github.com/limbo/palseverance/pkg/entity"
	jwtservice "github.com/limbo/palseverance/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type UserServiceMock struct {
	success bool
}

func (usmock *UserServiceMock) ChangeState(success bool) {
	usmock.success = success
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) Login(ctx context.Context, name, password string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errorvalues.ErrUserNotFound
}

func (usmock *UserServiceMock) GetProfile(ctx context.Context, id uuid.UUID) (*service.Profile, error) {
	if usmock.success {
		return &service.Profile{
			User: &entity.User{
				ID:             uid,
				Name:           username,
				PetName:        "Pal",
				HappinessMeter: 100,
			},
			Equipment:  entity.DefaultEquipment(),
			OwnedItems: []uuid.UUID{},
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) UpdateSettings(ctx context.Context, id uuid.UUID, req *service.UpdateSettingsRequest) error {
	if usmock.success {
		return nil
	}
	return errors.New("mocked error")
}

func (usmock *UserServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	if usmock.success {
		return nil
	}
	return errors.New("mocked error")
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	uid             = uuid.New()
)

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", nil)
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtservice.New("test_secret"),
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		require.NoError(t, err)
		token, ok := result["token"].(string)
		if !ok || token == "" {
			t.Error("invalid token")
		}
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetProfile(t *testing.T) {
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("profile provided", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		mock.ChangeState(true)
		serv.GetProfile(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.ProfileResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, uid.String(), resp.UserID)
		assert.Equal(t, "Pal", resp.PetName)
		assert.Equal(t, float64(100), resp.HappinessMeter)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		mock.ChangeState(true)
		serv.GetProfile(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		mock.ChangeState(false)
		serv.GetProfile(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": ` + uid.String() + `}`))
}

func TestAuthMiddleware(t *testing.T) {
	mock := UserServiceMock{}
	jwtService := jwtservice.New("test_secret")
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtService.GenerateToken(&entity.User{ID: uid, Name: username})
	require.NoError(t, err)
	t.Run("successful auth", func(t *testing.T) {
		mock.ChangeState(true)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("missing token", func(t *testing.T) {
		mock.ChangeState(true)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("garbage token", func(t *testing.T) {
		mock.ChangeState(true)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("deleted user", func(t *testing.T) {
		mock.ChangeState(false)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}
