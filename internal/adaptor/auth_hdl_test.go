package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"videogen-portal/internal/dto/request"
	"videogen-portal/internal/dto/response"
	"videogen-portal/internal/usecase"
	"videogen-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	confirmErr  error
}

func (s *stubAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &response.RegisterResponse{UserID: "id-1", Email: req.Email}, nil
}

func (s *stubAuthService) ConfirmEmail(ctx context.Context, token string) (*response.RegisterResponse, error) {
	if s.confirmErr != nil {
		return nil, s.confirmErr
	}
	return &response.RegisterResponse{UserID: "id-1", IsConfirmed: true}, nil
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &response.AuthResponse{UserID: "id-1", Token: "tok-1", Email: req.Email}, nil
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error { return nil }

func (s *stubAuthService) ResendConfirmation(ctx context.Context, email string) error { return nil }

func newTestRouter(svc usecase.AuthService) *chi.Mux {
	h := NewAuthHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.Get("/confirm/{token}", h.ConfirmEmail)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRegisterHandler_Created(t *testing.T) {
	router := newTestRouter(&stubAuthService{})

	body := `{"email":"alice@example.com","password":"pw","password_confirmation":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Status)
}

func TestRegisterHandler_InvalidBody(t *testing.T) {
	router := newTestRouter(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	router := newTestRouter(&stubAuthService{registerErr: usecase.ErrDuplicateAccount})

	body := `{"email":"alice@example.com","password":"pw","password_confirmation":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Status)
	assert.Equal(t, usecase.ErrDuplicateAccount.Error(), resp.Message)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	router := newTestRouter(&stubAuthService{loginErr: usecase.ErrInvalidCredentials})

	body := `{"email":"alice@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginHandler_NotConfirmed(t *testing.T) {
	router := newTestRouter(&stubAuthService{loginErr: usecase.ErrEmailNotConfirmed})

	body := `{"email":"alice@example.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConfirmHandler_InvalidToken(t *testing.T) {
	router := newTestRouter(&stubAuthService{confirmErr: usecase.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodGet, "/confirm/bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmHandler_Success(t *testing.T) {
	router := newTestRouter(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/confirm/some-token", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Status)
}

func TestUnexpectedErrorIsInternal(t *testing.T) {
	router := newTestRouter(&stubAuthService{loginErr: assert.AnError})

	body := `{"email":"alice@example.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
