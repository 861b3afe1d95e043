package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/examcell/exam-admin-api/internal/models"
	"github.com/examcell/exam-admin-api/internal/service"
)

type userRepoStub struct {
	users map[string]*models.User
}

func (s *userRepoStub) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := s.users[username]; ok {
		return user, nil
	}
	return nil, sql.ErrNoRows
}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := service.NewAuthService(&userRepoStub{users: map[string]*models.User{
		"examcell": {ID: 1, Username: "examcell", PasswordHash: string(hash), Role: "admin"},
	}}, nil, nil, service.AuthConfig{
		AccessTokenSecret: "test_secret",
		AccessTokenExpiry: time.Hour,
		Issuer:            "exam-admin-api",
	})
	return NewAuthHandler(svc)
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAuthHandler(t)

	r := gin.New()
	r.POST("/login", h.Login)

	w := performJSON(t, r, http.MethodPost, "/login", `{"username":"examcell","password":"secret123","role":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthHandlerLoginBadCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAuthHandler(t)

	r := gin.New()
	r.POST("/login", h.Login)

	w := performJSON(t, r, http.MethodPost, "/login", `{"username":"examcell","password":"wrong","role":"admin"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAuthHandlerLoginInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAuthHandler(t)

	r := gin.New()
	r.POST("/login", h.Login)

	w := performJSON(t, r, http.MethodPost, "/login", `{"username":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
