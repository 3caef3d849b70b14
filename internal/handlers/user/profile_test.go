package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmlink_back_end/internal/handlers/user"
	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRouter(repo repositories.UserRepository, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Injecte l'identité comme le ferait AuthRequired
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })

	h := user.NewProfileHandler(repo)
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	return r
}

func seedProfile(t *testing.T, repo *repositories.MockUserRepository) *models.User {
	t.Helper()
	u := &models.User{
		Username: "Ravi",
		Email:    "ravi@farm.in",
		Phone:    "0600000000",
		Address:  "Pune",
		Role:     models.RoleFarmer,
		Provider: "local",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestGetProfile(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	u := seedProfile(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	profileRouter(repo, u.ID).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"username":"Ravi"`)
	assert.Contains(t, w.Body.String(), `"email":"ravi@farm.in"`)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	profileRouter(repo, "disparu").ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	u := seedProfile(t, repo)

	body := strings.NewReader(`{"phone":"0700000000","address":"Nashik"}`)
	req := httptest.NewRequest(http.MethodPut, "/profile", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	profileRouter(repo, u.ID).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated, err := repo.ByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "0700000000", updated.Phone)
	assert.Equal(t, "Nashik", updated.Address)
	// Champs non envoyés : inchangés
	assert.Equal(t, "Ravi", updated.Username)
	assert.Equal(t, "ravi@farm.in", updated.Email)
}

func TestUpdateProfile_EmptyUsernameRejected(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	u := seedProfile(t, repo)

	body := strings.NewReader(`{"username":""}`)
	req := httptest.NewRequest(http.MethodPut, "/profile", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	profileRouter(repo, u.ID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	unchanged, err := repo.ByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", unchanged.Username)
}
