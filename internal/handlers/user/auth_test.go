package user_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmlink_back_end/internal/handlers"
	"farmlink_back_end/internal/handlers/user"
	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenUserRepo simule une base injoignable sur le lookup email
type brokenUserRepo struct {
	*repositories.MockUserRepository
}

func (r *brokenUserRepo) ByEmail(ctx context.Context, email, provider string) (*models.User, error) {
	return nil, fmt.Errorf("gocql: no hosts available in the pool")
}

func registerForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fields := map[string]string{
		"username":        "Ravi",
		"email":           "ravi@farm.in",
		"password":        "motdepasse123",
		"confirmPassword": "motdepasse123",
		"phone":           "0600000000",
		"address":         "Pune",
		"role":            "Farmer",
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func registerRouter(repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := user.NewAuthHandler(repo)
	r.POST("/register", h.Register)
	return r
}

// Base injoignable pendant la vérification d'unicité : on refuse la création
// au lieu de continuer et risquer un doublon silencieux.
func TestRegister_EmailLookupFailure(t *testing.T) {
	repo := &brokenUserRepo{repositories.NewMockUserRepository()}

	body, contentType := registerForm(t)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	registerRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	require.NoError(t, repo.Create(context.Background(), &models.User{
		Username: "Ravi",
		Email:    "ravi@farm.in",
		Role:     models.RoleFarmer,
		Provider: "local",
	}))

	body, contentType := registerForm(t)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	registerRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestRegister_PasswordMismatch(t *testing.T) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("username", "Ravi"))
	require.NoError(t, mw.WriteField("email", "ravi@farm.in"))
	require.NoError(t, mw.WriteField("password", "abc"))
	require.NoError(t, mw.WriteField("confirmPassword", "xyz"))
	require.NoError(t, mw.WriteField("role", "Farmer"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	registerRouter(repositories.NewMockUserRepository()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMobileAuthURL(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "client-123")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret-123")
	t.Setenv("GOOGLE_REDIRECT_URL", "farmlink://oauth")
	handlers.InitProviders()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := user.NewAuthHandler(repositories.NewMockUserRepository())
	r.GET("/auth/mobile/:provider/url", h.MobileAuthURL)

	req := httptest.NewRequest(http.MethodGet, "/auth/mobile/google/url", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "accounts.google.com")
	assert.Contains(t, w.Body.String(), "client-123")
	assert.Contains(t, w.Body.String(), `"state"`)
}

func TestMobileAuthURL_UnknownProvider(t *testing.T) {
	handlers.InitProviders()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := user.NewAuthHandler(repositories.NewMockUserRepository())
	r.GET("/auth/mobile/:provider/url", h.MobileAuthURL)

	req := httptest.NewRequest(http.MethodGet, "/auth/mobile/github/url", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
