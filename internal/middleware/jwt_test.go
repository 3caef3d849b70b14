package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"farmlink_back_end/internal/middleware"
	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

// Le secret vient du .env chargé au démarrage, donc bien après l'init des
// packages : un token signé avec un secret posé à l'exécution doit quand
// même passer le middleware.
func TestAuthRequired_SecretSetAfterInit(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-charge-depuis-le-env")

	token, err := utils.GenerateJWT(models.User{
		ID:    "user-1",
		Email: "ravi@farm.in",
		Role:  models.RoleFarmer,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
	assert.Contains(t, w.Body.String(), `"role":"Farmer"`)
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "bon-secret")
	token, err := utils.GenerateJWT(models.User{ID: "user-1"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "autre-secret")

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	authRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/farmer-only",
		func(c *gin.Context) { c.Set("role", "Consumer") },
		middleware.RequireRole(models.RoleFarmer),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodPost, "/farmer-only", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
