package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectstore_backend/internal/utils"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"userId":  c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	r.GET("/admin", AuthRequired(), RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredValidToken(t *testing.T) {
	r := authTestRouter()

	token, err := utils.GenerateJWT("user-42", "lina@example.com", "user")
	require.NoError(t, err)

	w := doGet(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"user-42"`)
}

func TestAuthRequiredMissingToken(t *testing.T) {
	r := authTestRouter()

	w := doGet(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	r := authTestRouter()

	for _, header := range []string{"Bearer", "Basic abc", "n'importe quoi"} {
		w := doGet(r, "/me", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	r := authTestRouter()

	w := doGet(r, "/me", "Bearer pas.un.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := utils.GenerateJWT("user-42", "lina@example.com", "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	r := authTestRouter()

	w := doGet(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := authTestRouter()

	userToken, err := utils.GenerateJWT("user-42", "lina@example.com", "user")
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT("admin", "admin@example.com", "admin")
	require.NoError(t, err)

	w := doGet(r, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
