package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", authMiddleware.JWTAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.MustGet(ContextUserIDKey),
			"email":  c.MustGet(ContextEmailKey),
			"role":   c.MustGet(ContextRoleKey),
		})
	})

	admin := protected.Group("", authMiddleware.RoleRequired(string(models.RoleAdmin)))
	admin.GET("/admin-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func newTestJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	return accessToken
}

func TestJWTAuthSetsSessionContext(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := newTestRouter(jwtService)

	token := tokenFor(t, jwtService, &models.User{ID: 42, Email: "student@college.edu", Role: models.RoleStudent})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["userID"])
	assert.Equal(t, "student@college.edu", body["email"])
	assert.Equal(t, "STUDENT", body["role"])
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router := newTestRouter(newTestJWTService(time.Hour))

	req := httptest.NewRequest("GET", "/whoami", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	router := newTestRouter(newTestJWTService(time.Hour))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	expiredService := newTestJWTService(-time.Minute)
	router := newTestRouter(expiredService)

	token := tokenFor(t, expiredService, &models.User{ID: 1, Email: "student@college.edu", Role: models.RoleStudent})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_005")
}

func TestRoleRequiredBlocksStudents(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := newTestRouter(jwtService)

	token := tokenFor(t, jwtService, &models.User{ID: 1, Email: "student@college.edu", Role: models.RoleStudent})

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleRequiredAllowsAdmins(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := newTestRouter(jwtService)

	token := tokenFor(t, jwtService, &models.User{ID: 1, Email: "admin@college.edu", Role: models.RoleAdmin})

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
