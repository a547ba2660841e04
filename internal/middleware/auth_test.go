package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MaxiBlanc/Krevo-control/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-test"

func firmarToken(t *testing.T, secret string, exp time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"rol": "administrador",
		"exp": time.Now().Add(exp).Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func routerProtegido(redirectHTML bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", middleware.SessionAuth(testSecret, redirectHTML), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestSessionAuthBearerValido(t *testing.T) {
	r := routerProtegido(false)

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+firmarToken(t, testSecret, time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuthCookieValida(t *testing.T) {
	r := routerProtegido(false)

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: firmarToken(t, testSecret, time.Hour)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuthSinToken(t *testing.T) {
	r := routerProtegido(false)

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Autenticación requerida")
}

func TestSessionAuthTokenExpirado(t *testing.T) {
	r := routerProtegido(false)

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+firmarToken(t, testSecret, -time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthFirmaAjena(t *testing.T) {
	r := routerProtegido(false)

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+firmarToken(t, "otro-secreto", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthHTMLRedirigeALogin(t *testing.T) {
	r := routerProtegido(true)

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
