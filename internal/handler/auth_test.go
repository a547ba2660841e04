package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MaxiBlanc/Krevo-control/internal/config"
	"github.com/MaxiBlanc/Krevo-control/internal/handler"
	"github.com/MaxiBlanc/Krevo-control/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func routerLogin(password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewAuthService(&config.Config{
		AdminPassword:      password,
		JWTSecret:          "secreto-de-test",
		JWTExpirationHours: 8,
	})
	r := gin.New()
	r.POST("/v1/auth/login", handler.NewAuthHandler(svc).Login)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginDevuelveToken(t *testing.T) {
	w := postLogin(routerLogin("krevo123"), `{"clave":"krevo123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
	assert.Contains(t, w.Body.String(), "bearer")
}

func TestLoginClaveIncorrectaMensajeFijo(t *testing.T) {
	w := postLogin(routerLogin("krevo123"), `{"clave":"adivino"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Contraseña incorrecta. Inténtalo de nuevo.")
}

func TestLoginSinClave(t *testing.T) {
	w := postLogin(routerLogin("krevo123"), `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Clave")
}

func TestLoginJSONInvalido(t *testing.T) {
	w := postLogin(routerLogin("krevo123"), `{clave`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
