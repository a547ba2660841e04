package handler

import (
	"net/http"

	"github.com/MaxiBlanc/Krevo-control/internal/apierror"
	"github.com/MaxiBlanc/Krevo-control/internal/dto"
	"github.com/MaxiBlanc/Krevo-control/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /v1/auth/login
// The access gate. A mismatch always returns the same fixed message; the
// caller clears the input and may retry freely.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Contraseña incorrecta. Inténtalo de nuevo."))
		return
	}
	c.JSON(http.StatusOK, resp)
}
