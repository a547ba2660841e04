package service

import (
	"context"
	"errors"
	"time"

	"github.com/MaxiBlanc/Krevo-control/internal/config"
	"github.com/MaxiBlanc/Krevo-control/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

// ErrClaveIncorrecta is the fixed, recoverable login failure. No lockout and
// no attempt limiting beyond the generic API rate limiter.
var ErrClaveIncorrecta = errors.New("contraseña incorrecta")

// AuthService is the access gate in front of the panel: a single-factor
// exact-equality check against the configured password. This is not a
// security boundary and is documented as such; it only un-gates the
// management UI for the shop operator.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// An unset ADMIN_PASSWORD never matches: fail closed.
	if s.cfg.AdminPassword == "" || req.Clave != s.cfg.AdminPassword {
		return nil, ErrClaveIncorrecta
	}

	expira := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	claims := jwt.MapClaims{
		"rol": "administrador",
		"exp": time.Now().Add(expira).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
	}, nil
}
