package middleware

import (
	"net/http"
	"strings"

	"github.com/MaxiBlanc/Krevo-control/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the panel session token for the HTML views, where a
// browser cannot attach an Authorization header.
const SessionCookie = "krevo_session"

// SessionAuth gates everything behind the access gate: it accepts the session
// token either as a Bearer header (API clients) or as the session cookie
// (server-rendered panel). Unauthenticated HTML requests are redirected to
// the login screen instead of getting a JSON 401.
func SessionAuth(secret string, redirectHTML bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			tokenStr = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenStr = cookie
		}

		if tokenStr == "" || !tokenValido(tokenStr, secret) {
			if redirectHTML {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}
		c.Next()
	}
}

func tokenValido(tokenStr, secret string) bool {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	return err == nil && token.Valid
}
