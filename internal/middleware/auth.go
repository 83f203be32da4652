package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/pet24-api/internal/utils"
)

// SessionKey is the gin context key holding the *utils.Claims of a valid
// session.
const SessionKey = "session"

// Session resolves the session token of every request. It never rejects a
// request; handlers and RequireAdmin decide what an anonymous caller may do.
func Session(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := issuer.ValidateJWT(utils.SessionToken(c)); ok {
			c.Set(SessionKey, claims)
		}
		c.Next()
	}
}

// CurrentSession returns the claims set by Session, or nil.
func CurrentSession(c *gin.Context) *utils.Claims {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.Claims)
	return claims
}

// RequireAdmin answers 401 unless the request carries an admin session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "دسترسی غیرمجاز"})
			return
		}
		c.Next()
	}
}
