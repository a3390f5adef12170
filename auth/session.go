// Package auth issues the tokens operators use to reach their form session.
package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/junaidrashid-git/orderdesk/formsession"
)

const RoleOperator = "operator"

// POST /auth/session
func CreateSession(store *formsession.Store, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token signing is not configured"})
			return
		}

		sess := store.Create()
		expiresAt := time.Now().Add(ttl)

		token, err := IssueSessionToken(secret, sess.ID, expiresAt)
		if err != nil {
			store.Delete(sess.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"session_id": sess.ID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

func IssueSessionToken(secret, sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       RoleOperator,
		"exp":        expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
