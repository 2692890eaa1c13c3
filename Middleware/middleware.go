package Middleware

import (
	"net/http"

	"HospitalMS/Session"
	"HospitalMS/Utils/Token"

	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := Token.TokenValid(c)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Invalid")
			c.Abort()
			return
		}
		c.Next()
	}
}

// WithSession attaches the caller's record session to the request context,
// creating and loading it on first use.
func WithSession(sessions *Session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := Token.ExtractTokenID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		session, err := sessions.Get(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load records"})
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}
