package Controllers

import (
	"HospitalMS/Session"

	"github.com/gin-gonic/gin"
)

func getSession(c *gin.Context) *Session.Session {
	value, exists := c.Get("session")
	if !exists {
		return nil
	}
	session, ok := value.(*Session.Session)
	if !ok {
		return nil
	}
	return session
}
