package Controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReloadRecords re-reads every table into the caller's session, discarding
// the cached sequences. Useful when another operator's writes need to show
// up without a fresh login.
func ReloadRecords(c *gin.Context) {
	session := getSession(c)
	if err := session.LoadAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Records reloaded"})
}
