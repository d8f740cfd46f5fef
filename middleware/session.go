package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "session_id"

// EnsureSession assigns every visitor a stable session id. The id keys the
// cart and wishlist, standing in for the single-browser session of the
// original storefront.
func EnsureSession(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(sessionIDKey) == nil {
		session.Set(sessionIDKey, uuid.NewString())
		if err := session.Save(); err != nil {
			c.JSON(500, gin.H{"error": "Failed to initialise session"})
			c.Abort()
			return
		}
	}
	c.Next()
}

// SessionID returns the visitor's session id. EnsureSession must have run.
func SessionID(c *gin.Context) string {
	session := sessions.Default(c)
	if v, ok := session.Get(sessionIDKey).(string); ok {
		return v
	}
	return ""
}
