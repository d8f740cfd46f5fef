package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const adminKey = "is_admin"

// RequireAdmin guards the admin panel routes. The flag is set by the login
// handler after the stored panel password has been verified.
func RequireAdmin(c *gin.Context) {
	session := sessions.Default(c)
	if admin, ok := session.Get(adminKey).(bool); !ok || !admin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin login required"})
		c.Abort()
		return
	}
	c.Next()
}

// SetAdmin flips the admin flag on the current session.
func SetAdmin(c *gin.Context, admin bool) error {
	session := sessions.Default(c)
	session.Set(adminKey, admin)
	return session.Save()
}
