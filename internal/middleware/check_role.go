package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/utilities"
)

// CheckRole protects a page from users outside the given roles. The
// access-denied view renders immediately and the handler never runs, so no
// data-fetching call is issued for the wrong role.
func CheckRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := ExtractUser(c)

		if !utilities.Contains(roles, user.Role) {
			c.HTML(http.StatusForbidden, "access_denied.html", gin.H{
				"Title": "Access denied",
				"User":  user,
			})
			c.Abort()
		}
	}
}
