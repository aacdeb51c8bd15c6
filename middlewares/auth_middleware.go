package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jugnuu/themis-pos/utils"
)

// AdminSession gates staff views behind the admin session cookie.
// Unauthenticated requests are redirected to the login route rather
// than errored, matching the storefront flow.
func AdminSession(sessions *utils.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.AdminSessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
