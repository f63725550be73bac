package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/workflowhq/workflow-api/internal/constants"
	apierrors "github.com/workflowhq/workflow-api/internal/errors"
)

// RequireAuth rejects requests without a logged-in session. The session
// value is written by the login handler as a uint64 user id; anything else
// is treated as unauthenticated.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(constants.ContextKeyUserID).(uint64)
		if !ok || userID == 0 {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Expose the id to handlers without another session read.
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user id placed in the context by
// RequireAuth.
func GetUserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint64)
	return userID, ok
}
