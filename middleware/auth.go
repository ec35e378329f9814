package middleware

import (
	"net/http"
	"strings"

	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

// JWTAuthMiddleware validates a bearer token when one is sent and stores its
// subject under ContextUserID. Requests without a token pass through unless
// required is set. An invalid token is always rejected.
func JWTAuthMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				abortUnauthorized(c, "Missing Authorization header")
				return
			}
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			zap.L().Debug("rejecting bearer token", zap.Error(err))
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   msg,
		"code":    utils.ErrUnauthorized,
	})
}

// AuthorizeUser checks that the authenticated caller, if any, is userID.
// It returns a PermissionDenied error on mismatch. A blank userID passes so the
// caller's own field validation reports it.
func AuthorizeUser(c *gin.Context, userID string) error {
	authed := c.GetString(ContextUserID)
	userID = strings.TrimSpace(userID)
	if authed == "" || userID == "" || authed == userID {
		return nil
	}
	return utils.NewAppError(utils.ErrPermissionDenied, "You may only act on your own account")
}
