package handlers

import (
	"net/http"

	"glowbook/services/user"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type userExistsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CheckUserExistsHandler reports whether a username or email is taken.
// POST /api/users/exists
func CheckUserExistsHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req userExistsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			getLogger(c).Warn("invalid user lookup payload", zap.Error(err))
			utils.JSONError(c, utils.NewAppError(utils.ErrInvalidArgument, "Invalid request body"))
			return
		}

		result, err := svc.CheckUserExists(c.Request.Context(), req.Username, req.Email)
		if err != nil {
			utils.JSONError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
