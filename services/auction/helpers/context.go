package helpers

import (
	"github.com/gin-gonic/gin"

	model "auction-backend/internal/models"
)

// currentUserKey is the gin context key holding the authenticated user
const currentUserKey = "currentUser"

// SetCurrentUser stores the authenticated account on the request context
func SetCurrentUser(c *gin.Context, user model.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the account the auth middleware stored on the context
func CurrentUser(c *gin.Context) (model.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return model.User{}, false
	}
	user, ok := value.(model.User)
	return user, ok
}
