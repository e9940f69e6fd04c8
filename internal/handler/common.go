package handler

import (
	"github.com/Karoll-e/career-boost/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the resolved caller out of the request context.
// Returns nil when the auth middleware did not run or failed.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
