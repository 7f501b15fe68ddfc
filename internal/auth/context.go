package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "user_email"
)

// UserID extracts the authenticated user id from the Gin context.
// It is set by the bearer-token middleware.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// Email extracts the authenticated email from the Gin context.
func Email(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxEmail))
}
