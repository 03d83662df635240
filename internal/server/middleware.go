package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-backend/internal/auth"
	"auction-backend/internal/repository"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"
)

// TokenHeader is the request header carrying the login token
const TokenHeader = "x-access-token"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// TokenRequired verifies the x-access-token header and loads the account it
// names into the request context. The account is reloaded from the store so
// deactivation and role changes take effect on the next request.
func TokenRequired(repo repository.AuctionDB, tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			utils.JSONMessage(c, http.StatusUnauthorized, "token is missing")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			utils.JSONMessage(c, http.StatusUnauthorized, "token is invalid or expired")
			utils.Warn("TokenRequired: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		user, err := repo.GetUserByID(claims.UserID)
		if err != nil {
			utils.JSONMessage(c, http.StatusUnauthorized, "token user no longer exists")
			c.Abort()
			return
		}

		helpers.SetCurrentUser(c, user)
		c.Next()
	}
}

// RoleRequired rejects requests whose authenticated user has a different
// role. It must run after TokenRequired.
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := helpers.CurrentUser(c)
		if !ok || user.Role != role {
			utils.JSONMessage(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
