package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hiddengems/pkg/utils"
)

const SessionIDKey = "session_id"

// SessionTokenHeader carries a re-signed token so an active session outlives its first token.
const SessionTokenHeader = "X-Session-Token"

func SessionAuthMiddleware(tokens *utils.SessionTokens) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session token")
			c.Abort()
			return
		}

		if refreshed, err := tokens.CreateToken(sessionID); err == nil {
			c.Header(SessionTokenHeader, refreshed)
		}
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
