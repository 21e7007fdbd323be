package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	mem "kindred/pkg/memcache"
	"kindred/pkg/utils"
)

// AdminChecker reports whether an account may use the admin endpoints.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

func JWTAuthMiddleware(tokens *utils.TokenIssuer, denylist mem.TokenDenylist) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if denylist != nil && claims.ID != "" {
			revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				utils.Logger(c).Error("token denylist lookup failed", zap.Error(err))
				utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
				return
			}
			if revoked {
				utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
				c.Abort()
				return
			}
		}

		// ValidateToken already rejected unparsable subjects.
		userID := uuid.MustParse(claims.UserID)

		c.Set(utils.ContextUserID, userID)
		c.Set(utils.ContextEmail, claims.Email)
		c.Set(utils.ContextClaims, claims)
		if l, ok := c.Get(utils.ContextLogger); ok {
			if logger, ok := l.(*zap.Logger); ok {
				c.Set(utils.ContextLogger, logger.With(zap.String("user_id", userID.String())))
			}
		}
		c.Next()
	}
}

// AdminOnly must run after JWTAuthMiddleware. The role is looked up on every
// request, so a demoted admin loses access without waiting for token expiry.
func AdminOnly(checker AdminChecker) gin.HandlerFunc {

	return func(c *gin.Context) {
		userID, ok := utils.CurrentUserID(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if !isAdmin {
			utils.RespondError(c, http.StatusForbidden, utils.ErrAdminOnly.Message)
			c.Abort()
			return
		}

		c.Next()
	}
}
