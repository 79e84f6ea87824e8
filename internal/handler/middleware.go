package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-gin-seat-booking/internal/auth"
	"go-gin-seat-booking/internal/model"
	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "admin_user"

// UserLookup 每個請求重新讀取使用者，停用或降權即時生效
type UserLookup interface {
	FindByID(ctx context.Context, id int) (*model.User, error)
}

// AdminAuth 驗證 Bearer token，並要求使用者仍為啟用中的 staff
func AdminAuth(issuer auth.TokenIssuer, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := users.FindByID(c, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			handleError(c, err, "AdminAuth")
			c.Abort()
			return
		}
		if !user.CanAccessAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireSuperuserForWrites 讀取只需 staff，新增、修改、刪除需要 superuser
func RequireSuperuserForWrites() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		user, ok := CurrentUser(c)
		if !ok || !user.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
