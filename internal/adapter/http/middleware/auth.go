package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

const userKey = "user"

// AuthMiddleware resolves the bearer access token into the current user.
func AuthMiddleware(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.ReasonUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			msgKey := apierrors.MsgInvalidToken
			if errors.Is(err, domain.ErrInactiveUser) {
				msgKey = apierrors.MsgInactiveUser
			}
			zap.L().Debug("rejected access token", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.ReasonUnauthorized, msgKey, lang),
			)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireSuperuser must run after AuthMiddleware.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsSuperuser {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.ReasonForbidden, apierrors.MsgSuperuserRequired, lang),
			)
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

// SetUser is used by tests that bypass token verification.
func SetUser(user domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userKey, user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
