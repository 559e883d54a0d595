package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

const (
	userKey         = "user"
	tokenAuthScheme = "Token"
)

// TokenAuthMiddleware requires an "Authorization: Token <key>" header ("Bearer" is accepted too)
// and stores the resolved user on the context. Rejected requests never reach the handler.
func TokenAuthMiddleware(authenticator ports.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		scheme, token, found := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		if !found || !isTokenScheme(scheme) {
			abortUnauthorized(c, apierrors.MsgNotAuthenticated, lang)
			return
		}

		token = strings.TrimSpace(token)
		if token == "" || strings.ContainsAny(token, " \t") {
			abortUnauthorized(c, apierrors.MsgInvalidToken, lang)
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidToken) || errors.Is(err, domain.ErrMissingCredentials) {
				abortUnauthorized(c, apierrors.MsgInvalidToken, lang)
				return
			}

			zap.L().Error("failed to authenticate request", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(apierrors.MsgFailAuthenticate, lang),
			)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// GetUser returns the user stored by TokenAuthMiddleware.
func GetUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

func isTokenScheme(scheme string) bool {
	return strings.EqualFold(scheme, tokenAuthScheme) || strings.EqualFold(scheme, "Bearer")
}

func abortUnauthorized(c *gin.Context, msgKey string, lang string) {
	c.Header("WWW-Authenticate", tokenAuthScheme)
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(msgKey, lang))
}
