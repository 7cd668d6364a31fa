package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/home"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

const ctxKeyRequestID = "request_id"

func requestLogger(c *gin.Context) *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldRequestID, c.GetString(ctxKeyRequestID)),
	)
}

// RequestID tags every request with an id (taken from X-Request-ID when the
// caller sends one) and logs the outcome once the handler chain returns.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()

		requestLogger(c).Info("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// sessionToken reads the token from the session cookie, falling back to an
// Authorization: Bearer header.
func (rs *RestfulServer) sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(rs.cookieName()); err == nil && token != "" {
		return token
	}

	auth := c.GetHeader("Authorization")
	if scheme, token, found := strings.Cut(auth, " "); found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

// RequireUser rejects requests without a live session. The resolved user is
// attached to the request context for the handlers behind it.
func (rs *RestfulServer) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := rs.Home.Auth.CurrentUser(c.Request.Context(), rs.sessionToken(c))
		if errors.Is(err, home.ErrUnauthenticated) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}
		if err != nil {
			requestLogger(c).Error("Failed to resolve session", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Request = c.Request.WithContext(home.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

// currentUser returns the user attached by RequireUser. Without one the
// request is answered with 401 and ok is false.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := home.UserFromContext(c.Request.Context())
	if !ok {
		requestLogger(c).Error("Route served without RequireUser", zap.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return nil, false
	}
	return user, true
}
