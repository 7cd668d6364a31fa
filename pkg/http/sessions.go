package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/home-sensor-api/pkg/home"
)

func (rs *RestfulServer) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(rs.cookieName(), token, maxAge, "/", "", rs.Sessions.Secure, true)
}

func (rs *RestfulServer) Login(c *gin.Context) {
	if !rs.allowLogin(c.ClientIP()) {
		requestLogger(c).Warn("Login throttled", zap.String("client", c.ClientIP()))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts"})
		return
	}

	req, verr := parseLoginRequest(c)
	if verr != nil {
		abortValidation(c, verr)
		return
	}

	user, token, err := rs.Home.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, home.ErrAuthFailure) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}
	if err != nil {
		requestLogger(c).Error("Login failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to create session"})
		return
	}

	ttl := rs.Sessions.TTL
	if ttl <= 0 {
		ttl = home.DefaultSessionTTL
	}
	rs.setSessionCookie(c, token, int(ttl.Seconds()))
	c.Header(HeaderSessionToken, token)

	c.JSON(http.StatusOK, user)
}

func (rs *RestfulServer) CurrentSession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout always succeeds from the caller's point of view; the cookie is
// cleared even when the store could not drop the session row.
func (rs *RestfulServer) Logout(c *gin.Context) {
	if err := rs.Home.Auth.Logout(c.Request.Context(), rs.sessionToken(c)); err != nil {
		requestLogger(c).Error("Logout failed", zap.Error(err))
	}

	rs.setSessionCookie(c, "", -1)
	c.Status(http.StatusOK)
}
