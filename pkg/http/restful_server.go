package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/home"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

const (
	DefaultSessionCookie = "sid"
	HeaderSessionToken   = "X-Session-Token"
	HeaderRequestID      = "X-Request-ID"
)

type SessionOptions struct {
	CookieName string
	Secure     bool
	TTL        time.Duration
}

type RestfulServer struct {
	Server       *gin.Engine
	Home         *home.Home
	LoginLimiter *home.LoginLimiter
	Sessions     SessionOptions
	// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For is believed
	// when resolving the client address. Empty trusts none.
	TrustedProxies []string
}

func (rs *RestfulServer) cookieName() string {
	if rs.Sessions.CookieName == "" {
		return DefaultSessionCookie
	}
	return rs.Sessions.CookieName
}

func (rs *RestfulServer) allowLogin(clientKey string) bool {
	if rs.LoginLimiter == nil {
		return true
	}
	return rs.LoginLimiter.Allow(clientKey)
}

func (rs *RestfulServer) temperatureRoutes() *resourceRoutes[models.Temperature, float64] {
	return &resourceRoutes[models.Temperature, float64]{
		family:   "temperature",
		schema:   temperatureSchema,
		messages: temperatureMessages,
		store:    func() home.IResource[models.Temperature] { return rs.Home.Temperatures },
		build: func(base models.Base, value float64) models.Temperature {
			return models.Temperature{Base: base, Value: value}
		},
	}
}

func (rs *RestfulServer) switchRoutes() *resourceRoutes[models.Switch, bool] {
	return &resourceRoutes[models.Switch, bool]{
		family:   "switch",
		schema:   switchSchema,
		messages: switchMessages,
		store:    func() home.IResource[models.Switch] { return rs.Home.Switches },
		build: func(base models.Base, value bool) models.Switch {
			return models.Switch{Base: base, Value: value}
		},
	}
}

func (rs *RestfulServer) lightRoutes() *resourceRoutes[models.Light, int] {
	return &resourceRoutes[models.Light, int]{
		family:   "light",
		schema:   lightSchema,
		messages: lightMessages,
		store:    func() home.IResource[models.Light] { return rs.Home.Lights },
		build: func(base models.Base, value int) models.Light {
			return models.Light{Base: base, Value: value}
		},
	}
}

func (rs *RestfulServer) Setup() {
	if err := rs.Server.SetTrustedProxies(rs.TrustedProxies); err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("Invalid trusted proxies, trusting none", zap.Strings("proxies", rs.TrustedProxies), zap.Error(err))
		_ = rs.Server.SetTrustedProxies(nil)
	}

	rs.Server.Use(RequestID())

	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	{
		api.POST("/sessions", rs.Login)
		api.DELETE("/sessions/current", rs.Logout)
	}

	protected := api.Group("", rs.RequireUser())
	{
		protected.GET("/sessions/current", rs.CurrentSession)

		temperatures := rs.temperatureRoutes()
		protected.GET("/temperatures", temperatures.List)
		protected.GET("/temperatures/last", rs.LastTemperature)
		protected.GET("/temperatures/:id", temperatures.Get)
		protected.POST("/temperatures", temperatures.Create)
		protected.PUT("/temperatures/:id", temperatures.Update)
		protected.DELETE("/temperatures/:id", temperatures.Delete)

		switches := rs.switchRoutes()
		protected.GET("/switches/:id", switches.Get)
		protected.POST("/switches", switches.Create)
		protected.PUT("/switches/:id", switches.Update)
		protected.DELETE("/switches/:id", switches.Delete)

		lights := rs.lightRoutes()
		protected.GET("/lights/:id", lights.Get)
		protected.POST("/lights", lights.Create)
		protected.PUT("/lights/:id", lights.Update)
		protected.DELETE("/lights/:id", lights.Delete)
	}
}

// Handler wraps the gin engine with CORS. Credentials are allowed so the
// session cookie travels on cross-origin requests from allowedOrigins.
func (rs *RestfulServer) Handler(allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		return rs.Server
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", HeaderRequestID},
		ExposedHeaders:   []string{HeaderSessionToken, HeaderRequestID},
		AllowCredentials: true,
	})
	return c.Handler(rs.Server)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
