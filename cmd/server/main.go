package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/home-sensor-api/pkg/common"
	"liyu1981.xyz/home-sensor-api/pkg/config"
	"liyu1981.xyz/home-sensor-api/pkg/db"
	"liyu1981.xyz/home-sensor-api/pkg/home"
	homeHttp "liyu1981.xyz/home-sensor-api/pkg/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := common.GetLogger()
	defer common.SyncLogger()

	dialector, err := db.UseDialector(cfg)
	if err != nil {
		logger.Fatal("Unable to open database", zap.Error(err))
	}
	dbInstance := db.GetInstance(dialector)

	homeCore := (&home.Home{
		Db:         *dbInstance,
		SessionTTL: cfg.SessionTTL,
	}).WithDefaultServices()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedUsersFile != "" {
		seed, err := home.LoadSeedFile(cfg.SeedUsersFile)
		if err != nil {
			logger.Fatal("Unable to read seed users", zap.String("file", cfg.SeedUsersFile), zap.Error(err))
		}
		if _, err := homeCore.SeedUsers(ctx, seed); err != nil {
			logger.Fatal("Unable to seed users", zap.Error(err))
		}
	}

	var loginLimiter *home.LoginLimiter
	if cfg.LoginRate > 0 || cfg.LoginBurst > 0 {
		loginLimiter = home.NewLoginLimiter(rate.Limit(cfg.LoginRate), cfg.LoginBurst)
	}

	switch {
	case common.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case common.IsDevelopment():
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.TestMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	rs := &homeHttp.RestfulServer{
		Server:       engine,
		Home:         homeCore,
		LoginLimiter: loginLimiter,
		Sessions: homeHttp.SessionOptions{
			CookieName: cfg.SessionCookie,
			Secure:     cfg.SessionSecure,
			TTL:        cfg.SessionTTL,
		},
		TrustedProxies: cfg.TrustedProxies,
	}
	rs.Setup()

	server := &http.Server{
		Addr:              cfg.HttpHostPort,
		Handler:           rs.Handler(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("http server created with:",
		zap.String("db_type", cfg.DBType),
		zap.Duration("session_ttl", cfg.SessionTTL),
		zap.Float64("login_rate", cfg.LoginRate),
		zap.Int("login_burst", cfg.LoginBurst),
		zap.Strings("cors_origins", cfg.CORSOrigins),
		zap.Strings("trusted_proxies", cfg.TrustedProxies),
	)

	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed to serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
}
