package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"liyu1981.xyz/home-sensor-api/pkg/common"
)

const (
	DBTypeFile     = "file"
	DBTypeMemory   = "memory"
	DBTypeMySQL    = "mysql"
	DBTypePostgres = "postgres"

	defaultHttpHostPort  = ":1080"
	defaultDBPath        = "home.db"
	defaultSessionTTL    = 24 * time.Hour
	defaultSessionCookie = "sid"
	defaultLoginRate     = 1.0
	defaultLoginBurst    = 5
)

type Config struct {
	DBType string
	DBPath string
	DBDSN  string

	HttpHostPort string

	SessionTTL    time.Duration
	SessionCookie string
	SessionSecure bool

	LoginRate  float64
	LoginBurst int

	CORSOrigins    []string
	TrustedProxies []string
	SeedUsersFile  string
}

// Load reads .env (if present) and then the process environment.
// A missing .env is only fatal in production, where it is expected to be provisioned.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && common.IsProduction() {
		return nil, fmt.Errorf("loading env file: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var err error

	cfg := &Config{
		DBType:         strings.TrimSpace(os.Getenv(common.EnvKeyDBType)),
		DBPath:         lookupOr(common.EnvKeyDBPath, defaultDBPath),
		DBDSN:          strings.TrimSpace(os.Getenv(common.EnvKeyDBDSN)),
		HttpHostPort:   lookupOr(common.EnvKeyHttpHostPort, defaultHttpHostPort),
		SessionCookie:  lookupOr(common.EnvKeySessionCookie, defaultSessionCookie),
		CORSOrigins:    common.SplitList(os.Getenv(common.EnvKeyCORSOrigins)),
		TrustedProxies: common.SplitList(os.Getenv(common.EnvKeyTrustedProxies)),
		SeedUsersFile:  strings.TrimSpace(os.Getenv(common.EnvKeySeedUsersFile)),
	}

	if cfg.SessionTTL, err = parseEnv(common.EnvKeySessionTTL, defaultSessionTTL, time.ParseDuration); err != nil {
		return nil, err
	}
	if cfg.SessionSecure, err = parseEnv(common.EnvKeySessionSecure, false, strconv.ParseBool); err != nil {
		return nil, err
	}
	if cfg.LoginRate, err = parseEnv(common.EnvKeyLoginRate, defaultLoginRate, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}); err != nil {
		return nil, err
	}
	if cfg.LoginBurst, err = parseEnv(common.EnvKeyLoginBurst, defaultLoginBurst, strconv.Atoi); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBType {
	case DBTypeFile:
		if c.DBPath == "" {
			return fmt.Errorf("%s is required for db type %q", common.EnvKeyDBPath, c.DBType)
		}
	case DBTypeMemory:
	case DBTypeMySQL, DBTypePostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("%s is required for db type %q", common.EnvKeyDBDSN, c.DBType)
		}
	case "":
		return errors.New(common.EnvKeyDBType + " is not set")
	default:
		return fmt.Errorf("unknown %s: %s", common.EnvKeyDBType, c.DBType)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("%s must be positive", common.EnvKeySessionTTL)
	}
	if c.SessionCookie == "" {
		return fmt.Errorf("%s can not be empty", common.EnvKeySessionCookie)
	}
	if c.LoginRate < 0 || c.LoginBurst < 0 {
		return fmt.Errorf("%s and %s can not be negative", common.EnvKeyLoginRate, common.EnvKeyLoginBurst)
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("%s: %q is neither an IP nor a CIDR", common.EnvKeyTrustedProxies, proxy)
		}
	}
	return nil
}

func lookupOr(key, fallback string) string {
	if v, found := os.LookupEnv(key); found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func parseEnv[T any](key string, fallback T, parse func(string) (T, error)) (T, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := parse(raw)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
