package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/home-sensor-api/pkg/common"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(common.EnvKeyDBType, DBTypeMemory)
	t.Setenv(common.EnvKeyHttpHostPort, "")
	t.Setenv(common.EnvKeySessionTTL, "")
	t.Setenv(common.EnvKeyLoginRate, "")
	t.Setenv(common.EnvKeyLoginBurst, "")
	t.Setenv(common.EnvKeyCORSOrigins, "")
	t.Setenv(common.EnvKeyTrustedProxies, "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DBTypeMemory, cfg.DBType)
	assert.Equal(t, ":1080", cfg.HttpHostPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "sid", cfg.SessionCookie)
	assert.Equal(t, 1.0, cfg.LoginRate)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(common.EnvKeyDBType, DBTypePostgres)
	t.Setenv(common.EnvKeyDBDSN, "host=localhost user=home dbname=home")
	t.Setenv(common.EnvKeySessionTTL, "90m")
	t.Setenv(common.EnvKeySessionSecure, "true")
	t.Setenv(common.EnvKeyLoginRate, "0.5")
	t.Setenv(common.EnvKeyLoginBurst, "3")
	t.Setenv(common.EnvKeyCORSOrigins, "http://localhost:5173, https://home.example")
	t.Setenv(common.EnvKeyTrustedProxies, "10.0.0.1, 172.16.0.0/12")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.SessionSecure)
	assert.Equal(t, 0.5, cfg.LoginRate)
	assert.Equal(t, 3, cfg.LoginBurst)
	assert.Equal(t, []string{"http://localhost:5173", "https://home.example"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxies)
}

func TestFromEnv_EdgeCases(t *testing.T) {
	{
		t.Setenv(common.EnvKeyDBType, "")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "APP_DB_TYPE is not set")
	}

	{
		t.Setenv(common.EnvKeyDBType, "oracle")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "unknown APP_DB_TYPE")
	}

	{
		t.Setenv(common.EnvKeyDBType, DBTypeMySQL)
		t.Setenv(common.EnvKeyDBDSN, "")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "APP_DB_DSN is required")
	}

	{
		t.Setenv(common.EnvKeyDBType, DBTypeMemory)
		t.Setenv(common.EnvKeySessionTTL, "forever")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "invalid APP_SESSION_TTL")
	}

	{
		t.Setenv(common.EnvKeySessionTTL, "-1h")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "must be positive")
	}

	{
		t.Setenv(common.EnvKeySessionTTL, "")
		t.Setenv(common.EnvKeyLoginBurst, "many")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "invalid APP_LOGIN_BURST")
	}

	{
		t.Setenv(common.EnvKeyLoginBurst, "")
		t.Setenv(common.EnvKeyTrustedProxies, "10.0.0.1, proxy.local")
		_, err := FromEnv()
		assert.ErrorContains(t, err, `APP_TRUSTED_PROXIES: "proxy.local" is neither an IP nor a CIDR`)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_SEED_USERS_FILE=users.yaml\n"), 0o600))

	t.Setenv(common.EnvKeyDBType, DBTypeMemory)
	t.Setenv(common.EnvKeySeedUsersFile, "")
	// godotenv never overrides variables that are already set, even to "".
	require.NoError(t, os.Unsetenv(common.EnvKeySeedUsersFile))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "users.yaml", cfg.SeedUsersFile)
}

func TestLoad_MissingEnvFileOutsideProduction(t *testing.T) {
	t.Setenv(common.EnvKeyGoEnv, "development")
	t.Setenv(common.EnvKeyDBType, DBTypeMemory)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
