package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDBType string = "APP_DB_TYPE"
	EnvKeyDBPath string = "APP_DB_PATH"
	EnvKeyDBDSN  string = "APP_DB_DSN"

	EnvKeyHttpHostPort string = "APP_HTTP_HOST_PORT"

	EnvKeySessionTTL    string = "APP_SESSION_TTL"
	EnvKeySessionCookie string = "APP_SESSION_COOKIE"
	EnvKeySessionSecure string = "APP_SESSION_SECURE"

	EnvKeyLoginRate  string = "APP_LOGIN_RATE"
	EnvKeyLoginBurst string = "APP_LOGIN_BURST"

	EnvKeyCORSOrigins    string = "APP_CORS_ORIGINS"
	EnvKeyTrustedProxies string = "APP_TRUSTED_PROXIES"
	EnvKeySeedUsersFile  string = "APP_SEED_USERS_FILE"
	EnvKeyLogsDir        string = "APP_LOGS_DIR"

	LoggerNameHomeCore      string = "home_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameDB            string = "db"
	LoggerFieldCategory     string = "category"
	LoggerCategoryAuth      string = "auth"
	LoggerCategorySeed      string = "seed"
	LoggerFieldRequestID    string = "request_id"
)
