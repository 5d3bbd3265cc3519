package config

const EnvPrefix = "VEGMART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv             = "VEGMART_APP_ENV"
	EnvPort               = "VEGMART_APP_PORT"
	EnvLogLevel           = "VEGMART_LOG_LEVEL"
	EnvLogFormat          = "VEGMART_LOG_FORMAT"
	EnvSeedEnabled        = "VEGMART_SEED_ENABLED"
	EnvLocaleLanguage     = "VEGMART_LOCALE_LANGUAGE"
	EnvLocaleTimezone     = "VEGMART_LOCALE_TIMEZONE"
	EnvNotificationsTTL   = "VEGMART_NOTIFICATIONS_TTL"
	EnvFormsMaxOpen       = "VEGMART_FORMS_MAX_OPEN_SESSIONS"
	EnvFormsIdleTimeout   = "VEGMART_FORMS_IDLE_TIMEOUT"
	EnvCORSAllowedOrigins = "VEGMART_CORS_ALLOWED_ORIGINS"
)
