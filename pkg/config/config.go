package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Seed          SeedConfig
	Locale        LocaleConfig
	Notifications NotificationsConfig
	Forms         FormsConfig
	Metrics       MetricsConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Locale.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VEGMART_APP_ENV" required:"true"`
	Port         string `envconfig:"VEGMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VEGMART_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"VEGMART_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"VEGMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SeedConfig controls the fixture data loaded into the collections at boot.
type SeedConfig struct {
	Enabled bool `envconfig:"VEGMART_SEED_ENABLED" default:"true"`
}

type LocaleConfig struct {
	Language       string `envconfig:"VEGMART_LOCALE_LANGUAGE" default:"en-IN"`
	CurrencySymbol string `envconfig:"VEGMART_LOCALE_CURRENCY_SYMBOL" default:"₹"`
	DateLayout     string `envconfig:"VEGMART_LOCALE_DATE_LAYOUT" default:"02/01/2006"`
	Timezone       string `envconfig:"VEGMART_LOCALE_TIMEZONE" default:"Asia/Kolkata"`
}

// Location resolves the configured timezone, falling back to UTC.
func (l LocaleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (l LocaleConfig) validate() error {
	if strings.TrimSpace(l.Language) == "" {
		return fmt.Errorf("%s must not be empty", EnvLocaleLanguage)
	}
	if _, err := time.LoadLocation(l.Timezone); err != nil {
		return fmt.Errorf("invalid %s %q: %w", EnvLocaleTimezone, l.Timezone, err)
	}
	return nil
}

// NotificationsConfig drives how long toast notices stay visible.
type NotificationsConfig struct {
	TTL      time.Duration `envconfig:"VEGMART_NOTIFICATIONS_TTL" default:"5s"`
	MaxItems int           `envconfig:"VEGMART_NOTIFICATIONS_MAX_ITEMS" default:"20"`
}

type FormsConfig struct {
	MaxOpenSessions int           `envconfig:"VEGMART_FORMS_MAX_OPEN_SESSIONS" default:"256"`
	IdleTimeout     time.Duration `envconfig:"VEGMART_FORMS_IDLE_TIMEOUT" default:"30m"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"VEGMART_METRICS_ENABLED" default:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"VEGMART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
