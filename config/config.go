package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey  string `envconfig:"API_KEY"`
		Company struct {
			Name    string `envconfig:"NAME"`
			Email   string `envconfig:"EMAIL"`
			Phone   string `envconfig:"PHONE"`
			SiteURL string `envconfig:"SITE_URL"`
		} `envconfig:"COMPANY"`
		Booking struct {
			AllowOffSchedule       bool `envconfig:"ALLOW_OFF_SCHEDULE"`
			MeetingDurationMinutes int  `envconfig:"MEETING_DURATION_MINUTES"`
			SlotLockSeconds        int  `envconfig:"SLOT_LOCK_SECONDS"`
			CatalogCacheSeconds    int  `envconfig:"CATALOG_CACHE_SECONDS"`
			UpcomingDays           int  `envconfig:"UPCOMING_DAYS"`
		} `envconfig:"BOOKING"`
		Tasks struct {
			TimeoutSeconds int `envconfig:"TIMEOUT_SECONDS"`
		} `envconfig:"TASKS"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		Zoom struct {
			AccountID         string  `envconfig:"ACCOUNT_ID"`
			ClientID          string  `envconfig:"CLIENT_ID"`
			ClientSecret      string  `envconfig:"CLIENT_SECRET"`
			BaseURL           string  `envconfig:"BASE_URL"`
			OAuthURL          string  `envconfig:"OAUTH_URL"`
			HostEmail         string  `envconfig:"HOST_EMAIL"`
			TimeoutSeconds    int     `envconfig:"TIMEOUT_SECONDS"`
			RequestsPerSecond float64 `envconfig:"REQUESTS_PER_SECOND"`
		} `envconfig:"ZOOM"`
		Email struct {
			Provider string `envconfig:"PROVIDER"`
			From     string `envconfig:"FROM"`
			FromName string `envconfig:"FROM_NAME"`
			SendGrid struct {
				APIKey string `envconfig:"API_KEY"`
			} `envconfig:"SENDGRID"`
			SES struct {
				Region          string `envconfig:"REGION"`
				AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
				SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			} `envconfig:"SES"`
			SMTP struct {
				Host     string `envconfig:"HOST"`
				Port     int    `envconfig:"PORT"`
				Username string `envconfig:"USERNAME"`
				Password string `envconfig:"PASSWORD"`
			} `envconfig:"SMTP"`
		} `envconfig:"EMAIL"`
		S3 struct {
			Enable          bool   `envconfig:"ENABLE"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
		Kafka struct {
			Enable  bool     `envconfig:"ENABLE"`
			Brokers []string `envconfig:"BROKERS"`
			Topic   string   `envconfig:"TOPIC"`
			SASL    struct {
				Username string `envconfig:"USERNAME"`
				Password string `envconfig:"PASSWORD"`
			} `envconfig:"SASL"`
		} `envconfig:"KAFKA"`
		Metrics struct {
			Namespace string `envconfig:"NAMESPACE"`
		} `envconfig:"METRICS"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf Config
	once sync.Once
)

// Load fills cfg from the environment after merging the given dotenv files. Missing files are skipped,
// variables already set in the environment win.
func Load(cfg *Config, files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			log.Debug().Err(err).Str("file", file).Msg("dotenv file not loaded")
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process environment variables: %w", err)
	}

	return nil
}

// Get returns the process configuration, loading it from .env and the environment on first use.
func Get() *Config {
	once.Do(func() {
		if err := Load(&conf, ".env"); err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized")
	})

	return &conf
}
