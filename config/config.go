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
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"villa-dos-corais"`
		Timezone string `envconfig:"TIMEZONE" default:"America/Bahia"`

		// Peers allowed to set X-Forwarded-For and X-Real-IP, as IPs or CIDRs.
		TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

		CORS struct {
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
		Booking struct {
			WhatsAppNumber     string  `envconfig:"WHATSAPP_NUMBER" default:"5571991415729"`
			SubmitLockSeconds  int     `envconfig:"SUBMIT_LOCK_SECONDS" default:"30"`
			ThrottleRPS        float64 `envconfig:"THROTTLE_RPS" default:"0.2"`
			ThrottleBurst      int     `envconfig:"THROTTLE_BURST" default:"3"`
			ThrottleTTLMinutes int     `envconfig:"THROTTLE_TTL_MINUTES" default:"10"`
		} `envconfig:"BOOKING"`
		Contact struct {
			Phone    string `envconfig:"PHONE" default:"(71) 99141-5729"`
			Email    string `envconfig:"EMAIL" default:"henriquematos0101@gmail.com"`
			Location string `envconfig:"LOCATION" default:"Subaúma, Bahia / Linha Verde / Ao lado do Resort Tree Bies"`
			Greeting string `envconfig:"GREETING" default:"Olá! Gostaria de informações sobre a Villa dos Corais."`
		} `envconfig:"CONTACT"`
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

	Kafka struct {
		Enable       bool     `envconfig:"ENABLE"`
		Brokers      []string `envconfig:"BROKERS"`
		Username     string   `envconfig:"USERNAME"`
		Password     string   `envconfig:"PASSWORD"`
		BookingTopic string   `envconfig:"BOOKING_TOPIC" default:"booking.created"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		// A missing .env is not fatal.
		err = nil

		if procErr := envconfig.Process("", &conf); procErr != nil {
			log.Fatal().Err(procErr).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Str("app", conf.App.Name).Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
