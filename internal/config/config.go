// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN is the key/value form understood by both lib/pq and pgx.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

type Redis struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// DevJWTSecret is the fallback secret used when JWT_SECRET is unset.
const DevJWTSecret = "doorrush-dev-secret"

var ErrDevSecret = errors.New("JWT_SECRET is unset; set it or IDENTITY_DEV=true for local use")

type Identity struct {
	Addr       string
	Listen     string
	DBPath     string
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Dev        bool
}

// CheckSecret refuses the built-in token secret outside dev mode.
func (i Identity) CheckSecret() error {
	if i.JWTSecret == DevJWTSecret && !i.Dev {
		return ErrDevSecret
	}
	return nil
}

type Config struct {
	Database            Database
	Redis               Redis
	Identity            Identity
	HTTPAddr            string
	StorageDir          string
	SessionCheckTimeout time.Duration
	LegacyLoginEnabled  bool
	BaseCharge          decimal.Decimal
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load env variables", err)
	}

	timeout, err := durationEnv("SESSION_CHECK_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	accessTTL, err := durationEnv("ACCESS_TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := durationEnv("REFRESH_TOKEN_TTL", 30*24*time.Hour)
	if err != nil {
		return nil, err
	}
	legacy, err := strconv.ParseBool(getEnv("LEGACY_LOGIN_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("LEGACY_LOGIN_ENABLED: %w", err)
	}
	identityDev, err := strconv.ParseBool(getEnv("IDENTITY_DEV", "false"))
	if err != nil {
		return nil, fmt.Errorf("IDENTITY_DEV: %w", err)
	}
	base, err := decimal.NewFromString(getEnv("BASE_CHARGE", "200"))
	if err != nil {
		return nil, fmt.Errorf("BASE_CHARGE: %w", err)
	}
	if base.IsNegative() {
		return nil, fmt.Errorf("BASE_CHARGE must not be negative")
	}
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}

	return &Config{
		Database: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "doorrush"),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Identity: Identity{
			Addr:       getEnv("IDENTITY_ADDR", "localhost:50051"),
			Listen:     getEnv("IDENTITY_LISTEN", ":50051"),
			DBPath:     getEnv("IDENTITY_DB_PATH", "identity.db"),
			JWTSecret:  getEnv("JWT_SECRET", DevJWTSecret),
			AccessTTL:  accessTTL,
			RefreshTTL: refreshTTL,
			Dev:        identityDev,
		},
		HTTPAddr:            getEnv("HTTP_ADDR", "127.0.0.1:8080"),
		StorageDir:          getEnv("STORAGE_DIR", "uploads"),
		SessionCheckTimeout: timeout,
		LegacyLoginEnabled:  legacy,
		BaseCharge:          base,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
