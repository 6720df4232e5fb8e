package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	Environment  string
	MongoURI     string
	DatabaseName string

	JWTSecret string
	TokenTTL  time.Duration

	PaymentSecretKey string
	PaymentCurrency  string

	RedisAddr    string
	RedisDB      int
	RedisPass    string
	RoleCacheTTL time.Duration

	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerHost    string

	SeedAdminEmail string
	SeedAdminName  string
}

// LoadEnvFile merges a .env file from the working directory into the
// environment. A missing file is not an error. Call it before Load.
func LoadEnvFile() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("PORT", "5000"),
		Environment:      getEnv("ENV", "development"),
		MongoURI:         mongoURI(),
		DatabaseName:     getEnv("DATABASE_NAME", "ArtisticDB"),
		JWTSecret:        getEnv("ACCESS_TOKEN", "change-me"),
		TokenTTL:         getEnvDuration("TOKEN_TTL", time.Hour),
		PaymentSecretKey: os.Getenv("PAYMENT_SK_TEST"),
		PaymentCurrency:  strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RoleCacheTTL:     getEnvDuration("ROLE_CACHE_TTL", 5*time.Minute),
		RequestTimeout:   getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		CORSOrigins:      getEnvList("CORS_ORIGINS", []string{"*"}),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
		SeedAdminEmail:   os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminName:    getEnv("SEED_ADMIN_NAME", "Administrator"),
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// mongoURI prefers MONGODB_URI and otherwise assembles an Atlas SRV URI
// from DB_USER, DB_PASS and MONGODB_HOST.
func mongoURI() string {
	if v := os.Getenv("MONGODB_URI"); v != "" {
		return v
	}
	user, pass, host := os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("MONGODB_HOST")
	if user == "" || host == "" {
		return "mongodb://localhost:27017"
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("90s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
