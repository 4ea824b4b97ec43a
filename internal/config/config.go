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

type Config struct {
	AppName    string
	AppVersion string
	AppEnv     string
	AppPort    string
	LogLevel   string
	Timezone   string

	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbSSLMode      string
	DbMaxOpenConns int
	DbMaxIdleConns int
	DbAutoMigrate  bool

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CookieSecure    bool
	GoogleClientID  string

	FrontendURLs      []string
	TrustedProxies    []string
	TranslationFolder string

	// TokenCleanupSchedule is a cron spec; empty disables the job.
	TokenCleanupSchedule string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppName:    getEnv("APP_NAME", "ezlife"),
		AppVersion: getEnv("APP_VERSION", "dev"),
		AppEnv:     getEnv("APP_ENV", "production"),
		AppPort:    getEnv("APP_PORT", "8000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Timezone:   getEnv("APP_TIMEZONE", "UTC"),

		DbHost:         getEnv("POSTGRES_HOST", "db"),
		DbPort:         getEnv("POSTGRES_PORT", "5432"),
		DbUser:         getEnv("POSTGRES_USER", "ezlife"),
		DbPassword:     getEnv("POSTGRES_PASSWORD", "ezlife"),
		DbName:         getEnv("POSTGRES_DB", "ezlife"),
		DbSSLMode:      getEnv("POSTGRES_SSLMODE", "disable"),
		DbMaxOpenConns: getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
		DbMaxIdleConns: getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
		DbAutoMigrate:  getEnvBool("DB_AUTO_MIGRATE", true),

		JWTSecret:       getEnv("JWT_SECRET_KEY", ""),
		AccessTokenTTL:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		RefreshTokenTTL: time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		GoogleClientID:  getEnv("GOOGLE_CLIENT_ID", ""),

		FrontendURLs:      splitList(getEnv("FRONTEND_URL", "http://localhost:5173")),
		TrustedProxies:    splitList(os.Getenv("TRUSTED_PROXIES")),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),

		TokenCleanupSchedule: getEnv("TOKEN_CLEANUP_SCHEDULE", "0 3 * * *"),
	}
}

// DatabaseURL renders the postgres connection URL understood by lib/pq.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DbUser, c.DbPassword),
		Host:     fmt.Sprintf("%s:%s", c.DbHost, c.DbPort),
		Path:     "/" + c.DbName,
		RawQuery: url.Values{"sslmode": {c.DbSSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
