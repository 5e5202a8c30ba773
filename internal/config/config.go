package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort        string
	DbDriver       string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	SQLitePath     string
	TrustedProxies []string

	JWTSecret       string
	RedisURL        string
	RedisChannel    string
	TimeZone        string
	PriorityRefresh string
	ProfileTimeout  time.Duration
	TranslationDir  string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "taskhub"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "taskhub"),
		DbName:         getEnv("MYSQL_DATABASE", "taskhub"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		SQLitePath:     getEnv("SQLITE_PATH", "taskhub.db"),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisChannel:    getEnv("REDIS_CHANNEL", "taskhub:changes"),
		TimeZone:        getEnv("APP_TIMEZONE", "Europe/Rome"),
		PriorityRefresh: getEnv("PRIORITY_REFRESH_SPEC", "@every 1h"),
		ProfileTimeout:  getDuration("PROFILE_TIMEOUT", 3*time.Second),
		TranslationDir:  getEnv("TRANSLATION_DIR", "pkg/translator/translation"),
	}
}

// Location resolves TimeZone, falling back to the local zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseList(value string) []string {
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
