// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	// Окно, в котором повторная отправка публичной формы отклоняется.
	SubmitCooldown time.Duration
}

// BackendConfig описывает внешний REST-бэкенд, которому мы доверяем данные.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	FallbackTTL  time.Duration
	// Если задан, подпись токенов бэкенда проверяется (HMAC).
	JWTSecret string
}

type CalendarConfig struct {
	BusinessTimezone string
	// Если true, границы месяца считаются в зоне просмотра, а не в UTC.
	ZoneAwareMonth bool
}

type NotifyConfig struct {
	PollInterval time.Duration
	Window       time.Duration
}

type MailConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	From         string
	ContactInbox string
}

type LogConfig struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Redis    RedisConfig
	Session  SessionConfig
	Calendar CalendarConfig
	Notify   NotifyConfig
	Mail     MailConfig
	Log      LogConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
			SubmitCooldown: getDuration("PUBLIC_SUBMIT_COOLDOWN", 30*time.Second),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8081"), "/"),
			Timeout: getDuration("BACKEND_TIMEOUT", 20*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE_NAME", "crm_session"),
			CookieSecure: getBool("SESSION_COOKIE_SECURE", false),
			FallbackTTL:  getDuration("SESSION_TTL_FALLBACK", 24*time.Hour),
			JWTSecret:    getEnv("BACKEND_JWT_SECRET", ""),
		},
		Calendar: CalendarConfig{
			BusinessTimezone: getEnv("BUSINESS_TIMEZONE", "Asia/Colombo"),
			ZoneAwareMonth:   getBool("CALENDAR_ZONE_AWARE_MONTH", false),
		},
		Notify: NotifyConfig{
			PollInterval: getDuration("NOTIFY_POLL_INTERVAL", 30*time.Second),
			Window:       getDuration("NOTIFY_WINDOW", 60*time.Minute),
		},
		Mail: MailConfig{
			Host:         getEnv("SMTP_HOST", "localhost"),
			Port:         getInt("SMTP_PORT", 587),
			Username:     getEnv("SMTP_USERNAME", ""),
			Password:     getEnv("SMTP_PASSWORD", ""),
			From:         getEnv("MAIL_FROM", "no-reply@localhost"),
			ContactInbox: getEnv("CONTACT_INBOX", "hr@localhost"),
		},
		Log: LogConfig{
			File:       getEnv("LOG_FILE", "./logs/app.log"),
			Level:      getEnv("LOG_LEVEL", "debug"),
			MaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getInt("LOG_MAX_BACKUPS", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
