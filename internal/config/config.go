package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/attendance_guard/internal/geo"
)

// Config хранит конфигурацию приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis
	RedisAddr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass    string        `env:"REDIS_PASSWORD"`
	RedisDB      int           `env:"REDIS_DB" envDefault:"0"`
	ZoneCacheTTL time.Duration `env:"ZONE_CACHE_TTL" envDefault:"5m"`

	// Доставка нарушений вебхуком
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Защита отметок
	TrackingInterval       time.Duration      `env:"TRACKING_INTERVAL" envDefault:"5s"`
	RateLimitWindow        time.Duration      `env:"RATE_LIMIT_WINDOW" envDefault:"30s"`
	RateLimitSweepInterval time.Duration      `env:"RATE_LIMIT_SWEEP_INTERVAL" envDefault:"1m"`
	BreakMaxDuration       time.Duration      `env:"BREAK_MAX_DURATION" envDefault:"8h"`
	BreakCheckInterval     time.Duration      `env:"BREAK_CHECK_INTERVAL" envDefault:"1m"`
	AccuracyPolicy         geo.AccuracyPolicy `env:"ACCURACY_POLICY" envDefault:"warn"`
	WiFiStrict             bool               `env:"WIFI_STRICT" envDefault:"false"`

	// Прием местоположений по MQTT, выключен при пустом адресе брокера
	MQTTBrokerURL  string        `env:"MQTT_BROKER_URL"`
	MQTTClientID   string        `env:"MQTT_CLIENT_ID" envDefault:"attendance-guard"`
	MQTTTopic      string        `env:"MQTT_TOPIC" envDefault:"attendance/+/location"`
	LocationMaxAge time.Duration `env:"LOCATION_MAX_AGE" envDefault:"30s"`

	// Поток нарушений в Kafka, выключен без брокеров
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"attendance.violations"`

	// API-ключи для аутентификации
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из окружения и необязательного файла .env
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	policy, err := geo.ParseAccuracyPolicy(getEnv("ACCURACY_POLICY", string(geo.AccuracyPolicyWarn)))
	if err != nil {
		return nil, fmt.Errorf("ACCURACY_POLICY: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		ZoneCacheTTL:           getEnvAsDuration("ZONE_CACHE_TTL", 5*time.Minute),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		TrackingInterval:       getEnvAsDuration("TRACKING_INTERVAL", 5*time.Second),
		RateLimitWindow:        getEnvAsDuration("RATE_LIMIT_WINDOW", 30*time.Second),
		RateLimitSweepInterval: getEnvAsDuration("RATE_LIMIT_SWEEP_INTERVAL", time.Minute),
		BreakMaxDuration:       getEnvAsDuration("BREAK_MAX_DURATION", 8*time.Hour),
		BreakCheckInterval:     getEnvAsDuration("BREAK_CHECK_INTERVAL", time.Minute),
		AccuracyPolicy:         policy,
		WiFiStrict:             getEnvAsBool("WIFI_STRICT", false),
		MQTTBrokerURL:          os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:           getEnv("MQTT_CLIENT_ID", "attendance-guard"),
		MQTTTopic:              getEnv("MQTT_TOPIC", "attendance/+/location"),
		LocationMaxAge:         getEnvAsDuration("LOCATION_MAX_AGE", 30*time.Second),
		KafkaBrokers:           getEnvAsSlice("KAFKA_BROKERS"),
		KafkaTopic:             getEnv("KAFKA_TOPIC", "attendance.violations"),
		APIKeys:                getEnvAsSlice("API_KEYS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsSlice разбивает переменную по запятым, пропуская пустые элементы
func getEnvAsSlice(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
