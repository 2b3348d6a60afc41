package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultOverpassURL       = "https://overpass-api.de/api/interpreter"
	DefaultOverpassUserAgent = "nursing-locator/1.0 (+https://www.openstreetmap.org/copyright)"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Overpass OverpassConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	CORS     CORSConfig
	Tracing  TracingConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OverpassConfig - параметры клиента Overpass API
type OverpassConfig struct {
	URL            string
	RequestTimeout time.Duration
	// QueryTimeout встраивается в запрос как [timeout:N], секунды
	QueryTimeout int
	RateLimit    float64
	RateBurst    int
	UserAgent    string
}

type CacheConfig struct {
	PlacesCacheTTL   time.Duration
	FallbackCacheTTL time.Duration
	MaxRetries       int
	RetryDelay       time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	WarmInterval  time.Duration
	// WarmCities - ключи для прогрева, пустая строка означает всю страну
	WarmCities []string
}

type CORSConfig struct {
	AllowOrigins string
}

// TracingConfig - экспорт трассировки по OTLP/gRPC
type TracingConfig struct {
	Enabled        bool
	Endpoint       string
	ServiceName    string
	ServiceVersion string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Overpass: OverpassConfig{
			URL:            v.GetString("OVERPASS_URL"),
			RequestTimeout: time.Duration(v.GetInt("OVERPASS_REQUEST_TIMEOUT")) * time.Second,
			QueryTimeout:   v.GetInt("OVERPASS_QUERY_TIMEOUT"),
			RateLimit:      v.GetFloat64("OVERPASS_RATE_LIMIT"),
			RateBurst:      v.GetInt("OVERPASS_RATE_BURST"),
			UserAgent:      v.GetString("OVERPASS_USER_AGENT"),
		},
		Cache: CacheConfig{
			PlacesCacheTTL:   time.Duration(v.GetInt("PLACES_CACHE_TTL")) * time.Second,
			FallbackCacheTTL: time.Duration(v.GetInt("FALLBACK_CACHE_TTL")) * time.Second,
			MaxRetries:       v.GetInt("PLACES_MAX_RETRIES"),
			RetryDelay:       time.Duration(v.GetInt("PLACES_RETRY_DELAY")) * time.Millisecond,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			WarmInterval:  time.Duration(v.GetInt("WORKER_WARM_INTERVAL")) * time.Second,
			WarmCities:    parseList(v.GetString("WORKER_WARM_CITIES")),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Tracing: TracingConfig{
			Enabled:        v.GetBool("OTEL_ENABLED"),
			Endpoint:       v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:    v.GetString("OTEL_SERVICE_NAME"),
			ServiceVersion: v.GetString("OTEL_SERVICE_VERSION"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("OVERPASS_URL", DefaultOverpassURL)
	v.SetDefault("OVERPASS_REQUEST_TIMEOUT", 90)
	v.SetDefault("OVERPASS_QUERY_TIMEOUT", 60)
	v.SetDefault("OVERPASS_RATE_LIMIT", 1.0)
	v.SetDefault("OVERPASS_RATE_BURST", 2)
	v.SetDefault("OVERPASS_USER_AGENT", DefaultOverpassUserAgent)

	v.SetDefault("PLACES_CACHE_TTL", 3600)
	v.SetDefault("FALLBACK_CACHE_TTL", 300)
	v.SetDefault("PLACES_MAX_RETRIES", 2)
	v.SetDefault("PLACES_RETRY_DELAY", 500)

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "places-refresh-workers")
	v.SetDefault("WORKER_WARM_INTERVAL", 3000)

	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "nursing-locator")
	v.SetDefault("OTEL_SERVICE_VERSION", "1.0.0")
}

// Validate проверяет значения, без которых сервис не может работать
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("API_PORT must be 1-65535, got %d", c.Server.Port))
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		errs = append(errs, fmt.Sprintf("REDIS_PORT must be 1-65535, got %d", c.Redis.Port))
	}
	if c.Overpass.URL == "" {
		errs = append(errs, "OVERPASS_URL is required")
	}
	if c.Overpass.RequestTimeout <= 0 {
		errs = append(errs, "OVERPASS_REQUEST_TIMEOUT must be positive")
	}
	if c.Overpass.QueryTimeout <= 0 {
		errs = append(errs, "OVERPASS_QUERY_TIMEOUT must be positive")
	}
	if c.Overpass.RateLimit <= 0 {
		errs = append(errs, "OVERPASS_RATE_LIMIT must be positive")
	}
	if c.Overpass.RateBurst <= 0 {
		errs = append(errs, "OVERPASS_RATE_BURST must be positive")
	}
	if c.Cache.PlacesCacheTTL <= 0 {
		errs = append(errs, "PLACES_CACHE_TTL must be positive")
	}
	if c.Cache.FallbackCacheTTL <= 0 {
		errs = append(errs, "FALLBACK_CACHE_TTL must be positive")
	}
	if c.Cache.MaxRetries < 0 {
		errs = append(errs, "PLACES_MAX_RETRIES must not be negative")
	}
	if c.Worker.WarmInterval <= 0 {
		errs = append(errs, "WORKER_WARM_INTERVAL must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// parseList разбирает список через запятую. Значение "all" превращается в пустую строку (вся страна).
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		if trimmed == "all" {
			trimmed = ""
		}
		result = append(result, trimmed)
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
