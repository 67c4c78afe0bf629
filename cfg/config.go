package cfg

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// AmadeusConfig holds credentials for the live travel-search provider.
// Empty ClientID/ClientSecret means the server runs in mock mode.
type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// StripeConfig holds credentials for the payment provider.
// Empty APIKey means payment creation returns service-unavailable.
type StripeConfig struct {
	BaseURL string
	APIKey  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

type Config struct {
	AppEnv          string
	AppPort         string
	RedisConfig     RedisConfig
	AmadeusConfig   AmadeusConfig
	StripeConfig    StripeConfig
	CORSConfig      CORSConfig
	Observability   ObservabilityConfig
	CacheTTLMinutes int
}

func Load() (*Config, error) {
	var errs []error

	// .env is optional outside local development
	_ = godotenv.Load()

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)

	redisHost := optEnv("REDIS_HOST", "")
	redisPort := optEnv("REDIS_PORT", "6379")
	redisPassword := optEnv("REDIS_PASSWORD", "")

	cacheTTLMinutes := optEnv("CACHE_TTL_MINUTES", "10")
	cacheTTLMinutesInt, err := strconv.Atoi(cacheTTLMinutes)
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: CACHE_TTL_MINUTES"))
	}

	corsOrigins := optEnv("CORS_ALLOWED_ORIGINS",
		"https://base44.com,https://app.base44.com,https://editor.base44.com,http://localhost:3000,http://localhost:8000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:8000")

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		AmadeusConfig: AmadeusConfig{
			BaseURL:      optEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
			ClientID:     optEnv("AMADEUS_CLIENT_ID", ""),
			ClientSecret: optEnv("AMADEUS_CLIENT_SECRET", ""),
		},
		StripeConfig: StripeConfig{
			BaseURL: optEnv("STRIPE_BASE_URL", "https://api.stripe.com"),
			APIKey:  optEnv("STRIPE_SECRET_KEY", ""),
		},
		CORSConfig: CORSConfig{
			AllowedOrigins: splitAndTrim(corsOrigins),
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: optEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  optEnv("OTEL_SERVICE_NAME", "myeagle-api"),
		},
		CacheTTLMinutes: cacheTTLMinutesInt,
	}, nil
}

// HasAmadeus reports whether live search credentials are present.
func (c *Config) HasAmadeus() bool {
	return c.AmadeusConfig.ClientID != "" && c.AmadeusConfig.ClientSecret != ""
}

// HasStripe reports whether the payment provider is configured.
func (c *Config) HasStripe() bool {
	return c.StripeConfig.APIKey != ""
}

func (c *Config) HasRedis() bool {
	return c.RedisConfig.Host != ""
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func optEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

func splitAndTrim(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
