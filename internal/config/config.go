package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Metrics Metrics

	Cors CORS `validate:"required"`

	RateService RateService `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Metrics struct {
	Port string `validate:"required,gt=0,lte=65535"`
}

// RateService is the single external collaborator: the sales tax rate
// lookup keyed by zip code.
type RateService struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1"`
	AllowedMethods []string `validate:"required,min=1"`
	AllowedHeaders []string `validate:"required,min=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "0.0.0.0"),
			Port: env("PORT", "8002"),
		},

		Metrics: Metrics{
			Port: env("METRICS_PORT", "9100"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "*"), ","),
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"api", "Keep-Alive", "User-Agent", "Content-Type"},
		},

		RateService: RateService{
			URL:     env("SALES_TAX_RATE_SERVICE", "http://localhost:8001/find_rate"),
			Timeout: envDuration("RATE_SERVICE_TIMEOUT", 5*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
