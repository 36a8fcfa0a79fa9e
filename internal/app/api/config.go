package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"

	orderskafka "github.com/Apurer/delish-express/internal/domains/orders/adapters/messaging/kafka"
	ordersapp "github.com/Apurer/delish-express/internal/domains/orders/application"
	ordersdomain "github.com/Apurer/delish-express/internal/domains/orders/domain"
	"github.com/Apurer/delish-express/internal/shared/money"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                  string
	PostgresDSN           string
	TemporalAddress       string
	TemporalNamespace     string
	TemporalDisabled      bool
	StageDelay            time.Duration
	DeliveryFee           money.Amount
	EstimatedDelivery     time.Duration
	CORSAllowedOrigins    []string
	KafkaBrokers          []string
	KafkaOrderStatusTopic string
}

const defaultCORSOrigins = "http://localhost:5173,http://localhost:3000"

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                  envDefault("PORT", "8080"),
		PostgresDSN:           strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		TemporalAddress:       envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace:     envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:      isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		StageDelay:            ordersdomain.DefaultStageDelay,
		DeliveryFee:           ordersapp.DefaultDeliveryFee,
		EstimatedDelivery:     ordersapp.DefaultEstimatedDelivery,
		CORSAllowedOrigins:    splitList(envDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		KafkaBrokers:          splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaOrderStatusTopic: envDefault("KAFKA_ORDER_STATUS_TOPIC", orderskafka.DefaultTopic),
	}
	if raw := strings.TrimSpace(os.Getenv("ORDER_STAGE_DELAY")); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil || delay <= 0 {
			return Config{}, fmt.Errorf("ORDER_STAGE_DELAY must be a positive duration such as 5s")
		}
		cfg.StageDelay = delay
	}
	if raw := strings.TrimSpace(os.Getenv("DELIVERY_FEE_CENTS")); raw != "" {
		cents, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || cents < 0 {
			return Config{}, fmt.Errorf("DELIVERY_FEE_CENTS must be a non-negative integer")
		}
		cfg.DeliveryFee = money.Amount(cents)
	}
	if raw := strings.TrimSpace(os.Getenv("ESTIMATED_DELIVERY_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("ESTIMATED_DELIVERY_MINUTES must be a positive integer")
		}
		cfg.EstimatedDelivery = time.Duration(minutes) * time.Minute
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
