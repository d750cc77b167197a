package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"vepara_gateway/pkg/vepara"

	"github.com/rs/zerolog/log"
)

const DefaultPort = 8080

// Config is the service configuration read from the environment.
//
// Supported env vars (a .env file is loaded by cmd/api):
//   - PORT (default: 8080)
//   - VEPARA_MERCHANT_KEY (required unless PAYMENT_GATEWAY_MOCK is on)
//   - VEPARA_SANDBOX (default: false; true targets the test environment)
//   - VEPARA_HTTP_TIMEOUT (Go duration, default: 30s)
//   - COLLECTOR_HOST (optional; OTLP/HTTP collector host, tracing off when empty)
//   - LOG_LEVEL (default: info)
type Config struct {
	Port              int
	VeparaMerchantKey string
	VeparaSandbox     bool
	VeparaHTTPTimeout time.Duration
	CollectorHost     string
	LogLevel          string
}

func LoadFromEnv() Config {
	return Config{
		Port:              getenvInt("PORT", DefaultPort),
		VeparaMerchantKey: strings.TrimSpace(os.Getenv("VEPARA_MERCHANT_KEY")),
		VeparaSandbox:     getenvBool("VEPARA_SANDBOX", false),
		VeparaHTTPTimeout: getenvDuration("VEPARA_HTTP_TIMEOUT", vepara.DefaultTimeout),
		CollectorHost:     strings.TrimSpace(os.Getenv("COLLECTOR_HOST")),
		LogLevel:          getenvDefault("LOG_LEVEL", "info"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	raw := getenvDefault(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid integer env var; using default")
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(getenvDefault(key, "")) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		log.Warn().Str("key", key).Msg("invalid boolean env var; using default")
		return def
	}
}

func getenvDuration(key string, def time.Duration) time.Duration {
	raw := getenvDefault(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration env var; using default")
		return def
	}
	return v
}
