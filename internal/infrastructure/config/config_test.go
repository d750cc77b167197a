package config

import (
	"testing"
	"time"

	"vepara_gateway/pkg/vepara"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "VEPARA_MERCHANT_KEY", "VEPARA_SANDBOX", "VEPARA_HTTP_TIMEOUT", "COLLECTOR_HOST", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()
	if cfg.Port != DefaultPort {
		t.Fatalf("unexpected port: %d", cfg.Port)
	}
	if cfg.VeparaMerchantKey != "" || cfg.VeparaSandbox || cfg.CollectorHost != "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.VeparaHTTPTimeout != vepara.DefaultTimeout {
		t.Fatalf("unexpected timeout: %v", cfg.VeparaHTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoadFromEnv_Values(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VEPARA_MERCHANT_KEY", " key ")
	t.Setenv("VEPARA_SANDBOX", "TRUE")
	t.Setenv("VEPARA_HTTP_TIMEOUT", "5s")
	t.Setenv("COLLECTOR_HOST", "otel-collector")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadFromEnv()
	if cfg.Port != 9090 || cfg.VeparaMerchantKey != "key" || !cfg.VeparaSandbox {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.VeparaHTTPTimeout != 5*time.Second || cfg.CollectorHost != "otel-collector" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("VEPARA_SANDBOX", "maybe")
	t.Setenv("VEPARA_HTTP_TIMEOUT", "-1s")

	cfg := LoadFromEnv()
	if cfg.Port != DefaultPort || cfg.VeparaSandbox || cfg.VeparaHTTPTimeout != vepara.DefaultTimeout {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
