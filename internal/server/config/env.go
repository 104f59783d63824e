package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the server reads.
const EnvPrefix = "AROHA_"

// loadDotEnv is a test seam for godotenv.Load.
var loadDotEnv = func() error { return godotenv.Load() }

// parseEnv loads .env when present (existing variables win) and overlays
// Config with AROHA_* variables:
//
//	AROHA_GRPC_ADDR, AROHA_HTTP_ADDR, AROHA_DATABASE_DSN, AROHA_SECRET_KEY,
//	AROHA_ACCESS_TOKEN_TTL, AROHA_REFRESH_TOKEN_TTL (Go durations),
//	AROHA_S3_USER, AROHA_S3_PASSWORD, AROHA_S3_BUCKET, AROHA_S3_REGION,
//	AROHA_S3_ENDPOINT, AROHA_CORS_ORIGINS (comma separated), AROHA_LOG_LEVEL
//
// Panics on a malformed duration.
func parseEnv(cfg *Config) {
	_ = loadDotEnv()

	env := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	duration := func(name string, dst *time.Duration) {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err))
		}
		*dst = d
	}

	env("GRPC_ADDR", &cfg.EndpointAddrGRPC)
	env("HTTP_ADDR", &cfg.EndpointAddrHTTP)
	env("DATABASE_DSN", &cfg.DatabaseDSN)
	env("SECRET_KEY", &cfg.SecretKey)
	duration("ACCESS_TOKEN_TTL", &cfg.AccessTokenValidityDuration)
	duration("REFRESH_TOKEN_TTL", &cfg.RefreshTokenValidityDuration)
	env("S3_USER", &cfg.S3RootUser)
	env("S3_PASSWORD", &cfg.S3RootPassword)
	env("S3_BUCKET", &cfg.S3Bucket)
	env("S3_REGION", &cfg.S3Region)
	env("S3_ENDPOINT", &cfg.S3BaseEndpoint)
	env("LOG_LEVEL", &cfg.LogLevel)

	if v := os.Getenv(EnvPrefix + "CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSAllowedOrigins = origins
	}
}
