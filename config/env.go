package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// applyEnv overlays TRANSITCAT_* variables onto cfg. Unparsable values are
// ignored and the previous value kept.
func applyEnv(cfg *Config) {
	cfg.Log.Level = getEnv("TRANSITCAT_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("TRANSITCAT_LOG_FORMAT", cfg.Log.Format)

	cfg.Routing.BusWaitTime = getIntEnv("TRANSITCAT_BUS_WAIT_TIME", cfg.Routing.BusWaitTime)
	cfg.Routing.BusVelocity = getFloatEnv("TRANSITCAT_BUS_VELOCITY", cfg.Routing.BusVelocity)
	cfg.Routing.Parallelism = getIntEnv("TRANSITCAT_ROUTING_PARALLELISM", cfg.Routing.Parallelism)

	cfg.HTTP.Addr = getEnv("TRANSITCAT_HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.ReadTimeout = getDurationEnv("TRANSITCAT_READ_TIMEOUT", cfg.HTTP.ReadTimeout)
	cfg.HTTP.WriteTimeout = getDurationEnv("TRANSITCAT_WRITE_TIMEOUT", cfg.HTTP.WriteTimeout)
	cfg.HTTP.ShutdownTimeout = getDurationEnv("TRANSITCAT_SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)
	if origins := getCSVEnv("TRANSITCAT_CORS_ORIGINS"); origins != nil {
		cfg.HTTP.CORSOrigins = origins
	}

	cfg.Cache.RouteTTL = getDurationEnv("TRANSITCAT_ROUTE_CACHE_TTL", cfg.Cache.RouteTTL)

	cfg.Catalogue.StrictDuplicates = getBoolEnv("TRANSITCAT_STRICT_DUPLICATES", cfg.Catalogue.StrictDuplicates)
	cfg.Catalogue.MissingDistanceAsZero = getBoolEnv("TRANSITCAT_MISSING_DISTANCE_AS_ZERO", cfg.Catalogue.MissingDistanceAsZero)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getFloatEnv(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getCSVEnv(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			result = append(result, t)
		}
	}
	return result
}
