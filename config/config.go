package config

import (
	"os"
	"strconv"
)

// Config is read once at startup from the environment (.env is loaded by
// main through godotenv before this runs).
type Config struct {
	Port            string
	DatabaseURL     string
	FrontendURL     string
	JWTSecret       string
	AdminToken      string
	Region          string
	CatalogPath     string
	RateOverride    float64
	RateLimitPerMin int
}

func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminToken:      os.Getenv("ADMIN_TOKEN"),
		Region:          getEnv("REGION", DefaultRegionKey),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		RateLimitPerMin: 100,
	}

	if v := os.Getenv("ELECTRICITY_RATE_KWH"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			cfg.RateOverride = rate
		}
	}
	if v := os.Getenv("RATE_LIMIT_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimitPerMin = n
		}
	}
	return cfg
}

// DefaultRegion resolves the configured region, falling back to the default
// key when REGION is invalid.
func (c *Config) DefaultRegion() Region {
	r, err := LookupRegion(c.Region)
	if err != nil {
		r, _ = LookupRegion(DefaultRegionKey)
	}
	return r.WithRate(c.RateOverride)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
