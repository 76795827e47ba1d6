package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port            string
	ShopAPIURL      string
	UpstreamTimeout time.Duration

	// Shipping policy: flat fee below the free-shipping threshold.
	ShippingFreeThreshold decimal.Decimal
	ShippingFlatFee       decimal.Decimal

	// Favorites persistence: "file" (default) or "postgres".
	FavoritesBackend string
	FavoritesFile    string
	DatabaseDSN      string

	// Optional; without it checkout events are only logged.
	RabbitURL string

	CORSAllowOrigins []string
}

func Load() Config {
	// Local dev convenience; a missing .env is fine.
	_ = godotenv.Load()

	return Config{
		Port:            getenv("PORT", "8090"),
		ShopAPIURL:      getenv("SHOP_API_URL", "http://localhost:5120"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		ShippingFreeThreshold: parseDecimal(getenv("SHIPPING_FREE_THRESHOLD", "10"), decimal.NewFromInt(10)),
		ShippingFlatFee:       parseDecimal(getenv("SHIPPING_FLAT_FEE", "2.90"), decimal.RequireFromString("2.90")),

		FavoritesBackend: getenv("FAVORITES_BACKEND", "file"),
		FavoritesFile:    getenv("FAVORITES_FILE", "data/favorites.json"),
		DatabaseDSN:      os.Getenv("STOREFRONT_DB_DSN"),

		RabbitURL: os.Getenv("RABBITMQ_URL"),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func parseDecimal(v string, def decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return def
	}
	return d
}
