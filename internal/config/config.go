package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	UpstreamTimeout time.Duration

	// External commerce API the storefront talks to.
	CommerceAPIURL string

	// Local slots (the storefront's "local storage").
	CartSlotPath  string
	TokenSlotPath string

	// Variant defaults applied when an added item leaves them blank.
	DefaultSize     string
	DefaultColor    string
	DefaultCategory string

	// Simulated round-trips for the demo coupon and payment flows.
	CouponDelay  time.Duration
	PaymentDelay time.Duration

	// CORS
	CORSAllowOrigins []string
}

func Load() Config {
	// Local dev convenience; missing .env is fine.
	_ = godotenv.Load()

	return Config{
		Port:            getenv("PORT", "8084"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		CommerceAPIURL: getenv("COMMERCE_API_URL", "http://api-gateway-go:8080"),

		CartSlotPath:  getenv("CART_SLOT_PATH", "data/cart.json"),
		TokenSlotPath: getenv("TOKEN_SLOT_PATH", "data/token"),

		DefaultSize:     getenv("DEFAULT_SIZE", "M"),
		DefaultColor:    getenv("DEFAULT_COLOR", "default"),
		DefaultCategory: getenv("DEFAULT_CATEGORY", "Uncategorized"),

		CouponDelay:  parseDuration(getenv("COUPON_DELAY", "500ms"), 500*time.Millisecond),
		PaymentDelay: parseDuration(getenv("PAYMENT_DELAY", "750ms"), 750*time.Millisecond),

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
