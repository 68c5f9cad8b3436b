// config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	MongoDBName  string
	AuthURL      string
	StripeSecret string
	StripeAPIURL string
	SiteDomain   string
	CORSOrigin   string
	RateLimitRPS int
	RabbitURL    string
}

func Load() *Config {
	// .env local si existe; en producción todo viene del entorno
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "3000"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:  getEnv("MONGO_DB_NAME", "Garments-Order-Production-Tracker-db"),
		AuthURL:      getEnv("AUTH_SERVICE_URL", "http://localhost:9099"),
		StripeSecret: getEnv("STRIPE_SECRET", ""),
		StripeAPIURL: getEnv("STRIPE_API_URL", "https://api.stripe.com"),
		SiteDomain:   getEnv("SITE_DOMAIN", "http://localhost:5173"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 20),
		RabbitURL:    getEnv("RABBIT_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
